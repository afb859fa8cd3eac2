package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stellarstay/internal/domain/shared/money"
)

func validDraft() Draft {
	return Draft{
		RoomID:   "king-301",
		CheckIn:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		Guests:   2,
	}
}

func fieldNames(verr *ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidDraftPasses(t *testing.T) {
	assert.Nil(t, ValidateDraft(validDraft()))
}

func TestMissingRoomID(t *testing.T) {
	d := validDraft()
	d.RoomID = ""
	verr := ValidateDraft(d)
	assert.NotNil(t, verr)
	assert.Contains(t, fieldNames(verr), "room_id")
}

func TestCheckOutNotAfterCheckIn(t *testing.T) {
	d := validDraft()
	d.CheckOut = d.CheckIn
	verr := ValidateDraft(d)
	assert.NotNil(t, verr)
	assert.Contains(t, fieldNames(verr), "check_out")

	d.CheckOut = d.CheckIn.AddDate(0, 0, -1)
	assert.NotNil(t, ValidateDraft(d))
}

func TestGuestBounds(t *testing.T) {
	for _, guests := range []int{0, -1, 11} {
		d := validDraft()
		d.Guests = guests
		verr := ValidateDraft(d)
		assert.NotNil(t, verr, "guests=%d", guests)
		assert.Contains(t, fieldNames(verr), "guests")
	}
	for _, guests := range []int{1, 10} {
		d := validDraft()
		d.Guests = guests
		assert.Nil(t, ValidateDraft(d), "guests=%d", guests)
	}
}

func TestAllProblemsCollected(t *testing.T) {
	verr := ValidateDraft(Draft{})
	assert.NotNil(t, verr)
	names := fieldNames(verr)
	assert.Contains(t, names, "room_id")
	assert.Contains(t, names, "check_in")
	assert.Contains(t, names, "check_out")
	assert.Contains(t, names, "guests")
	assert.Contains(t, verr.Error(), "room_id")
}

func TestNewRejectsNegativePrice(t *testing.T) {
	_, err := New(CreateParams{TotalPrice: money.Must(-1, "USD")})
	assert.ErrorIs(t, err, ErrNegativePrice)
}
