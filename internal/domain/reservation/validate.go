package reservation

import (
	"strings"
	"time"

	"stellarstay/internal/domain/room"
)

const (
	MinGuests = 1
	MaxGuests = 10
)

// Draft carries the caller-supplied fields of a reservation request before
// any room lookup or pricing happens.
type Draft struct {
	RoomID            room.RoomID
	CheckIn           time.Time
	CheckOut          time.Time
	Guests            int
	IncludesBreakfast bool
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field-level problem found in a draft.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("reservation: invalid request")
	for _, f := range e.Fields {
		b.WriteString("; ")
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

// ValidateDraft checks the draft invariants and returns nil when it is valid.
// Guest count is bounded by [MinGuests, MaxGuests] regardless of the room;
// the room's own occupancy limit is deliberately not consulted here.
func ValidateDraft(d Draft) *ValidationError {
	var fields []FieldError
	if d.RoomID == "" {
		fields = append(fields, FieldError{Field: "room_id", Message: "room id is required"})
	}
	if d.CheckIn.IsZero() {
		fields = append(fields, FieldError{Field: "check_in", Message: "check-in date is required"})
	}
	if d.CheckOut.IsZero() {
		fields = append(fields, FieldError{Field: "check_out", Message: "check-out date is required"})
	}
	if !d.CheckIn.IsZero() && !d.CheckOut.IsZero() && !d.CheckOut.After(d.CheckIn) {
		fields = append(fields, FieldError{Field: "check_out", Message: "check-out date must be after check-in date"})
	}
	if d.Guests < MinGuests || d.Guests > MaxGuests {
		fields = append(fields, FieldError{Field: "guests", Message: "number of guests must be between 1 and 10"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
