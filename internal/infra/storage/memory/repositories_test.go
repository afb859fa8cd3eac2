package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainreservation "stellarstay/internal/domain/reservation"
	domainroom "stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/daterange"
	"stellarstay/internal/domain/shared/money"
)

func seedRooms(t *testing.T) *RoomRepository {
	t.Helper()
	repo := NewRoomRepository()
	rooms := []*domainroom.Room{
		{ID: "junior-101", Type: "Junior Suite", MaxOccupancy: 2, NumberOfBeds: 1, BaseRate: money.Must(6000, "USD")},
		{ID: "king-201", Type: "King Suite", MaxOccupancy: 4, NumberOfBeds: 2, BaseRate: money.Must(9000, "USD")},
		{ID: "king-301", Type: "King Suite", MaxOccupancy: 4, NumberOfBeds: 2, HasOceanView: true, BaseRate: money.Must(10000, "USD")},
		{ID: "presidential-401", Type: "Presidential Suite", MaxOccupancy: 6, NumberOfBeds: 3, HasOceanView: true, BaseRate: money.Must(15000, "USD")},
	}
	for _, rm := range rooms {
		assert.NoError(t, repo.Save(context.Background(), rm))
	}
	return repo
}

func TestRoomByID(t *testing.T) {
	repo := seedRooms(t)

	rm, err := repo.ByID(context.Background(), "king-301")
	assert.NoError(t, err)
	assert.True(t, rm.HasOceanView)

	_, err = repo.ByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domainroom.ErrRoomNotFound)
}

func TestRoomSaveAssignsID(t *testing.T) {
	repo := NewRoomRepository()
	rm := &domainroom.Room{Type: "Junior Suite", MaxOccupancy: 2, NumberOfBeds: 1, BaseRate: money.Must(6000, "USD")}
	assert.NoError(t, repo.Save(context.Background(), rm))
	assert.NotEmpty(t, rm.ID)
}

func TestRoomSearchFilters(t *testing.T) {
	repo := seedRooms(t)
	oceanView := true

	cases := []struct {
		name   string
		params domainroom.SearchParams
		ids    []domainroom.RoomID
	}{
		{name: "all cheapest first", params: domainroom.SearchParams{}, ids: []domainroom.RoomID{"junior-101", "king-201", "king-301", "presidential-401"}},
		{name: "by type case-insensitive", params: domainroom.SearchParams{Type: "king suite"}, ids: []domainroom.RoomID{"king-201", "king-301"}},
		{name: "by guests", params: domainroom.SearchParams{MinGuests: 5}, ids: []domainroom.RoomID{"presidential-401"}},
		{name: "by beds", params: domainroom.SearchParams{MinBeds: 2}, ids: []domainroom.RoomID{"king-201", "king-301", "presidential-401"}},
		{name: "by ocean view", params: domainroom.SearchParams{OceanView: &oceanView}, ids: []domainroom.RoomID{"king-301", "presidential-401"}},
		{name: "by max rate", params: domainroom.SearchParams{MaxRateCents: 9000}, ids: []domainroom.RoomID{"junior-101", "king-201"}},
		{name: "combined", params: domainroom.SearchParams{Type: "King Suite", OceanView: &oceanView}, ids: []domainroom.RoomID{"king-301"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := repo.Search(context.Background(), tc.params)
			assert.NoError(t, err)
			ids := make([]domainroom.RoomID, 0, len(found))
			for _, rm := range found {
				ids = append(ids, rm.ID)
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

func newStoredReservation(t *testing.T, repo *ReservationRepository, roomID domainroom.RoomID) *domainreservation.Reservation {
	t.Helper()
	dr, err := daterange.New(
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)
	res := &domainreservation.Reservation{
		RoomID:     roomID,
		Range:      dr,
		Guests:     2,
		TotalPrice: money.Must(20000, "USD"),
		CreatedAt:  time.Now().UTC(),
	}
	assert.NoError(t, repo.Add(context.Background(), res))
	return res
}

func TestReservationAddAssignsID(t *testing.T) {
	repo := NewReservationRepository()
	res := newStoredReservation(t, repo, "king-301")
	assert.NotEmpty(t, res.ID)

	got, err := repo.ByID(context.Background(), res.ID)
	assert.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestReservationByIDUnknown(t *testing.T) {
	repo := NewReservationRepository()
	_, err := repo.ByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domainreservation.ErrReservationNotFound)
}

func TestReservationListKeepsInsertionOrder(t *testing.T) {
	repo := NewReservationRepository()
	first := newStoredReservation(t, repo, "junior-101")
	second := newStoredReservation(t, repo, "king-201")
	third := newStoredReservation(t, repo, "king-301")

	items, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domainreservation.ReservationID{first.ID, second.ID, third.ID}, idsOf(items))

	removed, err := repo.Remove(context.Background(), second.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	items, err = repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domainreservation.ReservationID{first.ID, third.ID}, idsOf(items))
}

func TestReservationRemove(t *testing.T) {
	repo := NewReservationRepository()
	res := newStoredReservation(t, repo, "king-301")

	removed, err := repo.Remove(context.Background(), res.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(context.Background(), res.ID)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func idsOf(items []*domainreservation.Reservation) []domainreservation.ReservationID {
	out := make([]domainreservation.ReservationID, 0, len(items))
	for _, res := range items {
		out = append(out, res.ID)
	}
	return out
}
