package room

import (
	"context"
	"errors"
	"unicode/utf8"

	"stellarstay/internal/domain/shared/money"
)

var (
	ErrRoomNotFound = errors.New("room: not found")
	ErrInvalidRoom  = errors.New("room: invalid definition")
)

const maxTypeLength = 50

type RoomID string

// Room is a bookable unit. Rooms are seeded externally and read-only
// from the reservation flow's perspective.
type Room struct {
	ID           RoomID
	Type         string
	MaxOccupancy int
	NumberOfBeds int
	HasOceanView bool
	BaseRate     money.Money
}

func (r *Room) Validate() error {
	if r.Type == "" || utf8.RuneCountInString(r.Type) > maxTypeLength {
		return ErrInvalidRoom
	}
	if r.MaxOccupancy <= 0 || r.NumberOfBeds <= 0 {
		return ErrInvalidRoom
	}
	if r.BaseRate.Amount < 0 || r.BaseRate.Currency == "" {
		return ErrInvalidRoom
	}
	return nil
}

// SearchParams filters the catalog. Zero values mean "any".
type SearchParams struct {
	Type         string
	MinGuests    int
	MinBeds      int
	OceanView    *bool
	MaxRateCents int64
}

// Catalog is the read-mostly port backing room lookup and search.
type Catalog interface {
	ByID(ctx context.Context, id RoomID) (*Room, error)
	Search(ctx context.Context, params SearchParams) ([]*Room, error)
	Save(ctx context.Context, room *Room) error
}
