package reservation

import (
	"context"
	"errors"
	"time"

	"stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/daterange"
	"stellarstay/internal/domain/shared/money"
)

var (
	ErrReservationNotFound = errors.New("reservation: not found")
	ErrNegativePrice       = errors.New("reservation: total price cannot be negative")
)

type ReservationID string

// Reservation is a priced, persisted stay. It is never updated in place:
// it exists fully priced or not at all, and cancellation is a hard delete.
type Reservation struct {
	ID                ReservationID
	RoomID            room.RoomID
	Range             daterange.DateRange
	Guests            int
	IncludesBreakfast bool
	TotalPrice        money.Money
	Room              *room.Room
	CreatedAt         time.Time
}

type CreateParams struct {
	RoomID            room.RoomID
	Range             daterange.DateRange
	Guests            int
	IncludesBreakfast bool
	TotalPrice        money.Money
	CreatedAt         time.Time
}

// New builds a reservation from already-validated input and a computed price.
// The id is left empty and assigned by the repository on Add.
func New(params CreateParams) (*Reservation, error) {
	if params.TotalPrice.Amount < 0 {
		return nil, ErrNegativePrice
	}
	return &Reservation{
		RoomID:            params.RoomID,
		Range:             params.Range,
		Guests:            params.Guests,
		IncludesBreakfast: params.IncludesBreakfast,
		TotalPrice:        params.TotalPrice,
		CreatedAt:         params.CreatedAt.UTC(),
	}, nil
}

// Repository is the persistence port. Add assigns the id when empty and
// returns the stored entity through the passed pointer. Remove reports
// whether anything was deleted.
type Repository interface {
	ByID(ctx context.Context, id ReservationID) (*Reservation, error)
	Add(ctx context.Context, r *Reservation) error
	Remove(ctx context.Context, id ReservationID) (bool, error)
	List(ctx context.Context) ([]*Reservation, error)
}
