package reservations

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stellarstay/internal/domain/pricing"
	"stellarstay/internal/domain/reservation"
	"stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/daterange"
)

var ErrCatalogRequired = errors.New("reservations: room catalog required")

// EventPublisher receives lifecycle notifications. Publishing is best
// effort: failures are logged and never fail the reservation operation.
type EventPublisher interface {
	ReservationCreated(ctx context.Context, r *reservation.Reservation) error
	ReservationCancelled(ctx context.Context, id reservation.ReservationID) error
}

// Service orchestrates the reservation lifecycle: validate, resolve the
// room, price the stay, persist. Within one call the order is fixed,
// lookup before pricing before persistence; a failed step leaves no trace.
type Service struct {
	Rooms        room.Catalog
	Reservations reservation.Repository
	Pricing      pricing.Calculator
	Events       EventPublisher
	Logger       *slog.Logger
}

// Create validates the draft, resolves the room, computes the price and
// persists the reservation. Nothing is written when validation or the room
// lookup fails.
func (s *Service) Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	if verr := reservation.ValidateDraft(draft); verr != nil {
		return nil, verr
	}
	dr, err := daterange.New(draft.CheckIn, draft.CheckOut)
	if err != nil {
		return nil, err
	}

	rm, err := s.Rooms.ByID(ctx, draft.RoomID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.Pricing.Quote(ctx, pricing.QuoteInput{
		Room:              rm,
		Range:             dr,
		Guests:            draft.Guests,
		IncludesBreakfast: draft.IncludesBreakfast,
	})
	if err != nil {
		return nil, err
	}

	res, err := reservation.New(reservation.CreateParams{
		RoomID:            rm.ID,
		Range:             dr,
		Guests:            draft.Guests,
		IncludesBreakfast: draft.IncludesBreakfast,
		TotalPrice:        breakdown.Total,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.Reservations.Add(ctx, res); err != nil {
		return nil, err
	}
	res.Room = rm

	if s.Events != nil {
		if err := s.Events.ReservationCreated(ctx, res); err != nil && s.Logger != nil {
			s.Logger.Warn("reservation created event publish failed", "reservation_id", res.ID, "error", err)
		}
	}
	if s.Logger != nil {
		s.Logger.Info("reservation created", "reservation_id", res.ID, "room_id", res.RoomID, "total", res.TotalPrice.Decimal())
	}
	return res, nil
}

// ByID returns the reservation joined with its room snapshot. A room that
// has since disappeared leaves the snapshot empty; the link is not
// re-validated after creation.
func (s *Service) ByID(ctx context.Context, id reservation.ReservationID) (*reservation.Reservation, error) {
	res, err := s.Reservations.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachRoom(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// All returns every stored reservation joined with its room, in
// store-native order.
func (s *Service) All(ctx context.Context) ([]*reservation.Reservation, error) {
	items, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	rooms := make(map[room.RoomID]*room.Room, len(items))
	for _, res := range items {
		if cached, ok := rooms[res.RoomID]; ok {
			res.Room = cached
			continue
		}
		if err := s.attachRoom(ctx, res); err != nil {
			return nil, err
		}
		rooms[res.RoomID] = res.Room
	}
	return items, nil
}

// Cancel removes the reservation and reports whether anything was deleted.
// Concurrent cancels of the same id race benignly: only one observes true.
func (s *Service) Cancel(ctx context.Context, id reservation.ReservationID) (bool, error) {
	removed, err := s.Reservations.Remove(ctx, id)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}
	if s.Events != nil {
		if err := s.Events.ReservationCancelled(ctx, id); err != nil && s.Logger != nil {
			s.Logger.Warn("reservation cancelled event publish failed", "reservation_id", id, "error", err)
		}
	}
	if s.Logger != nil {
		s.Logger.Info("reservation cancelled", "reservation_id", id)
	}
	return true, nil
}

// Quote computes a stay price without creating a reservation. The same
// draft invariants apply.
func (s *Service) Quote(ctx context.Context, draft reservation.Draft) (pricing.Breakdown, error) {
	if verr := reservation.ValidateDraft(draft); verr != nil {
		return pricing.Breakdown{}, verr
	}
	dr, err := daterange.New(draft.CheckIn, draft.CheckOut)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	rm, err := s.Rooms.ByID(ctx, draft.RoomID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return s.Pricing.Quote(ctx, pricing.QuoteInput{
		Room:              rm,
		Range:             dr,
		Guests:            draft.Guests,
		IncludesBreakfast: draft.IncludesBreakfast,
	})
}

func (s *Service) attachRoom(ctx context.Context, res *reservation.Reservation) error {
	if s.Rooms == nil {
		return ErrCatalogRequired
	}
	rm, err := s.Rooms.ByID(ctx, res.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrRoomNotFound) {
			return nil
		}
		return err
	}
	res.Room = rm
	return nil
}
