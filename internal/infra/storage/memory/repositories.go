package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	domainreservation "stellarstay/internal/domain/reservation"
	domainroom "stellarstay/internal/domain/room"
)

// RoomRepository is a mutex-guarded in-memory catalog.
type RoomRepository struct {
	mu    sync.RWMutex
	items map[domainroom.RoomID]*domainroom.Room
}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{
		items: make(map[domainroom.RoomID]*domainroom.Room),
	}
}

// ByID returns a room or room.ErrRoomNotFound.
func (r *RoomRepository) ByID(ctx context.Context, id domainroom.RoomID) (*domainroom.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rm, ok := r.items[id]
	if !ok {
		return nil, domainroom.ErrRoomNotFound
	}
	return rm, nil
}

// Save stores/updates a room entry, assigning an id when missing.
func (r *RoomRepository) Save(ctx context.Context, rm *domainroom.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rm.ID == "" {
		rm.ID = domainroom.RoomID(uuid.NewString())
	}
	r.items[rm.ID] = rm
	return nil
}

// Search returns rooms that satisfy the provided filters, cheapest first.
func (r *RoomRepository) Search(ctx context.Context, params domainroom.SearchParams) ([]*domainroom.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domainroom.Room, 0, len(r.items))
	for _, rm := range r.items {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if params.Type != "" && !strings.EqualFold(rm.Type, params.Type) {
			continue
		}
		if params.MinGuests > 0 && rm.MaxOccupancy < params.MinGuests {
			continue
		}
		if params.MinBeds > 0 && rm.NumberOfBeds < params.MinBeds {
			continue
		}
		if params.OceanView != nil && rm.HasOceanView != *params.OceanView {
			continue
		}
		if params.MaxRateCents > 0 && rm.BaseRate.Amount > params.MaxRateCents {
			continue
		}
		matches = append(matches, rm)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].BaseRate.Amount == matches[j].BaseRate.Amount {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].BaseRate.Amount < matches[j].BaseRate.Amount
	})
	return matches, nil
}

// ReservationRepository keeps reservations in insertion order.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[domainreservation.ReservationID]*domainreservation.Reservation
	order []domainreservation.ReservationID
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{
		items: make(map[domainreservation.ReservationID]*domainreservation.Reservation),
	}
}

// ByID returns a reservation or reservation.ErrReservationNotFound.
func (r *ReservationRepository) ByID(ctx context.Context, id domainreservation.ReservationID) (*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[id]
	if !ok {
		return nil, domainreservation.ErrReservationNotFound
	}
	return res, nil
}

// Add stores the reservation, generating its id when empty.
func (r *ReservationRepository) Add(ctx context.Context, res *domainreservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.ID == "" {
		res.ID = domainreservation.ReservationID(uuid.NewString())
	}
	if _, exists := r.items[res.ID]; !exists {
		r.order = append(r.order, res.ID)
	}
	r.items[res.ID] = res
	return nil
}

// Remove deletes the reservation and reports whether it existed.
func (r *ReservationRepository) Remove(ctx context.Context, id domainreservation.ReservationID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// List returns every reservation in insertion order.
func (r *ReservationRepository) List(ctx context.Context) ([]*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domainreservation.Reservation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

var (
	_ domainroom.Catalog           = (*RoomRepository)(nil)
	_ domainreservation.Repository = (*ReservationRepository)(nil)
)
