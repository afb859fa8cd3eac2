package dto

import (
	"time"

	"stellarstay/internal/domain/pricing"
	"stellarstay/internal/domain/reservation"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type ReservationDTO struct {
	ID                string    `json:"id"`
	RoomID            string    `json:"room_id"`
	CheckIn           string    `json:"check_in"`
	CheckOut          string    `json:"check_out"`
	Guests            int       `json:"guests"`
	IncludesBreakfast bool      `json:"includes_breakfast"`
	TotalPrice        MoneyDTO  `json:"total_price"`
	Room              *RoomDTO  `json:"room,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ReservationCollection struct {
	Items []ReservationDTO `json:"items"`
}

type QuoteDTO struct {
	Nights    int      `json:"nights"`
	Lodging   MoneyDTO `json:"lodging"`
	Breakfast MoneyDTO `json:"breakfast"`
	Total     MoneyDTO `json:"total"`
}

func MapReservation(res *reservation.Reservation) ReservationDTO {
	out := ReservationDTO{
		ID:                string(res.ID),
		RoomID:            string(res.RoomID),
		CheckIn:           res.Range.CheckIn.Format(DateLayout),
		CheckOut:          res.Range.CheckOut.Format(DateLayout),
		Guests:            res.Guests,
		IncludesBreakfast: res.IncludesBreakfast,
		TotalPrice:        MapMoney(res.TotalPrice),
		CreatedAt:         res.CreatedAt,
	}
	if res.Room != nil {
		snapshot := MapRoom(res.Room)
		out.Room = &snapshot
	}
	return out
}

func MapReservationCollection(items []*reservation.Reservation) ReservationCollection {
	out := ReservationCollection{Items: make([]ReservationDTO, 0, len(items))}
	for _, res := range items {
		out.Items = append(out.Items, MapReservation(res))
	}
	return out
}

func MapQuote(b pricing.Breakdown) QuoteDTO {
	return QuoteDTO{
		Nights:    b.Nights,
		Lodging:   MapMoney(b.Lodging),
		Breakfast: MapMoney(b.Breakfast),
		Total:     MapMoney(b.Total),
	}
}
