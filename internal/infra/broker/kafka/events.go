package kafka

import (
	"context"
	"encoding/json"
	"time"

	"stellarstay/internal/app/services/reservations"
	"stellarstay/internal/domain/reservation"
)

const (
	eventReservationCreated   = "reservation.created"
	eventReservationCancelled = "reservation.cancelled"
)

// ReservationEvents publishes reservation lifecycle notifications to a
// single topic keyed by reservation id.
type ReservationEvents struct {
	Producer *Producer
	Topic    string
}

type reservationEventPayload struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id,omitempty"`
	CheckIn       string `json:"check_in,omitempty"`
	CheckOut      string `json:"check_out,omitempty"`
	TotalPrice    string `json:"total_price,omitempty"`
	Currency      string `json:"currency,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}

func (e ReservationEvents) ReservationCreated(ctx context.Context, r *reservation.Reservation) error {
	payload := reservationEventPayload{
		Type:          eventReservationCreated,
		ReservationID: string(r.ID),
		RoomID:        string(r.RoomID),
		CheckIn:       r.Range.CheckIn.Format("2006-01-02"),
		CheckOut:      r.Range.CheckOut.Format("2006-01-02"),
		TotalPrice:    r.TotalPrice.Decimal(),
		Currency:      r.TotalPrice.Currency,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	return e.publish(ctx, payload)
}

func (e ReservationEvents) ReservationCancelled(ctx context.Context, id reservation.ReservationID) error {
	payload := reservationEventPayload{
		Type:          eventReservationCancelled,
		ReservationID: string(id),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	return e.publish(ctx, payload)
}

func (e ReservationEvents) publish(ctx context.Context, payload reservationEventPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return e.Producer.Publish(ctx, e.Topic, payload.ReservationID, data, map[string]string{
		"event-type": payload.Type,
	})
}

var _ reservations.EventPublisher = ReservationEvents{}
