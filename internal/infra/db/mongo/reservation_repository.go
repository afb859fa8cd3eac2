package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainreservation "stellarstay/internal/domain/reservation"
	domainroom "stellarstay/internal/domain/room"
	domainrange "stellarstay/internal/domain/shared/daterange"
	"stellarstay/internal/domain/shared/money"
)

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection("reservations")}
}

func (r *ReservationRepository) ByID(ctx context.Context, id domainreservation.ReservationID) (*domainreservation.Reservation, error) {
	var doc reservationDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainreservation.ErrReservationNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *ReservationRepository) Add(ctx context.Context, res *domainreservation.Reservation) error {
	if res.ID == "" {
		res.ID = domainreservation.ReservationID(uuid.NewString())
	}
	_, err := r.col.InsertOne(ctx, newReservationDocument(res))
	return err
}

func (r *ReservationRepository) Remove(ctx context.Context, id domainreservation.ReservationID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domainreservation.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domainreservation.Reservation
	for cur.Next(ctx) {
		var doc reservationDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cur.Err()
}

type reservationDocument struct {
	ID                string `bson:"_id"`
	RoomID            string `bson:"room_id"`
	CheckIn           int64  `bson:"check_in"`
	CheckOut          int64  `bson:"check_out"`
	Guests            int    `bson:"guests"`
	IncludesBreakfast bool   `bson:"includes_breakfast"`
	TotalPriceCents   int64  `bson:"total_price_cents"`
	Currency          string `bson:"currency"`
	CreatedAt         int64  `bson:"created_at"`
}

func newReservationDocument(res *domainreservation.Reservation) reservationDocument {
	return reservationDocument{
		ID:                string(res.ID),
		RoomID:            string(res.RoomID),
		CheckIn:           res.Range.CheckIn.UnixMilli(),
		CheckOut:          res.Range.CheckOut.UnixMilli(),
		Guests:            res.Guests,
		IncludesBreakfast: res.IncludesBreakfast,
		TotalPriceCents:   res.TotalPrice.Amount,
		Currency:          res.TotalPrice.Currency,
		CreatedAt:         res.CreatedAt.UnixMilli(),
	}
}

func (d reservationDocument) toEntity() *domainreservation.Reservation {
	return &domainreservation.Reservation{
		ID:                domainreservation.ReservationID(d.ID),
		RoomID:            domainroom.RoomID(d.RoomID),
		Range:             domainrange.DateRange{CheckIn: timestampToTime(d.CheckIn), CheckOut: timestampToTime(d.CheckOut)},
		Guests:            d.Guests,
		IncludesBreakfast: d.IncludesBreakfast,
		TotalPrice:        money.Money{Amount: d.TotalPriceCents, Currency: d.Currency},
		CreatedAt:         timestampToTime(d.CreatedAt),
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ domainreservation.Repository = (*ReservationRepository)(nil)
