package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainroom "stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/money"
)

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection("rooms")}
}

func (r *RoomRepository) ByID(ctx context.Context, id domainroom.RoomID) (*domainroom.Room, error) {
	var doc roomDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainroom.ErrRoomNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *RoomRepository) Save(ctx context.Context, rm *domainroom.Room) error {
	doc := newRoomDocument(rm)
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	return err
}

func (r *RoomRepository) Search(ctx context.Context, params domainroom.SearchParams) ([]*domainroom.Room, error) {
	filter := bson.M{}
	if params.Type != "" {
		filter["type"] = bson.M{"$regex": "^" + params.Type + "$", "$options": "i"}
	}
	if params.MinGuests > 0 {
		filter["max_occupancy"] = bson.M{"$gte": params.MinGuests}
	}
	if params.MinBeds > 0 {
		filter["number_of_beds"] = bson.M{"$gte": params.MinBeds}
	}
	if params.OceanView != nil {
		filter["has_ocean_view"] = *params.OceanView
	}
	if params.MaxRateCents > 0 {
		filter["base_rate_cents"] = bson.M{"$lte": params.MaxRateCents}
	}

	opts := options.Find().SetSort(bson.D{{Key: "base_rate_cents", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*domainroom.Room
	for cur.Next(ctx) {
		var doc roomDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cur.Err()
}

type roomDocument struct {
	ID            string `bson:"_id"`
	Type          string `bson:"type"`
	MaxOccupancy  int    `bson:"max_occupancy"`
	NumberOfBeds  int    `bson:"number_of_beds"`
	HasOceanView  bool   `bson:"has_ocean_view"`
	BaseRateCents int64  `bson:"base_rate_cents"`
	Currency      string `bson:"currency"`
}

func newRoomDocument(rm *domainroom.Room) roomDocument {
	return roomDocument{
		ID:            string(rm.ID),
		Type:          rm.Type,
		MaxOccupancy:  rm.MaxOccupancy,
		NumberOfBeds:  rm.NumberOfBeds,
		HasOceanView:  rm.HasOceanView,
		BaseRateCents: rm.BaseRate.Amount,
		Currency:      rm.BaseRate.Currency,
	}
}

func (d roomDocument) toEntity() *domainroom.Room {
	return &domainroom.Room{
		ID:           domainroom.RoomID(d.ID),
		Type:         d.Type,
		MaxOccupancy: d.MaxOccupancy,
		NumberOfBeds: d.NumberOfBeds,
		HasOceanView: d.HasOceanView,
		BaseRate:     money.Money{Amount: d.BaseRateCents, Currency: d.Currency},
	}
}

var _ domainroom.Catalog = (*RoomRepository)(nil)
