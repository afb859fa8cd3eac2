package dto

import "stellarstay/internal/domain/room"

type RoomDTO struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	MaxOccupancy int      `json:"max_occupancy"`
	NumberOfBeds int      `json:"number_of_beds"`
	HasOceanView bool     `json:"has_ocean_view"`
	BaseRate     MoneyDTO `json:"base_rate"`
}

type RoomCollection struct {
	Items []RoomDTO `json:"items"`
}

func MapRoom(r *room.Room) RoomDTO {
	return RoomDTO{
		ID:           string(r.ID),
		Type:         r.Type,
		MaxOccupancy: r.MaxOccupancy,
		NumberOfBeds: r.NumberOfBeds,
		HasOceanView: r.HasOceanView,
		BaseRate:     MapMoney(r.BaseRate),
	}
}

func MapRoomCollection(rooms []*room.Room) RoomCollection {
	items := make([]RoomDTO, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, MapRoom(r))
	}
	return RoomCollection{Items: items}
}
