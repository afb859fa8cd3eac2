package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stellarstay/internal/app/dto"
	"stellarstay/internal/domain/room"
)

// RoomHandler serves the read-only room catalog.
type RoomHandler struct {
	Catalog room.Catalog
}

// Search responds with rooms matching the query filters.
func (h RoomHandler) Search(c *gin.Context) {
	if h.Catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "room catalog unavailable"})
		return
	}
	params := room.SearchParams{
		Type:         c.Query("type"),
		MinGuests:    parseInt(c.Query("guests")),
		MinBeds:      parseInt(c.Query("beds")),
		OceanView:    parseBoolPtr(c.Query("ocean_view")),
		MaxRateCents: parseInt64(c.Query("max_rate_cents")),
	}
	rooms, err := h.Catalog.Search(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.MapRoomCollection(rooms))
}

func (h RoomHandler) Get(c *gin.Context) {
	if h.Catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "room catalog unavailable"})
		return
	}
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room id is required"})
		return
	}
	rm, err := h.Catalog.ByID(c.Request.Context(), room.RoomID(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapRoom(rm))
}

var _ RoomHTTP = RoomHandler{}
