package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stellarstay/internal/app/dto"
	"stellarstay/internal/app/services/reservations"
	"stellarstay/internal/domain/reservation"
	"stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/daterange"
)

// ReservationHandler wires the reservation service to HTTP.
type ReservationHandler struct {
	Service *reservations.Service
}

type createReservationRequest struct {
	RoomID            string `json:"room_id"`
	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	Guests            int    `json:"guests"`
	IncludesBreakfast bool   `json:"includes_breakfast"`
}

func (req createReservationRequest) toDraft() (reservation.Draft, error) {
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return reservation.Draft{}, err
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return reservation.Draft{}, err
	}
	return reservation.Draft{
		RoomID:            room.RoomID(req.RoomID),
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Guests:            req.Guests,
		IncludesBreakfast: req.IncludesBreakfast,
	}, nil
}

func (h ReservationHandler) Create(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reservation service unavailable"})
		return
	}
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Service.Create(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapReservation(res))
}

func (h ReservationHandler) Get(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reservation service unavailable"})
		return
	}
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reservation id is required"})
		return
	}
	res, err := h.Service.ByID(c.Request.Context(), reservation.ReservationID(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapReservation(res))
}

func (h ReservationHandler) List(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reservation service unavailable"})
		return
	}
	items, err := h.Service.All(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapReservationCollection(items))
}

func (h ReservationHandler) Cancel(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reservation service unavailable"})
		return
	}
	id := c.Param("id")
	removed, err := h.Service.Cancel(c.Request.Context(), reservation.ReservationID(id))
	if err != nil {
		writeError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": reservation.ErrReservationNotFound.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Quote exposes the pricing computation standalone, without persisting
// anything.
func (h ReservationHandler) Quote(c *gin.Context) {
	if h.Service == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reservation service unavailable"})
		return
	}
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	breakdown, err := h.Service.Quote(c.Request.Context(), draft)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapQuote(breakdown))
}

// writeError maps the service error taxonomy onto HTTP statuses: validation
// failures to 400, absent entities to 404, anything else (storage failures
// included) to 500.
func writeError(c *gin.Context, err error) {
	var verr *reservation.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
		return
	}
	switch {
	case errors.Is(err, daterange.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, room.ErrRoomNotFound), errors.Is(err, reservation.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

var _ ReservationHTTP = ReservationHandler{}
