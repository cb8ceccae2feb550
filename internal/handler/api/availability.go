package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/dates"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// Occupancy answers "how full is the hotel on this date": totals plus the
// names of free rooms, using the closed-interval single-date semantics.
func (h *AvailabilityHandler) Occupancy(c *gin.Context) {
	date, err := dates.Parse(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	view, err := h.availabilityQueries.Occupancy(c.Request.Context(), c.Param("hotel"), date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyView(view))
}

// AvailableRooms lists rooms free for a whole range, using the half-open
// overlap semantics (a room checking out on check_in day is free).
func (h *AvailabilityHandler) AvailableRooms(c *gin.Context) {
	checkIn, err := dates.Parse(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing check_in, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := dates.Parse(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing check_out, expected YYYY-MM-DD"})
		return
	}

	names, err := h.availabilityQueries.AvailableRooms(c.Request.Context(), c.Param("hotel"), checkIn, checkOut)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableRooms": names})
}

func (h *AvailabilityHandler) RoomCalendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing month"})
		return
	}

	days, err := h.availabilityQueries.RoomCalendar(c.Request.Context(), c.Param("hotel"), c.Param("room"), year, month)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "days": resdto.FromCalendar(days)})
}

func (h *AvailabilityHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
	case errors.Is(err, queries.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, queries.ErrInvalidStayRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be after check_in"})
	case errors.Is(err, queries.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
