package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/dates"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
	currency      string
}

func NewHotelHandler(hotelCommands commands.HotelCommands, hotelQueries queries.HotelQueries, cfg config.Config) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
		currency:      cfg.Booking.CurrencyLabel,
	}
}

func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.hotelCommands.CreateHotel(c.Request.Context(), req.Name); err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Hotel with this name already exists"})
		case errors.Is(err, commands.ErrInvalidHotelName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Hotel name cannot be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

func (h *HotelHandler) ListHotels(c *gin.Context) {
	summaries, err := h.hotelQueries.ListHotels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := make([]resdto.HotelSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, resdto.FromHotelSummary(s, h.currency))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HotelHandler) GetHotel(c *gin.Context) {
	view, err := h.hotelQueries.GetHotel(c.Request.Context(), c.Param("hotel"))
	if err != nil {
		h.renderQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view, h.currency))
}

func (h *HotelHandler) RenameHotel(c *gin.Context) {
	var req reqdto.RenameHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.hotelCommands.RenameHotel(c.Request.Context(), c.Param("hotel"), req.NewName); err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrHotelAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Hotel with this name already exists"})
		case errors.Is(err, commands.ErrInvalidHotelName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Hotel name cannot be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": req.NewName})
}

func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	if err := h.hotelCommands.DeleteHotel(c.Request.Context(), c.Param("hotel")); err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrHotelHasReservations):
			c.JSON(http.StatusConflict, gin.H{"error": "Hotel still has reservations"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) AddRoom(c *gin.Context) {
	var req reqdto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.hotelCommands.AddRoom(c.Request.Context(), c.Param("hotel"), req.Name, req.BasePrice, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrRoomAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Room with this name already exists"})
		case errors.Is(err, commands.ErrRoomLimitReached):
			c.JSON(http.StatusConflict, gin.H{"error": "Hotel already has the maximum number of rooms"})
		case errors.Is(err, commands.ErrInvalidRoom):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid room name, price or category"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": req.Name, "category": req.Category})
}

func (h *HotelHandler) RemoveRoom(c *gin.Context) {
	err := h.hotelCommands.RemoveRoom(c.Request.Context(), c.Param("hotel"), c.Param("room"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, commands.ErrRoomHasReservations):
			c.JSON(http.StatusConflict, gin.H{"error": "Room still has reservations"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) GetRoom(c *gin.Context) {
	view, err := h.hotelQueries.GetRoom(c.Request.Context(), c.Param("hotel"), c.Param("room"))
	if err != nil {
		h.renderQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view, h.currency))
}

func (h *HotelHandler) UpdateBasePrice(c *gin.Context) {
	var req reqdto.UpdateBasePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err := h.hotelCommands.UpdateBasePrice(c.Request.Context(), c.Param("hotel"), req.NewPrice)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrActiveReservations):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot update base price while reservations are active"})
		case errors.Is(err, commands.ErrPriceBelowMinimum):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "New base price must be at least 100.0"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"basePrice": req.NewPrice})
}

func (h *HotelHandler) AddRateWindow(c *gin.Context) {
	var req reqdto.AddRateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	start, err := dates.Parse(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := dates.Parse(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
		return
	}

	err = h.hotelCommands.AddRateWindow(c.Request.Context(), c.Param("hotel"), start, end, req.Multiplier)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrInvalidRateWindow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Rate window range or multiplier out of bounds"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RateWindowResponse{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Multiplier: req.Multiplier,
	})
}

func (h *HotelHandler) RemoveRateWindow(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rate window index"})
		return
	}

	err = h.hotelCommands.RemoveRateWindow(c.Request.Context(), c.Param("hotel"), index)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrRateWindowNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate window not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) renderQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
	case errors.Is(err, queries.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
