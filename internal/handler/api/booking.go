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
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	hotelQueries    queries.HotelQueries
	currency        string
}

func NewBookingHandler(bookingCommands commands.BookingCommands, hotelQueries queries.HotelQueries, cfg config.Config) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		hotelQueries:    hotelQueries,
		currency:        cfg.Booking.CurrencyLabel,
	}
}

func (h *BookingHandler) CreateReservation(c *gin.Context) {
	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	checkIn, err := dates.Parse(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_in, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := dates.Parse(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_out, expected YYYY-MM-DD"})
		return
	}

	params := commands.BookRoomParams{
		HotelName:    c.Param("hotel"),
		RoomName:     req.RoomName,
		GuestName:    req.GuestName,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		DiscountCode: req.GetDiscountCode(),
	}

	result, err := h.bookingCommands.BookRoom(c.Request.Context(), params, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, commands.ErrInvalidStayRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "check_out must be after check_in"})
		case errors.Is(err, commands.ErrInvalidGuestName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Guest name cannot be empty"})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not available for the requested dates"})
		case errors.Is(err, commands.ErrIdempotencyInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking request is currently being processed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation, h.currency))
}

func (h *BookingHandler) ListReservations(c *gin.Context) {
	views, err := h.hotelQueries.ListReservations(c.Request.Context(), c.Param("hotel"))
	if err != nil {
		h.renderQueryError(c, err)
		return
	}

	resp := make([]resdto.ReservationResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, resdto.FromReservationView(&v, h.currency))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, err := h.getReservationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	view, err := h.hotelQueries.GetReservation(c.Request.Context(), c.Param("hotel"), id)
	if err != nil {
		h.renderQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view, h.currency))
}

func (h *BookingHandler) CancelReservation(c *gin.Context) {
	id, err := h.getReservationID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}

	if err := h.bookingCommands.CancelReservation(c.Request.Context(), c.Param("hotel"), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// SimulateQuote prices a stay without booking it, so a client can show the
// discounted total before committing.
func (h *BookingHandler) SimulateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	checkIn, err := dates.Parse(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_in, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := dates.Parse(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_out, expected YYYY-MM-DD"})
		return
	}

	view, err := h.hotelQueries.SimulateQuote(c.Request.Context(), queries.QuoteParams{
		HotelName:    c.Param("hotel"),
		RoomName:     req.RoomName,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		DiscountCode: req.GetDiscountCode(),
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidStayRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "check_out must be after check_in"})
		default:
			h.renderQueryError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view, h.currency))
}

func (h *BookingHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}
	return key, nil
}

func (h *BookingHandler) getReservationID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *BookingHandler) renderQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
	case errors.Is(err, queries.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, queries.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
