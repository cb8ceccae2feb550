//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelier/internal/domain/booking"
	"hotelier/internal/domain/pricing"
	"hotelier/internal/handler/api"
	"hotelier/internal/infra/memstore"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/config"
	"hotelier/internal/pkg/dates"
	"hotelier/internal/pkg/sequence"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	store := memstore.NewStore()
	clk := clock.NewMockClock(dates.Day(2024, time.June, 1))
	factory := booking.NewFactory(clk, sequence.NewFixed(1), pricing.NewNightlyCalculator())
	hotelQueries := queries.NewHotelQueries(store, factory)
	availQueries := queries.NewAvailabilityQueries(store)
	hotelCmds := commands.NewHotelCommands(store, clk)
	bookingCmds := commands.NewBookingCommands(
		store, memstore.NewIdempotencyStore(), factory, hotelQueries, clk, cfg.Booking.IdempotencyTTL,
	)

	hotelHandler := api.NewHotelHandler(hotelCmds, hotelQueries, cfg)
	bookingHandler := api.NewBookingHandler(bookingCmds, hotelQueries, cfg)
	availHandler := api.NewAvailabilityHandler(availQueries)

	engine := gin.New()
	hotels := engine.Group("/api/hotels")
	hotels.POST("", hotelHandler.CreateHotel)
	hotels.GET("", hotelHandler.ListHotels)
	hotels.GET("/:hotel", hotelHandler.GetHotel)
	hotels.POST("/:hotel/rooms", hotelHandler.AddRoom)
	hotels.GET("/:hotel/occupancy", availHandler.Occupancy)
	hotels.POST("/:hotel/reservations", bookingHandler.CreateReservation)
	hotels.POST("/:hotel/quotes", bookingHandler.SimulateQuote)
	return engine
}

func do(engine *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func seedHotel(t *testing.T, engine *gin.Engine) {
	t.Helper()
	w := do(engine, http.MethodPost, "/api/hotels", `{"name":"Seaside Inn"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/rooms",
		`{"name":"101","base_price":1000.0,"category":"Standard"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateHotelEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	w := do(engine, http.MethodPost, "/api/hotels", `{"name":"Seaside Inn"}`, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(engine, http.MethodPost, "/api/hotels", `{"name":"seaside inn"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(engine, http.MethodPost, "/api/hotels", `{"name":"   "}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(engine, http.MethodPost, "/api/hotels", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReservationEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	seedHotel(t, engine)

	body := `{"room_name":"101","guest_name":"Alice","check_in":"2024-06-10","check_out":"2024-06-12","discount_code":"I_WORK_HERE"}`
	key := uuid.NewString()

	t.Run("requires an idempotency key", func(t *testing.T) {
		w := do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/reservations", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("books and replays", func(t *testing.T) {
		headers := map[string]string{"Idempotency-Key": key}

		w := do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/reservations", body, headers)
		require.Equal(t, http.StatusCreated, w.Code)

		var first map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
		assert.Equal(t, float64(1), first["id"])
		assert.Equal(t, 2000.0, first["quotedPrice"])
		assert.Equal(t, 1800.0, first["finalPrice"])
		assert.Equal(t, "I_WORK_HERE", first["discountCode"])
		assert.Equal(t, "2024-06-10", first["checkIn"])
		assert.Equal(t, "PHP", first["currency"])

		// Same key replays the original instead of double booking.
		w = do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/reservations", body, headers)
		require.Equal(t, http.StatusOK, w.Code)

		var second map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
		assert.Equal(t, first["id"], second["id"])
	})

	t.Run("conflicting stay with a fresh key", func(t *testing.T) {
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		w := do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/reservations", body, headers)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("same-day stay", func(t *testing.T) {
		sameDay := `{"room_name":"101","guest_name":"Alice","check_in":"2024-07-01","check_out":"2024-07-01"}`
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		w := do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/reservations", sameDay, headers)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		w := do(engine, http.MethodPost, "/api/hotels/Nowhere/reservations", body, headers)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSimulateQuoteEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	seedHotel(t, engine)

	body := `{"room_name":"101","check_in":"2024-06-10","check_out":"2024-06-12","discount_code":"I_WORK_HERE"}`
	w := do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/quotes", body, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var quote map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 2000.0, quote["quotedPrice"])
	assert.Equal(t, 1800.0, quote["finalPrice"])
	assert.Equal(t, true, quote["discountApplied"])
}

func TestOccupancyEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	seedHotel(t, engine)

	body := `{"room_name":"101","guest_name":"Alice","check_in":"2024-06-10","check_out":"2024-06-12"}`
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	w := do(engine, http.MethodPost, "/api/hotels/Seaside%20Inn/reservations", body, headers)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(engine, http.MethodGet, "/api/hotels/Seaside%20Inn/occupancy?date=2024-06-12", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, float64(1), view["totalRooms"])
	assert.Equal(t, float64(1), view["totalBooked"])
	assert.Equal(t, float64(0), view["totalAvailable"])

	w = do(engine, http.MethodGet, "/api/hotels/Seaside%20Inn/occupancy?date=bad", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
