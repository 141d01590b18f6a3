package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"popflea/config"
	"popflea/infras/otel/mocks"
	bookingMocks "popflea/internal/domains/booking/mocks"
	"popflea/internal/domains/booking/model/dto"
	bookingHandler "popflea/internal/handlers/booking"
	cacheMocks "popflea/shared/cache/mocks"
	transport "popflea/transport/http"
	"popflea/transport/http/middleware"
	"popflea/transport/http/router"
)

func newTestServer(t *testing.T) (http.Handler, *bookingMocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	svc := bookingMocks.NewMockBookingService(ctrl)
	cfg := &config.Config{}
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))
	handler := bookingHandler.New(svc, mw, mocks.NewOtel())
	r := router.New(router.DomainHandlers{Booking: handler})

	return transport.New(cfg, r, mw).Handler(), svc
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := map[string]string{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body["message"]
}

func TestServer_HealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeMessage(t, rec))
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/bookings", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decodeMessage(t, rec))
}

func TestServer_SlotsRejectsMalformedDate(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/slots?date=christmas", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "value must follow the 2006-01-02 date format", decodeMessage(t, rec))
}

func TestServer_SlotsPassesValidDate(t *testing.T) {
	srv, svc := newTestServer(t)

	svc.EXPECT().
		Availability(gomock.Any(), "2025-12-24").
		Return(dto.AvailabilityResponse{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/slots?date=2025-12-24", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
