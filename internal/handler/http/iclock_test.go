package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkarpenko/clocksync/internal/config"
	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/service"
	"github.com/vkarpenko/clocksync/internal/store"
)

// ─────────────────────────────────────────────
// Mock
// ─────────────────────────────────────────────

// mockPollService implements service.PollService for testing.
type mockPollService struct {
	pollFn func(ctx context.Context, serialNumber string) (string, error)
}

func (m *mockPollService) Poll(ctx context.Context, serialNumber string) (string, error) {
	return m.pollFn(ctx, serialNumber)
}

func newHandlerWithPoll(t *testing.T, svc service.PollService) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{PollService: svc},
		config.Server{HTTPAddress: ":8080"},
		logger.Nop(),
	)
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestGetRequest_WritesBodyVerbatim(t *testing.T) {
	const want = "DATA SCHEDULE Id=1\tName=Morning\tStart=06:00\tEnd=12:00"

	h := newHandlerWithPoll(t, &mockPollService{
		pollFn: func(ctx context.Context, serialNumber string) (string, error) {
			assert.Equal(t, "ABC123", serialNumber)
			return want, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/iclock/getrequest?SN=ABC123", nil)
	rec := httptest.NewRecorder()

	h.getRequest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String(), "firmware parses the body byte-for-byte, no trailing newline allowed")
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetRequest_HeartbeatEmptyBody(t *testing.T) {
	h := newHandlerWithPoll(t, &mockPollService{
		pollFn: func(ctx context.Context, serialNumber string) (string, error) {
			return "", nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/iclock/getrequest?SN=ABC123", nil)
	rec := httptest.NewRecorder()

	h.getRequest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetRequest_MissingSerialNumber(t *testing.T) {
	h := newHandlerWithPoll(t, &mockPollService{
		pollFn: func(ctx context.Context, serialNumber string) (string, error) {
			t.Fatal("service must not be called without a serial number")
			return "", nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/iclock/getrequest", nil)
	rec := httptest.NewRecorder()

	h.getRequest(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error: Serial Number (SN) missing", rec.Body.String())
}

func TestGetRequest_UnknownDevice(t *testing.T) {
	h := newHandlerWithPoll(t, &mockPollService{
		pollFn: func(ctx context.Context, serialNumber string) (string, error) {
			return "", store.ErrDeviceNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/iclock/getrequest?SN=GHOST", nil)
	rec := httptest.NewRecorder()

	h.getRequest(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error: device not registered", rec.Body.String())
}

func TestGetRequest_StorageErrorHidesDetail(t *testing.T) {
	h := newHandlerWithPoll(t, &mockPollService{
		pollFn: func(ctx context.Context, serialNumber string) (string, error) {
			return "", store.ErrExecutingQuery
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/iclock/getrequest?SN=ABC123", nil)
	rec := httptest.NewRecorder()

	h.getRequest(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error: internal server error", rec.Body.String())
}

func TestGetRequest_ViaRouter(t *testing.T) {
	h := newHandlerWithPoll(t, &mockPollService{
		pollFn: func(ctx context.Context, serialNumber string) (string, error) {
			return "OK", nil
		},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/iclock/getrequest?SN=ABC123", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"), "trace id middleware must stamp every response")
}
