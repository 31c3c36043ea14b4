package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
	"github.com/mabani-platform/MBN-BookingService/internal/domain"
	createBooking "github.com/mabani-platform/MBN-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"projectId":     "project-1",
		"serviceType":   "equipment_rental",
		"providerId":    "provider-1",
		"scheduledDate": "2025-07-10",
		"scheduledTime": "08:00",
		"location":      "الرياض",
		"estimatedCost": 1500.0,
	}
}

func doRequest(t *testing.T, uc CreateBookingUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	created := &domain.Booking{
		ID:            "new-id",
		ProjectID:     "project-1",
		ServiceType:   domain.ServiceEquipmentRental,
		ProviderID:    "provider-1",
		ProviderName:  "شركة المعدات",
		ScheduledDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "08:00",
		DurationHours: 8,
		Location:      "الرياض",
		EstimatedCost: 1500,
		Status:        domain.StatusPending,
	}

	uc := &fakeUseCase{resp: &createBooking.Response{Booking: created}}
	rec := doRequest(t, uc, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new-id", got["id"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "2025-07-10", got["scheduledDate"])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, domain.ServiceEquipmentRental, uc.gotReq.ServiceType)
}

func TestHandler_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrBookingConflict}
	rec := doRequest(t, uc, validBody())

	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusConflict, errResp.Code)
	assert.NotEmpty(t, errResp.Message)
}

func TestHandler_ProviderNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrProviderNotFound}
	rec := doRequest(t, uc, validBody())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_BadRequests(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		body := validBody()
		body["scheduledDate"] = "10.07.2025"
		rec := doRequest(t, &fakeUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed time", func(t *testing.T) {
		body := validBody()
		body["scheduledTime"] = "27:00"
		rec := doRequest(t, &fakeUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		body := validBody()
		body["unexpected"] = true
		rec := doRequest(t, &fakeUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid service type from usecase", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{err: createBooking.ErrInvalidServiceType}, validBody())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}
	rec := doRequest(t, uc, validBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
