package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mabani-platform/MBN-BookingService/internal/api/handlers"
	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings"
	"github.com/mabani-platform/MBN-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingBookingID   = "не указан идентификатор бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidStatus      = "неизвестный статус бронирования"
	msgIllegalTransition  = "недопустимый переход статуса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{bookingId}/status - Missing booking id")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Invalid status: booking_id=%s, status=%s",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrIllegalTransition):
			h.logger.Warn("PATCH /bookings/{bookingId}/status - Illegal transition: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondConflict(w, msgIllegalTransition)

		default:
			h.logger.Error("PATCH /bookings/{bookingId}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("PATCH /bookings/{bookingId}/status - Failed to fetch updated booking: booking_id=%s, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId}/status - Status updated: booking_id=%s, status=%s",
		bookingID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
