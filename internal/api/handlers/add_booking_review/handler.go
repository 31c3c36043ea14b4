package add_booking_review

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
	msgInvalidRating      = "оценка должна быть от 1 до 5"
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

// Handle POST /api/v1/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{bookingId}/review - Missing booking id")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddReview(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{bookingId}/review - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{bookingId}/review - Invalid rating: booking_id=%s, rating=%d",
				bookingID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /bookings/{bookingId}/review - Failed to add review: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{bookingId}/review - Review added: booking_id=%s, rating=%d",
		bookingID, req.Rating)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
