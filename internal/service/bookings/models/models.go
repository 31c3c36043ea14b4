package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/mabani-platform/MBN-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status     string   `json:"status"`
	Notes      *string  `json:"notes,omitempty"`
	ActualCost *float64 `json:"actualCost,omitempty"` // Фактическая стоимость при завершении
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// AddReviewRequest запрос на добавление отзыва
type AddReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string          `json:"id"`
	ProjectID    string          `json:"projectId"`
	ServiceType  string          `json:"serviceType"`
	ProviderID   string          `json:"providerId"`
	ProviderName string          `json:"providerName"`
	Details      json.RawMessage `json:"details,omitempty"`

	ScheduledDate string `json:"scheduledDate"` // "2025-06-01"
	ScheduledTime string `json:"scheduledTime"` // "08:00"
	DurationHours int    `json:"durationHours"`

	Location     string  `json:"location"`
	Instructions *string `json:"instructions,omitempty"`

	EstimatedCost float64  `json:"estimatedCost"`
	ActualCost    *float64 `json:"actualCost,omitempty"`

	Status string `json:"status"`

	CompletionNotes *string `json:"completionNotes,omitempty"`
	Rating          *int    `json:"rating,omitempty"`
	Review          *string `json:"review,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarEventResponse событие календаря проекта
type CalendarEventResponse struct {
	BookingID string    `json:"bookingId"`
	Title     string    `json:"title"` // "{название услуги} - {имя поставщика}"
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Color     string    `json:"color"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Cost      float64   `json:"cost"`
}

// CalendarResponse ответ со списком событий календаря
type CalendarResponse struct {
	Events []CalendarEventResponse `json:"events"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ProjectID:       b.ProjectID,
		ServiceType:     string(b.ServiceType),
		ProviderID:      b.ProviderID,
		ProviderName:    b.ProviderName,
		Details:         b.Details,
		ScheduledDate:   b.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:   b.ScheduledTime.String(),
		DurationHours:   b.DurationHours,
		Location:        b.Location,
		Instructions:    b.Instructions,
		EstimatedCost:   b.EstimatedCost,
		ActualCost:      b.ActualCost,
		Status:          string(b.Status),
		CompletionNotes: b.CompletionNotes,
		Rating:          b.Rating,
		Review:          b.Review,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
