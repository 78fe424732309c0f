package create_booking

import (
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	createBooking "github.com/glamspot/ArtistBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ArtistID  int64   `json:"artistId"`
	ServiceID int64   `json:"serviceId"`
	StartAt   string  `json:"startAt"` // RFC 3339 instant, например "2026-03-15T04:00:00Z"
	Status    string  `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ArtistID        int64   `json:"artistId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"` // локальная дата платформы
	StartTime       string  `json:"startTime"`   // локальное время платформы
	StartAt         string  `json:"startAt"`     // RFC 3339 instant
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:           userID,
		ArtistID:         r.ArtistID,
		ServiceID:        r.ServiceID,
		RequestedInstant: startAt,
		Status:           r.Status,
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ArtistID:        resp.ArtistID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		StartAt:         resp.RequestedInstant.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
