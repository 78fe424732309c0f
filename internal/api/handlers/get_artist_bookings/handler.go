package get_artist_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamspot/ArtistBookingService/internal/api/handlers"
	"github.com/glamspot/ArtistBookingService/internal/api/middleware"
	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/internal/service/bookings"
	"github.com/glamspot/ArtistBookingService/internal/service/bookings/models"
)

const (
	msgInvalidArtistID = "некорректный ID мастера"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgArtistNotFound  = "мастер не найден"
	msgInvalidFilter   = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/artists/{artistId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем artistId из URL
	vars := mux.Vars(r)
	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artists/{artistId}/bookings - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /artists/{artistId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим query параметры фильтрации
	query := r.URL.Query()

	var startDate, endDate *time.Time
	if raw := query.Get("start_date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /artists/{artistId}/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		startDate = &parsed
	}
	if raw := query.Get("end_date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /artists/{artistId}/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		endDate = &parsed
	}

	var statusPtr *string
	if status := query.Get("status"); status != "" {
		statusPtr = &status
	}

	includeInactive := query.Get("include_inactive") == "true"

	serviceReq := &models.GetArtistBookingsRequest{
		UserID:          userID,
		ArtistID:        artistID,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          statusPtr,
		IncludeInactive: includeInactive,
	}

	result, err := h.service.GetArtistBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /artists/{artistId}/bookings - Access denied: artist_id=%d, user_id=%d",
				artistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrArtistNotFound):
			h.logger.Warn("GET /artists/{artistId}/bookings - Artist not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /artists/{artistId}/bookings - Invalid filter: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /artists/{artistId}/bookings - Failed to get bookings: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{artistId}/bookings - Bookings retrieved successfully: artist_id=%d, count=%d",
		artistID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
