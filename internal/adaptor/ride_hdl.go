package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"campus-rides/internal/dto/request"
	"campus-rides/internal/usecase"
	"campus-rides/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RideHandler struct {
	service usecase.RideService
	log     *zap.Logger
}

func NewRideHandler(service usecase.RideService, log *zap.Logger) *RideHandler {
	return &RideHandler{
		service: service,
		log:     log.With(zap.String("handler", "ride")),
	}
}

// ListRides handles GET /api/rides (public)
// Optional query filters: date (YYYY-MM-DD), origin, destination
func (h *RideHandler) ListRides(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria := usecase.SearchCriteria{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date, use YYYY-MM-DD", nil)
			return
		}
		criteria.Date = &date
	}

	rides, err := h.service.SearchRides(r.Context(), criteria)
	if err != nil {
		handleServiceError(w, h.log, err, "list rides")
		return
	}

	utils.ResponseSuccess(w, "success", rides)
}

// GetRide handles GET /api/rides/{id} (public)
func (h *RideHandler) GetRide(w http.ResponseWriter, r *http.Request) {
	rideID := chi.URLParam(r, "id")
	if rideID == "" {
		utils.ResponseBadRequest(w, "Ride ID is required", nil)
		return
	}

	ride, err := h.service.GetRideByID(r.Context(), rideID)
	if err != nil {
		handleServiceError(w, h.log, err, "get ride")
		return
	}
	if ride == nil {
		utils.ResponseNotFound(w, "Ride not found")
		return
	}

	utils.ResponseSuccess(w, "success", ride)
}

// CreateRide handles POST /api/rides (protected)
func (h *RideHandler) CreateRide(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ride, err := h.service.CreateRide(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ride")
		return
	}

	utils.ResponseCreated(w, "success", ride)
}

// GetHostedRides handles GET /api/user/rides/hosted (protected)
func (h *RideHandler) GetHostedRides(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rides, err := h.service.GetHostedRides(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get hosted rides")
		return
	}

	utils.ResponseSuccess(w, "success", rides)
}

// GetBookedRides handles GET /api/user/rides/booked (protected)
func (h *RideHandler) GetBookedRides(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	rides, err := h.service.GetBookedRides(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get booked rides")
		return
	}

	utils.ResponseSuccess(w, "success", rides)
}
