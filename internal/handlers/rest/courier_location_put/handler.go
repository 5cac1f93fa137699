package courier_location_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type locationUpdateRequest struct {
	CourierID int64   `json:"courier_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type locationUpdateResponse struct {
	CourierID          int64      `json:"courier_id"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	LastLocationUpdate *time.Time `json:"last_location_update"`
	Status             string     `json:"status"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req locationUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.UpdateLocation(r.Context(), req.CourierID, req.Latitude, req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := locationUpdateResponse{
		CourierID:          courierEntity.ID,
		Latitude:           courierEntity.Latitude,
		Longitude:          courierEntity.Longitude,
		LastLocationUpdate: courierEntity.LastLocationUpdate,
		Status:             courierEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
