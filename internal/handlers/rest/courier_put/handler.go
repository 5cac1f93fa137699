package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type courierUpdateRequest struct {
	ID              int64   `json:"id"`
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
	Status          *string `json:"status,omitempty"`
	VehicleType     *string `json:"vehicle_type,omitempty"`
	MaxActiveOrders *int    `json:"max_active_orders,omitempty"`
}

type courierResponse struct {
	ID                  int64      `json:"id"`
	UserID              string     `json:"user_id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	IsActive            bool       `json:"is_active"`
	Status              string     `json:"status"`
	VehicleType         string     `json:"vehicle_type"`
	CurrentActiveOrders int        `json:"current_active_orders"`
	MaxActiveOrders     int        `json:"max_active_orders"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	LastLocationUpdate  *time.Time `json:"last_location_update,omitempty"`
	AverageRating       float64    `json:"average_rating"`
	TotalDeliveries     int64      `json:"total_deliveries"`
	TotalEarnings       float64    `json:"total_earnings"`
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
	var req courierUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModify := entities.CourierModify{
		ID:              &req.ID,
		Name:            req.Name,
		Phone:           req.Phone,
		IsActive:        req.IsActive,
		MaxActiveOrders: req.MaxActiveOrders,
	}
	if req.Status != nil {
		status := entities.CourierStatusType(*req.Status)
		courierModify.Status = &status
	}
	if req.VehicleType != nil {
		vehicleType := entities.CourierVehicleType(*req.VehicleType)
		courierModify.VehicleType = &vehicleType
	}

	courierEntity, err := h.service.UpdateCourier(r.Context(), courierModify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidStatus),
			errors.Is(err, courier.ErrInvalidVehicle),
			errors.Is(err, courier.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := courierResponse{
		ID:                  courierEntity.ID,
		UserID:              courierEntity.UserID,
		Name:                courierEntity.Name,
		Phone:               courierEntity.Phone,
		IsActive:            courierEntity.IsActive,
		Status:              courierEntity.Status.String(),
		VehicleType:         courierEntity.VehicleType.String(),
		CurrentActiveOrders: courierEntity.CurrentActiveOrders,
		MaxActiveOrders:     courierEntity.MaxActiveOrders,
		Latitude:            courierEntity.Latitude,
		Longitude:           courierEntity.Longitude,
		LastLocationUpdate:  courierEntity.LastLocationUpdate,
		AverageRating:       courierEntity.AverageRating,
		TotalDeliveries:     courierEntity.TotalDeliveries,
		TotalEarnings:       courierEntity.TotalEarnings,
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
