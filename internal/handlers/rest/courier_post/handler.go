package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type courierCreateRequest struct {
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	VehicleType     string `json:"vehicle_type"`
	MaxActiveOrders *int   `json:"max_active_orders,omitempty"`
}

type courierCreateResponse struct {
	ID int64 `json:"id"`
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
	var req courierCreateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleType := entities.CourierVehicleType(req.VehicleType)
	courierModify := entities.CourierModify{
		UserID:          &req.UserID,
		Name:            &req.Name,
		Phone:           &req.Phone,
		VehicleType:     &vehicleType,
		MaxActiveOrders: req.MaxActiveOrders,
	}

	id, err := h.service.CreateCourier(r.Context(), courierModify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidVehicle),
			errors.Is(err, courier.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := courierCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
