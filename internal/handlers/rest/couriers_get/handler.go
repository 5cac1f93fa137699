package couriers_get

import (
	"encoding/json"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type courierItem struct {
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

type couriersResponse struct {
	Couriers []courierItem `json:"couriers"`
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
	courierEntities, err := h.service.GetCouriers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := couriersResponse{
		Couriers: make([]courierItem, 0, len(courierEntities)),
	}
	for i := range courierEntities {
		response.Couriers = append(response.Couriers, toItem(&courierEntities[i]))
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

func toItem(courierEntity *entities.Courier) courierItem {
	return courierItem{
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
}
