package dispatch_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	courierService "dispatch/internal/service/courier"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type assignRequest struct {
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
}

type assignResponse struct {
	AssignmentID int64     `json:"assignment_id"`
	OrderID      string    `json:"order_id"`
	CourierID    int64     `json:"courier_id"`
	Status       string    `json:"status"`
	DeliveryFee  float64   `json:"delivery_fee"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type conflictResponse struct {
	Reason string `json:"reason"`
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
	var req assignRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.Assign(r.Context(), req.OrderID, req.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrVendorNotFound),
			errors.Is(err, courierService.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrOrderNotReady):
			h.writeConflict(w, "order_not_ready")
		case errors.Is(err, dispatch.ErrOrderAlreadyAssigned),
			errors.Is(err, dispatch.ErrOrderStatusConflict):
			h.writeConflict(w, "order_already_assigned")
		case errors.Is(err, dispatch.ErrCourierNotAvailable):
			h.writeConflict(w, "courier_not_available")
		case errors.Is(err, dispatch.ErrCourierAtCapacity):
			h.writeConflict(w, "courier_at_capacity")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := assignResponse{
		AssignmentID: assignmentEntity.ID,
		OrderID:      assignmentEntity.OrderID,
		CourierID:    assignmentEntity.CourierID,
		Status:       assignmentEntity.Status.String(),
		DeliveryFee:  assignmentEntity.DeliveryFee,
		AssignedAt:   assignmentEntity.AssignedAt,
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

func (h *Handler) writeConflict(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	err := json.NewEncoder(w).Encode(conflictResponse{Reason: reason})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
