package dispatch_pickup_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type pickUpRequest struct {
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
}

type pickUpResponse struct {
	AssignmentID int64      `json:"assignment_id"`
	OrderID      string     `json:"order_id"`
	CourierID    int64      `json:"courier_id"`
	Status       string     `json:"status"`
	PickedUpAt   *time.Time `json:"picked_up_at,omitempty"`
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
	var req pickUpRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.PickUp(r.Context(), req.OrderID, req.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrAssignmentNotFound):
			h.writeConflict(w, "assignment_not_found")
		case errors.Is(err, dispatch.ErrAssignmentStatusConflict),
			errors.Is(err, dispatch.ErrOrderStatusConflict):
			h.writeConflict(w, "assignment_status_conflict")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := pickUpResponse{
		AssignmentID: assignmentEntity.ID,
		OrderID:      assignmentEntity.OrderID,
		CourierID:    assignmentEntity.CourierID,
		Status:       assignmentEntity.Status.String(),
		PickedUpAt:   assignmentEntity.PickedUpAt,
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
