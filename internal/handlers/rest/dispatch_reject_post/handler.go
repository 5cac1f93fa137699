package dispatch_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type rejectRequest struct {
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
	Reason    string `json:"reason"`
}

type rejectResponse struct {
	AssignmentID int64  `json:"assignment_id"`
	OrderID      string `json:"order_id"`
	CourierID    int64  `json:"courier_id"`
	Status       string `json:"status"`
	RejectReason string `json:"reject_reason"`
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
	var req rejectRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.Reject(r.Context(), req.OrderID, req.CourierID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidCourierID),
			errors.Is(err, dispatch.ErrRejectReasonRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrAssignmentNotFound):
			h.writeConflict(w, "assignment_not_found")
		case errors.Is(err, dispatch.ErrAssignmentStatusConflict),
			errors.Is(err, dispatch.ErrOrderStatusConflict):
			h.writeConflict(w, "assignment_status_conflict")
		case errors.Is(err, dispatch.ErrCourierNotAvailable):
			h.writeConflict(w, "courier_not_available")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := rejectResponse{
		AssignmentID: assignmentEntity.ID,
		OrderID:      assignmentEntity.OrderID,
		CourierID:    assignmentEntity.CourierID,
		Status:       assignmentEntity.Status.String(),
		RejectReason: assignmentEntity.RejectReason,
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
