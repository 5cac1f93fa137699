package dispatch_deliver_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	courierService "dispatch/internal/service/courier"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type deliverRequest struct {
	OrderID   string  `json:"order_id"`
	CourierID int64   `json:"courier_id"`
	Tip       float64 `json:"tip"`
}

type deliverResponse struct {
	OrderID       string    `json:"order_id"`
	CourierID     int64     `json:"courier_id"`
	BaseFee       float64   `json:"base_fee"`
	DistanceBonus float64   `json:"distance_bonus"`
	Tip           float64   `json:"tip"`
	Total         float64   `json:"total"`
	EarnedAt      time.Time `json:"earned_at"`
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
	var req deliverRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	earningEntity, err := h.service.Deliver(r.Context(), req.OrderID, req.CourierID, req.Tip)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidCourierID),
			errors.Is(err, dispatch.ErrInvalidTip):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrVendorNotFound),
			errors.Is(err, courierService.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrAssignmentNotFound):
			h.writeConflict(w, "assignment_not_found")
		case errors.Is(err, dispatch.ErrAssignmentStatusConflict),
			errors.Is(err, dispatch.ErrOrderStatusConflict):
			h.writeConflict(w, "assignment_status_conflict")
		case errors.Is(err, dispatch.ErrEarningAlreadyRecorded):
			h.writeConflict(w, "earning_already_recorded")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := deliverResponse{
		OrderID:       earningEntity.OrderID,
		CourierID:     earningEntity.CourierID,
		BaseFee:       earningEntity.BaseFee,
		DistanceBonus: earningEntity.DistanceBonus,
		Tip:           earningEntity.Tip,
		Total:         earningEntity.Total,
		EarnedAt:      earningEntity.EarnedAt,
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
