package dispatch_broadcast_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/selector"
	"dispatch/pkg/logger"
)

type broadcastRequest struct {
	OrderID  string  `json:"order_id"`
	RadiusKm float64 `json:"radius_km"`
}

type broadcastResponse struct {
	OrderID    string `json:"order_id"`
	OffersSent int    `json:"offers_sent"`
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
	var req broadcastRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offersSent, err := h.service.Broadcast(r.Context(), req.OrderID, req.RadiusKm)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrVendorNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrOrderNotReady):
			h.writeConflict(w, "order_not_ready")
		case errors.Is(err, selector.ErrVendorLocationMissing):
			h.writeConflict(w, "vendor_location_missing")
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := broadcastResponse{
		OrderID:    req.OrderID,
		OffersSent: offersSent,
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
