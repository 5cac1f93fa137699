package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

// orderStatusChangedEvent — снапшот заказа из сервиса заказов.
type orderStatusChangedEvent struct {
	OrderID               string     `json:"order_id"`
	ShortCode             string     `json:"short_code"`
	VendorID              string     `json:"vendor_id"`
	CustomerID            string     `json:"customer_id"`
	TotalAmount           float64    `json:"total_amount"`
	Status                string     `json:"status"`
	CancelReason          string     `json:"cancel_reason,omitempty"`
	DeliveryLatitude      *float64   `json:"delivery_latitude,omitempty"`
	DeliveryLongitude     *float64   `json:"delivery_longitude,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderStatusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	orderEvent := entities.Order{
		ID:                    event.OrderID,
		ShortCode:             event.ShortCode,
		VendorID:              event.VendorID,
		CustomerID:            event.CustomerID,
		TotalAmount:           event.TotalAmount,
		Status:                entities.OrderStatusType(event.Status),
		CancelReason:          event.CancelReason,
		DeliveryLatitude:      event.DeliveryLatitude,
		DeliveryLongitude:     event.DeliveryLongitude,
		EstimatedDeliveryTime: event.EstimatedDeliveryTime,
	}

	order, err := h.orderService.ProcessOrderStatusChange(ctx, orderEvent)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrInvalidStatusTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler transition not allowed for order")

		case errors.Is(err, dispatch.ErrOrderNotCancellable):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler order not cancellable")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
