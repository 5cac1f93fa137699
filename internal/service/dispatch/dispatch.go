package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Config struct {
	BroadcastRadiusKm float64
	OfferTTL          time.Duration
}

// Dispatch связывает заказы с курьерами. Все операции, меняющие состояние,
// идут через транзакцию с условными обновлениями: инвариант «не больше
// одного активного назначения на заказ» держат частичный уникальный
// индекс и CAS по статусам, а не блокировки в памяти.
type Dispatch struct {
	orders      OrderRepository
	couriers    CourierRepository
	assignments AssignmentRepository
	offers      OfferRepository
	earnings    EarningRepository
	vendors     VendorRepository
	selector    CourierSelector
	fees        FeeCalculator
	notifier    NotificationGateway
	clock       Clock
	txManager   TxManager
	log         logger.Logger
	cfg         Config
}

func New(
	orders OrderRepository,
	couriers CourierRepository,
	assignments AssignmentRepository,
	offers OfferRepository,
	earnings EarningRepository,
	vendors VendorRepository,
	selector CourierSelector,
	fees FeeCalculator,
	notifier NotificationGateway,
	clock Clock,
	txManager TxManager,
	log logger.Logger,
	cfg Config,
) *Dispatch {
	return &Dispatch{
		orders:      orders,
		couriers:    couriers,
		assignments: assignments,
		offers:      offers,
		earnings:    earnings,
		vendors:     vendors,
		selector:    selector,
		fees:        fees,
		notifier:    notifier,
		clock:       clock,
		txManager:   txManager,
		log:         log,
		cfg:         cfg,
	}
}

// Assign назначает заказ конкретному курьеру. Заказ должен быть в статусе
// ready, курьер — активным, доступным и со свободной емкостью.
func (d *Dispatch) Assign(ctx context.Context, orderID string, courierID int64) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var assignment *entities.Assignment

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderReady {
			return ErrOrderNotReady
		}

		courier, err := d.couriers.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if !courier.IsActive || courier.Status != entities.CourierAvailable {
			return ErrCourierNotAvailable
		}
		if !courier.HasCapacity() {
			return ErrCourierAtCapacity
		}

		vendor, err := d.vendors.GetByID(ctx, order.VendorID)
		if err != nil {
			return fmt.Errorf("get vendor: %w", err)
		}

		now := d.clock.Now().UTC()
		fee := d.fees.Compute(order, vendor, courier, 0, now)

		status := entities.AssignmentAssigned
		isActive := true
		assignment, err = d.assignments.Create(ctx, entities.AssignmentModify{
			OrderID:     &orderID,
			CourierID:   &courierID,
			Status:      &status,
			IsActive:    &isActive,
			DeliveryFee: &fee.Total,
			AssignedAt:  &now,
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		if err := d.orders.UpdateStatus(ctx, orderID, entities.OrderReady, entities.OrderAssigned); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if err := d.couriers.HoldForAssignment(ctx, courierID); err != nil {
			return fmt.Errorf("hold courier: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notify(ctx, entities.Notification{
		Recipient:   entities.RecipientCourier,
		RecipientID: strconv.FormatInt(courierID, 10),
		Event:       entities.EventOrderAssigned,
		OrderID:     orderID,
		Message:     fmt.Sprintf("New order %s assigned to you", orderID),
	})

	return assignment, nil
}

// AutoAssign подбирает ближайшего подходящего курьера и назначает заказ ему.
func (d *Dispatch) AutoAssign(ctx context.Context, orderID string) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := d.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if order.Status != entities.OrderReady {
		return nil, ErrOrderNotReady
	}

	best, err := d.selector.BestMatch(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("select courier: %w", err)
	}

	return d.Assign(ctx, orderID, best.Courier.ID)
}

// Broadcast рассылает предложение заказа всем подходящим курьерам в радиусе.
// Возвращает число курьеров, получивших предложение. Заказ остается в ready:
// связывание с курьером произойдет первым успешным Accept.
func (d *Dispatch) Broadcast(ctx context.Context, orderID string, radiusKm float64) (int, error) {
	if !isValidOrderID(orderID) {
		return 0, ErrInvalidOrderID
	}

	if radiusKm <= 0 {
		radiusKm = d.cfg.BroadcastRadiusKm
	}

	var (
		candidates []entities.RankedCourier
		quotes     []float64
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderReady {
			return ErrOrderNotReady
		}

		vendor, err := d.vendors.GetByID(ctx, order.VendorID)
		if err != nil {
			return fmt.Errorf("get vendor: %w", err)
		}

		candidates, err = d.selector.RankWithinRadius(ctx, order, radiusKm)
		if err != nil {
			return fmt.Errorf("rank couriers: %w", err)
		}

		// Предыдущий раунд рассылки по этому заказу сгорает, даже если
		// новый раунд никого не нашел.
		if _, err := d.offers.DeleteByOrderID(ctx, orderID); err != nil {
			return fmt.Errorf("clear stale offers: %w", err)
		}

		if len(candidates) == 0 {
			return nil
		}

		now := d.clock.Now().UTC()
		expiresAt := now.Add(d.cfg.OfferTTL)
		quotes = make([]float64, len(candidates))

		for i := range candidates {
			fee := d.fees.Compute(order, vendor, &candidates[i].Courier, 0, now)
			quotes[i] = fee.Total

			err := d.offers.Create(ctx, entities.BroadcastOfferModify{
				OrderID:     &orderID,
				CourierID:   &candidates[i].Courier.ID,
				DeliveryFee: &quotes[i],
				OfferedAt:   &now,
				ExpiresAt:   &expiresAt,
			})
			if err != nil {
				return fmt.Errorf("create offer: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	for i := range candidates {
		d.notify(ctx, entities.Notification{
			Recipient:   entities.RecipientCourier,
			RecipientID: strconv.FormatInt(candidates[i].Courier.ID, 10),
			Event:       entities.EventOrderOffered,
			OrderID:     orderID,
			Message:     fmt.Sprintf("Order %s is available nearby, fee %.2f", orderID, quotes[i]),
		})
	}

	return len(candidates), nil
}

// Accept подтверждает заказ курьером. Работает в двух режимах: подтверждение
// адресного назначения и принятие предложения рассылки. Во втором случае
// гонку принявших разрешает уникальный индекс активного назначения:
// проигравший получает ErrOrderAlreadyAssigned.
func (d *Dispatch) Accept(ctx context.Context, orderID string, courierID int64) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var (
		accepted *entities.Assignment
		vendorID string
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		vendorID = order.VendorID

		active, err := d.assignments.GetActiveByOrderID(ctx, orderID)
		switch {
		case err == nil:
			accepted, err = d.acceptAssigned(ctx, order, active, courierID)
			return err
		case errors.Is(err, ErrAssignmentNotFound):
			accepted, err = d.acceptOffer(ctx, order, courierID)
			return err
		default:
			return fmt.Errorf("get active assignment: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	d.notify(ctx, entities.Notification{
		Recipient:   entities.RecipientVendor,
		RecipientID: vendorID,
		Event:       entities.EventOrderAccepted,
		OrderID:     orderID,
		Message:     fmt.Sprintf("Courier accepted order %s", orderID),
	})

	return accepted, nil
}

func (d *Dispatch) acceptAssigned(ctx context.Context, order *entities.Order, active *entities.Assignment, courierID int64) (*entities.Assignment, error) {
	if active.CourierID != courierID {
		return nil, ErrOrderAlreadyAssigned
	}
	if active.Status != entities.AssignmentAssigned || order.Status != entities.OrderAssigned {
		return nil, ErrAssignmentStatusConflict
	}

	if err := d.couriers.ConfirmActiveOrder(ctx, courierID); err != nil {
		return nil, fmt.Errorf("confirm courier active order: %w", err)
	}

	now := d.clock.Now().UTC()
	status := entities.AssignmentAccepted

	accepted, err := d.assignments.Update(ctx, active.ID, entities.AssignmentAssigned, entities.AssignmentModify{
		Status:     &status,
		AcceptedAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}

	if err := d.orders.UpdateStatus(ctx, order.ID, entities.OrderAssigned, entities.OrderAccepted); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return accepted, nil
}

func (d *Dispatch) acceptOffer(ctx context.Context, order *entities.Order, courierID int64) (*entities.Assignment, error) {
	// Без активного назначения принимать можно только заказ, оставшийся
	// в пуле рассылки.
	if order.Status != entities.OrderReady {
		return nil, ErrAssignmentNotFound
	}

	now := d.clock.Now().UTC()

	offer, err := d.offers.GetLive(ctx, order.ID, courierID, now)
	if err != nil {
		return nil, fmt.Errorf("get live offer: %w", err)
	}

	courier, err := d.couriers.GetByID(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	// Рассылка адресована доступным курьерам. Курьер в транзитном assigned
	// удерживается под адресное назначение: прими он сейчас чужой заказ,
	// ReleaseHold по удержанному назначению перестанет находить строку.
	if !courier.IsActive || courier.Status != entities.CourierAvailable {
		return nil, ErrCourierNotAvailable
	}

	if err := d.couriers.ConfirmActiveOrder(ctx, courierID); err != nil {
		return nil, fmt.Errorf("confirm courier active order: %w", err)
	}

	status := entities.AssignmentAccepted
	isActive := true

	accepted, err := d.assignments.Create(ctx, entities.AssignmentModify{
		OrderID:     &order.ID,
		CourierID:   &courierID,
		Status:      &status,
		IsActive:    &isActive,
		DeliveryFee: &offer.DeliveryFee,
		AssignedAt:  &now,
		AcceptedAt:  &now,
	})
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	// Два CAS-перехода вместо прыжка ready -> accepted: граф статусов
	// заказа не знает такого ребра.
	if err := d.orders.UpdateStatus(ctx, order.ID, entities.OrderReady, entities.OrderAssigned); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if err := d.orders.UpdateStatus(ctx, order.ID, entities.OrderAssigned, entities.OrderAccepted); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if _, err := d.offers.DeleteByOrderID(ctx, order.ID); err != nil {
		return nil, fmt.Errorf("consume offers: %w", err)
	}

	return accepted, nil
}

// Reject отклоняет адресное назначение: заказ возвращается в пул (ready),
// курьер освобождается, запись назначения деактивируется с причиной.
func (d *Dispatch) Reject(ctx context.Context, orderID string, courierID int64, reason string) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}
	if !isValidReason(reason) {
		return nil, ErrRejectReasonRequired
	}

	var (
		rejected *entities.Assignment
		vendorID string
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		vendorID = order.VendorID

		active, err := d.assignments.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}

		if active.CourierID != courierID {
			return ErrAssignmentNotFound
		}
		if active.Status != entities.AssignmentAssigned || order.Status != entities.OrderAssigned {
			return ErrAssignmentStatusConflict
		}

		now := d.clock.Now().UTC()
		status := entities.AssignmentRejected
		isActive := false

		rejected, err = d.assignments.Update(ctx, active.ID, entities.AssignmentAssigned, entities.AssignmentModify{
			Status:       &status,
			IsActive:     &isActive,
			RejectReason: &reason,
			RejectedAt:   &now,
		})
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		// Возврат заказа в пул — единственный переход назад по графу.
		if err := d.orders.UpdateStatus(ctx, orderID, entities.OrderAssigned, entities.OrderReady); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if err := d.couriers.ReleaseHold(ctx, courierID); err != nil {
			return fmt.Errorf("release courier: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notify(ctx, entities.Notification{
		Recipient:   entities.RecipientVendor,
		RecipientID: vendorID,
		Event:       entities.EventOrderRejected,
		OrderID:     orderID,
		Message:     fmt.Sprintf("Courier rejected order %s: %s", orderID, reason),
	})

	return rejected, nil
}

// PickUp фиксирует, что курьер забрал заказ у вендора.
func (d *Dispatch) PickUp(ctx context.Context, orderID string, courierID int64) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var (
		pickedUp *entities.Assignment
		vendorID string
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		vendorID = order.VendorID

		active, err := d.assignments.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}

		if active.CourierID != courierID {
			return ErrAssignmentNotFound
		}
		if active.Status != entities.AssignmentAccepted || order.Status != entities.OrderAccepted {
			return ErrAssignmentStatusConflict
		}

		now := d.clock.Now().UTC()
		status := entities.AssignmentOutForDelivery

		pickedUp, err = d.assignments.Update(ctx, active.ID, entities.AssignmentAccepted, entities.AssignmentModify{
			Status:     &status,
			PickedUpAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		if err := d.orders.UpdateStatus(ctx, orderID, entities.OrderAccepted, entities.OrderOutForDelivery); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notify(ctx, entities.Notification{
		Recipient:   entities.RecipientVendor,
		RecipientID: vendorID,
		Event:       entities.EventOrderPickedUp,
		OrderID:     orderID,
		Message:     fmt.Sprintf("Order %s picked up by courier", orderID),
	})

	return pickedUp, nil
}

// Deliver завершает доставку: заказ и назначение переходят в терминальный
// статус, в леджер записывается заработок, счетчики курьера обновляются.
func (d *Dispatch) Deliver(ctx context.Context, orderID string, courierID int64, tip float64) (*entities.Earning, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}
	if tip < 0 {
		return nil, ErrInvalidTip
	}

	var (
		earning  *entities.Earning
		vendorID string
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		vendorID = order.VendorID

		active, err := d.assignments.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}

		if active.CourierID != courierID {
			return ErrAssignmentNotFound
		}
		if active.Status != entities.AssignmentOutForDelivery || order.Status != entities.OrderOutForDelivery {
			return ErrAssignmentStatusConflict
		}

		courier, err := d.couriers.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		vendor, err := d.vendors.GetByID(ctx, order.VendorID)
		if err != nil {
			return fmt.Errorf("get vendor: %w", err)
		}

		now := d.clock.Now().UTC()
		fee := d.fees.Compute(order, vendor, courier, tip, now)

		status := entities.AssignmentDelivered

		_, err = d.assignments.Update(ctx, active.ID, entities.AssignmentOutForDelivery, entities.AssignmentModify{
			Status:      &status,
			Tip:         &tip,
			DeliveredAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		if err := d.orders.UpdateStatus(ctx, orderID, entities.OrderOutForDelivery, entities.OrderDelivered); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		// Временной и транспортный бонусы входят в базовую часть леджера,
		// дистанционный учитывается отдельной колонкой.
		base := fee.BaseFee + fee.TimeBonus + fee.VehicleBonus

		earning, err = d.earnings.Create(ctx, entities.EarningModify{
			CourierID:     &courierID,
			OrderID:       &orderID,
			BaseFee:       &base,
			DistanceBonus: &fee.DistanceBonus,
			Tip:           &tip,
			Total:         &fee.Total,
			EarnedAt:      &now,
		})
		if err != nil {
			return fmt.Errorf("create earning: %w", err)
		}

		if _, err := d.couriers.CompleteDelivery(ctx, courierID, fee.Total); err != nil {
			return fmt.Errorf("complete courier delivery: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	d.notify(ctx,
		entities.Notification{
			Recipient:   entities.RecipientCourier,
			RecipientID: strconv.FormatInt(courierID, 10),
			Event:       entities.EventOrderDelivered,
			OrderID:     orderID,
			Message:     fmt.Sprintf("Order %s delivered, you earned %.2f", orderID, earning.Total),
		},
		entities.Notification{
			Recipient:   entities.RecipientVendor,
			RecipientID: vendorID,
			Event:       entities.EventOrderDelivered,
			OrderID:     orderID,
			Message:     fmt.Sprintf("Order %s delivered to customer", orderID),
		},
	)

	return earning, nil
}

// CancelOrder отменяет заказ, если он еще не выехал к клиенту. Активное
// назначение деактивируется, курьер освобождается, предложения рассылки
// сгорают.
func (d *Dispatch) CancelOrder(ctx context.Context, orderID string, reason string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidReason(reason) {
		return ErrCancelReasonRequired
	}

	var releasedCourierID int64

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !order.Status.CanTransitionTo(entities.OrderCancelled) {
			return ErrOrderNotCancellable
		}

		now := d.clock.Now().UTC()

		if err := d.orders.Cancel(ctx, orderID, order.Status, reason, now); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		active, err := d.assignments.GetActiveByOrderID(ctx, orderID)
		switch {
		case err == nil:
			isActive := false
			if _, err := d.assignments.Update(ctx, active.ID, active.Status, entities.AssignmentModify{
				IsActive: &isActive,
			}); err != nil {
				return fmt.Errorf("deactivate assignment: %w", err)
			}

			switch active.Status {
			case entities.AssignmentAssigned:
				if err := d.couriers.ReleaseHold(ctx, active.CourierID); err != nil {
					return fmt.Errorf("release courier: %w", err)
				}
			case entities.AssignmentAccepted:
				if err := d.couriers.ReleaseActiveOrder(ctx, active.CourierID); err != nil {
					return fmt.Errorf("release courier active order: %w", err)
				}
			}

			releasedCourierID = active.CourierID
		case errors.Is(err, ErrAssignmentNotFound):
		default:
			return fmt.Errorf("get active assignment: %w", err)
		}

		if _, err := d.offers.DeleteByOrderID(ctx, orderID); err != nil {
			return fmt.Errorf("clear offers: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if releasedCourierID != 0 {
		d.notify(ctx, entities.Notification{
			Recipient:   entities.RecipientCourier,
			RecipientID: strconv.FormatInt(releasedCourierID, 10),
			Event:       entities.EventOrderCancelled,
			OrderID:     orderID,
			Message:     fmt.Sprintf("Order %s was cancelled: %s", orderID, reason),
		})
	}

	return nil
}

// notify отправляет уведомления best-effort: сбой шлюза логируется
// и не влияет на результат операции.
func (d *Dispatch) notify(ctx context.Context, notifications ...entities.Notification) {
	for _, n := range notifications {
		if err := d.notifier.Send(ctx, n); err != nil {
			d.log.Warn("notification send failed",
				logger.NewField("event", n.Event.String()),
				logger.NewField("order_id", n.OrderID),
				logger.NewField("error", err.Error()),
			)
		}
	}
}
