package entities

// Notification — событие диспетчеризации для доставки получателю
// (push или лента вендора). Отправляется best-effort: сбой доставки
// не откатывает операцию, которая его породила.
type Notification struct {
	Recipient   NotificationRecipient
	RecipientID string
	Event       NotificationEvent
	OrderID     string
	Message     string
}

type NotificationRecipient string

func (r NotificationRecipient) String() string {
	return string(r)
}

const (
	RecipientCourier NotificationRecipient = "courier"
	RecipientVendor  NotificationRecipient = "vendor"
)

type NotificationEvent string

func (e NotificationEvent) String() string {
	return string(e)
}

const (
	EventOrderAssigned  NotificationEvent = "order_assigned"
	EventOrderOffered   NotificationEvent = "order_offered"
	EventOrderAccepted  NotificationEvent = "order_accepted"
	EventOrderRejected  NotificationEvent = "order_rejected"
	EventOrderPickedUp  NotificationEvent = "order_picked_up"
	EventOrderDelivered NotificationEvent = "order_delivered"
	EventOrderCancelled NotificationEvent = "order_cancelled"
)
