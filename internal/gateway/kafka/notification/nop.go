package notification

import (
	"context"

	"dispatch/internal/entities"
)

// Nop глушит уведомления там, где брокера нет (локальный запуск, тесты).
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (Nop) Send(context.Context, entities.Notification) error {
	return nil
}
