package clock

import "time"

// Clock отдает текущее время; в тестах подменяется фиксированным.
type Clock interface {
	Now() time.Time
}

type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed всегда возвращает одно и то же время.
type Fixed struct {
	Time time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{Time: t}
}

func (f Fixed) Now() time.Time {
	return f.Time
}
