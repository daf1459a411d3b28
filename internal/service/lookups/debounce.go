package lookups

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Debouncer явная замена таймерного debounce для typeahead-ввода.
// Каждый Schedule сбрасывает предыдущий отложенный вызов и выдаёт новый
// токен; колбэк получает токен и обязан проверить его через IsCurrent
// перед применением результата: устаревший ответ молча отбрасывается
// (то же правило last-wins, что и у загрузок диапазона).
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	current uuid.UUID
}

// NewDebouncer создает debouncer с заданной задержкой
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule откладывает вызов fn, отменяя предыдущий отложенный вызов.
// Возвращает токен запроса.
func (d *Debouncer) Schedule(fn func(token uuid.UUID)) uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	token := uuid.New()
	d.current = token
	d.timer = time.AfterFunc(d.delay, func() { fn(token) })
	return token
}

// IsCurrent возвращает true, если токен принадлежит последнему Schedule
func (d *Debouncer) IsCurrent(token uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current == token
}

// Cancel отменяет отложенный вызов, если он ещё не сработал
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.current = uuid.Nil
}
