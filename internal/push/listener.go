package push

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
)

// bookingTopicPrefix префикс типов сообщений, затрагивающих брони.
// Любое событие с этим префиксом гасит кэш независимо от payload.
const bookingTopicPrefix = "booking."

// refreshCoalesceInterval минимальный интервал между перечитываниями
// сетки при шторме push-сообщений
const refreshCoalesceInterval = 2 * time.Second

// message конверт realtime-сообщения. Payload не разбирается: сигнал
// используется только как триггер инвалидации.
type message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Listener слушатель realtime-канала инвалидации.
// Держит одно ws-соединение и молча переподключается при обрыве.
type Listener struct {
	url            string
	reconnectDelay time.Duration
	invalidator    Invalidator
	refresher      Refresher
	logger         Logger
	metrics        Metrics

	limiter *rate.Limiter
	notify  chan struct{}
}

// NewListener создает новый слушатель realtime-канала
func NewListener(url string, reconnectDelay time.Duration, invalidator Invalidator, refresher Refresher, logger Logger, metrics Metrics) *Listener {
	if reconnectDelay <= 0 {
		reconnectDelay = 3 * time.Second
	}
	return &Listener{
		url:            url,
		reconnectDelay: reconnectDelay,
		invalidator:    invalidator,
		refresher:      refresher,
		logger:         logger,
		metrics:        metrics,
		limiter:        rate.NewLimiter(rate.Every(refreshCoalesceInterval), 1),
		notify:         make(chan struct{}, 1),
	}
}

// Run блокирует до отмены контекста. Обрывы соединения не считаются
// фатальными: после паузы reconnectDelay слушатель подключается заново.
func (l *Listener) Run(ctx context.Context) {
	go l.refreshLoop(ctx)

	for {
		if err := l.connectAndRead(ctx); err != nil {
			l.logger.Debug("push: connection lost: %v", err)
		}
		if ctx.Err() != nil {
			return
		}

		if l.metrics != nil {
			l.metrics.IncPushReconnect()
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *Listener) connectAndRead(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	l.logger.Info("push: connected to %s", l.url)

	// Закрываем соединение при отмене контекста, чтобы разблокировать ReadMessage
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		l.handle(payload)
	}
}

// handle разбирает конверт и инвалидирует кэш для событий броней.
// Сообщения с битым JSON или без типа молча игнорируются.
func (l *Listener) handle(payload []byte) {
	var msg message
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Type == "" {
		l.countMessage("malformed")
		return
	}

	if !strings.HasPrefix(msg.Type, bookingTopicPrefix) {
		l.countMessage("ignored")
		return
	}

	l.countMessage("booking")
	l.logger.Debug("push: booking event %q, invalidating caches", msg.Type)

	l.invalidator.Invalidate(cache.KindAgenda)
	l.invalidator.Invalidate(cache.KindBookings)
	l.invalidator.Invalidate(cache.KindOccupancy)

	// Неблокирующий сигнал: шторм сообщений схлопывается в один refresh
	select {
	case l.notify <- struct{}{}:
	default:
	}
}

func (l *Listener) countMessage(outcome string) {
	if l.metrics != nil {
		l.metrics.IncPushMessage(outcome)
	}
}

func (l *Listener) refreshLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.notify:
		}

		if err := l.limiter.Wait(ctx); err != nil {
			return
		}
		if err := l.refresher.Refresh(ctx); err != nil {
			l.logger.Warn("push: grid refresh after invalidation failed: %v", err)
		}
	}
}
