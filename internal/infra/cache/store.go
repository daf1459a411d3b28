package cache

import (
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Теги видов запросов. Инвалидация идёт по префиксу тега, поэтому
// родственные виды ("agenda", "agenda:ready") гасятся одним вызовом.
const (
	KindAgenda    = "agenda"
	KindBookings  = "bookings"
	KindOccupancy = "occupancy"
	KindLookup    = "lookup"
)

// Key ключ кэша: вид запроса + хэш параметров
type Key struct {
	Kind   string
	Params string
}

// NewKey строит ключ кэша из вида запроса и его параметров.
// Параметры сворачиваются в детерминированный хэш: одинаковый набор
// параметров всегда даёт один и тот же ключ.
func NewKey(kind string, params ...string) Key {
	if len(params) == 0 {
		return Key{Kind: kind}
	}
	h := fnv.New64a()
	for i, p := range params {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return Key{Kind: kind, Params: strconv.FormatUint(h.Sum64(), 16)}
}

type entry struct {
	value    interface{}
	storedAt time.Time
}

// Store кэш результатов запросов к data port с явной инвалидацией по
// префиксу тега. Замена неявного query-cache оригинала: push-канал
// зовёт Invalidate напрямую, без общего ambient-клиента.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry
	ttl     time.Duration // 0 = без TTL, только явная инвалидация
	log     Logger
	metrics Metrics
}

// New создает новый кэш. ttl=0 отключает устаревание по времени.
func New(ttl time.Duration, log Logger, m Metrics) *Store {
	return &Store{
		entries: make(map[Key]entry),
		ttl:     ttl,
		log:     log,
		metrics: m,
	}
}

// Get возвращает закэшированное значение, если оно есть и не устарело
func (s *Store) Get(key Key) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok && s.ttl > 0 && time.Since(e.storedAt) > s.ttl {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		ok = false
	}

	if s.metrics != nil {
		if ok {
			s.metrics.IncCacheHit(key.Kind)
		} else {
			s.metrics.IncCacheMiss(key.Kind)
		}
	}
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set сохраняет значение в кэш
func (s *Store) Set(key Key, value interface{}) {
	s.mu.Lock()
	s.entries[key] = entry{value: value, storedAt: time.Now()}
	s.mu.Unlock()
}

// Invalidate удаляет все записи, чей вид начинается с префикса.
// Возвращает количество удалённых записей.
func (s *Store) Invalidate(prefix string) int {
	s.mu.Lock()
	removed := 0
	for key := range s.entries {
		if strings.HasPrefix(key.Kind, prefix) {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IncCacheInvalidation(prefix)
	}
	if s.log != nil && removed > 0 {
		s.log.Debug("cache: invalidated %d entries by prefix %q", removed, prefix)
	}
	return removed
}

// InvalidateAll очищает кэш полностью
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	s.entries = make(map[Key]entry)
	s.mu.Unlock()
}

// Len возвращает текущее число записей в кэше
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
