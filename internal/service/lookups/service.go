package lookups

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/calendar"
)

const (
	// typeaheadDelay пауза после последнего ввода перед удалённым поиском
	typeaheadDelay = 300 * time.Millisecond

	// searchBudget сколько ждать ответ FleetService сверх паузы debounce
	searchBudget = 2 * time.Second
)

// Service кэш справочников (техника, боксы, механики, компании).
// Справочники eventually consistent: компоненты читают последнее
// загруженное состояние, а обновление идёт независимо (cron + push).
// Никто, кроме Refresh-методов, кэш не мутирует.
type Service struct {
	client   FleetClient
	log      Logger
	debounce *Debouncer

	// searchWait потолок ожидания удалённого поиска; перекрытый более
	// поздним вводом запрос по нему отдаёт локальный кэш
	searchWait time.Duration

	mu          sync.RWMutex
	vehicles    map[string]*domain.Vehicle
	bays        map[string]*domain.Bay
	technicians map[string]*domain.Technician
	companies   map[string]*domain.Company
}

// NewService создает новый сервис справочников
func NewService(client FleetClient, log Logger) *Service {
	return &Service{
		client:      client,
		log:         log,
		debounce:    NewDebouncer(typeaheadDelay),
		searchWait:  typeaheadDelay + searchBudget,
		vehicles:    make(map[string]*domain.Vehicle),
		bays:        make(map[string]*domain.Bay),
		technicians: make(map[string]*domain.Technician),
		companies:   make(map[string]*domain.Company),
	}
}

// RefreshAll обновляет все справочники. Частичный отказ не фатален:
// недоступный справочник сохраняет прежнее содержимое, рендер покажет
// сырые id вместо подписей, пока данные не доедут.
func (s *Service) RefreshAll(ctx context.Context) error {
	failed := 0

	if vehicles, err := s.client.ListVehicles(ctx); err != nil {
		failed++
		s.log.Warn("lookups: failed to refresh vehicles: %v", err)
	} else {
		byID := make(map[string]*domain.Vehicle, len(vehicles))
		for _, v := range vehicles {
			byID[v.ID] = v
		}
		s.mu.Lock()
		s.vehicles = byID
		s.mu.Unlock()
	}

	if bays, err := s.client.ListBays(ctx); err != nil {
		failed++
		s.log.Warn("lookups: failed to refresh bays: %v", err)
	} else {
		byID := make(map[string]*domain.Bay, len(bays))
		for _, b := range bays {
			byID[b.ID] = b
		}
		s.mu.Lock()
		s.bays = byID
		s.mu.Unlock()
	}

	if technicians, err := s.client.ListTechnicians(ctx); err != nil {
		failed++
		s.log.Warn("lookups: failed to refresh technicians: %v", err)
	} else {
		byID := make(map[string]*domain.Technician, len(technicians))
		for _, t := range technicians {
			byID[t.ID] = t
		}
		s.mu.Lock()
		s.technicians = byID
		s.mu.Unlock()
	}

	if companies, err := s.client.ListCompanies(ctx); err != nil {
		failed++
		s.log.Warn("lookups: failed to refresh companies: %v", err)
	} else {
		byID := make(map[string]*domain.Company, len(companies))
		for _, c := range companies {
			byID[c.ID] = c
		}
		s.mu.Lock()
		s.companies = byID
		s.mu.Unlock()
	}

	if failed == 4 {
		return ErrRefreshFailed
	}
	return nil
}

// CalendarLookups возвращает справочники в форме, которую ждёт маппер событий
func (s *Service) CalendarLookups() calendar.Lookups {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calendar.Lookups{
		Vehicles:    s.vehicles,
		Bays:        s.bays,
		Technicians: s.technicians,
	}
}

// Bays возвращает справочник боксов списком
func (s *Service) Bays() []*domain.Bay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bays := make([]*domain.Bay, 0, len(s.bays))
	for _, b := range s.bays {
		bays = append(bays, b)
	}
	sort.Slice(bays, func(i, j int) bool { return bays[i].Name < bays[j].Name })
	return bays
}

// ResolveLabel возвращает отображаемую подпись для id.
// Если справочник ещё не загружен, отдаёт сырой id: рендер не должен
// падать из-за отставшего кэша.
func (s *Service) ResolveLabel(kind domain.LookupKind, id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case domain.LookupVehicle:
		if v, ok := s.vehicles[id]; ok {
			return v.DisplayLabel()
		}
	case domain.LookupBay:
		if b, ok := s.bays[id]; ok {
			return b.Name
		}
	case domain.LookupTechnician:
		if t, ok := s.technicians[id]; ok {
			return t.Name
		}
	case domain.LookupCompany:
		if c, ok := s.companies[id]; ok {
			return c.Name
		}
	}
	return id
}

// Options возвращает варианты для typeahead по виду справочника.
// Пустой query отдаёт весь справочник; иначе фильтр по подстроке
// без учёта регистра.
func (s *Service) Options(kind domain.LookupKind, query string) ([]domain.LookupOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var options []domain.LookupOption
	switch kind {
	case domain.LookupVehicle:
		for _, v := range s.vehicles {
			options = append(options, domain.LookupOption{ID: v.ID, Label: v.DisplayLabel()})
		}
	case domain.LookupBay:
		for _, b := range s.bays {
			options = append(options, domain.LookupOption{ID: b.ID, Label: b.Name})
		}
	case domain.LookupTechnician:
		for _, t := range s.technicians {
			options = append(options, domain.LookupOption{ID: t.ID, Label: t.Name})
		}
	case domain.LookupCompany:
		for _, c := range s.companies {
			options = append(options, domain.LookupOption{ID: c.ID, Label: c.Name})
		}
	default:
		return nil, ErrUnknownKind
	}

	if query != "" {
		needle := strings.ToLower(query)
		filtered := options[:0]
		for _, opt := range options {
			if strings.Contains(strings.ToLower(opt.Label), needle) {
				filtered = append(filtered, opt)
			}
		}
		options = filtered
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })
	return options, nil
}

// Search варианты для typeahead: удалённый поиск FleetService поверх
// локального кэша. Быстрый ввод гасится debounce-ом: новый запрос
// отменяет отложенный старый, а опоздавший ответ отбрасывается по токену.
// Недоступный поиск не фатален: остаются локальные варианты.
func (s *Service) Search(ctx context.Context, kind domain.LookupKind, query string) ([]domain.LookupOption, error) {
	local, err := s.Options(kind, query)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return local, nil
	}

	type remote struct {
		options []domain.LookupOption
		err     error
	}
	done := make(chan remote, 1)
	s.debounce.Schedule(func(token uuid.UUID) {
		options, err := s.client.SearchLookup(ctx, kind, query)
		if !s.debounce.IsCurrent(token) {
			return
		}
		done <- remote{options: options, err: err}
	})

	select {
	case r := <-done:
		if r.err != nil {
			s.log.Warn("lookups: remote search failed, serving cache: kind=%s, %v", kind, r.err)
			return local, nil
		}
		// Результаты поиска первыми, известные записи из кэша следом
		return MergeByID(r.options, local), nil
	case <-time.After(s.searchWait):
		// Запрос перекрыт более поздним вводом
		return local, nil
	case <-ctx.Done():
		return local, nil
	}
}
