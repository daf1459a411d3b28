package cachedfleet

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
)

// FleetReader читающая часть клиента FleetService
type FleetReader interface {
	Agenda(ctx context.Context, r domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error)
	BayOccupancy(ctx context.Context) (map[string]domain.OccupancyEntry, error)
	ListBays(ctx context.Context) ([]*domain.Bay, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	ListTechnicians(ctx context.Context) ([]*domain.Technician, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	SearchLookup(ctx context.Context, kind domain.LookupKind, query string) ([]domain.LookupOption, error)
}

// Port кэширующая обёртка над читающими операциями FleetService.
// Ключ записи (вид запроса, хэш параметров); push-канал гасит записи по
// префиксу тега, после чего следующий вызов уходит в сеть.
type Port struct {
	client FleetReader
	store  *cache.Store
}

// New создает кэширующую обёртку
func New(client FleetReader, store *cache.Store) *Port {
	return &Port{client: client, store: store}
}

// Agenda возвращает брони диапазона, из кэша при попадании
func (p *Port) Agenda(ctx context.Context, r domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error) {
	key := cache.NewKey(cache.KindAgenda,
		r.From.Format(time.RFC3339), r.To.Format(time.RFC3339),
		filter.BayID, filter.TechnicianID, filter.CompanyID)

	if v, ok := p.store.Get(key); ok {
		return v.([]*domain.Booking), nil
	}
	bookings, err := p.client.Agenda(ctx, r, filter)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, bookings)
	return bookings, nil
}

// BayOccupancy возвращает снимок занятости, из кэша при попадании
func (p *Port) BayOccupancy(ctx context.Context) (map[string]domain.OccupancyEntry, error) {
	key := cache.NewKey(cache.KindOccupancy)
	if v, ok := p.store.Get(key); ok {
		return v.(map[string]domain.OccupancyEntry), nil
	}
	occupancy, err := p.client.BayOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, occupancy)
	return occupancy, nil
}

// ListBays возвращает справочник боксов, из кэша при попадании
func (p *Port) ListBays(ctx context.Context) ([]*domain.Bay, error) {
	key := cache.NewKey(cache.KindLookup, string(domain.LookupBay))
	if v, ok := p.store.Get(key); ok {
		return v.([]*domain.Bay), nil
	}
	bays, err := p.client.ListBays(ctx)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, bays)
	return bays, nil
}

// ListVehicles возвращает справочник техники, из кэша при попадании
func (p *Port) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	key := cache.NewKey(cache.KindLookup, string(domain.LookupVehicle))
	if v, ok := p.store.Get(key); ok {
		return v.([]*domain.Vehicle), nil
	}
	vehicles, err := p.client.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, vehicles)
	return vehicles, nil
}

// ListTechnicians возвращает справочник механиков, из кэша при попадании
func (p *Port) ListTechnicians(ctx context.Context) ([]*domain.Technician, error) {
	key := cache.NewKey(cache.KindLookup, string(domain.LookupTechnician))
	if v, ok := p.store.Get(key); ok {
		return v.([]*domain.Technician), nil
	}
	technicians, err := p.client.ListTechnicians(ctx)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, technicians)
	return technicians, nil
}

// SearchLookup возвращает результаты typeahead-поиска, из кэша при
// попадании. Повтор того же запроса в пределах TTL не ходит в сеть.
func (p *Port) SearchLookup(ctx context.Context, kind domain.LookupKind, query string) ([]domain.LookupOption, error) {
	key := cache.NewKey(cache.KindLookup, string(kind), query)
	if v, ok := p.store.Get(key); ok {
		return v.([]domain.LookupOption), nil
	}
	options, err := p.client.SearchLookup(ctx, kind, query)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, options)
	return options, nil
}

// ListCompanies возвращает справочник компаний, из кэша при попадании
func (p *Port) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	key := cache.NewKey(cache.KindLookup, string(domain.LookupCompany))
	if v, ok := p.store.Get(key); ok {
		return v.([]*domain.Company), nil
	}
	companies, err := p.client.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	p.store.Set(key, companies)
	return companies, nil
}
