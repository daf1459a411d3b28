package grid

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/calendar"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// maxVisiblePerDayCell сколько событий помещается в ячейку дня месячного
// представления до сворачивания в "+X more"
const maxVisiblePerDayCell = 3

// Controller календарная сетка: владеет режимом, опорной датой, фильтрами
// и загруженными событиями. Состояния idle -> loading -> ready | error;
// интеракции (выбор слота, редактирование, перенос) живут поверх ready.
//
// Гонки загрузок решаются правилом last-range-wins: каждый fetch получает
// токен, и результат применяется только если токен всё ещё текущий.
// Запросы не отменяются, устаревшие ответы просто отбрасываются.
type Controller struct {
	fetcher AgendaFetcher
	lookups LookupProvider
	clock   Clock
	metrics Metrics
	log     Logger
	loc     *time.Location

	mu         sync.Mutex
	view       domain.ViewMode
	reference  time.Time
	filter     domain.EventFilter
	rng        domain.TimeRange
	state      models.State
	events     []domain.CalendarEvent
	fetchErr   string
	fetchToken uuid.UUID
	draft      *models.Draft
	menu       models.MenuState
}

// NewController создает сетку в состоянии idle с месячным представлением
func NewController(fetcher AgendaFetcher, lookups LookupProvider, log Logger, metrics Metrics, loc *time.Location) *Controller {
	if loc == nil {
		loc = time.Local
	}
	c := &Controller{
		fetcher: fetcher,
		lookups: lookups,
		clock:   realClock{},
		metrics: metrics,
		log:     log,
		loc:     loc,
		view:    domain.ViewMonth,
		state:   models.StateIdle,
	}
	c.reference = c.clock.Now().In(loc)
	return c
}

// SetView переключает режим календаря и перезагружает диапазон
func (c *Controller) SetView(ctx context.Context, view domain.ViewMode) error {
	c.mu.Lock()
	c.view = view
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Navigate переводит сетку на другую опорную дату и перезагружает диапазон
func (c *Controller) Navigate(ctx context.Context, reference time.Time) error {
	c.mu.Lock()
	c.reference = reference.In(c.loc)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetFilter применяет фильтры бокс/механик/компания и перезагружает диапазон
func (c *Controller) SetFilter(ctx context.Context, filter domain.EventFilter) error {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh загружает события текущего диапазона.
// Поздний ответ вытесненной загрузки состояние не трогает.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	rng, err := calendar.ComputeRange(c.reference, c.view, c.loc)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	token := uuid.New()
	c.fetchToken = token
	c.rng = rng
	c.state = models.StateLoading
	view := c.view
	filter := c.filter
	c.mu.Unlock()

	// Сетевой вызов без блокировки: за это время могла стартовать
	// более новая загрузка
	bookings, fetchErr := c.fetcher.Agenda(ctx, rng, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetchToken != token {
		// Диапазон уже вытеснен более новым запросом
		if c.metrics != nil {
			c.metrics.IncGridFetch("stale")
		}
		return nil
	}

	if fetchErr != nil {
		c.state = models.StateError
		c.fetchErr = fetchErr.Error()
		if c.metrics != nil {
			c.metrics.IncGridFetch("error")
		}
		c.log.Error("grid: range fetch failed [%s .. %s): %v", rng.From.Format(time.RFC3339), rng.To.Format(time.RFC3339), fetchErr)
		return fmt.Errorf("%w: %v", ErrRangeFetch, fetchErr)
	}

	active := bookings[:0:0]
	for _, b := range bookings {
		// agenda отдаёт только активные статусы, но фильтруем и здесь:
		// закрытые/отменённые брони в календарь не попадают
		if b.IsActive() {
			active = append(active, b)
		}
	}

	events := calendar.MapEvents(active, c.lookups.CalendarLookups(), filter)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })

	// В дневном режиме подтягиваем опорную дату к первому событию,
	// чтобы заголовок дня совпадал с данными
	if view == domain.ViewDay && len(events) > 0 {
		first := calendar.StartOfDay(events[0].Start, c.loc)
		if !first.Equal(calendar.StartOfDay(c.reference, c.loc)) {
			c.reference = first
		}
	}

	c.events = events
	c.state = models.StateReady
	c.fetchErr = ""
	if c.metrics != nil {
		c.metrics.IncGridFetch("ok")
	}
	c.log.Info("grid: loaded %d events for %s [%s .. %s)", len(events), view, rng.From.Format(time.RFC3339), rng.To.Format(time.RFC3339))
	return nil
}

// Snapshot возвращает копию текущего состояния сетки
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := models.Snapshot{
		State:     c.state,
		View:      c.view,
		Reference: c.reference,
		From:      c.rng.From,
		To:        c.rng.To,
		Filter:    c.filter,
		Events:    make([]models.EventView, 0, len(c.events)),
		Workday: models.WorkdayWindow{
			StartHour: domain.WorkdayStartHour,
			EndHour:   domain.WorkdayEndHour,
		},
		Error: c.fetchErr,
	}

	for _, e := range c.events {
		snapshot.Events = append(snapshot.Events, models.EventView{
			ID:          e.ID,
			Title:       e.Title,
			Start:       e.Start,
			End:         e.End,
			Number:      e.Source.DisplayNumber(),
			Status:      string(e.Source.Status),
			StatusLabel: e.Source.Status.DisplayLabel(),
		})
	}

	if c.view == domain.ViewMonth {
		snapshot.Overflow = c.overflowCellsLocked()
	}
	return snapshot
}

// FindBooking возвращает полный снимок брони из загруженного диапазона.
// Нужен reschedule-у: backend принимает только whole-record replace,
// поэтому сетка обязана держать полную копию записи.
func (c *Controller) FindBooking(id string) (*domain.Booking, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.events {
		if e.ID == id {
			return e.Source, true
		}
	}
	return nil, false
}

// SelectSlot начинает создание брони из выбранного пустого интервала.
// Форма заполняется границами интервала; сетевых вызовов нет.
func (c *Controller) SelectSlot(start, end time.Time) (models.Draft, error) {
	if !end.IsZero() && !end.After(start) {
		return models.Draft{}, ErrInvalidSpan
	}

	draft := models.Draft{
		Mode:          models.DraftCreate,
		TechnicianIDs: []string{},
		Start:         start,
		Status:        string(domain.StatusOpen),
	}
	if !end.IsZero() {
		draft.End = &end
	}

	c.mu.Lock()
	c.draft = &draft
	c.mu.Unlock()
	return draft, nil
}

// SelectEvent открывает форму редактирования по событию.
// Поля берутся из записи за событием, id разрешаются в подписи из
// текущих справочников (могут временно показывать сырой id).
func (c *Controller) SelectEvent(bookingID string) (models.Draft, error) {
	c.mu.Lock()
	var source *domain.Booking
	for _, e := range c.events {
		if e.ID == bookingID {
			source = e.Source
			break
		}
	}
	c.mu.Unlock()

	if source == nil {
		return models.Draft{}, ErrEventNotFound
	}

	draft := c.draftFromBooking(source)
	c.mu.Lock()
	c.draft = &draft
	c.mu.Unlock()
	return draft, nil
}

// Draft возвращает активную форму, если она есть
func (c *Controller) Draft() (models.Draft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return models.Draft{}, false
	}
	return *c.draft, true
}

// ClearDraft закрывает активную форму. Зовётся после успешной записи
// или явной отмены; при ошибке записи форма остаётся открытой.
func (c *Controller) ClearDraft() {
	c.mu.Lock()
	c.draft = nil
	c.mu.Unlock()
}

func (c *Controller) draftFromBooking(b *domain.Booking) models.Draft {
	draft := models.Draft{
		Mode:          models.DraftEdit,
		BookingID:     b.ID,
		Description:   b.Description,
		VehicleID:     b.VehicleID,
		BayID:         b.BayID,
		TechnicianIDs: append([]string{}, b.TechnicianIDs...),
		CompanyID:     b.CompanyID,
		Start:         b.Start,
		End:           b.End,
		Status:        string(b.Status),
		Notes:         b.Notes,
		VehicleLabel:  c.lookups.ResolveLabel(domain.LookupVehicle, b.VehicleID),
		BayLabel:      c.lookups.ResolveLabel(domain.LookupBay, b.BayID),
	}
	if b.Complaint != nil {
		draft.Complaint = *b.Complaint
	}
	if b.FullbayServiceID != nil {
		draft.FullbayServiceID = *b.FullbayServiceID
	}
	if b.CompanyID != "" {
		draft.CompanyLabel = c.lookups.ResolveLabel(domain.LookupCompany, b.CompanyID)
	}
	for _, id := range b.TechnicianIDs {
		draft.TechnicianLabels = append(draft.TechnicianLabels, c.lookups.ResolveLabel(domain.LookupTechnician, id))
	}
	return draft
}
