package fleetservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// Client клиент для работы с FleetService (booking backend).
// Единственная точка доступа консоли к данным: бронирования, занятость
// боксов и справочники живут на стороне FleetService.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента FleetService
func NewClient(baseURL string, timeout time.Duration, log Logger, m Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
	}
}

// Agenda возвращает брони, чей интервал пересекает [range.From, range.To).
// Фильтры по боксу/механику/компании применяются на стороне FleetService.
func (c *Client) Agenda(ctx context.Context, r domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error) {
	q := url.Values{}
	q.Set("from", r.From.Format(time.RFC3339))
	q.Set("to", r.To.Format(time.RFC3339))
	if filter.BayID != "" {
		q.Set("bay_id", filter.BayID)
	}
	if filter.TechnicianID != "" {
		q.Set("technician_id", filter.TechnicianID)
	}
	if filter.CompanyID != "" {
		q.Set("company_id", filter.CompanyID)
	}

	var dtos []bookingDTO
	if err := c.getJSON(ctx, "agenda", "/api/bookings/agenda?"+q.Encode(), &dtos); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(dtos))
	for i := range dtos {
		bookings = append(bookings, dtos[i].toDomain())
	}
	return bookings, nil
}

// BayOccupancy возвращает точечный снимок занятости: bay id -> активная бронь
func (c *Client) BayOccupancy(ctx context.Context) (map[string]domain.OccupancyEntry, error) {
	var resp occupancyResponse
	if err := c.getJSON(ctx, "bay_occupancy", "/api/bays/occupancy", &resp); err != nil {
		return nil, err
	}

	occupancy := make(map[string]domain.OccupancyEntry, len(resp.Occupancy))
	for bayID := range resp.Occupancy {
		dto := resp.Occupancy[bayID]
		occupancy[bayID] = dto.toDomain()
	}
	return occupancy, nil
}

// CreateBooking создает новую бронь
func (c *Client) CreateBooking(ctx context.Context, input BookingInput) (*domain.Booking, error) {
	var dto bookingDTO
	if err := c.sendJSON(ctx, "create_booking", http.MethodPost, "/api/bookings", input, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// UpdateBooking обновляет бронь целиком (whole-record replace, не patch)
func (c *Client) UpdateBooking(ctx context.Context, id string, input BookingInput) (*domain.Booking, error) {
	var dto bookingDTO
	path := "/api/bookings/" + url.PathEscape(id)
	if err := c.sendJSON(ctx, "update_booking", http.MethodPut, path, input, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// CloseBooking переводит бронь в статус closed ("ready" для оператора)
func (c *Client) CloseBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var dto bookingDTO
	path := "/api/bookings/" + url.PathEscape(id) + "/close"
	if err := c.sendJSON(ctx, "close_booking", http.MethodPost, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// CancelBooking переводит бронь в статус canceled
func (c *Client) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var dto bookingDTO
	path := "/api/bookings/" + url.PathEscape(id) + "/cancel"
	if err := c.sendJSON(ctx, "cancel_booking", http.MethodPost, path, nil, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// SearchLookup удалённый поиск по справочнику для typeahead.
// Пустой query валиден: FleetService отдаёт верхушку справочника.
func (c *Client) SearchLookup(ctx context.Context, kind domain.LookupKind, query string) ([]domain.LookupOption, error) {
	q := url.Values{}
	if query != "" {
		q.Set("query", query)
	}
	path := "/api/lookups/" + url.PathEscape(string(kind)) + "?" + q.Encode()

	var dtos []lookupOptionDTO
	if err := c.getJSON(ctx, "search_lookup", path, &dtos); err != nil {
		return nil, err
	}
	options := make([]domain.LookupOption, 0, len(dtos))
	for _, d := range dtos {
		options = append(options, domain.LookupOption{ID: d.ID, Label: d.Label})
	}
	return options, nil
}

// ListBays возвращает справочник боксов
func (c *Client) ListBays(ctx context.Context) ([]*domain.Bay, error) {
	var dtos []bayDTO
	if err := c.getJSON(ctx, "list_bays", "/api/bays", &dtos); err != nil {
		return nil, err
	}
	bays := make([]*domain.Bay, 0, len(dtos))
	for _, d := range dtos {
		bays = append(bays, &domain.Bay{ID: d.ID, Name: d.Name, Capacity: d.Capacity})
	}
	return bays, nil
}

// ListVehicles возвращает справочник техники
func (c *Client) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	var dtos []vehicleDTO
	if err := c.getJSON(ctx, "list_vehicles", "/api/vehicles", &dtos); err != nil {
		return nil, err
	}
	vehicles := make([]*domain.Vehicle, 0, len(dtos))
	for _, d := range dtos {
		vehicles = append(vehicles, &domain.Vehicle{
			ID:        d.ID,
			CompanyID: d.CompanyID,
			Type:      d.Type,
			VIN:       d.VIN,
			Plate:     d.Plate,
			Make:      d.Make,
			Model:     d.Model,
			Year:      d.Year,
		})
	}
	return vehicles, nil
}

// ListTechnicians возвращает справочник механиков
func (c *Client) ListTechnicians(ctx context.Context) ([]*domain.Technician, error) {
	var dtos []technicianDTO
	if err := c.getJSON(ctx, "list_technicians", "/api/technicians", &dtos); err != nil {
		return nil, err
	}
	technicians := make([]*domain.Technician, 0, len(dtos))
	for _, d := range dtos {
		technicians = append(technicians, &domain.Technician{
			ID:     d.ID,
			Name:   d.Name,
			Skills: d.Skills,
			Phone:  d.Phone,
			Email:  d.Email,
		})
	}
	return technicians, nil
}

// ListCompanies возвращает справочник компаний
func (c *Client) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	var dtos []companyDTO
	if err := c.getJSON(ctx, "list_companies", "/api/companies", &dtos); err != nil {
		return nil, err
	}
	companies := make([]*domain.Company, 0, len(dtos))
	for _, d := range dtos {
		companies = append(companies, &domain.Company{
			ID:      d.ID,
			Name:    d.Name,
			Contact: d.Contact,
			Phone:   d.Phone,
		})
	}
	return companies, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, operation, path string, out interface{}) error {
	return c.do(ctx, operation, http.MethodGet, path, nil, out)
}

// sendJSON выполняет запрос с JSON телом и опционально декодирует ответ
func (c *Client) sendJSON(ctx context.Context, operation, method, path string, body, out interface{}) error {
	return c.do(ctx, operation, method, path, body, out)
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	started := time.Now()
	err := c.doOnce(ctx, method, path, body, out)
	if c.metrics != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		c.metrics.IncPortRequest(operation, result)
		c.metrics.ObservePortDuration(operation, time.Since(started))
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s %s", ErrBadRequest, method, path)
	case http.StatusNotFound:
		return ErrBookingNotFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s %s", ErrConflict, method, path)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
