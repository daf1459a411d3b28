package fleetservice

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// bookingDTO модель брони на проводе FleetService
type bookingDTO struct {
	ID               string     `json:"id"`
	Number           string     `json:"number,omitempty"`
	Complaint        *string    `json:"complaint,omitempty"`
	Description      string     `json:"description"`
	FullbayServiceID *string    `json:"fullbay_service_id,omitempty"`
	VehicleID        string     `json:"vehicle_id"`
	BayID            string     `json:"bay_id"`
	TechnicianIDs    []string   `json:"technician_ids"`
	CompanyID        string     `json:"company_id"`
	Start            time.Time  `json:"start"`
	End              *time.Time `json:"end,omitempty"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`
	CreatedBy        string     `json:"created_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at,omitempty"`
}

func (d *bookingDTO) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:               d.ID,
		Number:           d.Number,
		Complaint:        d.Complaint,
		Description:      d.Description,
		FullbayServiceID: d.FullbayServiceID,
		VehicleID:        d.VehicleID,
		BayID:            d.BayID,
		TechnicianIDs:    d.TechnicianIDs,
		CompanyID:        d.CompanyID,
		Start:            d.Start,
		End:              d.End,
		Status:           domain.BookingStatus(d.Status),
		Notes:            d.Notes,
		CreatedBy:        d.CreatedBy,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// BookingInput полная запись брони для create/update.
// FleetService принимает PUT только как whole-record replace, поэтому
// при reschedule отправляется вся запись с заменёнными start/end.
type BookingInput struct {
	Complaint        *string    `json:"complaint,omitempty"`
	Description      string     `json:"description"`
	FullbayServiceID *string    `json:"fullbay_service_id,omitempty"`
	VehicleID        string     `json:"vehicle_id"`
	BayID            string     `json:"bay_id"`
	TechnicianIDs    []string   `json:"technician_ids"`
	CompanyID        string     `json:"company_id,omitempty"`
	Start            time.Time  `json:"start"`
	End              *time.Time `json:"end,omitempty"`
	Status           string     `json:"status,omitempty"`
	Notes            string     `json:"notes"`
}

// InputFromBooking строит whole-record input из снимка брони.
// Статус намеренно не переносится, иначе FleetService сбросит его
// при редактировании.
func InputFromBooking(b *domain.Booking) BookingInput {
	return BookingInput{
		Complaint:        b.Complaint,
		Description:      b.Description,
		FullbayServiceID: b.FullbayServiceID,
		VehicleID:        b.VehicleID,
		BayID:            b.BayID,
		TechnicianIDs:    b.TechnicianIDs,
		CompanyID:        b.CompanyID,
		Start:            b.Start,
		End:              b.End,
		Notes:            b.Notes,
	}
}

// occupancyDTO снимок занятости: bay id -> активная бронь
type occupancyResponse struct {
	Occupancy map[string]occupancyDTO `json:"occupancy"`
}

type occupancyDTO struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"`
	BayID     string     `json:"bay_id"`
	VehicleID string     `json:"vehicle_id"`
	CompanyID string     `json:"company_id"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Status    string     `json:"status"`
}

func (d *occupancyDTO) toDomain() domain.OccupancyEntry {
	return domain.OccupancyEntry{
		BookingID: d.ID,
		Number:    d.Number,
		BayID:     d.BayID,
		VehicleID: d.VehicleID,
		CompanyID: d.CompanyID,
		Start:     d.Start,
		End:       d.End,
		Status:    domain.BookingStatus(d.Status),
	}
}

// bayDTO справочная запись бокса
type bayDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// vehicleDTO справочная запись единицы техники
type vehicleDTO struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Type      string `json:"type"`
	VIN       string `json:"vin"`
	Plate     string `json:"plate"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
}

// technicianDTO справочная запись механика
type technicianDTO struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Phone  string   `json:"phone"`
	Email  string   `json:"email"`
}

// companyDTO справочная запись компании
type companyDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

// lookupOptionDTO элемент ответа поиска по справочнику
type lookupOptionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ErrorResponse модель ошибки от FleetService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
