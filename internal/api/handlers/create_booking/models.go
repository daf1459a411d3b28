package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	createBooking "github.com/m04kA/SMC-SchedulingConsole/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Complaint        string     `json:"complaint"`
	Description      string     `json:"description"`
	FullbayServiceID string     `json:"fullbay_service_id"`
	VehicleID        string     `json:"vehicle_id"`
	BayID            string     `json:"bay_id"`
	TechnicianIDs    []string   `json:"technician_ids"`
	CompanyID        string     `json:"company_id"`
	Start            time.Time  `json:"start"`
	End              *time.Time `json:"end,omitempty"`
	Notes            string     `json:"notes"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	VehicleID     string     `json:"vehicle_id"`
	BayID         string     `json:"bay_id"`
	TechnicianIDs []string   `json:"technician_ids"`
	CompanyID     string     `json:"company_id"`
	Start         time.Time  `json:"start"`
	End           *time.Time `json:"end,omitempty"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Complaint:        r.Complaint,
		Description:      r.Description,
		FullbayServiceID: r.FullbayServiceID,
		VehicleID:        r.VehicleID,
		BayID:            r.BayID,
		TechnicianIDs:    r.TechnicianIDs,
		CompanyID:        r.CompanyID,
		Start:            r.Start,
		End:              r.End,
		Notes:            r.Notes,
	}
}

// FromDomain конвертирует доменную бронь в HTTP response
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Number:        b.DisplayNumber(),
		VehicleID:     b.VehicleID,
		BayID:         b.BayID,
		TechnicianIDs: b.TechnicianIDs,
		CompanyID:     b.CompanyID,
		Start:         b.Start,
		End:           b.End,
		Status:        string(b.Status),
		StatusLabel:   b.Status.DisplayLabel(),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
