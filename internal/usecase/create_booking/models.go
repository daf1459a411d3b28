package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-SchedulingConsole/pkg/ptr"
)

// Request данные формы создания брони
type Request struct {
	Complaint        string
	Description      string
	FullbayServiceID string
	VehicleID        string
	BayID            string
	TechnicianIDs    []string
	CompanyID        string
	Start            time.Time
	End              *time.Time
	Notes            string
}

// toInput конвертирует запрос в whole-record input для FleetService.
// Новая бронь всегда создаётся открытой.
func (r *Request) toInput() fleetservice.BookingInput {
	input := fleetservice.BookingInput{
		Description:   r.Description,
		VehicleID:     r.VehicleID,
		BayID:         r.BayID,
		TechnicianIDs: r.TechnicianIDs,
		CompanyID:     r.CompanyID,
		Start:         r.Start,
		End:           r.End,
		Status:        "open",
		Notes:         r.Notes,
	}
	if r.Complaint != "" {
		input.Complaint = ptr.Ptr(r.Complaint)
	}
	if r.FullbayServiceID != "" {
		input.FullbayServiceID = ptr.Ptr(r.FullbayServiceID)
	}
	if input.TechnicianIDs == nil {
		input.TechnicianIDs = []string{}
	}
	return input
}
