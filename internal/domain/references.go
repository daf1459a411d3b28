package domain

import (
	"fmt"
	"time"
)

// Bay represents a physical service location, addressed by the
// BAY-<lane>-<position> naming convention (case-insensitive match key).
type Bay struct {
	ID        string
	Name      string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vehicle справочная запись единицы техники из FleetService
type Vehicle struct {
	ID        string
	CompanyID string
	Type      string
	VIN       string
	Plate     string
	Make      string
	Model     string
	Year      int
}

// DisplayLabel returns plate, falling back to VIN, falling back to make/model
func (v *Vehicle) DisplayLabel() string {
	if v.Plate != "" {
		return v.Plate
	}
	if v.VIN != "" {
		return v.VIN
	}
	return fmt.Sprintf("%s %s", v.Make, v.Model)
}

// Technician справочная запись механика
type Technician struct {
	ID     string
	Name   string
	Skills []string
	Phone  string
	Email  string
}

// Company справочная запись компании-клиента
type Company struct {
	ID      string
	Name    string
	Contact string
	Phone   string
}

// LookupKind вид справочника для typeahead-поиска
type LookupKind string

const (
	LookupVehicle    LookupKind = "vehicle"
	LookupBay        LookupKind = "bay"
	LookupTechnician LookupKind = "technician"
	LookupCompany    LookupKind = "company"
)

// ParseLookupKind парсит вид справочника из строки запроса
func ParseLookupKind(s string) (LookupKind, bool) {
	switch LookupKind(s) {
	case LookupVehicle, LookupBay, LookupTechnician, LookupCompany:
		return LookupKind(s), true
	}
	return "", false
}

// LookupOption элемент справочника: id + отображаемая подпись
type LookupOption struct {
	ID    string
	Label string
}

// OccupancyEntry активная бронь в боксе на момент снимка
type OccupancyEntry struct {
	BookingID string
	Number    string
	BayID     string
	VehicleID string
	CompanyID string
	Start     time.Time
	End       *time.Time
	Status    BookingStatus
}

// Summary returns the tooltip text for an occupied slot
func (e *OccupancyEntry) Summary() string {
	end := "now"
	if e.End != nil {
		end = e.End.Format("2006-01-02 15:04")
	}
	number := e.Number
	if number == "" && len(e.BookingID) > DisplayNumberLength {
		number = e.BookingID[:DisplayNumberLength]
	} else if number == "" {
		number = e.BookingID
	}
	return fmt.Sprintf("#%s\nUnit: %s\nCompany: %s\n%s — %s",
		number, e.VehicleID, e.CompanyID, e.Start.Format("2006-01-02 15:04"), end)
}
