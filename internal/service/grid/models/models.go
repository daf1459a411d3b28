package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// State состояние календарной сетки
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// DraftMode режим активной формы
type DraftMode string

const (
	DraftCreate DraftMode = "create"
	DraftEdit   DraftMode = "edit"
)

// Draft активная форма создания/редактирования брони.
// Заполняется из выбранного слота или существующей записи; живёт до
// успешного сохранения или явной отмены. Ошибка записи форму не
// закрывает: данные остаются для исправления и повтора.
type Draft struct {
	Mode      DraftMode `json:"mode"`
	BookingID string    `json:"booking_id,omitempty"`

	Complaint        string     `json:"complaint"`
	Description      string     `json:"description"`
	FullbayServiceID string     `json:"fullbay_service_id"`
	VehicleID        string     `json:"vehicle_id"`
	BayID            string     `json:"bay_id"`
	TechnicianIDs    []string   `json:"technician_ids"`
	CompanyID        string     `json:"company_id"`
	Start            time.Time  `json:"start"`
	End              *time.Time `json:"end,omitempty"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`

	// Подписи, разрешённые из текущих справочников (могут отставать)
	VehicleLabel     string   `json:"vehicle_label,omitempty"`
	BayLabel         string   `json:"bay_label,omitempty"`
	CompanyLabel     string   `json:"company_label,omitempty"`
	TechnicianLabels []string `json:"technician_labels,omitempty"`
}

// EventView событие в снимке сетки
type EventView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Number      string    `json:"number"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
}

// OverflowCell ячейка дня, не вместившая все события ("+X more")
type OverflowCell struct {
	Date   string   `json:"date"` // YYYY-MM-DD
	Total  int      `json:"total"`
	Hidden []string `json:"hidden"` // id скрытых событий
}

// WorkdayWindow рабочие часы, отображаемые в day/week представлениях
type WorkdayWindow struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Snapshot снимок состояния сетки для HTTP ответа
type Snapshot struct {
	State     State              `json:"state"`
	View      domain.ViewMode    `json:"view"`
	Reference time.Time          `json:"reference"`
	From      time.Time          `json:"from"`
	To        time.Time          `json:"to"`
	Filter    domain.EventFilter `json:"-"`
	Events    []EventView        `json:"events"`
	Overflow  []OverflowCell     `json:"overflow,omitempty"`
	Workday   WorkdayWindow      `json:"workday"`
	Error     string             `json:"error,omitempty"`
}

// Rect экранный прямоугольник ячейки-якоря (px)
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Size размер окна просмотра (px)
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MenuItem запись выпадающего списка скрытых событий
type MenuItem struct {
	BookingID string `json:"booking_id"`
	Title     string `json:"title"`
	TimeLabel string `json:"time_label"` // интервал события, часы и минуты
	Number    string `json:"number"`
}

// MenuState состояние выпадающего меню переполнения.
// Для одной сетки открыто не более одного меню.
type MenuState struct {
	Open  bool       `json:"open"`
	Date  string     `json:"date,omitempty"`
	Top   int        `json:"top"`
	Left  int        `json:"left"`
	Width int        `json:"width"`
	Title string     `json:"title,omitempty"`
	Items []MenuItem `json:"items"`
	// Placeholder заполняется, когда в выбранный день событий нет
	Placeholder string `json:"placeholder,omitempty"`
}
