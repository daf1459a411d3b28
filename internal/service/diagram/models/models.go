package models

// Фиксированная геометрия чертежа (px). Совпадает для inline и
// fullscreen представления: обе раскладки строит один и тот же Layout.
const (
	BayWidth      = 180
	SlotHeight    = 88
	TopPadding    = 16
	RailThickness = 3
	TruckHeight   = 48
)

// RenderedSlot одна позиция бокса на план-схеме
type RenderedSlot struct {
	Lane        int    `json:"lane"`
	Row         int    `json:"row"`
	Column      int    `json:"column"`
	PositionKey string `json:"position_key"` // BAY-<lane>-<pos>
	BayID       string `json:"bay_id,omitempty"`
	BayName     string `json:"bay_name"`
	Placeholder bool   `json:"placeholder"`
	Occupied    bool   `json:"occupied"`
	BookingID   string `json:"booking_id,omitempty"`
	Summary     string `json:"summary"` // tooltip
	TopPx       int    `json:"top_px"`
	LeftPercent int    `json:"left_percent"` // 50 для одиночного, 25/75 для парного ряда
}

// RenderedRow один ряд полосы
type RenderedRow struct {
	Columns int `json:"columns"` // 1 или 2
	TopPx   int `json:"top_px"`
}

// RenderedLane полностью размеченная полоса план-схемы
type RenderedLane struct {
	Lane     int            `json:"lane"`
	WidthPx  int            `json:"width_px"`
	HeightPx int            `json:"height_px"`
	OffsetPx int            `json:"offset_px"`
	Rows     []RenderedRow  `json:"rows"`
	Slots    []RenderedSlot `json:"slots"`
}
