package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Calendar constants
const (
	// DefaultEventDuration применяется, когда у брони не задано время окончания.
	// Только для отображения: сама запись не изменяется.
	DefaultEventDuration = time.Hour

	// TitleDelimiter разделитель сегментов заголовка события
	TitleDelimiter = " · "

	// DisplayNumberLength длина усечённого id, когда у брони нет номера
	DisplayNumberLength = 6

	// Agenda-режим: открытое скользящее окно вместо календарного интервала
	AgendaDaysBack    = 7
	AgendaDaysForward = 30
)

// Working hours shown in day/week views
const (
	WorkdayStartHour = 6  // 06:00
	WorkdayEndHour   = 21 // 21:00
)

// ActiveStatuses список статусов, попадающих в календарь и occupancy
var ActiveStatuses = []BookingStatus{
	StatusOpen,
	StatusInProgress,
}
