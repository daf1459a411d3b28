package get_summary

// Summary счётчики для верхней панели консоли
type Summary struct {
	OpenBookings  int
	TodayBookings int
	Bays          int
}
