package service

import "expense_tracker/internal/models"

// Named relative windows accepted by ListFilter.DateFilter.
const (
	WindowWeek    = "week"
	WindowMonth   = "month"
	Window3Months = "3months"
)

// windowDays is the length of each named window, today included.
var windowDays = map[string]int{
	WindowWeek:    7,
	WindowMonth:   30,
	Window3Months: 90,
}

// ListFilter narrows a user's expenses. DateFilter and Start/End are mutually exclusive.
type ListFilter struct {
	Category   models.Category // empty means any
	DateFilter string          // "", "week", "month", "3months"
	Start      models.Date     // inclusive; zero means no lower bound
	End        models.Date     // inclusive; zero means no upper bound
}
