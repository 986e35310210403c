package handlers

import (
	"time"

	"floreria/internal/models"
)

// Date filter values accepted by the order list and calendar.
const (
	filterAll       = "all"
	filterToday     = "today"
	filterThisWeek  = "thisWeek"
	filterLastWeek  = "lastWeek"
	filterThisMonth = "thisMonth"
	filterLastMonth = "lastMonth"
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek returns the Sunday beginning the week of t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// dateFilterRange resolves a filter name to a closed interval [start, end]
// relative to now. ok is false for "all" or unknown filters, meaning no
// date restriction applies.
func dateFilterRange(filter string, now time.Time) (start, end time.Time, ok bool) {
	switch filter {
	case filterToday:
		return startOfDay(now), endOfDay(now), true
	case filterThisWeek:
		start = startOfWeek(now)
		return start, endOfDay(start.AddDate(0, 0, 6)), true
	case filterLastWeek:
		start = startOfWeek(now).AddDate(0, 0, -7)
		return start, endOfDay(start.AddDate(0, 0, 6)), true
	case filterThisMonth:
		start = startOfMonth(now)
		return start, endOfDay(start.AddDate(0, 1, -1)), true
	case filterLastMonth:
		start = startOfMonth(now).AddDate(0, -1, 0)
		return start, endOfDay(start.AddDate(0, 1, -1)), true
	}
	return time.Time{}, time.Time{}, false
}

// inDateFilter applies closed-interval semantics: values exactly on a
// boundary are included.
func inDateFilter(value time.Time, filter string, now time.Time) bool {
	start, end, ok := dateFilterRange(filter, now)
	if !ok {
		return true
	}
	return !value.Before(start) && !value.After(end)
}

// matchesStatusFilter partitions orders by status: "all", "active"
// (everything except cancelled), or a single status value.
func matchesStatusFilter(o *models.Order, filter string) bool {
	switch filter {
	case "", filterAll:
		return true
	case "active":
		return o.IsActive()
	}
	return o.Status == filter
}
