package handlers

import (
	"testing"
	"time"

	"floreria/internal/models"
)

func TestThisMonthIncludesFirstDayBoundary(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
	if !inDateFilter(created, filterThisMonth, now) {
		t.Fatal("order created 2024-01-01T00:00 should match thisMonth on 2024-01-15")
	}

	now = time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local)
	if inDateFilter(created, filterThisMonth, now) {
		t.Fatal("order created 2024-01-01T00:00 should not match thisMonth on 2024-02-01")
	}
	if !inDateFilter(created, filterLastMonth, now) {
		t.Fatal("order created 2024-01-01T00:00 should match lastMonth on 2024-02-01")
	}
}

func TestTodayIsClosedInterval(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

	tests := []struct {
		value time.Time
		want  bool
	}{
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), true},  // lower boundary
		{time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local), true},
		{time.Date(2024, 1, 14, 23, 59, 59, 0, time.Local), false},
		{time.Date(2024, 1, 16, 0, 0, 0, 0, time.Local), false}, // tomorrow is not today
	}
	for _, tt := range tests {
		if got := inDateFilter(tt.value, filterToday, now); got != tt.want {
			t.Fatalf("today filter for %v = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestWeekFiltersStartOnSunday(t *testing.T) {
	// 2024-01-17 is a Wednesday; its week runs Sun 14th .. Sat 20th
	now := time.Date(2024, 1, 17, 12, 0, 0, 0, time.Local)

	start, end, ok := dateFilterRange(filterThisWeek, now)
	if !ok {
		t.Fatal("thisWeek should resolve to a range")
	}
	if start.Day() != 14 || start.Weekday() != time.Sunday {
		t.Fatalf("thisWeek start = %v, want Sunday the 14th", start)
	}
	if end.Day() != 20 || end.Weekday() != time.Saturday {
		t.Fatalf("thisWeek end = %v, want Saturday the 20th", end)
	}

	lastStart, lastEnd, _ := dateFilterRange(filterLastWeek, now)
	if lastStart.Day() != 7 || lastEnd.Day() != 13 {
		t.Fatalf("lastWeek = %v .. %v, want Jan 7 .. Jan 13", lastStart, lastEnd)
	}

	if !inDateFilter(time.Date(2024, 1, 14, 0, 0, 0, 0, time.Local), filterThisWeek, now) {
		t.Fatal("Sunday boundary should be included in thisWeek")
	}
	if !inDateFilter(time.Date(2024, 1, 13, 23, 0, 0, 0, time.Local), filterLastWeek, now) {
		t.Fatal("Saturday should be included in lastWeek")
	}
}

func TestAllAndUnknownFiltersMatchEverything(t *testing.T) {
	now := time.Now()
	old := now.AddDate(-2, 0, 0)
	if !inDateFilter(old, filterAll, now) || !inDateFilter(old, "", now) {
		t.Fatal("all filter should match any date")
	}
}

func TestStatusFilterPartitions(t *testing.T) {
	cancelled := &models.Order{Status: models.StatusCancelled}
	confirmed := &models.Order{Status: models.StatusConfirmed}

	if matchesStatusFilter(cancelled, "active") {
		t.Fatal("cancelled order should not be active")
	}
	if !matchesStatusFilter(confirmed, "active") {
		t.Fatal("confirmed order should be active")
	}
	if !matchesStatusFilter(cancelled, filterAll) {
		t.Fatal("all should include cancelled orders")
	}
	if !matchesStatusFilter(confirmed, models.StatusConfirmed) {
		t.Fatal("exact status filter should match")
	}
	if matchesStatusFilter(confirmed, models.StatusPending) {
		t.Fatal("exact status filter should not match another status")
	}
}
