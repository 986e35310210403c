package handlers

import (
	"testing"
	"time"

	"floreria/internal/models"
)

func dashboardFixture(now time.Time) []models.Order {
	today := startOfDay(now).Add(15 * time.Hour)
	tomorrow := startOfDay(now).AddDate(0, 0, 1).Add(12 * time.Hour)
	nextWeek := startOfDay(now).AddDate(0, 0, 7)

	return []models.Order{
		{ID: "AAAA2222", Status: models.StatusPending, TotalAmount: 100, CreatedAt: now},
		{
			ID: "BBBB3333", Status: models.StatusConfirmed, TotalAmount: 200,
			CreatedAt: now, DeliveryDate: &today, CardMessage: "Felicidades",
		},
		{
			ID: "CCCC4444", Status: models.StatusConfirmed, TotalAmount: 300,
			CreatedAt: now.AddDate(0, 0, -1), DeliveryDate: &nextWeek, CardMessage: "Un abrazo",
		},
		{
			ID: "DDDD5555", Status: models.StatusCompleted, TotalAmount: 400,
			CreatedAt: now.AddDate(0, 0, -2), DeliveryDate: &tomorrow, CardMessage: "Gracias",
		},
		{
			ID: "EEEE6666", Status: models.StatusCompleted, TotalAmount: 600,
			CreatedAt: now.AddDate(0, 0, -2), CardMessage: "Con cariño",
		},
		{ID: "FFFF7777", Status: models.StatusCancelled, TotalAmount: 999, CreatedAt: now.AddDate(0, 0, -3)},
	}
}

func TestComputeDashboardStats(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	stats := computeDashboardStats(dashboardFixture(now), now)

	if stats.PendingOrders != 1 {
		t.Fatalf("PendingOrders = %d", stats.PendingOrders)
	}
	if stats.ConfirmedOrders != 2 {
		t.Fatalf("ConfirmedOrders = %d", stats.ConfirmedOrders)
	}
	// only the confirmed order delivering within the next day ships soon
	if stats.ReadyToShip != 1 {
		t.Fatalf("ReadyToShip = %d", stats.ReadyToShip)
	}
	// pending order plus the cancelled one carry no card message
	if stats.PendingMessages != 2 {
		t.Fatalf("PendingMessages = %d", stats.PendingMessages)
	}
	if stats.DeliveriesToday != 1 {
		t.Fatalf("DeliveriesToday = %d", stats.DeliveriesToday)
	}
	if stats.TotalActive != 3 {
		t.Fatalf("TotalActive = %d", stats.TotalActive)
	}
	// revenue comes from completed orders only
	if stats.TotalRevenue != 1000 {
		t.Fatalf("TotalRevenue = %v", stats.TotalRevenue)
	}
	if stats.AverageOrderValue != 500 {
		t.Fatalf("AverageOrderValue = %v", stats.AverageOrderValue)
	}
	// 2 completed out of 6 orders
	if rate := stats.OrderCompletionRate; rate < 33.3 || rate > 33.4 {
		t.Fatalf("OrderCompletionRate = %v", rate)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := computeDashboardStats(nil, time.Now())
	if stats.AverageOrderValue != 0 || stats.OrderCompletionRate != 0 {
		t.Fatalf("empty order list must not divide by zero: %+v", stats)
	}
}

func TestComputeDashboardChart(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
	chart := computeDashboardChart(dashboardFixture(now), now)

	if len(chart) != 7 {
		t.Fatalf("expected 7 points, got %d", len(chart))
	}
	if chart[0].Date != "09/01" || chart[6].Date != "15/01" {
		t.Fatalf("expected oldest-first dd/MM labels, got %s .. %s", chart[0].Date, chart[6].Date)
	}

	last := chart[6]
	if last.Orders != 2 || last.Revenue != 300 {
		t.Fatalf("today bucket = %+v, want 2 orders / 300 revenue", last)
	}
	dayBefore := chart[4]
	if dayBefore.Orders != 2 || dayBefore.Revenue != 1000 {
		t.Fatalf("two-days-ago bucket = %+v, want 2 orders / 1000 revenue", dayBefore)
	}
}
