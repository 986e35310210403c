package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"floreria/internal/models"
)

type dashboardStats struct {
	PendingOrders       int     `json:"pendingOrders"`
	ConfirmedOrders     int     `json:"confirmedOrders"`
	ReadyToShip         int     `json:"readyToShip"`
	PendingMessages     int     `json:"pendingMessages"`
	DeliveriesToday     int     `json:"deliveriesToday"`
	TotalActive         int     `json:"totalActive"`
	TotalRevenue        float64 `json:"totalRevenue"`
	AverageOrderValue   float64 `json:"averageOrderValue"`
	OrderCompletionRate float64 `json:"orderCompletionRate"`
}

type dashboardChartPoint struct {
	Date    string  `json:"date"` // dd/MM
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// computeDashboardStats derives the back-office KPIs from the full order
// list. Revenue counts completed orders only.
func computeDashboardStats(orders []models.Order, now time.Time) dashboardStats {
	stats := dashboardStats{}
	completed := 0
	shipCutoff := startOfDay(now).Add(24 * time.Hour)

	for i := range orders {
		o := &orders[i]
		switch o.Status {
		case models.StatusPending:
			stats.PendingOrders++
		case models.StatusConfirmed:
			stats.ConfirmedOrders++
			if o.DeliveryDate != nil && !o.DeliveryDate.After(shipCutoff) {
				stats.ReadyToShip++
			}
		case models.StatusCompleted:
			completed++
			stats.TotalRevenue += o.TotalAmount
		}

		if o.CardMessage == "" {
			stats.PendingMessages++
		}
		if o.DeliveryDate != nil && sameDay(*o.DeliveryDate, now) {
			stats.DeliveriesToday++
		}
		if !o.IsTerminal() {
			stats.TotalActive++
		}
	}

	if completed > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(completed)
	}
	if len(orders) > 0 {
		stats.OrderCompletionRate = float64(completed) / float64(len(orders)) * 100
	}
	return stats
}

// computeDashboardChart buckets the last seven days of created orders,
// oldest day first.
func computeDashboardChart(orders []models.Order, now time.Time) []dashboardChartPoint {
	points := make([]dashboardChartPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := startOfDay(now).AddDate(0, 0, -i)
		point := dashboardChartPoint{Date: day.Format("02/01")}
		for j := range orders {
			if sameDay(orders[j].CreatedAt, day) {
				point.Orders++
				point.Revenue += orders[j].TotalAmount
			}
		}
		points = append(points, point)
	}
	return points
}

// GetDashboard returns the revenue dashboard: KPI counters plus a 7-day
// order/revenue series.
func GetDashboard(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/dashboard"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"stats": computeDashboardStats(orders, now),
			"chart": computeDashboardChart(orders, now),
		})
	}
}
