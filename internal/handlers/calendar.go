package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"floreria/internal/models"
)

// calendarOrder narrows the calendar filter to orders that actually have a
// scheduled delivery: confirmed or in_process with a delivery date.
func calendarOrder(o *models.Order) bool {
	if o.DeliveryDate == nil {
		return false
	}
	return o.Status == models.StatusConfirmed || o.Status == models.StatusInProcess
}

// GetDeliveryCalendar feeds the delivery calendar, ordered by delivery
// date. A day=YYYY-MM-DD query narrows to a single day; otherwise the date
// query applies a period filter over the delivery date.
func GetDeliveryCalendar(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/calendar"
		defer handlePanic(c, route)

		var selectedDay *time.Time
		if day := strings.TrimSpace(c.Query("day")); day != "" {
			parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "fecha inválida")
				return
			}
			selectedDay = &parsed
		}
		dateFilter := strings.TrimSpace(c.Query("date"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "deliveryDate", Value: 1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
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
		deliveries := make([]adminOrderView, 0, len(orders))
		for i := range orders {
			o := &orders[i]
			if !calendarOrder(o) {
				continue
			}
			if selectedDay != nil {
				if !sameDay(*o.DeliveryDate, *selectedDay) {
					continue
				}
			} else if !inDateFilter(*o.DeliveryDate, dateFilter, now) {
				continue
			}
			deliveries = append(deliveries, adminOrderView{Order: *o, StatusLabel: adminStatusLabel(o.Status)})
		}

		c.JSON(http.StatusOK, gin.H{"data": deliveries})
	}
}
