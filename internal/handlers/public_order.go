package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"floreria/internal/models"
)

/* =========================
   TRACKING
========================= */

type trackOrderResponse struct {
	Order       models.Order `json:"order"`
	StatusLabel string       `json:"statusLabel"`
	TimeSlots   []string     `json:"timeSlots,omitempty"`
}

func TrackOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:code"
		defer handlePanic(c, route)

		code := normalizeOrderCode(c.Param("code"))
		if !validOrderCode(code) {
			respondWithError(c, http.StatusBadRequest, route, "el código debe tener 8 caracteres")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "pedido no encontrado")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "error al buscar el pedido")
			return
		}

		resp := trackOrderResponse{
			Order:       order,
			StatusLabel: customerStatusLabel(order.Status),
		}
		// The delivery form is only offered while the order is pending.
		if order.Status == models.StatusPending {
			resp.TimeSlots = deliveryTimeSlots()
		}

		c.JSON(http.StatusOK, resp)
	}
}

/* =========================
   CUSTOMER CONFIRMATION
========================= */

type confirmOrderRequest struct {
	SenderName        string `json:"senderName"`
	SenderPhone       string `json:"senderPhone"`
	DeliveryAddress   string `json:"deliveryAddress"`
	AddressReferences string `json:"addressReferences"`
	RecipientName     string `json:"recipientName"`
	RecipientPhone    string `json:"recipientPhone"`
	CardMessage       string `json:"cardMessage"`
	DeliveryDate      string `json:"deliveryDate"` // yyyy-MM-dd
	DeliveryTime      string `json:"deliveryTime"`
}

// toInput trims every text field once; what gets validated is exactly what
// gets persisted.
func (r confirmOrderRequest) toInput(deliveryDate time.Time) confirmationInput {
	return confirmationInput{
		SenderName:        strings.TrimSpace(r.SenderName),
		SenderPhone:       strings.TrimSpace(r.SenderPhone),
		DeliveryAddress:   strings.TrimSpace(r.DeliveryAddress),
		AddressReferences: strings.TrimSpace(r.AddressReferences),
		RecipientName:     strings.TrimSpace(r.RecipientName),
		RecipientPhone:    strings.TrimSpace(r.RecipientPhone),
		CardMessage:       strings.TrimSpace(r.CardMessage),
		DeliveryDate:      deliveryDate,
		DeliveryTime:      strings.TrimSpace(r.DeliveryTime),
	}
}

// ConfirmOrder handles the one-shot customer form: it fills the delivery
// details and moves the order from pending to confirmed in a single update.
// There is no extra confirmation step on this surface.
func ConfirmOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:code/confirm"
		defer handlePanic(c, route)

		code := normalizeOrderCode(c.Param("code"))
		if !validOrderCode(code) {
			respondWithError(c, http.StatusBadRequest, route, "el código debe tener 8 caracteres")
			return
		}

		var req confirmOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		deliveryDate, err := time.ParseInLocation("2006-01-02", req.DeliveryDate, time.Local)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "fecha de entrega inválida")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err = db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "pedido no encontrado")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "error al buscar el pedido")
			return
		}

		input := req.toInput(deliveryDate)
		if err := checkConfirmation(&order, input, time.Now()); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}

		now := time.Now()
		update := bson.M{"$set": bson.M{
			"senderName":        input.SenderName,
			"senderPhone":       input.SenderPhone,
			"deliveryAddress":   input.DeliveryAddress,
			"addressReferences": input.AddressReferences,
			"recipientName":     input.RecipientName,
			"recipientPhone":    input.RecipientPhone,
			"cardMessage":       input.CardMessage,
			"deliveryDate":      input.DeliveryDate,
			"deliveryTime":      input.DeliveryTime,
			"status":            models.StatusConfirmed,
			"confirmedAt":       now,
		}}

		// Guard on status in the filter: a second submission racing this one
		// matches nothing instead of overwriting confirmed details.
		res, err := db.Collection("orders").UpdateOne(
			ctx,
			bson.M{"_id": code, "status": models.StatusPending},
			update,
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "error al actualizar la información")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusConflict, route, "el pedido ya fue confirmado y no admite cambios")
			return
		}

		log.Println("[ORDER] [INFO] order confirmed by customer:", code)

		var updated models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "error al buscar el pedido")
			return
		}

		c.JSON(http.StatusOK, trackOrderResponse{
			Order:       updated,
			StatusLabel: customerStatusLabel(updated.Status),
		})
	}
}
