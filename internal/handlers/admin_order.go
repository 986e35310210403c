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
	"go.mongodb.org/mongo-driver/mongo/options"

	"floreria/internal/models"
)

/* =========================
   LIST
========================= */

type adminOrderView struct {
	models.Order
	StatusLabel string `json:"statusLabel"`
}

// GetAllOrders lists orders newest first. Status and date filters are
// applied in memory over the fetched list; both default to showing active
// orders with no date restriction.
func GetAllOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/orders"
		defer handlePanic(c, route)

		statusFilter := strings.TrimSpace(c.Query("status"))
		if statusFilter == "" {
			statusFilter = "active"
		}
		dateFilter := strings.TrimSpace(c.Query("date"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
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
		views := make([]adminOrderView, 0, len(orders))
		for i := range orders {
			o := &orders[i]
			if !matchesStatusFilter(o, statusFilter) {
				continue
			}
			if !inDateFilter(o.CreatedAt, dateFilter, now) {
				continue
			}
			views = append(views, adminOrderView{Order: *o, StatusLabel: adminStatusLabel(o.Status)})
		}

		c.JSON(http.StatusOK, gin.H{"data": views})
	}
}

/* =========================
   CREATE (manual entry)
========================= */

type createOrderRequest struct {
	CustomerName     string  `json:"customerName" binding:"required"`
	CustomerWhatsapp string  `json:"customerWhatsapp" binding:"required"`
	TotalAmount      float64 `json:"totalAmount"`
	Characteristics  string  `json:"characteristics" binding:"required"`
}

// CreateOrder registers a new order in pending state with a fresh tracking
// code. Delivery details stay empty until the customer confirms.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.TotalAmount < 0 {
			respondWithError(c, http.StatusBadRequest, route, "el monto no puede ser negativo")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// Regenerate on the unlikely code collision.
		var order models.Order
		for attempt := 0; attempt < 3; attempt++ {
			code, err := generateOrderCode()
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "code generation failed")
				return
			}

			order = models.Order{
				ID:               code,
				CustomerName:     strings.TrimSpace(req.CustomerName),
				CustomerWhatsapp: strings.TrimSpace(req.CustomerWhatsapp),
				TotalAmount:      req.TotalAmount,
				Characteristics:  strings.TrimSpace(req.Characteristics),
				Status:           models.StatusPending,
				CreatedAt:        time.Now(),
			}

			_, err = db.Collection("orders").InsertOne(ctx, order)
			if err == nil {
				log.Println("[ORDER] [INFO] order created:", code)
				c.JSON(http.StatusCreated, adminOrderView{Order: order, StatusLabel: adminStatusLabel(order.Status)})
				return
			}
			if !mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
		}

		respondWithError(c, http.StatusInternalServerError, route, "could not allocate order code")
	}
}

/* =========================
   EDIT DELIVERY DETAILS
========================= */

type updateOrderRequest struct {
	DeliveryDate      *string `json:"deliveryDate"` // yyyy-MM-dd
	DeliveryTime      *string `json:"deliveryTime"`
	DeliveryAddress   *string `json:"deliveryAddress"`
	AddressReferences *string `json:"addressReferences"`
	RecipientName     *string `json:"recipientName"`
	RecipientPhone    *string `json:"recipientPhone"`
	CardMessage       *string `json:"cardMessage"`
}

// UpdateOrderDelivery lets an admin edit the delivery sub-record while the
// order is not yet completed or cancelled.
func UpdateOrderDelivery(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:code"
		defer handlePanic(c, route)

		code := normalizeOrderCode(c.Param("code"))
		if !validOrderCode(code) {
			respondWithError(c, http.StatusBadRequest, route, "invalid code")
			return
		}

		var req updateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "pedido no encontrado")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if existing.IsTerminal() {
			respondWithError(c, http.StatusConflict, route, errTerminalState.Error())
			return
		}

		updateSet := bson.M{}
		if req.DeliveryDate != nil {
			parsed, err := time.ParseInLocation("2006-01-02", *req.DeliveryDate, time.Local)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "fecha de entrega inválida")
				return
			}
			updateSet["deliveryDate"] = parsed
		}
		if req.DeliveryTime != nil {
			if !validDeliveryTime(*req.DeliveryTime) {
				respondWithError(c, http.StatusBadRequest, route, "hora de entrega fuera del horario (11:00 - 22:00)")
				return
			}
			updateSet["deliveryTime"] = *req.DeliveryTime
		}
		if req.DeliveryAddress != nil {
			updateSet["deliveryAddress"] = strings.TrimSpace(*req.DeliveryAddress)
		}
		if req.AddressReferences != nil {
			updateSet["addressReferences"] = strings.TrimSpace(*req.AddressReferences)
		}
		if req.RecipientName != nil {
			updateSet["recipientName"] = strings.TrimSpace(*req.RecipientName)
		}
		if req.RecipientPhone != nil {
			updateSet["recipientPhone"] = strings.TrimSpace(*req.RecipientPhone)
		}
		if req.CardMessage != nil {
			updateSet["cardMessage"] = strings.TrimSpace(*req.CardMessage)
		}

		if len(updateSet) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		result, err := db.Collection("orders").UpdateOne(ctx, bson.M{"_id": code}, bson.M{"$set": updateSet})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "pedido no encontrado")
			return
		}

		var updated models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, adminOrderView{Order: updated, StatusLabel: adminStatusLabel(updated.Status)})
	}
}

/* =========================
   STATUS TRANSITIONS
========================= */

type changeStatusRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// ChangeOrderStatus advances an order one admin step (in_process→confirmed
// or confirmed→completed). The request names the status the admin saw when
// confirming the change; a mismatch with the stored status refuses the
// transition instead of applying it to a moved order.
func ChangeOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/:code/status"
		defer handlePanic(c, route)

		code := normalizeOrderCode(c.Param("code"))
		if !validOrderCode(code) {
			respondWithError(c, http.StatusBadRequest, route, "invalid code")
			return
		}

		var req changeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
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
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if order.Status != req.From {
			respondWithError(c, http.StatusConflict, route, "el pedido cambió de estado, recarga la lista")
			return
		}
		if err := checkAdminTransition(&order, req.To); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}

		updateSet := bson.M{"status": req.To}
		if field := timestampField(req.To); field != "" {
			updateSet[field] = time.Now()
		}

		// Same status guard as the read above, so the store never applies a
		// transition from a state the admin did not confirm.
		result, err := db.Collection("orders").UpdateOne(
			ctx,
			bson.M{"_id": code, "status": req.From},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusConflict, route, "el pedido cambió de estado, recarga la lista")
			return
		}

		log.Printf("[ORDER] [INFO] status changed: %s %s -> %s", code, req.From, req.To)

		var updated models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, adminOrderView{Order: updated, StatusLabel: adminStatusLabel(updated.Status)})
	}
}

/* =========================
   CANCELLATION
========================= */

type cancelOrderRequest struct {
	Note string `json:"note"`
}

// CancelOrder cancels a non-pending, non-terminal order. The note is
// mandatory and stored with the cancellation timestamp.
func CancelOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/:code/cancel"
		defer handlePanic(c, route)

		code := normalizeOrderCode(c.Param("code"))
		if !validOrderCode(code) {
			respondWithError(c, http.StatusBadRequest, route, "invalid code")
			return
		}

		var req cancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
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
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if err := checkCancellation(&order, req.Note); err != nil {
			respondWithError(c, http.StatusConflict, route, err.Error())
			return
		}

		result, err := db.Collection("orders").UpdateOne(
			ctx,
			bson.M{"_id": code, "status": order.Status},
			bson.M{"$set": bson.M{
				"status":           models.StatusCancelled,
				"cancelledAt":      time.Now(),
				"cancellationNote": strings.TrimSpace(req.Note),
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusConflict, route, "el pedido cambió de estado, recarga la lista")
			return
		}

		log.Println("[ORDER] [INFO] order cancelled:", code)

		var updated models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": code}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, adminOrderView{Order: updated, StatusLabel: adminStatusLabel(updated.Status)})
	}
}
