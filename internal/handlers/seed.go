package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"floreria/internal/models"
)

/* =======================
   SAMPLE CATALOG
======================= */

var sampleProducts = []models.Product{
	{
		Name:        "Ramo Primaveral Deluxe",
		Description: "Hermoso arreglo con rosas, gerberas y lilies en tonos rosados y blancos. Perfecto para ocasiones especiales.",
		Price:       899.99,
		Category:    models.CategoryBouquets,
		ImagePath:   "uploads/products/bouquet-1.jpg",
		Available:   true,
	},
	{
		Name:        "Rosas Eternas",
		Description: "12 rosas rojas premium en arreglo clásico. Un regalo romántico y elegante.",
		Price:       699.99,
		Category:    models.CategoryBouquets,
		ImagePath:   "uploads/products/bouquet-2.jpg",
		Available:   true,
	},
	{
		Name:        "Jardín Silvestre",
		Description: "Arreglo natural con flores silvestres y margaritas. Trae la frescura del campo a tu hogar.",
		Price:       549.99,
		Category:    models.CategoryArrangements,
		ImagePath:   "uploads/products/arrangement-1.jpg",
		Available:   true,
	},
	{
		Name:        "Orquídeas Elegantes",
		Description: "Arreglo sofisticado con orquídeas phalaenopsis en base de cerámica.",
		Price:       1299.99,
		Category:    models.CategoryArrangements,
		ImagePath:   "uploads/products/arrangement-2.jpg",
		Available:   true,
	},
	{
		Name:        "Girasoles Radiantes",
		Description: "Ramo alegre de girasoles frescos con toques de flores silvestres.",
		Price:       649.99,
		Category:    models.CategoryBouquets,
		ImagePath:   "uploads/products/bouquet-3.jpg",
		Available:   true,
	},
	{
		Name:        "Girasol Individual",
		Description: "Un girasol solitario con envoltura artesanal, ideal para un detalle sencillo.",
		Price:       149.99,
		Category:    models.CategorySingle,
		ImagePath:   "uploads/products/single-1.jpg",
		Available:   true,
	},
	{
		Name:        "Rosa Roja Individual",
		Description: "Una rosa roja premium con follaje y envoltura elegante.",
		Price:       99.99,
		Category:    models.CategorySingle,
		ImagePath:   "uploads/products/single-2.jpg",
		Available:   true,
	},
}

// SeedSampleProducts loads the sample catalog. Refused when products
// already exist, so the demo data never mixes with real records.
func SeedSampleProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products/seed"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusConflict, route, "ya existen productos en la base de datos")
			return
		}

		now := time.Now()
		docs := make([]interface{}, 0, len(sampleProducts))
		for _, p := range sampleProducts {
			p.CreatedAt = now
			docs = append(docs, p)
		}

		if _, err := db.Collection("products").InsertMany(ctx, docs); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[SEED] [INFO] loaded %d sample products", len(docs))
		c.JSON(http.StatusCreated, gin.H{"inserted": len(docs)})
	}
}

/* =======================
   DEMO ORDERS
======================= */

// SeedDemoOrders creates one order per lifecycle stage, including the
// in_process stage no API transition produces. Refused when orders exist.
func SeedDemoOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders/seed"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		count, err := db.Collection("orders").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusConflict, route, "ya existen pedidos en la base de datos")
			return
		}

		now := time.Now()
		tomorrow := startOfDay(now).AddDate(0, 0, 1)
		yesterday := now.AddDate(0, 0, -1)
		twoDaysAgo := now.AddDate(0, 0, -2)

		demo := []models.Order{
			{
				CustomerName:     "María González",
				CustomerWhatsapp: "+52 33 1234 5678",
				TotalAmount:      899.99,
				Characteristics:  "Ramo primaveral con rosas y gerberas, tonos rosados",
				Status:           models.StatusPending,
				CreatedAt:        now,
			},
			{
				CustomerName:     "Carlos Ramírez",
				CustomerWhatsapp: "+52 33 8765 4321",
				TotalAmount:      1299.99,
				Characteristics:  "Arreglo de orquídeas para aniversario",
				Status:           models.StatusInProcess,
				CreatedAt:        yesterday,
				ProcessedAt:      &yesterday,
				DeliveryDate:     &tomorrow,
				DeliveryTime:     "17:00",
				DeliveryAddress:  "Av. Vallarta 1234, Col. Americana",
				RecipientName:    "Lucía Ramírez",
				RecipientPhone:   "+52 33 1111 2222",
			},
			{
				CustomerName:      "Ana Torres",
				CustomerWhatsapp:  "+52 33 5555 6666",
				TotalAmount:       699.99,
				Characteristics:   "Docena de rosas rojas",
				Status:            models.StatusConfirmed,
				CreatedAt:         yesterday,
				ConfirmedAt:       &yesterday,
				DeliveryDate:      &tomorrow,
				DeliveryTime:      "12:00",
				DeliveryAddress:   "Calle Morelos 567, Centro",
				AddressReferences: "Portón negro, entre Juárez y Colón",
				SenderName:        "Ana Torres",
				SenderPhone:       "+52 33 5555 6666",
				RecipientName:     "Sofía Mendoza",
				RecipientPhone:    "+52 33 7777 8888",
				CardMessage:       "¡Feliz cumpleaños! Con cariño, Ana",
			},
			{
				CustomerName:      "Jorge Herrera",
				CustomerWhatsapp:  "+52 33 9999 0000",
				TotalAmount:       549.99,
				Characteristics:   "Arreglo silvestre para inauguración",
				Status:            models.StatusCompleted,
				CreatedAt:         twoDaysAgo,
				ConfirmedAt:       &twoDaysAgo,
				CompletedAt:       &yesterday,
				DeliveryDate:      &yesterday,
				DeliveryTime:      "11:00",
				DeliveryAddress:   "Av. México 890, Ladrón de Guevara",
				AddressReferences: "Local comercial, planta baja",
				SenderName:        "Jorge Herrera",
				SenderPhone:       "+52 33 9999 0000",
				RecipientName:     "Paulina Ruiz",
				RecipientPhone:    "+52 33 3333 4444",
				CardMessage:       "¡Mucho éxito en la nueva etapa!",
			},
			{
				CustomerName:     "Luis Castillo",
				CustomerWhatsapp: "+52 33 2222 3333",
				TotalAmount:      649.99,
				Characteristics:  "Ramo de girasoles",
				Status:           models.StatusCancelled,
				CreatedAt:        twoDaysAgo,
				ProcessedAt:      &twoDaysAgo,
				CancelledAt:      &yesterday,
				CancellationNote: "El cliente pidió cancelar por cambio de planes",
			},
		}

		docs := make([]interface{}, 0, len(demo))
		for _, o := range demo {
			code, err := generateOrderCode()
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "code generation failed")
				return
			}
			o.ID = code
			docs = append(docs, o)
		}

		if _, err := db.Collection("orders").InsertMany(ctx, docs); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[SEED] [INFO] loaded %d demo orders", len(docs))
		c.JSON(http.StatusCreated, gin.H{"inserted": len(docs)})
	}
}
