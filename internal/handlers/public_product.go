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

type catalogProduct struct {
	models.Product
	WhatsappURL string `json:"whatsappUrl,omitempty"`
}

// GetCatalog lists available products for the public storefront, optionally
// narrowed to one category. Each entry carries a prefilled WhatsApp link,
// which is how customers actually place an order.
func GetCatalog(db *mongo.Database, shopWhatsApp string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := bson.M{"available": true}

		if category := strings.TrimSpace(c.Query("category")); category != "" && category != "all" {
			if !models.ValidCategory(category) {
				respondWithError(c, http.StatusBadRequest, route, "categoría inválida")
				return
			}
			filter["category"] = category
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		catalog := make([]catalogProduct, 0, len(products))
		for _, p := range products {
			catalog = append(catalog, catalogProduct{
				Product:     p,
				WhatsappURL: buildWhatsAppLink(shopWhatsApp, productOrderText(p.Name, p.Price)),
			})
		}

		log.Printf("[CATALOG] [INFO] returning %d products", len(catalog))
		c.JSON(http.StatusOK, catalog)
	}
}
