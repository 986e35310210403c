package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"floreria/internal/models"
)

/* =======================
   GET (ADMIN) - LIST
======================= */

// GetAllProducts lists the whole catalog for the back office, unavailable
// products included.
func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/api/products"
		defer handlePanic(c, route)

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" && category != "all" {
			filter["category"] = category
		}
		if available := strings.TrimSpace(c.Query("available")); available != "" {
			filter["available"] = strings.EqualFold(available, "true")
		}

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
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

		c.JSON(http.StatusOK, gin.H{"data": products})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		if !strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "multipart/form-data required"})
			return
		}

		input, err := parseMultipartProductRequest(c)
		if err != nil {
			log.Println("[PRODUCT] [ERROR] create multipart parse failed:", err)
			respondMultipartError(c, err)
			return
		}

		name := strings.TrimSpace(input.Name)
		if !input.NameSet || name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		if !input.PriceSet || input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}

		if !input.CategorySet || !models.ValidCategory(input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be bouquets, arrangements or single"})
			return
		}

		if !input.ImageSet || strings.TrimSpace(input.ImagePath) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image required"})
			return
		}

		available := true
		if input.AvailableSet {
			available = input.Available
		}

		product := models.Product{
			Name:        name,
			Description: strings.TrimSpace(input.Description),
			Price:       input.Price,
			Category:    input.Category,
			ImagePath:   input.ImagePath,
			Available:   available,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			log.Println("[PRODUCT] [ERROR] insert failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		product.ID = res.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE
======================= */

type productUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}

// UpdateProduct edits a product. Multipart requests may replace the image;
// JSON requests cover field edits including the availability toggle.
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		updateSet := bson.M{}
		oldImagePath := strings.TrimSpace(existing.ImagePath)
		newImage := false

		if strings.HasPrefix(c.GetHeader("Content-Type"), "multipart/form-data") {
			input, err := parseMultipartProductRequest(c)
			if err != nil {
				log.Println("[PRODUCT] [ERROR] update multipart parse failed:", err)
				respondMultipartError(c, err)
				return
			}

			if input.NameSet {
				if strings.TrimSpace(input.Name) == "" {
					c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
					return
				}
				updateSet["name"] = strings.TrimSpace(input.Name)
			}
			if input.DescriptionSet {
				updateSet["description"] = strings.TrimSpace(input.Description)
			}
			if input.PriceSet {
				if input.Price < 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
					return
				}
				updateSet["price"] = input.Price
			}
			if input.CategorySet {
				if !models.ValidCategory(input.Category) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "category must be bouquets, arrangements or single"})
					return
				}
				updateSet["category"] = input.Category
			}
			if input.AvailableSet {
				updateSet["available"] = input.Available
			}
			if input.ImageSet && strings.TrimSpace(input.ImagePath) != "" {
				updateSet["imagePath"] = input.ImagePath
				newImage = true
			}
		} else {
			var req productUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
				return
			}

			if req.Name != nil {
				if strings.TrimSpace(*req.Name) == "" {
					c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
					return
				}
				updateSet["name"] = strings.TrimSpace(*req.Name)
			}
			if req.Description != nil {
				updateSet["description"] = strings.TrimSpace(*req.Description)
			}
			if req.Price != nil {
				if *req.Price < 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
					return
				}
				updateSet["price"] = *req.Price
			}
			if req.Category != nil {
				if !models.ValidCategory(*req.Category) {
					c.JSON(http.StatusBadRequest, gin.H{"error": "category must be bouquets, arrangements or single"})
					return
				}
				updateSet["category"] = *req.Category
			}
			if req.Available != nil {
				updateSet["available"] = *req.Available
			}
		}

		if len(updateSet) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		result, err := db.Collection("products").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateSet})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		if newImage && oldImagePath != "" && oldImagePath != updateSet["imagePath"] {
			if err := safeDeleteUpload(oldImagePath); err != nil {
				log.Printf("[PRODUCT] [ERROR] old image delete failed: %v", err)
			}
		}

		var updated models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

/* =======================
   DELETE
======================= */

// DeleteProduct removes the product document and its uploaded image.
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		if err := safeDeleteUpload(existing.ImagePath); err != nil {
			log.Printf("[PRODUCT] [ERROR] image delete failed: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
