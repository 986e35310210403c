package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// handlePanic turns a handler crash into a 500 response instead of a
// dropped request.
func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[HTTP] [ERROR] %s: panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "error interno del servidor"})
	}
}

// ensureDBConnection pings the store with a short deadline before a public
// read, so storefront visitors get a clean 503 instead of waiting out the
// query timeout.
func ensureDBConnection(ctx context.Context, db *mongo.Database) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Client().Ping(pingCtx, readpref.Primary())
}

// respondWithError logs and sends a single JSON error body; message is the
// user-facing copy, route only goes to the log.
func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[HTTP] [ERROR] %s -> %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
