package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"floreria/internal/config"
	"floreria/internal/database"
	"floreria/internal/handlers"
	"floreria/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("admin index warning: %v", err)
	}

	r := gin.Default()
	r.Static("/public", "./public")

	r.GET("/products", handlers.GetCatalog(db, config.AppEnv.ShopWhatsApp))
	r.GET("/orders/:code", handlers.TrackOrder(db))
	r.POST("/orders/:code/confirm", handlers.ConfirmOrder(db))

	r.POST("/admin/login", handlers.AdminLogin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/orders", handlers.GetAllOrders(db))
		admin.POST("/orders", handlers.CreateOrder(db))
		admin.PUT("/orders/:code", handlers.UpdateOrderDelivery(db))
		admin.POST("/orders/:code/status", handlers.ChangeOrderStatus(db))
		admin.POST("/orders/:code/cancel", handlers.CancelOrder(db))
		admin.POST("/orders/seed", handlers.SeedDemoOrders(db))

		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))
		admin.POST("/products/seed", handlers.SeedSampleProducts(db))

		admin.GET("/calendar", handlers.GetDeliveryCalendar(db))
		admin.GET("/dashboard", handlers.GetDashboard(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
