package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
		{
			Keys:    bson.D{{Key: "deliveryDate", Value: 1}},
			Options: options.Index().SetName("deliveryDate_asc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_index"),
		},
	}

	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureOrderIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "available", Value: 1}},
		Options: options.Index().SetName("category_available"),
	}

	_, err := indexes.CreateOne(ctx, categoryIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: category index error:", err)
		return err
	}
	return nil
}

func EnsureAdminIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("admins").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureAdminIndexes: email index error:", err)
		return err
	}
	return nil
}
