package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product categories offered by the shop.
const (
	CategoryBouquets     = "bouquets"
	CategoryArrangements = "arrangements"
	CategorySingle       = "single"
)

// ValidCategory reports whether value is one of the fixed catalog categories.
func ValidCategory(value string) bool {
	switch value {
	case CategoryBouquets, CategoryArrangements, CategorySingle:
		return true
	}
	return false
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	ImagePath   string             `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
