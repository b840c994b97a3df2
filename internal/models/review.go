package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review is a single food review. BSON field names are camelCase to stay
// compatible with the existing foodLoverDb documents.
type Review struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FoodName   string        `bson:"foodName" json:"foodName"`
	FoodImage  string        `bson:"foodImage" json:"foodImage"`
	Restaurant string        `bson:"restaurant" json:"restaurant"`
	Location   string        `bson:"location" json:"location"`
	City       string        `bson:"city" json:"city"`
	Category   string        `bson:"category" json:"category"`
	Rating     float64       `bson:"rating" json:"rating"`
	ReviewText string        `bson:"reviewText" json:"reviewText"`
	UserEmail  string        `bson:"userEmail" json:"userEmail"`
	UserName   string        `bson:"userName" json:"userName"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
