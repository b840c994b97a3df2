package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Favorite is a membership edge between a user and a review. The pair
// (userEmail, reviewId) is unique. ReviewID holds the review's ObjectID hex;
// it is a weak reference — deleting a review does not cascade here, dangling
// edges are filtered out when favorites are resolved to reviews.
type Favorite struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string        `bson:"userEmail" json:"userEmail"`
	ReviewID  string        `bson:"reviewId" json:"reviewId"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
