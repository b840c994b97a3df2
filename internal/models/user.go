package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	Email     string        `bson:"email" json:"email"`
	Password  string        `bson:"password,omitempty" json:"-"`
	PhotoURL  string        `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string        `bson:"role" json:"role"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
