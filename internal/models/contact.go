package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessage is an append-only record from the contact form. TicketID is
// a server-generated reference returned to the sender.
type ContactMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	TicketID  string        `bson:"ticketId" json:"ticketId"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
