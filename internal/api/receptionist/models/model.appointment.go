package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment is a booking made by the assistant (appointments).
type Appointment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClientID primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`
	CallID   string             `json:"callId,omitempty" bson:"callId,omitempty"`

	Name    string `json:"name" bson:"name"`
	Date    string `json:"date" bson:"date" index:"single:1"` // YYYY-MM-DD
	Time    string `json:"time" bson:"time"`                  // e.g. "2:00 PM"
	Service string `json:"service,omitempty" bson:"service,omitempty"`
	Status  string `json:"status" bson:"status" default:"scheduled"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
