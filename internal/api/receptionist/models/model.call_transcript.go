// Package models - call transcripts and appointments belong to the
// receptionist domain (call_transcripts, appointments).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Call statuses.
const (
	CallStatusInProgress = "in-progress"
	CallStatusCompleted  = "completed"
)

// CallTranscript is one assistant call (call_transcripts). Partial
// transcripts are upserted by callId while the call is live; the end-of-call
// report completes the record.
type CallTranscript struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClientID    primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1,compound:call_client_started"`
	CallID      string             `json:"callId" bson:"callId" index:"unique,sparse"`
	AssistantID string             `json:"assistantId,omitempty" bson:"assistantId,omitempty"`

	Transcript     string                 `json:"transcript,omitempty" bson:"transcript,omitempty"`
	Summary        string                 `json:"summary,omitempty" bson:"summary,omitempty"`
	StructuredData map[string]interface{} `json:"structuredData,omitempty" bson:"structuredData,omitempty"`
	Status         string                 `json:"status" bson:"status" default:"in-progress"`

	StartedAt       int64 `json:"startedAt,omitempty" bson:"startedAt,omitempty" index:"single:-1,compound:call_client_started"`
	EndedAt         int64 `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
	DurationSeconds int64 `json:"durationSeconds,omitempty" bson:"durationSeconds,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
