// Package models - Lead belongs to the lead domain (leads).
// A lead is created by the public capture endpoint or the voice assistant
// and never deleted; rejected leads stay as tombstones for audit.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tracking is the compliance bundle recorded at submission time. Write-once;
// never mutated afterward. IP is always filled server-side from the
// connection, never trusted from the client.
type Tracking struct {
	IP           string `json:"ip" bson:"ip"`
	UserAgent    string `json:"userAgent" bson:"userAgent"`
	Timestamp    string `json:"timestamp" bson:"timestamp"` // ISO8601, client submission time
	ConsentGiven bool   `json:"consentGiven" bson:"consentGiven"`
	URL          string `json:"url" bson:"url"`
	CapturedAt   string `json:"capturedAt" bson:"capturedAt"` // ISO8601, stamped server-side
}

// LeadNote is one append-only note.
type LeadNote struct {
	Text    string `json:"text" bson:"text"`
	AddedBy string `json:"addedBy" bson:"addedBy"`
	AddedAt int64  `json:"addedAt" bson:"addedAt"`
}

// LeadActivity is one audit-trail entry. Every mutating action appends one.
type LeadActivity struct {
	Type        string `json:"type" bson:"type"` // captured, status-change, note, approved, rejected, email, sms
	Description string `json:"description" bson:"description"`
	PerformedBy string `json:"performedBy" bson:"performedBy"`
	PerformedAt int64  `json:"performedAt" bson:"performedAt"`
}

// Lead is a captured prospect record (leads).
type Lead struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClientID     primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1,compound:lead_client_status"`
	CampaignID   primitive.ObjectID `json:"campaignId,omitempty" bson:"campaignId,omitempty" index:"single:1"`
	CampaignName string             `json:"campaignName,omitempty" bson:"campaignName,omitempty"`

	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`

	// Qualification data filled by the assistant's call report.
	Interest    string `json:"interest,omitempty" bson:"interest,omitempty"`
	Budget      string `json:"budget,omitempty" bson:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty" bson:"timeline,omitempty"`
	LeadQuality string `json:"leadQuality,omitempty" bson:"leadQuality,omitempty"` // hot, warm, cold
	CallID      string `json:"callId,omitempty" bson:"callId,omitempty"`

	Source    string `json:"source" bson:"source"` // Landing Page, AI Receptionist, Lead Gen Campaign
	Score     int    `json:"score" bson:"score"`
	ScoreBand string `json:"scoreBand" bson:"scoreBand"` // good, medium, poor
	Status    string `json:"status" bson:"status" index:"single:1,compound:lead_client_status" default:"new"`

	FormResponses map[string]string `json:"formResponses,omitempty" bson:"formResponses,omitempty"`
	Tracking      Tracking          `json:"tracking" bson:"tracking"`

	Tags       []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes      []LeadNote     `json:"notes,omitempty" bson:"notes,omitempty"`
	Activities []LeadActivity `json:"activities,omitempty" bson:"activities,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
