// Package models - Client belongs to the tenant domain (clients).
// One document per paying business account.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client statuses.
const (
	ClientStatusActive    = "active"
	ClientStatusInactive  = "inactive"
	ClientStatusSuspended = "suspended"
)

// BusinessDay is one day of operating hours.
type BusinessDay struct {
	Open   string `json:"open,omitempty" bson:"open,omitempty"`   // "09:00"
	Close  string `json:"close,omitempty" bson:"close,omitempty"` // "17:00"
	Closed bool   `json:"closed" bson:"closed"`
}

// ReceptionistConfig is the voice-assistant configuration a client maintains.
type ReceptionistConfig struct {
	BusinessHours   map[string]BusinessDay `json:"businessHours,omitempty" bson:"businessHours,omitempty"` // keyed monday..sunday
	PrimaryServices string                 `json:"primaryServices,omitempty" bson:"primaryServices,omitempty"`
	PricingInfo     string                 `json:"pricingInfo,omitempty" bson:"pricingInfo,omitempty"`
	BookingEnabled  bool                   `json:"bookingEnabled" bson:"bookingEnabled"`
	QuoteEnabled    bool                   `json:"quoteEnabled" bson:"quoteEnabled"`
	ForwardTo       string                 `json:"forwardTo,omitempty" bson:"forwardTo,omitempty"`
	AIPersonality   string                 `json:"aiPersonality,omitempty" bson:"aiPersonality,omitempty"`
	VoiceProvider   string                 `json:"voiceProvider,omitempty" bson:"voiceProvider,omitempty"`
	VoiceID         string                 `json:"voiceId,omitempty" bson:"voiceId,omitempty"`
	GreetingMessage string                 `json:"greetingMessage,omitempty" bson:"greetingMessage,omitempty"`
}

// FAQ is one question/answer pair in the knowledge base.
type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// KnowledgeBase is the business knowledge the assistant can draw on.
type KnowledgeBase struct {
	FAQs     []FAQ    `json:"faqs" bson:"faqs"`
	Services []string `json:"services" bson:"services"`
	Staff    []string `json:"staff" bson:"staff"`
}

// IsEmpty reports whether nothing has been entered yet.
func (k KnowledgeBase) IsEmpty() bool {
	return len(k.FAQs) == 0 && len(k.Services) == 0 && len(k.Staff) == 0
}

// AIReceptionistService is the per-client voice assistant state.
type AIReceptionistService struct {
	Enabled       bool               `json:"enabled" bson:"enabled"`
	Config        ReceptionistConfig `json:"config,omitempty" bson:"config,omitempty"`
	KnowledgeBase KnowledgeBase      `json:"knowledgeBase,omitempty" bson:"knowledgeBase,omitempty"`
	AssistantID   string             `json:"assistantId,omitempty" bson:"assistantId,omitempty"`
	PhoneNumber   string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	SetupComplete bool               `json:"setupComplete" bson:"setupComplete"`
}

// BookingAcceleratorService is the per-client booking landing-page state.
type BookingAcceleratorService struct {
	Enabled        bool   `json:"enabled" bson:"enabled"`
	LandingPageURL string `json:"landingPageUrl,omitempty" bson:"landingPageUrl,omitempty"`
	SetupComplete  bool   `json:"setupComplete" bson:"setupComplete"`
}

// LeadGenService is the per-client lead-generation state.
type LeadGenService struct {
	Enabled       bool `json:"enabled" bson:"enabled"`
	SetupComplete bool `json:"setupComplete" bson:"setupComplete"`
}

// ClientServices groups the platform services a client subscribes to.
type ClientServices struct {
	AIReceptionist     AIReceptionistService     `json:"aiReceptionist" bson:"aiReceptionist"`
	BookingAccelerator BookingAcceleratorService `json:"bookingAccelerator" bson:"bookingAccelerator"`
	LeadGen            LeadGenService            `json:"leadGen" bson:"leadGen"`
}

// Client is one tenant account (clients).
type Client struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	BusinessName string `json:"businessName" bson:"businessName"`
	ContactName  string `json:"contactName,omitempty" bson:"contactName,omitempty"`
	Email        string `json:"email" bson:"email" index:"unique"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Industry     string `json:"industry,omitempty" bson:"industry,omitempty"`
	Website      string `json:"website,omitempty" bson:"website,omitempty"`
	Status       string `json:"status" bson:"status" index:"single:1" default:"active"`

	Services ClientServices `json:"services" bson:"services"`

	// PasswordHash never leaves the API; services strip it before returning.
	PasswordHash       string `json:"-" bson:"passwordHash,omitempty"`
	MustChangePassword bool   `json:"mustChangePassword" bson:"mustChangePassword"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
