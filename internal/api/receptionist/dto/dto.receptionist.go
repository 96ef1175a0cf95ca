// Package dto - request payloads for the receptionist domain.
package dto

import (
	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
)

// ConfigureInput saves the voice-assistant configuration and syncs it
// upstream.
type ConfigureInput struct {
	BusinessHours   map[string]clientmodels.BusinessDay `json:"businessHours"`
	PrimaryServices string                              `json:"primaryServices" validate:"omitempty,no_xss"`
	PricingInfo     string                              `json:"pricingInfo" validate:"omitempty,no_xss"`
	BookingEnabled  bool                                `json:"bookingEnabled"`
	QuoteEnabled    bool                                `json:"quoteEnabled"`
	ForwardTo       string                              `json:"forwardTo"`
	AIPersonality   string                              `json:"aiPersonality" validate:"omitempty,no_xss"`
	VoiceProvider   string                              `json:"voiceProvider"`
	VoiceID         string                              `json:"voiceId"`
	GreetingMessage string                              `json:"greetingMessage" validate:"omitempty,no_xss"`
}

// Config converts the input into the stored configuration.
func (i *ConfigureInput) Config() clientmodels.ReceptionistConfig {
	return clientmodels.ReceptionistConfig{
		BusinessHours:   i.BusinessHours,
		PrimaryServices: i.PrimaryServices,
		PricingInfo:     i.PricingInfo,
		BookingEnabled:  i.BookingEnabled,
		QuoteEnabled:    i.QuoteEnabled,
		ForwardTo:       i.ForwardTo,
		AIPersonality:   i.AIPersonality,
		VoiceProvider:   i.VoiceProvider,
		VoiceID:         i.VoiceID,
		GreetingMessage: i.GreetingMessage,
	}
}

// ActivateResult reports activation progress. PhoneNumber is empty when the
// purchase step failed after the assistant was created.
type ActivateResult struct {
	AssistantID string `json:"assistantId"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Warning     string `json:"warning,omitempty"`
}

// WebhookCall identifies the call a webhook message belongs to.
type WebhookCall struct {
	ID          string `json:"id"`
	AssistantID string `json:"assistantId"`
}

// WebhookFunctionCall is the function invocation inside a webhook message.
type WebhookFunctionCall struct {
	Name       string                 `json:"name"`
	Parameters map[string]interface{} `json:"parameters"`
}

// WebhookMessage is the inner message of a Vapi webhook request.
type WebhookMessage struct {
	Type            string                 `json:"type"` // end-of-call-report, function-call, transcript
	Call            WebhookCall            `json:"call"`
	Transcript      string                 `json:"transcript,omitempty"`
	Summary         string                 `json:"summary,omitempty"`
	StructuredData  map[string]interface{} `json:"structuredData,omitempty"`
	DurationSeconds float64                `json:"durationSeconds,omitempty"`
	FunctionCall    *WebhookFunctionCall   `json:"functionCall,omitempty"`
}

// WebhookRequest is the webhook body.
type WebhookRequest struct {
	Message WebhookMessage `json:"message"`
}

// DashboardView aggregates the client console's overview numbers.
type DashboardView struct {
	TotalCalls           int64   `json:"totalCalls"`
	CallsThisWeek        int64   `json:"callsThisWeek"`
	AvgCallDuration      float64 `json:"avgCallDuration"` // seconds
	TotalAppointments    int64   `json:"totalAppointments"`
	UpcomingAppointments int64   `json:"upcomingAppointments"`
	TotalLeads           int64   `json:"totalLeads"`
	CallLeads            int64   `json:"callLeads"`
	AvgLeadScore         float64 `json:"avgLeadScore"`
}
