// Package vapi wraps the Vapi.ai REST API: assistant payload assembly and a
// thin HTTP client.
package vapi

import (
	"fmt"
	"strings"

	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
)

// dayOrder fixes the business-hours rendering order.
var dayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// BuildSystemPrompt renders the assistant's system prompt from the client's
// configuration. Section order is fixed: persona, business hours, services,
// pricing, capabilities, behavioral instructions. Empty services/pricing
// blocks are omitted.
func BuildSystemPrompt(businessName string, config clientmodels.ReceptionistConfig, knowledgeBase clientmodels.KnowledgeBase) string {
	var b strings.Builder

	personality := config.AIPersonality
	if personality == "" {
		personality = "friendly"
	}
	b.WriteString(fmt.Sprintf("You are a professional and %s AI phone receptionist for %s.\n", personality, businessName))

	b.WriteString("\nBUSINESS HOURS:\n")
	for _, day := range dayOrder {
		hours, ok := config.BusinessHours[day]
		label := strings.ToUpper(day[:1]) + day[1:]
		if !ok || hours.Closed || hours.Open == "" || hours.Close == "" {
			b.WriteString(fmt.Sprintf("%s: Closed\n", label))
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s - %s\n", label, hours.Open, hours.Close))
	}

	if config.PrimaryServices != "" {
		b.WriteString("\nSERVICES WE OFFER:\n")
		b.WriteString(config.PrimaryServices + "\n")
	}

	if config.PricingInfo != "" {
		b.WriteString("\nPRICING INFORMATION:\n")
		b.WriteString(config.PricingInfo + "\n")
	}

	b.WriteString("\nYOUR CAPABILITIES:\n")
	b.WriteString("- Answer questions about our business, services, and hours\n")
	b.WriteString("- Take messages for the team\n")
	if config.BookingEnabled {
		b.WriteString("- Check availability and book appointments\n")
	}
	if config.QuoteEnabled {
		b.WriteString("- Generate price quotes for our services\n")
	}
	if config.ForwardTo != "" {
		b.WriteString(fmt.Sprintf("- Transfer urgent calls to %s\n", config.ForwardTo))
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("1. Always be polite and helpful\n")
	b.WriteString("2. Collect the caller's name and contact information early in the call\n")
	b.WriteString("3. Ask about their needs, budget, and timeline when relevant\n")
	b.WriteString("4. Never make up information; say you will have someone follow up instead\n")
	b.WriteString("5. Keep responses short and conversational\n")
	b.WriteString("6. End every call by confirming the next step\n")

	if !knowledgeBase.IsEmpty() {
		b.WriteString("\nADDITIONAL BUSINESS KNOWLEDGE:\n")
		for _, faq := range knowledgeBase.FAQs {
			b.WriteString(fmt.Sprintf("Q: %s\nA: %s\n", faq.Question, faq.Answer))
		}
		if len(knowledgeBase.Services) > 0 {
			b.WriteString("Services: " + strings.Join(knowledgeBase.Services, ", ") + "\n")
		}
		if len(knowledgeBase.Staff) > 0 {
			b.WriteString("Team: " + strings.Join(knowledgeBase.Staff, ", ") + "\n")
		}
	}

	return b.String()
}

// StructuredDataSchema is the post-call lead-extraction schema. It is always
// attached regardless of feature flags.
func StructuredDataSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name":        map[string]interface{}{"type": "string", "description": "Caller's full name"},
			"email":       map[string]interface{}{"type": "string", "description": "Caller's email address"},
			"phone":       map[string]interface{}{"type": "string", "description": "Caller's phone number"},
			"company":     map[string]interface{}{"type": "string", "description": "Caller's company name"},
			"interest":    map[string]interface{}{"type": "string", "description": "What the caller is interested in"},
			"budget":      map[string]interface{}{"type": "string", "description": "Caller's stated budget"},
			"timeline":    map[string]interface{}{"type": "string", "description": "Caller's timeline"},
			"leadQuality": map[string]interface{}{"type": "string", "enum": []string{"hot", "warm", "cold"}, "description": "Assessed lead quality"},
			"notes":       map[string]interface{}{"type": "string", "description": "Any other relevant details"},
		},
	}
}

// BuildFunctions assembles the capability manifest from the feature flags.
func BuildFunctions(config clientmodels.ReceptionistConfig) []map[string]interface{} {
	functions := []map[string]interface{}{}

	if config.BookingEnabled {
		functions = append(functions,
			map[string]interface{}{
				"name":        "check_availability",
				"description": "Check available appointment slots for a given date",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"date": map[string]interface{}{"type": "string", "description": "Requested date (YYYY-MM-DD)"},
					},
					"required": []string{"date"},
				},
			},
			map[string]interface{}{
				"name":        "book_appointment",
				"description": "Book an appointment at a confirmed available slot",
				"parameters": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"date":    map[string]interface{}{"type": "string", "description": "Appointment date (YYYY-MM-DD)"},
						"time":    map[string]interface{}{"type": "string", "description": "Appointment time (e.g. 2:00 PM)"},
						"name":    map[string]interface{}{"type": "string", "description": "Caller's name"},
						"service": map[string]interface{}{"type": "string", "description": "Requested service"},
					},
					"required": []string{"date", "time", "name"},
				},
			},
		)
	}

	if config.QuoteEnabled {
		functions = append(functions, map[string]interface{}{
			"name":        "generate_quote",
			"description": "Generate a price quote for a service",
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"service":  map[string]interface{}{"type": "string", "description": "Requested service"},
					"quantity": map[string]interface{}{"type": "number", "description": "Quantity or scope"},
				},
				"required": []string{"service"},
			},
		})
	}

	return functions
}

// BuildAssistantPayload assembles the full assistant-creation body.
func BuildAssistantPayload(businessName string, config clientmodels.ReceptionistConfig, knowledgeBase clientmodels.KnowledgeBase, serverURL, serverSecret string) map[string]interface{} {
	voiceProvider := config.VoiceProvider
	if voiceProvider == "" {
		voiceProvider = "openai"
	}
	voiceID := config.VoiceID
	if voiceID == "" {
		voiceID = "alloy"
	}
	greeting := config.GreetingMessage
	if greeting == "" {
		greeting = fmt.Sprintf("Thank you for calling %s! How can I help you today?", businessName)
	}

	payload := map[string]interface{}{
		"name": fmt.Sprintf("%s Receptionist", businessName),
		"model": map[string]interface{}{
			"provider":    "openai",
			"model":       "gpt-4-turbo",
			"temperature": 0.7,
			"messages": []map[string]interface{}{
				{"role": "system", "content": BuildSystemPrompt(businessName, config, knowledgeBase)},
			},
		},
		"voice": map[string]interface{}{
			"provider": voiceProvider,
			"voiceId":  voiceID,
		},
		"firstMessage":          greeting,
		"recordingEnabled":      true,
		"silenceTimeoutSeconds": 30,
		"maxDurationSeconds":    1800,
		"transport":             map[string]interface{}{"provider": "twilio"},
		"serverUrl":             serverURL,
		"serverUrlSecret":       serverSecret,
		"analysisPlan": map[string]interface{}{
			"summaryPlan": map[string]interface{}{"enabled": true},
			"structuredDataPlan": map[string]interface{}{
				"enabled": true,
				"schema":  StructuredDataSchema(),
			},
		},
	}

	if functions := BuildFunctions(config); len(functions) > 0 {
		payload["functions"] = functions
	}

	return payload
}
