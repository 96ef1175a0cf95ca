package vapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
)

func sampleKB() clientmodels.KnowledgeBase {
	return clientmodels.KnowledgeBase{
		FAQs:     []clientmodels.FAQ{{Question: "Do you offer emergency service?", Answer: "Yes, around the clock."}},
		Services: []string{"Drain cleaning"},
		Staff:    []string{"Sam (lead technician)"},
	}
}

func fullConfig() clientmodels.ReceptionistConfig {
	return clientmodels.ReceptionistConfig{
		BusinessHours: map[string]clientmodels.BusinessDay{
			"monday": {Open: "9:00", Close: "17:00"},
			"sunday": {Closed: true},
		},
		PrimaryServices: "Plumbing, heating",
		PricingInfo:     "Callout fee $80",
		BookingEnabled:  true,
		QuoteEnabled:    true,
		ForwardTo:       "+15551234567",
		AIPersonality:   "warm and upbeat",
	}
}

func TestBuildSystemPrompt_SectionOrder(t *testing.T) {
	prompt := BuildSystemPrompt("Acme Plumbing", fullConfig(), sampleKB())

	sections := []string{
		"You are a professional and warm and upbeat AI phone receptionist for Acme Plumbing.",
		"BUSINESS HOURS:",
		"SERVICES WE OFFER:",
		"PRICING INFORMATION:",
		"YOUR CAPABILITIES:",
		"INSTRUCTIONS:",
		"ADDITIONAL BUSINESS KNOWLEDGE:",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(prompt, section)
		if idx < 0 {
			t.Fatalf("prompt missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestBuildSystemPrompt_BusinessHours(t *testing.T) {
	prompt := BuildSystemPrompt("Acme", fullConfig(), clientmodels.KnowledgeBase{})

	assert.Contains(t, prompt, "Monday: 9:00 - 17:00")
	assert.Contains(t, prompt, "Sunday: Closed")
	// Days absent from the config render as closed.
	assert.Contains(t, prompt, "Tuesday: Closed")
}

func TestBuildSystemPrompt_ConditionalBlocks(t *testing.T) {
	config := clientmodels.ReceptionistConfig{}
	prompt := BuildSystemPrompt("Acme", config, clientmodels.KnowledgeBase{})

	assert.NotContains(t, prompt, "SERVICES WE OFFER:")
	assert.NotContains(t, prompt, "PRICING INFORMATION:")
	assert.NotContains(t, prompt, "ADDITIONAL BUSINESS KNOWLEDGE:")
	assert.NotContains(t, prompt, "book appointments")
	assert.NotContains(t, prompt, "price quotes")
	assert.NotContains(t, prompt, "Transfer urgent calls")

	// Default persona applies when none is configured.
	assert.Contains(t, prompt, "You are a professional and friendly AI phone receptionist for Acme.")
}

func TestBuildSystemPrompt_Capabilities(t *testing.T) {
	prompt := BuildSystemPrompt("Acme", fullConfig(), clientmodels.KnowledgeBase{})

	assert.Contains(t, prompt, "- Take messages for the team")
	assert.Contains(t, prompt, "- Check availability and book appointments")
	assert.Contains(t, prompt, "- Generate price quotes for our services")
	assert.Contains(t, prompt, "- Transfer urgent calls to +15551234567")
}

func TestBuildSystemPrompt_KnowledgeBase(t *testing.T) {
	prompt := BuildSystemPrompt("Acme", clientmodels.ReceptionistConfig{}, sampleKB())

	assert.Contains(t, prompt, "Q: Do you offer emergency service?")
	assert.Contains(t, prompt, "A: Yes, around the clock.")
	assert.Contains(t, prompt, "Services: Drain cleaning")
	assert.Contains(t, prompt, "Team: Sam (lead technician)")
}

func TestBuildSystemPrompt_Instructions(t *testing.T) {
	prompt := BuildSystemPrompt("Acme", clientmodels.ReceptionistConfig{}, clientmodels.KnowledgeBase{})

	for _, line := range []string{
		"1. Always be polite and helpful",
		"2. Collect the caller's name and contact information early in the call",
		"3. Ask about their needs, budget, and timeline when relevant",
		"4. Never make up information; say you will have someone follow up instead",
		"5. Keep responses short and conversational",
		"6. End every call by confirming the next step",
	} {
		assert.Contains(t, prompt, line)
	}
}

func TestStructuredDataSchema(t *testing.T) {
	schema := StructuredDataSchema()
	require.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"name", "email", "phone", "company", "interest", "budget", "timeline", "leadQuality", "notes"} {
		assert.Contains(t, props, key)
	}

	quality := props["leadQuality"].(map[string]interface{})
	assert.Equal(t, []string{"hot", "warm", "cold"}, quality["enum"])
}

func functionNames(functions []map[string]interface{}) []string {
	names := []string{}
	for _, f := range functions {
		names = append(names, f["name"].(string))
	}
	return names
}

func TestBuildFunctions(t *testing.T) {
	cases := []struct {
		name    string
		booking bool
		quote   bool
		want    []string
	}{
		{"neither", false, false, []string{}},
		{"booking only", true, false, []string{"check_availability", "book_appointment"}},
		{"quote only", false, true, []string{"generate_quote"}},
		{"both", true, true, []string{"check_availability", "book_appointment", "generate_quote"}},
	}
	for _, c := range cases {
		functions := BuildFunctions(clientmodels.ReceptionistConfig{BookingEnabled: c.booking, QuoteEnabled: c.quote})
		assert.Equal(t, c.want, functionNames(functions), c.name)
	}
}

func TestBuildAssistantPayload(t *testing.T) {
	payload := BuildAssistantPayload("Acme", fullConfig(), sampleKB(), "https://portal.example.com/api/vapi/webhook", "secret")

	assert.Equal(t, "Acme Receptionist", payload["name"])
	assert.Equal(t, true, payload["recordingEnabled"])
	assert.Equal(t, 30, payload["silenceTimeoutSeconds"])
	assert.Equal(t, 1800, payload["maxDurationSeconds"])
	assert.Equal(t, "https://portal.example.com/api/vapi/webhook", payload["serverUrl"])
	assert.Equal(t, "secret", payload["serverUrlSecret"])

	model := payload["model"].(map[string]interface{})
	assert.Equal(t, "openai", model["provider"])
	assert.Equal(t, "gpt-4-turbo", model["model"])
	assert.Equal(t, 0.7, model["temperature"])

	transport := payload["transport"].(map[string]interface{})
	assert.Equal(t, "twilio", transport["provider"])

	plan := payload["analysisPlan"].(map[string]interface{})
	structured := plan["structuredDataPlan"].(map[string]interface{})
	assert.Equal(t, true, structured["enabled"])
	assert.NotNil(t, structured["schema"])

	require.Contains(t, payload, "functions")
	assert.Len(t, payload["functions"], 3)
}

func TestBuildAssistantPayload_Defaults(t *testing.T) {
	payload := BuildAssistantPayload("Acme", clientmodels.ReceptionistConfig{}, clientmodels.KnowledgeBase{}, "", "")

	voice := payload["voice"].(map[string]interface{})
	assert.Equal(t, "openai", voice["provider"])
	assert.Equal(t, "alloy", voice["voiceId"])
	assert.Equal(t, "Thank you for calling Acme! How can I help you today?", payload["firstMessage"])

	// No feature flags means no functions key at all.
	assert.NotContains(t, payload, "functions")
	// The extraction schema is attached regardless.
	assert.Contains(t, payload, "analysisPlan")
}
