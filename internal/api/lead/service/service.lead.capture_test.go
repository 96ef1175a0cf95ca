package leadsvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
	leaddto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/dto"
	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
)

func TestExtractContact_PositionalKeys(t *testing.T) {
	name, email, phone, company := extractContact(nil, map[string]string{
		"1": "Jane Doe",
		"2": "jane@example.com",
		"3": "555-1234",
		"4": "Acme",
	})
	if name != "Jane Doe" || email != "jane@example.com" || phone != "555-1234" || company != "Acme" {
		t.Errorf("got (%q, %q, %q, %q)", name, email, phone, company)
	}
}

func TestExtractContact_NamedKeys(t *testing.T) {
	name, email, phone, company := extractContact(nil, map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"phone":   "555-1234",
		"company": "Acme",
	})
	if name != "Jane" || email != "jane@example.com" || phone != "555-1234" || company != "Acme" {
		t.Errorf("got (%q, %q, %q, %q)", name, email, phone, company)
	}
}

func TestExtractContact_PositionalWinsOverNamed(t *testing.T) {
	name, _, _, _ := extractContact(nil, map[string]string{
		"1":    "Positional",
		"name": "Named",
	})
	if name != "Positional" {
		t.Errorf("positional key must win, got %q", name)
	}
}

func TestExtractContact_FallsBackToQuestionTypes(t *testing.T) {
	questions := []campaignmodels.Question{
		{ID: "q-email", Type: campaignmodels.FieldTypeEmail},
		{ID: "q-phone", Type: campaignmodels.FieldTypePhone},
	}
	_, email, phone, _ := extractContact(questions, map[string]string{
		"q-email": "jane@example.com",
		"q-phone": "555-1234",
	})
	if email != "jane@example.com" {
		t.Errorf("email = %q", email)
	}
	if phone != "555-1234" {
		t.Errorf("phone = %q", phone)
	}
}

func TestExtractContact_KeyedValueNotOverwrittenByQuestion(t *testing.T) {
	questions := []campaignmodels.Question{
		{ID: "q-email", Type: campaignmodels.FieldTypeEmail},
	}
	_, email, _, _ := extractContact(questions, map[string]string{
		"email":   "primary@example.com",
		"q-email": "secondary@example.com",
	})
	if email != "primary@example.com" {
		t.Errorf("named key must win over question-type fallback, got %q", email)
	}
}

func TestCaptureTracking_StampsServerFields(t *testing.T) {
	tracking := captureTracking(leaddto.CaptureTracking{
		UserAgent:    "Mozilla/5.0",
		Timestamp:    "2026-08-01T10:00:00Z",
		ConsentGiven: true,
		URL:          "https://example.com/lp",
	}, "203.0.113.9")

	if tracking.IP != "203.0.113.9" {
		t.Errorf("ip = %q", tracking.IP)
	}
	if tracking.Timestamp != "2026-08-01T10:00:00Z" {
		t.Errorf("client timestamp must be preserved, got %q", tracking.Timestamp)
	}
	if !tracking.ConsentGiven || tracking.UserAgent != "Mozilla/5.0" || tracking.URL != "https://example.com/lp" {
		t.Errorf("client fields not carried over: %+v", tracking)
	}
	if _, err := time.Parse(time.RFC3339, tracking.CapturedAt); err != nil {
		t.Errorf("capturedAt %q is not RFC3339: %v", tracking.CapturedAt, err)
	}
}

func TestCaptureTracking_MissingTimestampFallsBackToCaptureTime(t *testing.T) {
	tracking := captureTracking(leaddto.CaptureTracking{}, "203.0.113.9")

	if tracking.Timestamp == "" {
		t.Fatal("timestamp must be filled server-side")
	}
	if tracking.Timestamp != tracking.CapturedAt {
		t.Errorf("fallback timestamp %q should equal capturedAt %q", tracking.Timestamp, tracking.CapturedAt)
	}
}

func TestLeadFromCall_KeepsQualificationFields(t *testing.T) {
	clientID := primitive.NewObjectID()
	lead := leadFromCall(clientID, map[string]interface{}{
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "555-1234",
		"company":     "Acme",
		"interest":    "Kitchen remodel",
		"budget":      "$10k-$20k",
		"timeline":    "next month",
		"leadQuality": "hot",
		"notes":       "Prefers morning calls",
	}, "call-123")

	if lead.ClientID != clientID {
		t.Errorf("clientId = %v", lead.ClientID)
	}
	if lead.Interest != "Kitchen remodel" || lead.Budget != "$10k-$20k" || lead.Timeline != "next month" {
		t.Errorf("qualification fields dropped: %+v", lead)
	}
	if lead.LeadQuality != "hot" {
		t.Errorf("leadQuality = %q", lead.LeadQuality)
	}
	if lead.CallID != "call-123" {
		t.Errorf("callId = %q", lead.CallID)
	}
	if lead.Source != leadmodels.LeadSourceAIReceptionist || lead.Status != leadmodels.LeadStatusNew {
		t.Errorf("source/status = %q/%q", lead.Source, lead.Status)
	}
	if len(lead.Notes) != 1 || lead.Notes[0].Text != "Prefers morning calls" {
		t.Errorf("call notes not kept: %+v", lead.Notes)
	}
	if lead.Tracking.CapturedAt == "" {
		t.Error("capturedAt must be stamped")
	}
}

func TestLeadFromCall_MissingFieldsStayEmpty(t *testing.T) {
	lead := leadFromCall(primitive.NewObjectID(), map[string]interface{}{
		"name":   "Jane",
		"budget": 5000, // non-string values are ignored
	}, "call-9")

	if lead.Budget != "" || lead.Interest != "" || lead.LeadQuality != "" {
		t.Errorf("missing fields must stay empty: %+v", lead)
	}
	if len(lead.Notes) != 0 {
		t.Errorf("no notes expected, got %+v", lead.Notes)
	}
}
