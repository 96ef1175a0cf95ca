package leadsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
	leaddto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/dto"
	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/notification"
)

// firstOf returns the first non-empty form value among the given keys.
func firstOf(formData map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := formData[key]; v != "" {
			return v
		}
	}
	return ""
}

// extractContact pulls the contact fields out of the submitted form data.
// Positional keys "1".."4" (name, email, phone, company) are tried first,
// then named keys, then the question list by field type.
func extractContact(questions []campaignmodels.Question, formData map[string]string) (name, email, phone, company string) {
	name = firstOf(formData, "1", "name")
	email = firstOf(formData, "2", "email")
	phone = firstOf(formData, "3", "phone")
	company = firstOf(formData, "4", "company")

	for _, q := range questions {
		value := formData[q.ID]
		if value == "" {
			continue
		}
		switch q.Type {
		case campaignmodels.FieldTypeEmail:
			if email == "" {
				email = value
			}
		case campaignmodels.FieldTypePhone:
			if phone == "" {
				phone = value
			}
		}
	}
	return
}

// captureTracking assembles the stored compliance bundle: the client-supplied
// fields plus the server-side ip and capture stamp. A missing client
// timestamp falls back to the capture time.
func captureTracking(in leaddto.CaptureTracking, ip string) leadmodels.Tracking {
	capturedAt := time.Now().UTC().Format(time.RFC3339)
	timestamp := in.Timestamp
	if timestamp == "" {
		timestamp = capturedAt
	}
	return leadmodels.Tracking{
		IP:           ip,
		UserAgent:    in.UserAgent,
		Timestamp:    timestamp,
		ConsentGiven: in.ConsentGiven,
		URL:          in.URL,
		CapturedAt:   capturedAt,
	}
}

// Capture processes a public form submission: validates against the
// campaign's questions, persists the lead and applies the stats, billing and
// notification side effects. The IP always comes from the connection.
func (s *LeadService) Capture(ctx context.Context, input *leaddto.CaptureInput, ip string) (*leadmodels.Lead, error) {
	campaignID, err := primitive.ObjectIDFromHex(input.CampaignID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Invalid campaign ID", common.StatusBadRequest, nil)
	}

	campaign, err := s.campaigns.FindOneById(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.Status != campaignmodels.CampaignStatusActive {
		return nil, common.NewError(common.ErrCodeBusinessState, "Campaign is not active", common.StatusBadRequest, nil)
	}

	questions := campaign.ActiveQuestions()
	collectConsent := campaign.LandingPage != nil && campaign.LandingPage.CollectConsent

	if errs := ValidateSubmission(questions, input.FormData, collectConsent, input.Tracking.ConsentGiven); len(errs) > 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, errs)
	}

	name, email, phone, company := extractContact(questions, input.FormData)

	status := leadmodels.LeadStatusNew
	if campaign.Settings.ReviewBeforeDelivery {
		status = leadmodels.LeadStatusPendingReview
	}

	score := CaptureScore
	lead := leadmodels.Lead{
		ClientID:      campaign.ClientID,
		CampaignID:    campaign.ID,
		CampaignName:  campaign.Name,
		Name:          name,
		Email:         email,
		Phone:         phone,
		Company:       company,
		Source:        leadmodels.LeadSourceLandingPage,
		Score:         score,
		ScoreBand:     ScoreBand(score),
		Status:        status,
		FormResponses: input.FormData,
		Tracking:      captureTracking(input.Tracking, ip),
		Activities: []leadmodels.LeadActivity{
			activity("captured", fmt.Sprintf("Captured from campaign %q", campaign.Name), "system"),
		},
	}

	created, err := s.InsertOne(ctx, lead)
	if err != nil {
		return nil, err
	}

	if err := s.campaigns.RecordSubmission(ctx, campaign.ID, score); err != nil {
		logger.GetErrorLogger().WithError(err).Warn("Failed to update campaign stats after capture")
	}

	if status == leadmodels.LeadStatusNew {
		s.deliver(ctx, &created, &campaign)
	}

	s.sendAutoResponder(&campaign, &created)

	return &created, nil
}

// deliver applies the side effects of handing a lead to its client: billing
// counter, campaign delivery counter and the notify-on-submit email.
func (s *LeadService) deliver(ctx context.Context, lead *leadmodels.Lead, campaign *campaignmodels.Campaign) {
	if err := s.billing.TrackLeadDelivery(ctx, lead.ClientID); err != nil {
		logger.GetErrorLogger().WithError(err).Warn("Failed to track lead delivery for billing")
	}
	if !lead.CampaignID.IsZero() {
		if err := s.campaigns.RecordDelivery(ctx, lead.CampaignID); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Failed to record lead delivery on campaign")
		}
	}

	if campaign != nil && campaign.Settings.NotifyOnSubmit {
		client, err := s.clients.FindClient(ctx, lead.ClientID)
		if err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Failed to load client for submit notification")
			return
		}
		s.notifier.Enqueue(notification.Message{
			Channel: notification.ChannelEmail,
			To:      client.Email,
			Subject: fmt.Sprintf("New lead from %s", lead.CampaignName),
			Body:    fmt.Sprintf("A new lead (%s) was captured by campaign %q.", lead.Name, lead.CampaignName),
			Meta:    map[string]string{"leadId": lead.ID.Hex()},
		})
	}
}

// sendAutoResponder emails the lead when the campaign's auto-responder is
// enabled and an email address was captured.
func (s *LeadService) sendAutoResponder(campaign *campaignmodels.Campaign, lead *leadmodels.Lead) {
	if campaign == nil || !campaign.AutoResponder.Enabled || lead.Email == "" {
		return
	}

	fields := map[string]string{
		"name":    lead.Name,
		"email":   lead.Email,
		"phone":   lead.Phone,
		"company": lead.Company,
	}

	s.notifier.Enqueue(notification.Message{
		Channel: notification.ChannelEmail,
		To:      lead.Email,
		Subject: notification.RenderTemplate(campaign.AutoResponder.Subject, fields),
		Body:    notification.RenderTemplate(campaign.AutoResponder.Body, fields),
		Meta:    map[string]string{"leadId": lead.ID.Hex(), "kind": "auto-responder"},
	})
}

// leadFromCall maps a call report's structured data onto a lead record,
// keeping the qualification fields the assistant extracted.
func leadFromCall(clientID primitive.ObjectID, structuredData map[string]interface{}, callID string) leadmodels.Lead {
	str := func(key string) string {
		v, _ := structuredData[key].(string)
		return v
	}

	now := time.Now().UTC().Format(time.RFC3339)
	score := CallReportScore(structuredData)
	lead := leadmodels.Lead{
		ClientID:    clientID,
		Name:        str("name"),
		Email:       str("email"),
		Phone:       str("phone"),
		Company:     str("company"),
		Interest:    str("interest"),
		Budget:      str("budget"),
		Timeline:    str("timeline"),
		LeadQuality: str("leadQuality"),
		CallID:      callID,
		Source:      leadmodels.LeadSourceAIReceptionist,
		Score:       score,
		ScoreBand:   ScoreBand(score),
		Status:      leadmodels.LeadStatusNew,
		Tracking: leadmodels.Tracking{
			IP:         "unknown",
			Timestamp:  now,
			CapturedAt: now,
		},
		Activities: []leadmodels.LeadActivity{
			activity("captured", fmt.Sprintf("Captured from assistant call %s", callID), "system"),
		},
	}

	if notes := str("notes"); notes != "" {
		lead.Notes = []leadmodels.LeadNote{{
			Text:    notes,
			AddedBy: "system",
			AddedAt: time.Now().UnixMilli(),
		}}
	}

	return lead
}

// CreateFromCall persists a lead produced by an assistant call report.
// Call-generated leads skip the review queue and are delivered immediately.
func (s *LeadService) CreateFromCall(ctx context.Context, clientID primitive.ObjectID, structuredData map[string]interface{}, callID string) (*leadmodels.Lead, error) {
	created, err := s.InsertOne(ctx, leadFromCall(clientID, structuredData, callID))
	if err != nil {
		return nil, err
	}

	s.deliver(ctx, &created, nil)
	return &created, nil
}
