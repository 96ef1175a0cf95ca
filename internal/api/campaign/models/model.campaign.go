// Package models - Campaign belongs to the lead-gen domain (campaigns).
// A campaign owns a capture form, an optional landing page and its stats.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question defines one capture-form field.
type Question struct {
	ID          string   `json:"id" bson:"id"`
	Type        string   `json:"type" bson:"type"` // text, email, phone, textarea, select, radio
	Label       string   `json:"label" bson:"label"`
	Placeholder string   `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	Required    bool     `json:"required" bson:"required"`
	Options     []string `json:"options,omitempty" bson:"options,omitempty"` // select/radio only
}

// TargetAudience describes who the campaign is aimed at.
type TargetAudience struct {
	Industry    string `json:"industry,omitempty" bson:"industry,omitempty"`
	CompanySize string `json:"companySize,omitempty" bson:"companySize,omitempty"`
	Budget      string `json:"budget,omitempty" bson:"budget,omitempty"`
}

// LeadMagnet is the incentive offered for submitting the form.
type LeadMagnet struct {
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Type        string `json:"type,omitempty" bson:"type,omitempty"` // ebook, webinar, free-trial, consultation, checklist, template
}

// CampaignForm is the capture form definition.
type CampaignForm struct {
	Fields         []Question `json:"fields" bson:"fields"`
	SubmitText     string     `json:"submitText,omitempty" bson:"submitText,omitempty"`
	SuccessMessage string     `json:"successMessage,omitempty" bson:"successMessage,omitempty"`
}

// AutoResponder configures the reply sent to a new lead. Body supports
// {{name}}, {{email}}, {{phone}} and {{company}} placeholders.
type AutoResponder struct {
	Enabled bool   `json:"enabled" bson:"enabled"`
	Subject string `json:"subject,omitempty" bson:"subject,omitempty"`
	Body    string `json:"body,omitempty" bson:"body,omitempty"`
}

// LandingPage is the public page rendered for the campaign.
type LandingPage struct {
	Headline         string     `json:"headline,omitempty" bson:"headline,omitempty"`
	Subheadline      string     `json:"subheadline,omitempty" bson:"subheadline,omitempty"`
	HeroImage        string     `json:"heroImage,omitempty" bson:"heroImage,omitempty"`
	PrimaryColor     string     `json:"primaryColor,omitempty" bson:"primaryColor,omitempty" validate:"omitempty,hex_color"`
	Questions        []Question `json:"questions,omitempty" bson:"questions,omitempty"` // overrides form.fields when set
	ThankYouHeadline string     `json:"thankYouHeadline,omitempty" bson:"thankYouHeadline,omitempty"`
	ThankYouMessage  string     `json:"thankYouMessage,omitempty" bson:"thankYouMessage,omitempty"`
	CollectConsent   bool       `json:"collectConsent" bson:"collectConsent"`
	ConsentText      string     `json:"consentText,omitempty" bson:"consentText,omitempty"`
	RedirectURL      string     `json:"redirectUrl,omitempty" bson:"redirectUrl,omitempty"`
}

// CampaignSettings holds per-campaign behaviour flags.
type CampaignSettings struct {
	LeadScoring          bool   `json:"leadScoring" bson:"leadScoring"`
	AutoQualify          bool   `json:"autoQualify" bson:"autoQualify"`
	NotifyOnSubmit       bool   `json:"notifyOnSubmit" bson:"notifyOnSubmit"`
	ReviewBeforeDelivery bool   `json:"reviewBeforeDelivery" bson:"reviewBeforeDelivery"` // captured leads wait in pending-review
	AssignToSalesRep     string `json:"assignToSalesRep,omitempty" bson:"assignToSalesRep,omitempty"`
}

// CampaignStats is maintained server-side on every view and submission.
type CampaignStats struct {
	Views          int64   `json:"views" bson:"views"`
	Submissions    int64   `json:"submissions" bson:"submissions"`
	Conversions    int64   `json:"conversions" bson:"conversions"`
	ConversionRate float64 `json:"conversionRate" bson:"conversionRate"` // submissions/views*100
	LeadsDelivered int64   `json:"leadsDelivered" bson:"leadsDelivered"`
	AvgLeadScore   float64 `json:"avgLeadScore" bson:"avgLeadScore"`
	ScoreTotal     int64   `json:"-" bson:"scoreTotal"` // running sum backing avgLeadScore
}

// Campaign is a lead-generation funnel owned by one client (campaigns).
type Campaign struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClientID    primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1,compound:campaign_client_status"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Type        string             `json:"type,omitempty" bson:"type,omitempty"` // lead-capture, lead-magnet, webinar, free-trial, consultation
	Status      string             `json:"status" bson:"status" index:"single:1,compound:campaign_client_status" default:"draft"`

	TargetAudience TargetAudience   `json:"targetAudience,omitempty" bson:"targetAudience,omitempty"`
	LeadMagnet     LeadMagnet       `json:"leadMagnet,omitempty" bson:"leadMagnet,omitempty"`
	Form           CampaignForm     `json:"form" bson:"form"`
	AutoResponder  AutoResponder    `json:"autoResponder,omitempty" bson:"autoResponder,omitempty"`
	LandingPage    *LandingPage     `json:"landingPage,omitempty" bson:"landingPage,omitempty"`
	Settings       CampaignSettings `json:"settings" bson:"settings"`
	Stats          CampaignStats    `json:"stats" bson:"stats"`

	PublishedAt int64 `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	CreatedAt   int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt   int64 `json:"updatedAt" bson:"updatedAt"`
}

// ActiveQuestions returns the question list the public page renders:
// landingPage.questions when present, otherwise form.fields.
func (c *Campaign) ActiveQuestions() []Question {
	if c.LandingPage != nil && len(c.LandingPage.Questions) > 0 {
		return c.LandingPage.Questions
	}
	return c.Form.Fields
}

// MarkPublished moves the campaign to active and stamps publishedAt,
// reporting whether the transition was legal. The first publish time is
// kept when a paused campaign goes live again.
func (c *Campaign) MarkPublished(now int64) bool {
	if c.Status == CampaignStatusActive {
		return true
	}
	if !CanTransitionCampaign(c.Status, CampaignStatusActive) {
		return false
	}
	c.Status = CampaignStatusActive
	if c.PublishedAt == 0 {
		c.PublishedAt = now
	}
	return true
}
