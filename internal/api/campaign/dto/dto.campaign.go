// Package dto - request payloads for the campaign domain.
package dto

import (
	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
)

// CampaignCreateInput creates a campaign. Status may be draft or active;
// empty defaults to draft.
type CampaignCreateInput struct {
	Name           string                           `json:"name" validate:"required,no_xss"`
	Description    string                           `json:"description" validate:"omitempty,no_xss"`
	Type           string                           `json:"type" validate:"omitempty,oneof=lead-capture lead-magnet webinar free-trial consultation"`
	Status         string                           `json:"status" validate:"omitempty,oneof=draft active"`
	TargetAudience campaignmodels.TargetAudience    `json:"targetAudience"`
	LeadMagnet     campaignmodels.LeadMagnet        `json:"leadMagnet"`
	Form           campaignmodels.CampaignForm      `json:"form"`
	AutoResponder  campaignmodels.AutoResponder     `json:"autoResponder"`
	LandingPage    *campaignmodels.LandingPage      `json:"landingPage"`
	Settings       campaignmodels.CampaignSettings  `json:"settings"`
}

// CampaignUpdateInput patches campaign fields. Nil pointers are left
// untouched. Status changes go through the dedicated status endpoints.
type CampaignUpdateInput struct {
	Name           *string                          `json:"name" validate:"omitempty,no_xss"`
	Description    *string                          `json:"description" validate:"omitempty,no_xss"`
	Type           *string                          `json:"type" validate:"omitempty,oneof=lead-capture lead-magnet webinar free-trial consultation"`
	TargetAudience *campaignmodels.TargetAudience   `json:"targetAudience"`
	LeadMagnet     *campaignmodels.LeadMagnet       `json:"leadMagnet"`
	Form           *campaignmodels.CampaignForm     `json:"form"`
	AutoResponder  *campaignmodels.AutoResponder    `json:"autoResponder"`
	LandingPage    *campaignmodels.LandingPage      `json:"landingPage"`
	Settings       *campaignmodels.CampaignSettings `json:"settings"`
}

// CampaignStatusInput sets an explicit status.
type CampaignStatusInput struct {
	Status string `json:"status" validate:"required,oneof=draft active paused completed"`
}

// PublicCampaignView is the filtered projection served to the public
// landing page. Nothing else from the campaign document leaves the API.
type PublicCampaignView struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Status      string                       `json:"status"`
	Form        campaignmodels.CampaignForm  `json:"form"`
	LandingPage *campaignmodels.LandingPage  `json:"landingPage,omitempty"`
}
