package models

// Campaign statuses.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Question field types.
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypePhone    = "phone"
	FieldTypeTextarea = "textarea"
	FieldTypeSelect   = "select"
	FieldTypeRadio    = "radio"
)

// campaignTransitions lists the allowed status transitions. completed is
// terminal; draft only leaves via publish.
var campaignTransitions = map[string][]string{
	CampaignStatusDraft:  {CampaignStatusActive},
	CampaignStatusActive: {CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusPaused: {CampaignStatusActive, CampaignStatusCompleted},
}

// CanTransitionCampaign reports whether a campaign may move from one status
// to another.
func CanTransitionCampaign(from, to string) bool {
	for _, allowed := range campaignTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ToggledStatus returns the opposite of the active/paused pair. Returns ""
// for statuses the toggle does not apply to.
func ToggledStatus(current string) string {
	switch current {
	case CampaignStatusActive:
		return CampaignStatusPaused
	case CampaignStatusPaused:
		return CampaignStatusActive
	default:
		return ""
	}
}
