// Package dto - request payloads for the lead domain.
package dto

// CaptureTracking is the client-side half of the compliance bundle. The IP
// field is ignored even if sent; the server fills it from the connection.
type CaptureTracking struct {
	UserAgent    string `json:"userAgent"`
	Timestamp    string `json:"timestamp"` // ISO8601
	ConsentGiven bool   `json:"consentGiven"`
	URL          string `json:"url"`
}

// CaptureInput is the public form submission body.
type CaptureInput struct {
	CampaignID string            `json:"campaignId" validate:"required"`
	FormData   map[string]string `json:"formData" validate:"required"`
	Tracking   CaptureTracking   `json:"tracking"`
}

// LeadStatusInput moves a lead to a new status.
type LeadStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// LeadNoteInput appends a note.
type LeadNoteInput struct {
	Text string `json:"text" validate:"required,no_xss"`
}

// LeadTagInput appends a tag.
type LeadTagInput struct {
	Tag string `json:"tag" validate:"required,no_xss"`
}

// RejectInput optionally records why a lead was rejected.
type RejectInput struct {
	Reason string `json:"reason" validate:"omitempty,no_xss"`
}
