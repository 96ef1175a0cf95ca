// Package leadsvc - lead capture, validation, scoring and lifecycle.
package leadsvc

import (
	"regexp"
	"strings"

	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
)

// Field-level validation messages surfaced on the public form.
const (
	MsgFieldRequired = "This field is required"
	MsgInvalidEmail  = "Invalid email address"
	MsgInvalidPhone  = "Invalid phone number"
	MsgConsentNeeded = "You must agree to continue"
)

// ConsentErrorKey is the distinguished key for the consent checkbox error.
const ConsentErrorKey = "consent"

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)
)

// ValidateSubmission checks a form submission against the campaign's
// question list. It collects every field error instead of stopping at the
// first one; the returned map is empty when the submission is valid.
func ValidateSubmission(questions []campaignmodels.Question, formData map[string]string, collectConsent, consentGiven bool) map[string]string {
	errs := map[string]string{}

	for _, q := range questions {
		value := strings.TrimSpace(formData[q.ID])

		if q.Required && value == "" {
			errs[q.ID] = MsgFieldRequired
			continue
		}
		if value == "" {
			continue
		}

		switch q.Type {
		case campaignmodels.FieldTypeEmail:
			if !emailPattern.MatchString(value) {
				errs[q.ID] = MsgInvalidEmail
			}
		case campaignmodels.FieldTypePhone:
			if !phonePattern.MatchString(value) {
				errs[q.ID] = MsgInvalidPhone
			}
		}
	}

	if collectConsent && !consentGiven {
		errs[ConsentErrorKey] = MsgConsentNeeded
	}

	return errs
}
