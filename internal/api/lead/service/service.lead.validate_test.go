package leadsvc

import (
	"testing"

	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
)

func questions() []campaignmodels.Question {
	return []campaignmodels.Question{
		{ID: "1", Type: campaignmodels.FieldTypeText, Label: "Name", Required: true},
		{ID: "2", Type: campaignmodels.FieldTypeEmail, Label: "Email", Required: true},
		{ID: "3", Type: campaignmodels.FieldTypePhone, Label: "Phone", Required: false},
		{ID: "4", Type: campaignmodels.FieldTypeTextarea, Label: "Details", Required: false},
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	errs := ValidateSubmission(questions(), map[string]string{
		"1": "Jane Doe",
		"2": "jane@example.com",
		"3": "+1 (555) 123-4567",
	}, false, false)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSubmission_RequiredMissing(t *testing.T) {
	errs := ValidateSubmission(questions(), map[string]string{
		"2": "jane@example.com",
	}, false, false)
	if errs["1"] != MsgFieldRequired {
		t.Errorf("expected %q for field 1, got %q", MsgFieldRequired, errs["1"])
	}
}

func TestValidateSubmission_WhitespaceIsMissing(t *testing.T) {
	errs := ValidateSubmission(questions(), map[string]string{
		"1": "   ",
		"2": "jane@example.com",
	}, false, false)
	if errs["1"] != MsgFieldRequired {
		t.Errorf("whitespace-only value must fail required check, got %v", errs)
	}
}

func TestValidateSubmission_InvalidEmail(t *testing.T) {
	for _, bad := range []string{"not-an-email", "a@b", "two words@example.com", "a@@b.com"} {
		errs := ValidateSubmission(questions(), map[string]string{
			"1": "Jane",
			"2": bad,
		}, false, false)
		if errs["2"] != MsgInvalidEmail {
			t.Errorf("email %q: expected %q, got %q", bad, MsgInvalidEmail, errs["2"])
		}
	}
}

func TestValidateSubmission_InvalidPhone(t *testing.T) {
	errs := ValidateSubmission(questions(), map[string]string{
		"1": "Jane",
		"2": "jane@example.com",
		"3": "call me maybe",
	}, false, false)
	if errs["3"] != MsgInvalidPhone {
		t.Errorf("expected %q for field 3, got %q", MsgInvalidPhone, errs["3"])
	}
}

func TestValidateSubmission_OptionalEmptySkipsFormat(t *testing.T) {
	errs := ValidateSubmission(questions(), map[string]string{
		"1": "Jane",
		"2": "jane@example.com",
		"3": "",
	}, false, false)
	if len(errs) != 0 {
		t.Fatalf("empty optional field must not be format-checked, got %v", errs)
	}
}

func TestValidateSubmission_CollectsAllErrors(t *testing.T) {
	errs := ValidateSubmission(questions(), map[string]string{
		"2": "bad-email",
	}, true, false)

	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	if errs["1"] != MsgFieldRequired {
		t.Errorf("field 1: got %q", errs["1"])
	}
	if errs["2"] != MsgInvalidEmail {
		t.Errorf("field 2: got %q", errs["2"])
	}
	if errs[ConsentErrorKey] != MsgConsentNeeded {
		t.Errorf("consent: got %q", errs[ConsentErrorKey])
	}
}

func TestValidateSubmission_Consent(t *testing.T) {
	data := map[string]string{"1": "Jane", "2": "jane@example.com"}

	errs := ValidateSubmission(questions(), data, true, false)
	if errs[ConsentErrorKey] != MsgConsentNeeded {
		t.Errorf("consent required but not given: got %v", errs)
	}

	errs = ValidateSubmission(questions(), data, true, true)
	if len(errs) != 0 {
		t.Errorf("consent given: expected no errors, got %v", errs)
	}

	errs = ValidateSubmission(questions(), data, false, false)
	if _, ok := errs[ConsentErrorKey]; ok {
		t.Error("consent must not be checked when the campaign does not collect it")
	}
}
