package models

import (
	"testing"
)

func TestMarkPublished(t *testing.T) {
	c := Campaign{Status: CampaignStatusDraft}
	if !c.MarkPublished(1000) {
		t.Fatal("draft campaign must be publishable")
	}
	if c.Status != CampaignStatusActive {
		t.Errorf("status = %q", c.Status)
	}
	if c.PublishedAt != 1000 {
		t.Errorf("publishedAt = %d, want 1000", c.PublishedAt)
	}
}

func TestMarkPublished_AlreadyActiveIsIdempotent(t *testing.T) {
	c := Campaign{Status: CampaignStatusActive, PublishedAt: 500}
	if !c.MarkPublished(2000) {
		t.Fatal("active campaign publish must be a no-op success")
	}
	if c.PublishedAt != 500 {
		t.Errorf("publishedAt changed to %d", c.PublishedAt)
	}
}

func TestMarkPublished_PausedKeepsFirstPublishTime(t *testing.T) {
	c := Campaign{Status: CampaignStatusPaused, PublishedAt: 500}
	if !c.MarkPublished(2000) {
		t.Fatal("paused campaign must be re-publishable")
	}
	if c.PublishedAt != 500 {
		t.Errorf("publishedAt = %d, want the original 500", c.PublishedAt)
	}
}

func TestMarkPublished_CompletedIsRejected(t *testing.T) {
	c := Campaign{Status: CampaignStatusCompleted}
	if c.MarkPublished(1000) {
		t.Fatal("completed campaign must not be publishable")
	}
	if c.PublishedAt != 0 {
		t.Errorf("publishedAt = %d, want 0", c.PublishedAt)
	}
}

func TestCanTransitionCampaign(t *testing.T) {
	allowed := []struct{ from, to string }{
		{CampaignStatusDraft, CampaignStatusActive},
		{CampaignStatusActive, CampaignStatusPaused},
		{CampaignStatusActive, CampaignStatusCompleted},
		{CampaignStatusPaused, CampaignStatusActive},
		{CampaignStatusPaused, CampaignStatusCompleted},
	}
	for _, c := range allowed {
		if !CanTransitionCampaign(c.from, c.to) {
			t.Errorf("%s -> %s must be allowed", c.from, c.to)
		}
	}

	denied := []struct{ from, to string }{
		{CampaignStatusDraft, CampaignStatusPaused},
		{CampaignStatusDraft, CampaignStatusCompleted},
		{CampaignStatusPaused, CampaignStatusDraft},
		{CampaignStatusActive, CampaignStatusDraft},
		{CampaignStatusCompleted, CampaignStatusActive},
		{CampaignStatusCompleted, CampaignStatusPaused},
	}
	for _, c := range denied {
		if CanTransitionCampaign(c.from, c.to) {
			t.Errorf("%s -> %s must be denied", c.from, c.to)
		}
	}
}

func TestToggledStatus(t *testing.T) {
	if got := ToggledStatus(CampaignStatusActive); got != CampaignStatusPaused {
		t.Errorf("active toggles to %q, want paused", got)
	}
	if got := ToggledStatus(CampaignStatusPaused); got != CampaignStatusActive {
		t.Errorf("paused toggles to %q, want active", got)
	}
	if got := ToggledStatus(CampaignStatusDraft); got != "" {
		t.Errorf("draft must not toggle, got %q", got)
	}
	if got := ToggledStatus(CampaignStatusCompleted); got != "" {
		t.Errorf("completed must not toggle, got %q", got)
	}
}

func TestToggledStatus_RoundTrip(t *testing.T) {
	if got := ToggledStatus(ToggledStatus(CampaignStatusActive)); got != CampaignStatusActive {
		t.Errorf("double toggle must return to active, got %q", got)
	}
}
