package campaignsvc

import (
	"testing"

	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
)

func TestRecomputeStats(t *testing.T) {
	stats := RecomputeStats(campaignmodels.CampaignStats{
		Views:       200,
		Submissions: 50,
		ScoreTotal:  3500,
	})
	if stats.ConversionRate != 25 {
		t.Errorf("conversionRate = %v, want 25", stats.ConversionRate)
	}
	if stats.AvgLeadScore != 70 {
		t.Errorf("avgLeadScore = %v, want 70", stats.AvgLeadScore)
	}
}

func TestRecomputeStats_ZeroViews(t *testing.T) {
	stats := RecomputeStats(campaignmodels.CampaignStats{Views: 0, Submissions: 0})
	if stats.ConversionRate != 0 {
		t.Errorf("conversionRate with zero views = %v, want 0", stats.ConversionRate)
	}
	if stats.AvgLeadScore != 0 {
		t.Errorf("avgLeadScore with zero submissions = %v, want 0", stats.AvgLeadScore)
	}
}

func TestRecomputeStats_PreservesCounters(t *testing.T) {
	in := campaignmodels.CampaignStats{Views: 10, Submissions: 3, Conversions: 3, LeadsDelivered: 2, ScoreTotal: 210}
	out := RecomputeStats(in)
	if out.Views != in.Views || out.Submissions != in.Submissions ||
		out.Conversions != in.Conversions || out.LeadsDelivered != in.LeadsDelivered ||
		out.ScoreTotal != in.ScoreTotal {
		t.Errorf("raw counters must not change: in=%+v out=%+v", in, out)
	}
}
