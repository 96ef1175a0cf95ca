package leadsvc

import (
	"testing"
)

func TestScoreBand_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, ScoreBandGood},
		{80, ScoreBandGood},
		{79, ScoreBandMedium},
		{60, ScoreBandMedium},
		{59, ScoreBandPoor},
		{0, ScoreBandPoor},
	}
	for _, c := range cases {
		if got := ScoreBand(c.score); got != c.want {
			t.Errorf("ScoreBand(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestCaptureScore_IsMediumBand(t *testing.T) {
	if ScoreBand(CaptureScore) != ScoreBandMedium {
		t.Errorf("landing-page captures must land in the medium band, got %q", ScoreBand(CaptureScore))
	}
}

func TestCallReportScore(t *testing.T) {
	cases := []struct {
		name string
		data map[string]interface{}
		want int
	}{
		{"empty report", map[string]interface{}{}, 50},
		{"email only", map[string]interface{}{"email": "a@b.com"}, 60},
		{"phone only", map[string]interface{}{"phone": "555-1234"}, 60},
		{"budget and timeline", map[string]interface{}{"budget": "$5k", "timeline": "this month"}, 80},
		{"warm lead", map[string]interface{}{"leadQuality": "warm"}, 60},
		{"hot lead", map[string]interface{}{"leadQuality": "hot"}, 70},
		{"hot lead mixed case", map[string]interface{}{"leadQuality": "Hot"}, 70},
		{"cold lead adds nothing", map[string]interface{}{"leadQuality": "cold"}, 50},
		{
			"everything caps at 100",
			map[string]interface{}{
				"email":       "a@b.com",
				"phone":       "555-1234",
				"budget":      "$5k",
				"timeline":    "asap",
				"leadQuality": "hot",
			},
			100,
		},
		{"non-string values ignored", map[string]interface{}{"email": 42, "budget": true}, 50},
	}

	for _, c := range cases {
		if got := CallReportScore(c.data); got != c.want {
			t.Errorf("%s: CallReportScore = %d, want %d", c.name, got, c.want)
		}
	}
}
