package leadsvc

import (
	"strings"
)

// Score bands used across the admin and client consoles.
const (
	ScoreBandGood   = "good"   // >= 80
	ScoreBandMedium = "medium" // 60..79
	ScoreBandPoor   = "poor"   // < 60
)

// CaptureScore is the fixed quality score assigned to landing-page
// submissions. Call-generated leads are scored from the call report instead.
const CaptureScore = 70

// ScoreBand maps an integer score onto its band.
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return ScoreBandGood
	case score >= 60:
		return ScoreBandMedium
	default:
		return ScoreBandPoor
	}
}

// CallReportScore derives a lead score from the structured data extracted at
// the end of an assistant call. Base 50, plus 10 for a captured email, 10
// for a phone number, 15 for a stated budget, 15 for a timeline, and 20/10
// for hot/warm lead quality. Capped at 100.
func CallReportScore(structuredData map[string]interface{}) int {
	score := 50

	if s, _ := structuredData["email"].(string); s != "" {
		score += 10
	}
	if s, _ := structuredData["phone"].(string); s != "" {
		score += 10
	}
	if s, _ := structuredData["budget"].(string); s != "" {
		score += 15
	}
	if s, _ := structuredData["timeline"].(string); s != "" {
		score += 15
	}

	quality, _ := structuredData["leadQuality"].(string)
	switch strings.ToLower(quality) {
	case "hot":
		score += 20
	case "warm":
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
