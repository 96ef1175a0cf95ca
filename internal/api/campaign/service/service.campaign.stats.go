package campaignsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
)

// RecomputeStats derives the stored rate fields from the raw counters.
// conversionRate = submissions/views*100, avgLeadScore = scoreTotal/submissions.
func RecomputeStats(stats campaignmodels.CampaignStats) campaignmodels.CampaignStats {
	if stats.Views > 0 {
		stats.ConversionRate = float64(stats.Submissions) / float64(stats.Views) * 100
	} else {
		stats.ConversionRate = 0
	}
	if stats.Submissions > 0 {
		stats.AvgLeadScore = float64(stats.ScoreTotal) / float64(stats.Submissions)
	} else {
		stats.AvgLeadScore = 0
	}
	return stats
}

// RecordView bumps the view counter and recomputes the derived rates.
// Stats are maintained server-side only; client-reported numbers are ignored.
func (s *CampaignService) RecordView(ctx context.Context, id primitive.ObjectID) error {
	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	stats := campaign.Stats
	stats.Views++
	stats = RecomputeStats(stats)

	_, err = s.UpdateById(ctx, id, bson.M{"$set": bson.M{"stats": stats}})
	return err
}

// RecordSubmission bumps the submission counters with the captured lead's
// score and recomputes the derived rates.
func (s *CampaignService) RecordSubmission(ctx context.Context, id primitive.ObjectID, score int) error {
	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	stats := campaign.Stats
	stats.Submissions++
	stats.Conversions++
	stats.ScoreTotal += int64(score)
	stats = RecomputeStats(stats)

	_, err = s.UpdateById(ctx, id, bson.M{"$set": bson.M{"stats": stats}})
	return err
}

// RecordDelivery bumps leadsDelivered after a lead is handed to the client.
func (s *CampaignService) RecordDelivery(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, id, bson.M{"$inc": bson.M{"stats.leadsDelivered": 1}})
	return err
}
