package leadsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// Approve moves a pending-review lead into the funnel and delivers it to
// the client (billing counter, campaign counter, notification).
func (s *LeadService) Approve(ctx context.Context, id primitive.ObjectID, actor string) (*leadmodels.Lead, error) {
	lead, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	if lead.Status != leadmodels.LeadStatusPendingReview {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Only pending-review leads can be approved (current status: %s)", lead.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": leadmodels.LeadStatusNew},
		Push: map[string]interface{}{
			"activities": activity("approved", "Approved and delivered to client", actor),
		},
	})
	if err != nil {
		return nil, err
	}

	var campaign *campaignmodels.Campaign
	if !updated.CampaignID.IsZero() {
		if c, err := s.campaigns.FindOneById(ctx, updated.CampaignID); err == nil {
			campaign = &c
		} else {
			logger.GetErrorLogger().WithError(err).Warn("Failed to load campaign for approved lead")
		}
	}
	s.deliver(ctx, &updated, campaign)

	return &updated, nil
}

// Reject tombstones a pending-review lead. The record stays for audit; it
// is never delivered or billed.
func (s *LeadService) Reject(ctx context.Context, id primitive.ObjectID, reason, actor string) (*leadmodels.Lead, error) {
	lead, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	if lead.Status != leadmodels.LeadStatusPendingReview {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Only pending-review leads can be rejected (current status: %s)", lead.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	description := "Rejected"
	if reason != "" {
		description = fmt.Sprintf("Rejected: %s", reason)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": leadmodels.LeadStatusRejected},
		Push: map[string]interface{}{
			"activities": activity("rejected", description, actor),
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CountByStatus returns lead counts per status for a client; a zero
// clientID counts across all clients.
func (s *LeadService) CountByStatus(ctx context.Context, clientID primitive.ObjectID) (map[string]int64, error) {
	match := bson.M{}
	if !clientID.IsZero() {
		match["clientId"] = clientID
	}

	cursor, err := s.Collection().Aggregate(ctx, []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	counts := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		counts[row.ID] = row.Count
	}
	return counts, nil
}
