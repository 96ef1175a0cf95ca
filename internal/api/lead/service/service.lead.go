package leadsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/models"
	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	billingsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/service"
	campaignsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/service"
	clientsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/service"
	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/notification"
)

// LeadService handles lead capture and lifecycle. Campaign, client and
// billing services are pulled in for the capture and delivery side effects.
type LeadService struct {
	*basesvc.BaseServiceMongoImpl[leadmodels.Lead]

	campaigns *campaignsvc.CampaignService
	clients   *clientsvc.ClientService
	billing   *billingsvc.BillingService
	notifier  *notification.Queue
}

// NewLeadService creates a LeadService wired to its collaborators.
func NewLeadService() (*LeadService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Leads)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.Leads, common.ErrNotFound)
	}

	campaigns, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("create CampaignService: %w", err)
	}
	clients, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("create ClientService: %w", err)
	}
	billing, err := billingsvc.NewBillingService()
	if err != nil {
		return nil, fmt.Errorf("create BillingService: %w", err)
	}

	return &LeadService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[leadmodels.Lead](coll),
		campaigns:            campaigns,
		clients:              clients,
		billing:              billing,
		notifier:             notification.Default(),
	}, nil
}

// activity builds one audit-trail entry.
func activity(kind, description, actor string) leadmodels.LeadActivity {
	return leadmodels.LeadActivity{
		Type:        kind,
		Description: description,
		PerformedBy: actor,
		PerformedAt: time.Now().UnixMilli(),
	}
}

// FindOwned returns the lead only when it belongs to the client.
func (s *LeadService) FindOwned(ctx context.Context, id, clientID primitive.ObjectID) (*leadmodels.Lead, error) {
	lead, err := s.FindOne(ctx, bson.M{"_id": id, "clientId": clientID}, nil)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List returns one page of the client's leads, filtered by status and
// source. A status of "" or "all" returns every status.
func (s *LeadService) List(ctx context.Context, clientID primitive.ObjectID, status, source string, page, limit int64) (*basemodels.PaginateResult[leadmodels.Lead], error) {
	filter := bson.M{"clientId": clientID}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	if source != "" && source != "all" {
		filter["source"] = source
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// ListPendingReview returns the admin review queue across all clients.
func (s *LeadService) ListPendingReview(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[leadmodels.Lead], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.FindWithPagination(ctx, bson.M{"status": leadmodels.LeadStatusPendingReview}, page, limit, opts)
}

// FilterByStatus returns the subset of leads with the given status; "all"
// (or empty) returns the input unchanged.
func FilterByStatus(leads []leadmodels.Lead, status string) []leadmodels.Lead {
	if status == "" || status == "all" {
		return leads
	}
	out := []leadmodels.Lead{}
	for _, lead := range leads {
		if lead.Status == status {
			out = append(out, lead)
		}
	}
	return out
}

// ChangeStatus moves a lead to a new status, enforcing the funnel rules and
// appending the audit activity.
func (s *LeadService) ChangeStatus(ctx context.Context, id, clientID primitive.ObjectID, to, actor string) (*leadmodels.Lead, error) {
	if !leadmodels.ValidLeadStatus(to) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown lead status %q", to),
			common.StatusBadRequest,
			nil,
		)
	}

	lead, err := s.FindOwned(ctx, id, clientID)
	if err != nil {
		return nil, err
	}

	if !leadmodels.CanTransitionLead(lead.Status, to) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Cannot change lead status from %s to %s", lead.Status, to),
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": to},
		Push: map[string]interface{}{
			"activities": activity("status-change", fmt.Sprintf("Status changed from %s to %s", lead.Status, to), actor),
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddNote appends a note plus its audit activity.
func (s *LeadService) AddNote(ctx context.Context, id, clientID primitive.ObjectID, text, actor string) (*leadmodels.Lead, error) {
	if text == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "text is required", common.StatusBadRequest, nil)
	}

	note := leadmodels.LeadNote{
		Text:    text,
		AddedBy: actor,
		AddedAt: time.Now().UnixMilli(),
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"notes":      note,
			"activities": activity("note", "Note added", actor),
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// AddTag adds a tag (set semantics) plus its audit activity.
func (s *LeadService) AddTag(ctx context.Context, id, clientID primitive.ObjectID, tag, actor string) (*leadmodels.Lead, error) {
	if tag == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "tag is required", common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"tags": tag},
		Push: map[string]interface{}{
			"activities": activity("tag", fmt.Sprintf("Tag %q added", tag), actor),
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
