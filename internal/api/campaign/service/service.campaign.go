// Package campaignsvc - campaign CRUD, status lifecycle and stats upkeep.
package campaignsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/models"
	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	campaigndto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/dto"
	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
)

// CampaignService handles campaign CRUD and lifecycle.
type CampaignService struct {
	*basesvc.BaseServiceMongoImpl[campaignmodels.Campaign]
}

// NewCampaignService creates a CampaignService.
func NewCampaignService() (*CampaignService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Campaigns)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.Campaigns, common.ErrNotFound)
	}
	return &CampaignService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[campaignmodels.Campaign](coll),
	}, nil
}

// normalizeQuestions assigns missing question ids and checks that
// select/radio fields carry options.
func normalizeQuestions(questions []campaignmodels.Question) ([]campaignmodels.Question, error) {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.New().String()
		}
		switch questions[i].Type {
		case campaignmodels.FieldTypeSelect, campaignmodels.FieldTypeRadio:
			if len(questions[i].Options) == 0 {
				return nil, common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Field %q requires at least one option", questions[i].Label),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}
	return questions, nil
}

// CreateCampaign creates a campaign for the client. Status defaults to draft.
func (s *CampaignService) CreateCampaign(ctx context.Context, clientID primitive.ObjectID, input *campaigndto.CampaignCreateInput) (*campaignmodels.Campaign, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	fields, err := normalizeQuestions(input.Form.Fields)
	if err != nil {
		return nil, err
	}
	input.Form.Fields = fields

	if input.LandingPage != nil {
		questions, err := normalizeQuestions(input.LandingPage.Questions)
		if err != nil {
			return nil, err
		}
		input.LandingPage.Questions = questions
	}

	status := input.Status
	if status == "" {
		status = campaignmodels.CampaignStatusDraft
	}

	doc := campaignmodels.Campaign{
		ClientID:       clientID,
		Name:           input.Name,
		Description:    input.Description,
		Type:           input.Type,
		Status:         status,
		TargetAudience: input.TargetAudience,
		LeadMagnet:     input.LeadMagnet,
		Form:           input.Form,
		AutoResponder:  input.AutoResponder,
		LandingPage:    input.LandingPage,
		Settings:       input.Settings,
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// FindOwned returns the campaign only when it belongs to the client.
func (s *CampaignService) FindOwned(ctx context.Context, id, clientID primitive.ObjectID) (*campaignmodels.Campaign, error) {
	campaign, err := s.FindOne(ctx, bson.M{"_id": id, "clientId": clientID}, nil)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListByClient returns one page of the client's campaigns, optionally
// filtered by status.
func (s *CampaignService) ListByClient(ctx context.Context, clientID primitive.ObjectID, status string, page, limit int64) (*basemodels.PaginateResult[campaignmodels.Campaign], error) {
	filter := bson.M{"clientId": clientID}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UpdateCampaign patches the campaign. Only non-nil input fields are written.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id, clientID primitive.ObjectID, input *campaigndto.CampaignUpdateInput) (*campaignmodels.Campaign, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Type != nil {
		set["type"] = *input.Type
	}
	if input.TargetAudience != nil {
		set["targetAudience"] = *input.TargetAudience
	}
	if input.LeadMagnet != nil {
		set["leadMagnet"] = *input.LeadMagnet
	}
	if input.Form != nil {
		fields, err := normalizeQuestions(input.Form.Fields)
		if err != nil {
			return nil, err
		}
		input.Form.Fields = fields
		set["form"] = *input.Form
	}
	if input.AutoResponder != nil {
		set["autoResponder"] = *input.AutoResponder
	}
	if input.LandingPage != nil {
		questions, err := normalizeQuestions(input.LandingPage.Questions)
		if err != nil {
			return nil, err
		}
		input.LandingPage.Questions = questions
		set["landingPage"] = *input.LandingPage
	}
	if input.Settings != nil {
		set["settings"] = *input.Settings
	}

	if len(set) == 0 {
		return s.FindOwned(ctx, id, clientID)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, bson.M{"$set": set}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCampaign removes the campaign when it belongs to the client.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id, clientID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id, "clientId": clientID})
}

// SetStatus moves the campaign to an explicit status, enforcing the
// lifecycle: draft to active/paused to completed.
func (s *CampaignService) SetStatus(ctx context.Context, id, clientID primitive.ObjectID, status string) (*campaignmodels.Campaign, error) {
	campaign, err := s.FindOwned(ctx, id, clientID)
	if err != nil {
		return nil, err
	}

	if campaign.Status == status {
		return campaign, nil
	}

	if !campaignmodels.CanTransitionCampaign(campaign.Status, status) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Cannot change campaign status from %s to %s", campaign.Status, status),
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, bson.M{"$set": bson.M{"status": status}}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleStatus flips between active and paused. Any other current status is rejected.
func (s *CampaignService) ToggleStatus(ctx context.Context, id, clientID primitive.ObjectID) (*campaignmodels.Campaign, error) {
	campaign, err := s.FindOwned(ctx, id, clientID)
	if err != nil {
		return nil, err
	}

	next := campaignmodels.ToggledStatus(campaign.Status)
	if next == "" {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Only active or paused campaigns can be toggled",
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, bson.M{"$set": bson.M{"status": next}}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Publish moves a draft campaign to active and stamps the publish time.
func (s *CampaignService) Publish(ctx context.Context, id, clientID primitive.ObjectID) (*campaignmodels.Campaign, error) {
	campaign, err := s.FindOwned(ctx, id, clientID)
	if err != nil {
		return nil, err
	}

	if campaign.Status == campaignmodels.CampaignStatusActive {
		return campaign, nil
	}
	if !campaign.MarkPublished(time.Now().UnixMilli()) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Cannot publish a %s campaign", campaign.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": id, "clientId": clientID}, bson.M{"$set": bson.M{
		"status":      campaign.Status,
		"publishedAt": campaign.PublishedAt,
	}}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindPublic returns the filtered public projection of a campaign.
func (s *CampaignService) FindPublic(ctx context.Context, id primitive.ObjectID) (*campaigndto.PublicCampaignView, error) {
	campaign, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	return &campaigndto.PublicCampaignView{
		ID:          campaign.ID.Hex(),
		Name:        campaign.Name,
		Status:      campaign.Status,
		Form:        campaign.Form,
		LandingPage: campaign.LandingPage,
	}, nil
}
