// Package clientsvc - tenant account CRUD and credential provisioning.
package clientsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	basemodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/models"
	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	clientdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/dto"
	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/utility"
)

// initialPasswordLength is the length of the generated one-time credential.
const initialPasswordLength = 12

// ClientService handles tenant accounts.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[clientmodels.Client]
}

// NewClientService creates a ClientService.
func NewClientService() (*ClientService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.Clients, common.ErrNotFound)
	}
	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[clientmodels.Client](coll),
	}, nil
}

// sanitize strips the credential hash before a client document leaves the
// service layer.
func sanitize(c clientmodels.Client) clientmodels.Client {
	c.PasswordHash = ""
	return c
}

// CreateClient creates a tenant and provisions a one-time password. The
// plaintext is returned exactly once; only the bcrypt hash is stored.
func (s *ClientService) CreateClient(ctx context.Context, input *clientdto.ClientCreateInput) (*clientdto.ClientCreateResult, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	password, err := utility.GeneratePassword(initialPasswordLength)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to generate credentials", common.StatusInternalServerError, nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to hash credentials", common.StatusInternalServerError, nil)
	}

	doc := clientmodels.Client{
		BusinessName:       input.BusinessName,
		ContactName:        input.ContactName,
		Email:              input.Email,
		Phone:              input.Phone,
		Industry:           input.Industry,
		Website:            input.Website,
		Status:             clientmodels.ClientStatusActive,
		PasswordHash:       string(hash),
		MustChangePassword: true,
	}
	if input.Services != nil {
		doc.Services = *input.Services
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created = sanitize(created)
	return &clientdto.ClientCreateResult{
		Client:          &created,
		InitialPassword: password,
	}, nil
}

// FindClient returns one sanitized client.
func (s *ClientService) FindClient(ctx context.Context, id primitive.ObjectID) (*clientmodels.Client, error) {
	client, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	client = sanitize(client)
	return &client, nil
}

// FindByEmail returns the raw client document including the credential hash.
// Only the auth service uses this.
func (s *ClientService) FindByEmail(ctx context.Context, email string) (*clientmodels.Client, error) {
	client, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByAssistantID resolves the tenant owning an upstream assistant. Used
// by the webhook dispatcher.
func (s *ClientService) FindByAssistantID(ctx context.Context, assistantID string) (*clientmodels.Client, error) {
	client, err := s.FindOne(ctx, bson.M{"services.aiReceptionist.assistantId": assistantID}, nil)
	if err != nil {
		return nil, err
	}
	client = sanitize(client)
	return &client, nil
}

// ListClients returns one page of sanitized clients, optionally filtered by
// status.
func (s *ClientService) ListClients(ctx context.Context, status string, page, limit int64) (*basemodels.PaginateResult[clientmodels.Client], error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	result, err := s.FindWithPagination(ctx, filter, page, limit, opts)
	if err != nil {
		return nil, err
	}
	for i := range result.Items {
		result.Items[i] = sanitize(result.Items[i])
	}
	return result, nil
}

// UpdateClient patches tenant fields. Only non-nil input fields are written.
func (s *ClientService) UpdateClient(ctx context.Context, id primitive.ObjectID, input *clientdto.ClientUpdateInput) (*clientmodels.Client, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	set := bson.M{}
	if input.BusinessName != nil {
		set["businessName"] = *input.BusinessName
	}
	if input.ContactName != nil {
		set["contactName"] = *input.ContactName
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Phone != nil {
		set["phone"] = *input.Phone
	}
	if input.Industry != nil {
		set["industry"] = *input.Industry
	}
	if input.Website != nil {
		set["website"] = *input.Website
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.Services != nil {
		set["services"] = *input.Services
	}

	if len(set) == 0 {
		return s.FindClient(ctx, id)
	}

	updated, err := s.UpdateById(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	updated = sanitize(updated)
	return &updated, nil
}

// DeleteClient removes the tenant account.
func (s *ClientService) DeleteClient(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteById(ctx, id)
}

// UpdateKnowledgeBase replaces the client's knowledge base wholesale.
func (s *ClientService) UpdateKnowledgeBase(ctx context.Context, id primitive.ObjectID, kb clientmodels.KnowledgeBase) (*clientmodels.Client, error) {
	updated, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{"services.aiReceptionist.knowledgeBase": kb}})
	if err != nil {
		return nil, err
	}
	updated = sanitize(updated)
	return &updated, nil
}

// SetReceptionistConfig stores the voice-assistant configuration.
func (s *ClientService) SetReceptionistConfig(ctx context.Context, id primitive.ObjectID, config clientmodels.ReceptionistConfig) (*clientmodels.Client, error) {
	updated, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{
		"services.aiReceptionist.enabled": true,
		"services.aiReceptionist.config":  config,
	}})
	if err != nil {
		return nil, err
	}
	updated = sanitize(updated)
	return &updated, nil
}

// SetAssistantID persists the upstream assistant id for the client.
func (s *ClientService) SetAssistantID(ctx context.Context, id primitive.ObjectID, assistantID string) error {
	_, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{"services.aiReceptionist.assistantId": assistantID}})
	return err
}

// SetPhoneNumber persists the purchased phone number and marks the
// receptionist setup complete.
func (s *ClientService) SetPhoneNumber(ctx context.Context, id primitive.ObjectID, phoneNumber string) error {
	_, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{
		"services.aiReceptionist.phoneNumber":   phoneNumber,
		"services.aiReceptionist.setupComplete": true,
	}})
	return err
}

// ResetPassword provisions a fresh one-time password for the client.
func (s *ClientService) ResetPassword(ctx context.Context, id primitive.ObjectID) (string, error) {
	password, err := utility.GeneratePassword(initialPasswordLength)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Failed to generate credentials", common.StatusInternalServerError, nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Failed to hash credentials", common.StatusInternalServerError, nil)
	}

	if _, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{
		"passwordHash":       string(hash),
		"mustChangePassword": true,
	}}); err != nil {
		return "", err
	}
	return password, nil
}
