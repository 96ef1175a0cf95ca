// Package receptionistsvc - voice-assistant configuration, activation, call
// history and the client dashboard.
package receptionistsvc

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
	clientsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/service"
	leadmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/models"
	leadsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/service"
	receptionistdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/dto"
	receptionistmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/vapi"
)

// ReceptionistService handles the voice-assistant lifecycle and the data it
// produces.
type ReceptionistService struct {
	calls        *basesvc.BaseServiceMongoImpl[receptionistmodels.CallTranscript]
	appointments *basesvc.BaseServiceMongoImpl[receptionistmodels.Appointment]

	clients *clientsvc.ClientService
	leads   *leadsvc.LeadService
	billing *billingsvc.BillingService
	vapi    *vapi.Client
}

// NewReceptionistService creates a ReceptionistService wired to its
// collaborators.
func NewReceptionistService() (*ReceptionistService, error) {
	callColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CallTranscripts)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.CallTranscripts, common.ErrNotFound)
	}
	apptColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Appointments)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.Appointments, common.ErrNotFound)
	}

	clients, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("create ClientService: %w", err)
	}
	leads, err := leadsvc.NewLeadService()
	if err != nil {
		return nil, fmt.Errorf("create LeadService: %w", err)
	}
	billing, err := billingsvc.NewBillingService()
	if err != nil {
		return nil, fmt.Errorf("create BillingService: %w", err)
	}

	return &ReceptionistService{
		calls:        basesvc.NewBaseServiceMongo[receptionistmodels.CallTranscript](callColl),
		appointments: basesvc.NewBaseServiceMongo[receptionistmodels.Appointment](apptColl),
		clients:      clients,
		leads:        leads,
		billing:      billing,
		vapi:         vapi.NewClient(global.ServerConfig.VapiBaseURL, global.ServerConfig.VapiPrivateToken),
	}, nil
}

// Configure stores the assistant configuration and syncs it upstream: a
// client with an assistant gets a PATCH, a client without one gets a create.
// The assistant id is persisted before anything else can fail.
func (s *ReceptionistService) Configure(ctx context.Context, clientID primitive.ObjectID, input *receptionistdto.ConfigureInput) (*receptionistdto.ActivateResult, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	client, err := s.clients.FindClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	config := input.Config()
	if _, err := s.clients.SetReceptionistConfig(ctx, clientID, config); err != nil {
		return nil, err
	}

	payload := vapi.BuildAssistantPayload(
		client.BusinessName,
		config,
		client.Services.AIReceptionist.KnowledgeBase,
		global.ServerConfig.VapiServerURL,
		global.ServerConfig.VapiWebhookSecret,
	)

	assistantID := client.Services.AIReceptionist.AssistantID
	if assistantID != "" {
		if _, err := s.vapi.UpdateAssistant(ctx, assistantID, payload); err != nil {
			return nil, err
		}
		return &receptionistdto.ActivateResult{AssistantID: assistantID}, nil
	}

	assistant, err := s.vapi.CreateAssistant(ctx, payload)
	if err != nil {
		return nil, err
	}
	if err := s.clients.SetAssistantID(ctx, clientID, assistant.ID); err != nil {
		return nil, err
	}
	return &receptionistdto.ActivateResult{AssistantID: assistant.ID}, nil
}

// Activate provisions the phone number for a configured assistant. When the
// purchase fails after assistant creation the assistant id is already
// persisted, so the result carries a warning instead of orphaning it.
func (s *ReceptionistService) Activate(ctx context.Context, clientID primitive.ObjectID) (*receptionistdto.ActivateResult, error) {
	client, err := s.clients.FindClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	assistantID := client.Services.AIReceptionist.AssistantID
	if assistantID == "" {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			"Assistant is not configured yet",
			common.StatusBadRequest,
			nil,
		)
	}

	if client.Services.AIReceptionist.PhoneNumber != "" {
		return &receptionistdto.ActivateResult{
			AssistantID: assistantID,
			PhoneNumber: client.Services.AIReceptionist.PhoneNumber,
		}, nil
	}

	number, err := s.vapi.BuyPhoneNumber(ctx, assistantID)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Phone number purchase failed after assistant creation")
		return &receptionistdto.ActivateResult{
			AssistantID: assistantID,
			Warning:     "Assistant is ready but the phone number purchase failed; retry activation",
		}, nil
	}

	if err := s.clients.SetPhoneNumber(ctx, clientID, number.Number); err != nil {
		return nil, err
	}

	return &receptionistdto.ActivateResult{
		AssistantID: assistantID,
		PhoneNumber: number.Number,
	}, nil
}

// ListCalls returns one page of the client's call history, newest first.
func (s *ReceptionistService) ListCalls(ctx context.Context, clientID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[receptionistmodels.CallTranscript], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})
	return s.calls.FindWithPagination(ctx, bson.M{"clientId": clientID}, page, limit, opts)
}

// ListAppointments returns one page of the client's appointments by date.
func (s *ReceptionistService) ListAppointments(ctx context.Context, clientID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[receptionistmodels.Appointment], error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	return s.appointments.FindWithPagination(ctx, bson.M{"clientId": clientID}, page, limit, opts)
}

// Dashboard aggregates the client console's overview numbers from the call,
// appointment and lead collections.
func (s *ReceptionistService) Dashboard(ctx context.Context, clientID primitive.ObjectID) (*receptionistdto.DashboardView, error) {
	view := &receptionistdto.DashboardView{}

	totalCalls, err := s.calls.CountDocuments(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	view.TotalCalls = totalCalls

	weekAgo := time.Now().AddDate(0, 0, -7).UnixMilli()
	callsThisWeek, err := s.calls.CountDocuments(ctx, bson.M{"clientId": clientID, "startedAt": bson.M{"$gte": weekAgo}})
	if err != nil {
		return nil, err
	}
	view.CallsThisWeek = callsThisWeek

	cursor, err := s.calls.Collection().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"clientId": clientID, "status": receptionistmodels.CallStatusCompleted}},
		{"$group": bson.M{"_id": nil, "avgDuration": bson.M{"$avg": "$durationSeconds"}}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	if cursor.Next(ctx) {
		var row struct {
			AvgDuration float64 `bson:"avgDuration"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		view.AvgCallDuration = row.AvgDuration
	}

	totalAppts, err := s.appointments.CountDocuments(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	view.TotalAppointments = totalAppts

	today := time.Now().Format("2006-01-02")
	upcoming, err := s.appointments.CountDocuments(ctx, bson.M{
		"clientId": clientID,
		"status":   receptionistmodels.AppointmentStatusScheduled,
		"date":     bson.M{"$gte": today},
	})
	if err != nil {
		return nil, err
	}
	view.UpcomingAppointments = upcoming

	totalLeads, err := s.leads.CountDocuments(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	view.TotalLeads = totalLeads

	callLeads, err := s.leads.CountDocuments(ctx, bson.M{"clientId": clientID, "source": leadmodels.LeadSourceAIReceptionist})
	if err != nil {
		return nil, err
	}
	view.CallLeads = callLeads

	leadCursor, err := s.leads.Collection().Aggregate(ctx, []bson.M{
		{"$match": bson.M{"clientId": clientID}},
		{"$group": bson.M{"_id": nil, "avgScore": bson.M{"$avg": "$score"}}},
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer leadCursor.Close(ctx)
	if leadCursor.Next(ctx) {
		var row struct {
			AvgScore float64 `bson:"avgScore"`
		}
		if err := leadCursor.Decode(&row); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		view.AvgLeadScore = row.AvgScore
	}

	return view, nil
}
