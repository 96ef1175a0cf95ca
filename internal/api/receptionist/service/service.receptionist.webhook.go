package receptionistsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
	receptionistdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/dto"
	receptionistmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// quoteRates maps service tiers to their per-unit rate. Unknown services
// fall back to the standard rate.
var quoteRates = map[string]float64{
	"standard":   500,
	"premium":    1000,
	"enterprise": 2500,
}

// availableSlots is the bookable slot grid offered per day.
var availableSlots = []string{"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"}

// HandleWebhook dispatches one webhook message by type and returns the
// response payload expected by the voice service.
func (s *ReceptionistService) HandleWebhook(ctx context.Context, req *receptionistdto.WebhookRequest) (map[string]interface{}, error) {
	msg := req.Message

	client, err := s.clients.FindByAssistantID(ctx, msg.Call.AssistantID)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Unknown assistant",
			common.StatusBadRequest,
			nil,
		)
	}

	switch msg.Type {
	case "end-of-call-report":
		return s.handleEndOfCallReport(ctx, client, &msg)
	case "function-call":
		return s.handleFunctionCall(ctx, client, &msg)
	case "transcript":
		return s.handleTranscript(ctx, client, &msg)
	default:
		logger.GetAppLogger().WithField("type", msg.Type).Debug("Ignoring unhandled webhook message type")
		return map[string]interface{}{"received": true}, nil
	}
}

// handleEndOfCallReport completes the call record and creates the lead
// extracted from the structured call data.
func (s *ReceptionistService) handleEndOfCallReport(ctx context.Context, client *clientmodels.Client, msg *receptionistdto.WebhookMessage) (map[string]interface{}, error) {
	now := time.Now().UnixMilli()
	_, err := s.calls.Upsert(ctx, bson.M{"callId": msg.Call.ID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"transcript":      msg.Transcript,
			"summary":         msg.Summary,
			"structuredData":  msg.StructuredData,
			"status":          receptionistmodels.CallStatusCompleted,
			"endedAt":         now,
			"durationSeconds": int64(msg.DurationSeconds),
		},
		SetOnInsert: map[string]interface{}{
			"clientId":    client.ID,
			"callId":      msg.Call.ID,
			"assistantId": msg.Call.AssistantID,
			"startedAt":   now - int64(msg.DurationSeconds)*1000,
		},
	})
	if err != nil {
		return nil, err
	}

	if len(msg.StructuredData) > 0 {
		if _, err := s.leads.CreateFromCall(ctx, client.ID, msg.StructuredData, msg.Call.ID); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Failed to create lead from call report")
		}
	}

	return map[string]interface{}{"received": true}, nil
}

// handleFunctionCall executes one assistant tool call.
func (s *ReceptionistService) handleFunctionCall(ctx context.Context, client *clientmodels.Client, msg *receptionistdto.WebhookMessage) (map[string]interface{}, error) {
	if msg.FunctionCall == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Missing function call", common.StatusBadRequest, nil)
	}

	params := msg.FunctionCall.Parameters
	str := func(key string) string {
		v, _ := params[key].(string)
		return v
	}

	switch msg.FunctionCall.Name {
	case "check_availability":
		return map[string]interface{}{
			"result": CheckAvailability(str("date")),
		}, nil

	case "book_appointment":
		appointment := receptionistmodels.Appointment{
			ClientID: client.ID,
			CallID:   msg.Call.ID,
			Name:     str("name"),
			Date:     str("date"),
			Time:     str("time"),
			Service:  str("service"),
			Status:   receptionistmodels.AppointmentStatusScheduled,
		}
		created, err := s.appointments.InsertOne(ctx, appointment)
		if err != nil {
			return nil, err
		}
		if err := s.billing.TrackAppointment(ctx, client.ID); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("Failed to track appointment for billing")
		}
		return map[string]interface{}{
			"result": map[string]interface{}{
				"booked":        true,
				"appointmentId": created.ID.Hex(),
				"date":          created.Date,
				"time":          created.Time,
				"name":          created.Name,
			},
		}, nil

	case "generate_quote":
		quantity := 1.0
		if q, ok := params["quantity"].(float64); ok && q > 0 {
			quantity = q
		}
		return map[string]interface{}{
			"result": GenerateQuote(str("service"), quantity),
		}, nil

	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown function %q", msg.FunctionCall.Name),
			common.StatusBadRequest,
			nil,
		)
	}
}

// handleTranscript upserts the live partial transcript keyed by callId.
func (s *ReceptionistService) handleTranscript(ctx context.Context, client *clientmodels.Client, msg *receptionistdto.WebhookMessage) (map[string]interface{}, error) {
	_, err := s.calls.Upsert(ctx, bson.M{"callId": msg.Call.ID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"transcript": msg.Transcript,
			"status":     receptionistmodels.CallStatusInProgress,
		},
		SetOnInsert: map[string]interface{}{
			"clientId":    client.ID,
			"callId":      msg.Call.ID,
			"assistantId": msg.Call.AssistantID,
			"startedAt":   time.Now().UnixMilli(),
		},
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"received": true}, nil
}

// CheckAvailability returns the open slots for a date. The 11:00 AM slot is
// always taken in the mock calendar.
func CheckAvailability(date string) map[string]interface{} {
	slots := []string{}
	for _, slot := range availableSlots {
		if slot == "11:00 AM" {
			continue
		}
		slots = append(slots, slot)
	}
	return map[string]interface{}{
		"date":           date,
		"availableSlots": slots,
	}
}

// GenerateQuote prices a service tier. total = rate * quantity; the quote
// is valid for 30 days.
func GenerateQuote(service string, quantity float64) map[string]interface{} {
	rate, ok := quoteRates[strings.ToLower(service)]
	if !ok {
		rate = quoteRates["standard"]
	}
	return map[string]interface{}{
		"service":  service,
		"rate":     rate,
		"quantity": quantity,
		"total":    rate * quantity,
		"validFor": "30 days",
	}
}
