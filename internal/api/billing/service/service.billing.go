// Package billingsvc - billing agreements, delivery counters and invoice
// arithmetic.
package billingsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	billingdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/dto"
	billingmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/models"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
)

// BillingService handles billing records.
type BillingService struct {
	*basesvc.BaseServiceMongoImpl[billingmodels.BillingRecord]
}

// NewBillingService creates a BillingService.
func NewBillingService() (*BillingService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BillingRecords)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.BillingRecords, common.ErrNotFound)
	}
	return &BillingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[billingmodels.BillingRecord](coll),
	}, nil
}

// GetForClient returns the client's billing record, creating a default
// per-lead record when none exists.
func (s *BillingService) GetForClient(ctx context.Context, clientID primitive.ObjectID) (*billingmodels.BillingRecord, error) {
	record, err := s.Upsert(ctx, bson.M{"clientId": clientID}, &basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"clientId": clientID,
			"type":     billingmodels.BillingTypePerLead,
			"status":   billingmodels.BillingStatusActive,
		},
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Configure sets the client's billing agreement.
func (s *BillingService) Configure(ctx context.Context, clientID primitive.ObjectID, input *billingdto.BillingConfigureInput) (*billingmodels.BillingRecord, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	record, err := s.Upsert(ctx, bson.M{"clientId": clientID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"type":               input.Type,
			"perLeadRate":        input.PerLeadRate,
			"perAppointmentRate": input.PerAppointmentRate,
			"monthlyBase":        input.MonthlyBase,
			"upfrontFee":         input.UpfrontFee,
			"upfrontPaid":        input.UpfrontPaid,
		},
		SetOnInsert: map[string]interface{}{
			"clientId": clientID,
			"status":   billingmodels.BillingStatusActive,
		},
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// TrackLeadDelivery counts one delivered lead against the client's record.
func (s *BillingService) TrackLeadDelivery(ctx context.Context, clientID primitive.ObjectID) error {
	if _, err := s.GetForClient(ctx, clientID); err != nil {
		return err
	}
	_, err := s.UpdateOne(ctx, bson.M{"clientId": clientID}, bson.M{"$inc": bson.M{"leadsDelivered": 1}}, nil)
	return err
}

// TrackAppointment counts one booked appointment against the client's record.
func (s *BillingService) TrackAppointment(ctx context.Context, clientID primitive.ObjectID) error {
	if _, err := s.GetForClient(ctx, clientID); err != nil {
		return err
	}
	_, err := s.UpdateOne(ctx, bson.M{"clientId": clientID}, bson.M{"$inc": bson.M{"appointmentsBooked": 1}}, nil)
	return err
}

// CalculateInvoiceAmount computes the amount owed for the uninvoiced
// counters under the record's billing type.
func CalculateInvoiceAmount(record *billingmodels.BillingRecord) float64 {
	leads := float64(record.UninvoicedLeads()) * record.PerLeadRate
	appointments := float64(record.UninvoicedAppointments()) * record.PerAppointmentRate

	switch record.Type {
	case billingmodels.BillingTypePerLead:
		return leads
	case billingmodels.BillingTypePerAppointment:
		return appointments
	case billingmodels.BillingTypeHybrid:
		return record.MonthlyBase + leads + appointments
	case billingmodels.BillingTypeSubscription:
		return record.MonthlyBase
	default:
		return leads
	}
}

// PreviewInvoice returns the computed amount without mutating counters.
func (s *BillingService) PreviewInvoice(ctx context.Context, clientID primitive.ObjectID) (*billingdto.InvoicePreview, error) {
	record, err := s.GetForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &billingdto.InvoicePreview{
		ClientID:               clientID.Hex(),
		Type:                   record.Type,
		UninvoicedLeads:        record.UninvoicedLeads(),
		UninvoicedAppointments: record.UninvoicedAppointments(),
		MonthlyBase:            record.MonthlyBase,
		UpfrontFee:             record.UpfrontFee,
		UpfrontPaid:            record.UpfrontPaid,
		Amount:                 CalculateInvoiceAmount(record),
	}, nil
}

// MarkInvoiced closes the current billing window: the computed amount is
// added to the lifetime revenue, invoiced counters catch up to the delivered
// counters and the invoice timestamp is recorded.
func (s *BillingService) MarkInvoiced(ctx context.Context, clientID primitive.ObjectID) (*billingmodels.BillingRecord, error) {
	record, err := s.GetForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	amount := CalculateInvoiceAmount(record)
	updated, err := s.UpdateOne(ctx, bson.M{"clientId": clientID}, bson.M{
		"$set": bson.M{
			"leadsInvoiced":        record.LeadsDelivered,
			"appointmentsInvoiced": record.AppointmentsBooked,
			"lastInvoicedAt":       time.Now().UnixMilli(),
		},
		"$inc": bson.M{"totalRevenue": amount},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
