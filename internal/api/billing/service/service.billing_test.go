package billingsvc

import (
	"testing"

	billingmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/models"
)

func TestCalculateInvoiceAmount_PerLead(t *testing.T) {
	record := &billingmodels.BillingRecord{
		Type:               billingmodels.BillingTypePerLead,
		PerLeadRate:        25,
		LeadsDelivered:     10,
		LeadsInvoiced:      4,
		PerAppointmentRate: 100,
		AppointmentsBooked: 3, // ignored for per-lead
	}
	if got := CalculateInvoiceAmount(record); got != 150 {
		t.Errorf("amount = %v, want 150", got)
	}
}

func TestCalculateInvoiceAmount_PerAppointment(t *testing.T) {
	record := &billingmodels.BillingRecord{
		Type:                 billingmodels.BillingTypePerAppointment,
		PerAppointmentRate:   100,
		AppointmentsBooked:   5,
		AppointmentsInvoiced: 2,
		PerLeadRate:          25,
		LeadsDelivered:       10, // ignored for per-appointment
	}
	if got := CalculateInvoiceAmount(record); got != 300 {
		t.Errorf("amount = %v, want 300", got)
	}
}

func TestCalculateInvoiceAmount_Hybrid(t *testing.T) {
	record := &billingmodels.BillingRecord{
		Type:               billingmodels.BillingTypeHybrid,
		MonthlyBase:        200,
		PerLeadRate:        25,
		LeadsDelivered:     4,
		PerAppointmentRate: 100,
		AppointmentsBooked: 2,
	}
	if got := CalculateInvoiceAmount(record); got != 200+4*25+2*100 {
		t.Errorf("amount = %v, want 500", got)
	}
}

func TestCalculateInvoiceAmount_Subscription(t *testing.T) {
	record := &billingmodels.BillingRecord{
		Type:           billingmodels.BillingTypeSubscription,
		MonthlyBase:    750,
		PerLeadRate:    25,
		LeadsDelivered: 12, // delivery counters do not affect a subscription
	}
	if got := CalculateInvoiceAmount(record); got != 750 {
		t.Errorf("amount = %v, want 750", got)
	}
}

func TestCalculateInvoiceAmount_UnknownTypeFallsBackToLeads(t *testing.T) {
	record := &billingmodels.BillingRecord{
		Type:           "something-else",
		PerLeadRate:    25,
		LeadsDelivered: 2,
	}
	if got := CalculateInvoiceAmount(record); got != 50 {
		t.Errorf("amount = %v, want 50", got)
	}
}

func TestCalculateInvoiceAmount_InvoicedAheadClampsToZero(t *testing.T) {
	record := &billingmodels.BillingRecord{
		Type:           billingmodels.BillingTypePerLead,
		PerLeadRate:    25,
		LeadsDelivered: 2,
		LeadsInvoiced:  5,
	}
	if got := CalculateInvoiceAmount(record); got != 0 {
		t.Errorf("amount = %v, want 0", got)
	}
}
