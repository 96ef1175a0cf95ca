// Package models - BillingRecord belongs to the billing domain
// (billing_records). One record per client.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Billing types.
const (
	BillingTypePerLead        = "per-lead"
	BillingTypePerAppointment = "per-appointment"
	BillingTypeHybrid         = "hybrid"
	BillingTypeSubscription   = "subscription"
)

// Billing record statuses.
const (
	BillingStatusActive    = "active"
	BillingStatusPaused    = "paused"
	BillingStatusCompleted = "completed"
)

// BillingRecord holds a client's billing agreement and delivery counters.
type BillingRecord struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ClientID primitive.ObjectID `json:"clientId" bson:"clientId" index:"unique"`
	Type     string             `json:"type" bson:"type" default:"per-lead"` // per-lead, per-appointment, hybrid, subscription
	Status   string             `json:"status" bson:"status" default:"active"`

	PerLeadRate        float64 `json:"perLeadRate" bson:"perLeadRate"`
	PerAppointmentRate float64 `json:"perAppointmentRate" bson:"perAppointmentRate"`
	MonthlyBase        float64 `json:"monthlyBase" bson:"monthlyBase"`
	UpfrontFee         float64 `json:"upfrontFee" bson:"upfrontFee"`
	UpfrontPaid        bool    `json:"upfrontPaid" bson:"upfrontPaid"`

	LeadsDelivered       int64 `json:"leadsDelivered" bson:"leadsDelivered"`
	LeadsInvoiced        int64 `json:"leadsInvoiced" bson:"leadsInvoiced"`
	AppointmentsBooked   int64 `json:"appointmentsBooked" bson:"appointmentsBooked"`
	AppointmentsInvoiced int64 `json:"appointmentsInvoiced" bson:"appointmentsInvoiced"`

	TotalRevenue   float64 `json:"totalRevenue" bson:"totalRevenue"`
	LastInvoicedAt int64   `json:"lastInvoicedAt,omitempty" bson:"lastInvoicedAt,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// UninvoicedLeads returns the leads delivered since the last invoice.
func (b *BillingRecord) UninvoicedLeads() int64 {
	n := b.LeadsDelivered - b.LeadsInvoiced
	if n < 0 {
		return 0
	}
	return n
}

// UninvoicedAppointments returns the appointments booked since the last
// invoice.
func (b *BillingRecord) UninvoicedAppointments() int64 {
	n := b.AppointmentsBooked - b.AppointmentsInvoiced
	if n < 0 {
		return 0
	}
	return n
}
