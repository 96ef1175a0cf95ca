// Package dto - request payloads for the billing domain.
package dto

// BillingConfigureInput sets a client's billing agreement.
type BillingConfigureInput struct {
	Type               string  `json:"type" validate:"required,oneof=per-lead per-appointment hybrid subscription"`
	PerLeadRate        float64 `json:"perLeadRate" validate:"gte=0"`
	PerAppointmentRate float64 `json:"perAppointmentRate" validate:"gte=0"`
	MonthlyBase        float64 `json:"monthlyBase" validate:"gte=0"`
	UpfrontFee         float64 `json:"upfrontFee" validate:"gte=0"`
	UpfrontPaid        bool    `json:"upfrontPaid"`
}

// InvoicePreview is the computed amount for the current billing window.
type InvoicePreview struct {
	ClientID               string  `json:"clientId"`
	Type                   string  `json:"type"`
	UninvoicedLeads        int64   `json:"uninvoicedLeads"`
	UninvoicedAppointments int64   `json:"uninvoicedAppointments"`
	MonthlyBase            float64 `json:"monthlyBase"`
	UpfrontFee             float64 `json:"upfrontFee"`
	UpfrontPaid            bool    `json:"upfrontPaid"`
	Amount                 float64 `json:"amount"`
}
