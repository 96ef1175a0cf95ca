// Package dto - request payloads for the client (tenant) domain.
package dto

import (
	clientmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/models"
)

// ClientCreateInput creates a tenant account.
type ClientCreateInput struct {
	BusinessName string `json:"businessName" validate:"required,no_xss"`
	ContactName  string `json:"contactName" validate:"omitempty,no_xss"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty"`
	Industry     string `json:"industry" validate:"omitempty,no_xss"`
	Website      string `json:"website" validate:"omitempty,url"`

	Services *clientmodels.ClientServices `json:"services"`
}

// ClientCreateResult returns the created client plus the one-time password.
// The password is shown exactly once and stored only as a bcrypt hash.
type ClientCreateResult struct {
	Client          *clientmodels.Client `json:"client"`
	InitialPassword string               `json:"initialPassword"`
}

// ClientUpdateInput patches tenant fields. Nil pointers are left untouched.
type ClientUpdateInput struct {
	BusinessName *string `json:"businessName" validate:"omitempty,no_xss"`
	ContactName  *string `json:"contactName" validate:"omitempty,no_xss"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	Industry     *string `json:"industry" validate:"omitempty,no_xss"`
	Website      *string `json:"website" validate:"omitempty,url"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`

	Services *clientmodels.ClientServices `json:"services"`
}

// KnowledgeBaseInput replaces the client's knowledge base wholesale.
type KnowledgeBaseInput struct {
	FAQs     []clientmodels.FAQ `json:"faqs"`
	Services []string           `json:"services"`
	Staff    []string           `json:"staff"`
}

// KnowledgeBase converts the input into the stored form.
func (i *KnowledgeBaseInput) KnowledgeBase() clientmodels.KnowledgeBase {
	return clientmodels.KnowledgeBase{
		FAQs:     i.FAQs,
		Services: i.Services,
		Staff:    i.Staff,
	}
}
