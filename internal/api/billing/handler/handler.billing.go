// Package billinghdl - HTTP handlers for the billing domain (admin only).
package billinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	billingdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/dto"
	billingsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// BillingHandler handles admin billing endpoints.
type BillingHandler struct {
	Service *billingsvc.BillingService
}

// NewBillingHandler creates a BillingHandler.
func NewBillingHandler() (*BillingHandler, error) {
	svc, err := billingsvc.NewBillingService()
	if err != nil {
		return nil, fmt.Errorf("create BillingService: %w", err)
	}
	return &BillingHandler{Service: svc}, nil
}

// clientParam parses the clientId route param.
func clientParam(c fiber.Ctx) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(c.Params("clientId"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat, "Invalid client ID", common.StatusBadRequest, nil)
	}
	return oid, nil
}

// HandleGet handles GET /admin/billing/:clientId.
func (h *BillingHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clientID, err := clientParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		record, err := h.Service.GetForClient(c.Context(), clientID)
		return basehdl.HandleResponse(c, record, err)
	})
}

// HandleConfigure handles POST /admin/billing/:clientId.
func (h *BillingHandler) HandleConfigure(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clientID, err := clientParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input billingdto.BillingConfigureInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		record, err := h.Service.Configure(c.Context(), clientID, &input)
		if err == nil {
			logger.LogAction("billing.configure", c, fiber.Map{"clientId": clientID.Hex(), "type": input.Type})
		}
		return basehdl.HandleResponse(c, record, err)
	})
}

// HandleInvoicePreview handles GET /admin/billing/:clientId/invoice.
func (h *BillingHandler) HandleInvoicePreview(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clientID, err := clientParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		preview, err := h.Service.PreviewInvoice(c.Context(), clientID)
		return basehdl.HandleResponse(c, preview, err)
	})
}

// HandleMarkInvoiced handles POST /admin/billing/:clientId/invoice.
func (h *BillingHandler) HandleMarkInvoiced(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clientID, err := clientParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		record, err := h.Service.MarkInvoiced(c.Context(), clientID)
		if err == nil {
			logger.LogAction("billing.invoice", c, fiber.Map{"clientId": clientID.Hex()})
		}
		return basehdl.HandleResponse(c, record, err)
	})
}
