// Package receptionisthdl - HTTP handlers for the AI receptionist: client
// configuration and activation, call history, appointments, the dashboard and
// the voice-service webhook.
package receptionisthdl

import (
	"crypto/subtle"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	receptionistdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/dto"
	receptionistsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// ReceptionistHandler handles the receptionist endpoints.
type ReceptionistHandler struct {
	Service *receptionistsvc.ReceptionistService
}

// NewReceptionistHandler creates a ReceptionistHandler.
func NewReceptionistHandler() (*ReceptionistHandler, error) {
	svc, err := receptionistsvc.NewReceptionistService()
	if err != nil {
		return nil, fmt.Errorf("create ReceptionistService: %w", err)
	}
	return &ReceptionistHandler{Service: svc}, nil
}

// clientOID reads the tenant ObjectID resolved by the middleware.
func clientOID(c fiber.Ctx) (primitive.ObjectID, bool) {
	oid, ok := c.Locals("clientOID").(primitive.ObjectID)
	return oid, ok && !oid.IsZero()
}

// HandleConfigure handles POST /client/ai-receptionist/configure.
func (h *ReceptionistHandler) HandleConfigure(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		var input receptionistdto.ConfigureInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		result, err := h.Service.Configure(c.Context(), oid, &input)
		if err == nil {
			logger.LogAction("receptionist.configure", c, fiber.Map{"clientId": oid.Hex(), "assistantId": result.AssistantID})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleActivate handles POST /client/ai-receptionist/activate.
func (h *ReceptionistHandler) HandleActivate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		result, err := h.Service.Activate(c.Context(), oid)
		if err == nil {
			logger.LogAction("receptionist.activate", c, fiber.Map{"clientId": oid.Hex(), "phoneNumber": result.PhoneNumber})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleCalls handles GET /client/calls. Query: page, limit.
func (h *ReceptionistHandler) HandleCalls(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.Service.ListCalls(c.Context(), oid, page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleAppointments handles GET /client/appointments. Query: page, limit.
func (h *ReceptionistHandler) HandleAppointments(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.Service.ListAppointments(c.Context(), oid, page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleDashboard handles GET /client/dashboard.
func (h *ReceptionistHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		view, err := h.Service.Dashboard(c.Context(), oid)
		return basehdl.HandleResponse(c, view, err)
	})
}

// HandleWebhook handles POST /vapi/webhook. The voice service consumes the
// dispatch payload directly, so the body is written without the envelope.
func (h *ReceptionistHandler) HandleWebhook(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		secret := global.ServerConfig.VapiWebhookSecret
		if secret != "" {
			provided := c.Get("x-vapi-secret")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				return basehdl.HandleError(c, common.NewError(
					common.ErrCodeAuthCredentials, "Invalid webhook secret", common.StatusUnauthorized, nil))
			}
		}

		var req receptionistdto.WebhookRequest
		if err := c.Bind().Body(&req); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		payload, err := h.Service.HandleWebhook(c.Context(), &req)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, payload)
	})
}
