// Package clienthdl - HTTP handlers for the tenant domain.
package clienthdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	clientdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/dto"
	clientsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// ClientHandler handles admin client CRUD plus the client-console
// knowledge-base endpoints.
type ClientHandler struct {
	Service *clientsvc.ClientService
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler() (*ClientHandler, error) {
	svc, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("create ClientService: %w", err)
	}
	return &ClientHandler{Service: svc}, nil
}

// idParam parses the id route param.
func idParam(c fiber.Ctx) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat, "Invalid client ID", common.StatusBadRequest, nil)
	}
	return oid, nil
}

// HandleList handles GET /clients. Query: status, page, limit.
func (h *ClientHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.Service.ListClients(c.Context(), c.Query("status"), page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleGet handles GET /clients/:id.
func (h *ClientHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := idParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		client, err := h.Service.FindClient(c.Context(), id)
		return basehdl.HandleResponse(c, client, err)
	})
}

// HandleCreate handles POST /clients. The response carries the one-time
// password; it is never retrievable again.
func (h *ClientHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input clientdto.ClientCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		result, err := h.Service.CreateClient(c.Context(), &input)
		if err == nil {
			logger.LogAction("client.create", c, fiber.Map{"clientId": result.Client.ID.Hex()})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleUpdate handles PUT /clients/:id.
func (h *ClientHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := idParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input clientdto.ClientUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		client, err := h.Service.UpdateClient(c.Context(), id, &input)
		if err == nil {
			logger.LogAction("client.update", c, fiber.Map{"clientId": id.Hex()})
		}
		return basehdl.HandleResponse(c, client, err)
	})
}

// HandleDelete handles DELETE /clients/:id.
func (h *ClientHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := idParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		if err := h.Service.DeleteClient(c.Context(), id); err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogAction("client.delete", c, fiber.Map{"clientId": id.Hex()})
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}

// HandleResetPassword handles POST /clients/:id/reset-password.
func (h *ClientHandler) HandleResetPassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := idParam(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		password, err := h.Service.ResetPassword(c.Context(), id)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogAction("client.reset_password", c, fiber.Map{"clientId": id.Hex()})
		return basehdl.HandleResponse(c, fiber.Map{"initialPassword": password}, nil)
	})
}

// HandleGetKnowledgeBase handles GET /client/knowledge-base.
func (h *ClientHandler) HandleGetKnowledgeBase(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := c.Locals("clientOID").(primitive.ObjectID)
		if !ok || oid.IsZero() {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		client, err := h.Service.FindClient(c.Context(), oid)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{
			"knowledgeBase": client.Services.AIReceptionist.KnowledgeBase,
		}, nil)
	})
}

// HandleSetKnowledgeBase handles POST /client/knowledge-base.
func (h *ClientHandler) HandleSetKnowledgeBase(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := c.Locals("clientOID").(primitive.ObjectID)
		if !ok || oid.IsZero() {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		var input clientdto.KnowledgeBaseInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		client, err := h.Service.UpdateKnowledgeBase(c.Context(), oid, input.KnowledgeBase())
		return basehdl.HandleResponse(c, client, err)
	})
}
