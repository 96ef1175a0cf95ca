// Package leadhdl - HTTP handlers for the lead domain.
package leadhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	leaddto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/dto"
	leadsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// LeadHandler handles client lead endpoints, the admin review queue and the
// public capture endpoint.
type LeadHandler struct {
	Service *leadsvc.LeadService
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler() (*LeadHandler, error) {
	svc, err := leadsvc.NewLeadService()
	if err != nil {
		return nil, fmt.Errorf("create LeadService: %w", err)
	}
	return &LeadHandler{Service: svc}, nil
}

// clientOID reads the tenant ObjectID resolved by the middleware.
func clientOID(c fiber.Ctx) (primitive.ObjectID, bool) {
	oid, ok := c.Locals("clientOID").(primitive.ObjectID)
	return oid, ok && !oid.IsZero()
}

// paramObjectID parses a route param as an ObjectID.
func paramObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Invalid %s", name),
			common.StatusBadRequest,
			nil,
		)
	}
	return oid, nil
}

// actor returns the acting user id from the token.
func actor(c fiber.Ctx) string {
	userID, _ := c.Locals("userId").(string)
	if userID == "" {
		return "unknown"
	}
	return userID
}

// clientIP resolves the submitter's address. Proxy headers win over the
// socket address; the client-side tracking.ip field is never used.
func clientIP(c fiber.Ctx) string {
	if ip := c.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}

// HandleCapture handles POST /public/leads/capture (unauthenticated).
func (h *LeadHandler) HandleCapture(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input leaddto.CaptureInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		if input.CampaignID == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput, "campaignId is required", common.StatusBadRequest, nil))
		}
		if input.Tracking.UserAgent == "" {
			input.Tracking.UserAgent = c.Get("User-Agent")
		}

		lead, err := h.Service.Capture(c.Context(), &input, clientIP(c))
		return basehdl.HandleResponse(c, lead, err)
	})
}

// HandleList handles GET /client/leads. Query: status, source, page, limit.
func (h *LeadHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.Service.List(c.Context(), oid, c.Query("status"), c.Query("source"), page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleGet handles GET /client/leads/:id.
func (h *LeadHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		lead, err := h.Service.FindOwned(c.Context(), id, oid)
		return basehdl.HandleResponse(c, lead, err)
	})
}

// HandleChangeStatus handles PUT /client/leads/:id/status.
func (h *LeadHandler) HandleChangeStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input leaddto.LeadStatusInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		if input.Status == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput, "status is required", common.StatusBadRequest, nil))
		}

		lead, err := h.Service.ChangeStatus(c.Context(), id, oid, input.Status, actor(c))
		if err == nil {
			logger.LogAction("lead.status_change", c, fiber.Map{"leadId": id.Hex(), "status": input.Status})
		}
		return basehdl.HandleResponse(c, lead, err)
	})
}

// HandleAddNote handles POST /client/leads/:id/notes.
func (h *LeadHandler) HandleAddNote(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input leaddto.LeadNoteInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		lead, err := h.Service.AddNote(c.Context(), id, oid, input.Text, actor(c))
		return basehdl.HandleResponse(c, lead, err)
	})
}

// HandleAddTag handles POST /client/leads/:id/tags.
func (h *LeadHandler) HandleAddTag(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input leaddto.LeadTagInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		lead, err := h.Service.AddTag(c.Context(), id, oid, input.Tag, actor(c))
		return basehdl.HandleResponse(c, lead, err)
	})
}

// HandlePendingReview handles GET /admin/leads/pending-review.
func (h *LeadHandler) HandlePendingReview(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.Service.ListPendingReview(c.Context(), page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleApprove handles POST /admin/leads/:id/approve.
func (h *LeadHandler) HandleApprove(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		lead, err := h.Service.Approve(c.Context(), id, actor(c))
		if err == nil {
			logger.LogAction("lead.approve", c, fiber.Map{"leadId": id.Hex()})
		}
		return basehdl.HandleResponse(c, lead, err)
	})
}

// HandleReject handles POST /admin/leads/:id/reject.
func (h *LeadHandler) HandleReject(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input leaddto.RejectInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		lead, err := h.Service.Reject(c.Context(), id, input.Reason, actor(c))
		if err == nil {
			logger.LogAction("lead.reject", c, fiber.Map{"leadId": id.Hex(), "reason": input.Reason})
		}
		return basehdl.HandleResponse(c, lead, err)
	})
}
