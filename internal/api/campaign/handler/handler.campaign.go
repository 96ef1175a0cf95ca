// Package campaignhdl - HTTP handlers for the campaign domain.
package campaignhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	campaigndto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/dto"
	campaignmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/models"
	campaignsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// CampaignHandler handles campaign CRUD and lifecycle endpoints.
type CampaignHandler struct {
	Service *campaignsvc.CampaignService
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler() (*CampaignHandler, error) {
	svc, err := campaignsvc.NewCampaignService()
	if err != nil {
		return nil, fmt.Errorf("create CampaignService: %w", err)
	}
	return &CampaignHandler{Service: svc}, nil
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

// HandleList handles GET /client/lead-gen/campaigns.
// Query: status (optional), page, limit.
func (h *CampaignHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.Service.ListByClient(c.Context(), oid, c.Query("status"), page, limit)
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleGet handles GET /client/lead-gen/campaigns/:id.
func (h *CampaignHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		campaign, err := h.Service.FindOwned(c.Context(), id, oid)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandleCreate handles POST /client/lead-gen/campaigns.
func (h *CampaignHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		var input campaigndto.CampaignCreateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		campaign, err := h.Service.CreateCampaign(c.Context(), oid, &input)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandleUpdate handles PATCH /client/lead-gen/campaigns/:id.
func (h *CampaignHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input campaigndto.CampaignUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		campaign, err := h.Service.UpdateCampaign(c.Context(), id, oid, &input)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandleDelete handles DELETE /client/lead-gen/campaigns/:id.
func (h *CampaignHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		if err := h.Service.DeleteCampaign(c.Context(), id, oid); err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"deleted": true}, nil)
	})
}

// HandleSetStatus handles PATCH /client/lead-gen/campaigns/:id/status.
func (h *CampaignHandler) HandleSetStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		var input campaigndto.CampaignStatusInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}
		if input.Status == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput, "status is required", common.StatusBadRequest, nil))
		}

		campaign, err := h.Service.SetStatus(c.Context(), id, oid, input.Status)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandleToggle handles PATCH /client/lead-gen/campaigns/:id/toggle.
func (h *CampaignHandler) HandleToggle(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		campaign, err := h.Service.ToggleStatus(c.Context(), id, oid)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandlePublish handles POST /client/lead-gen/campaigns/:id/publish.
func (h *CampaignHandler) HandlePublish(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		campaign, err := h.Service.Publish(c.Context(), id, oid)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandlePause handles POST /client/lead-gen/campaigns/:id/pause.
func (h *CampaignHandler) HandlePause(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		oid, ok := clientOID(c)
		if !ok {
			return basehdl.HandleError(c, common.ErrForbidden)
		}
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		campaign, err := h.Service.SetStatus(c.Context(), id, oid, campaignmodels.CampaignStatusPaused)
		return basehdl.HandleResponse(c, campaign, err)
	})
}

// HandlePublicGet handles GET /public/campaigns/:id. Unauthenticated; serves
// the filtered projection the landing page renders.
func (h *CampaignHandler) HandlePublicGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		view, err := h.Service.FindPublic(c.Context(), id)
		return basehdl.HandleResponse(c, view, err)
	})
}

// HandlePublicView handles POST /public/campaigns/:id/view. The landing page
// pings this once per render; only active campaigns accumulate views.
func (h *CampaignHandler) HandlePublicView(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := paramObjectID(c, "id")
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		view, err := h.Service.FindPublic(c.Context(), id)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		if view.Status == campaignmodels.CampaignStatusActive {
			if err := h.Service.RecordView(c.Context(), id); err != nil {
				logger.GetErrorLogger().WithError(err).Warn("Failed to record campaign view")
			}
		}

		return basehdl.HandleResponse(c, fiber.Map{"viewed": true}, nil)
	})
}
