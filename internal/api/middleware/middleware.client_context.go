package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
)

// ClientScoped resolves the tenant for the request and stores its ObjectID in
// Locals("clientOID"). Client tokens are pinned to their own tenant; admin
// tokens may address any tenant via the clientId route param or query.
func ClientScoped() fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals("role").(string)

		var clientID string
		switch role {
		case RoleClient:
			clientID, _ = c.Locals("clientId").(string)
		case RoleAdmin:
			clientID = c.Params("clientId")
			if clientID == "" {
				clientID = c.Query("clientId")
			}
		}

		if clientID == "" {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				"Client ID is required",
				common.StatusBadRequest,
				nil,
			))
		}

		oid, err := primitive.ObjectIDFromHex(clientID)
		if err != nil {
			return basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				"Invalid client ID",
				common.StatusBadRequest,
				nil,
			))
		}

		c.Locals("clientOID", oid)
		return c.Next()
	}
}
