// Package authhdl - HTTP handlers for login and credential rotation.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/dto"
	authsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/service"
	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// AuthHandler handles the auth endpoints.
type AuthHandler struct {
	Service *authsvc.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler() (*AuthHandler, error) {
	svc, err := authsvc.NewAuthService()
	if err != nil {
		return nil, fmt.Errorf("create AuthService: %w", err)
	}
	return &AuthHandler{Service: svc}, nil
}

// HandleAdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) HandleAdminLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		result, err := h.Service.AdminLogin(c.Context(), &input)
		if err == nil {
			logger.LogAction("auth.admin_login", c, fiber.Map{"email": input.Email})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleClientLogin handles POST /auth/client/login.
func (h *AuthHandler) HandleClientLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		result, err := h.Service.ClientLogin(c.Context(), &input)
		if err == nil {
			logger.LogAction("auth.client_login", c, fiber.Map{"email": input.Email})
		}
		return basehdl.HandleResponse(c, result, err)
	})
}

// HandleMe handles GET /auth/me. Returns the identity carried by the token.
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		return basehdl.HandleResponse(c, fiber.Map{
			"userId":   c.Locals("userId"),
			"role":     c.Locals("role"),
			"clientId": c.Locals("clientId"),
		}, nil)
	})
}

// HandleChangePassword handles POST /auth/client/change-password.
func (h *AuthHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clientID, _ := c.Locals("clientId").(string)
		oid, err := primitive.ObjectIDFromHex(clientID)
		if err != nil {
			return basehdl.HandleError(c, common.ErrForbidden)
		}

		var input authdto.ChangePasswordInput
		if err := c.Bind().Body(&input); err != nil {
			return basehdl.HandleError(c, common.ErrInvalidFormat)
		}

		if err := h.Service.ChangeClientPassword(c.Context(), oid, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogAction("auth.change_password", c, nil)
		return basehdl.HandleResponse(c, fiber.Map{"changed": true}, nil)
	})
}
