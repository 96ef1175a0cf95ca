// Package authsvc - admin and client login, token issuance and credential
// rotation.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/dto"
	authmodels "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/models"
	basesvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/service"
	clientsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
)

// tokenTTL is the session lifetime.
const tokenTTL = 24 * time.Hour

// AuthService handles logins for both consoles.
type AuthService struct {
	admins  *basesvc.BaseServiceMongoImpl[authmodels.AdminUser]
	clients *clientsvc.ClientService
}

// NewAuthService creates an AuthService.
func NewAuthService() (*AuthService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	if !exist {
		return nil, fmt.Errorf("collection %s not found: %w", global.MongoDB_ColNames.AdminUsers, common.ErrNotFound)
	}
	clients, err := clientsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("create ClientService: %w", err)
	}
	return &AuthService{
		admins:  basesvc.NewBaseServiceMongo[authmodels.AdminUser](coll),
		clients: clients,
	}, nil
}

// issueToken signs an HS256 session token.
func issueToken(subject, role, clientID string, expiresAt time.Time) (string, error) {
	claims := middleware.Claims{
		Role:     role,
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}

// AdminLogin authenticates an administrator.
func (s *AuthService) AdminLogin(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	admin, err := s.admins.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := issueToken(admin.ID.Hex(), middleware.RoleAdmin, "", expiresAt)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to issue token", common.StatusInternalServerError, nil)
	}

	if _, err := s.admins.UpdateById(ctx, admin.ID, bson.M{"$set": bson.M{"lastLoginAt": time.Now().UnixMilli()}}); err != nil {
		return nil, err
	}

	admin.PasswordHash = ""
	return &authdto.LoginResult{
		Token:     token,
		Role:      middleware.RoleAdmin,
		ExpiresAt: expiresAt.UnixMilli(),
		User:      admin,
	}, nil
}

// ClientLogin authenticates a tenant account.
func (s *AuthService) ClientLogin(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	client, err := s.clients.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if client.Status != "active" {
		return nil, common.NewError(common.ErrCodeAuthRole, "Account is not active", common.StatusForbidden, nil)
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(input.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := issueToken(client.ID.Hex(), middleware.RoleClient, client.ID.Hex(), expiresAt)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Failed to issue token", common.StatusInternalServerError, nil)
	}

	client.PasswordHash = ""
	return &authdto.LoginResult{
		Token:              token,
		Role:               middleware.RoleClient,
		ExpiresAt:          expiresAt.UnixMilli(),
		MustChangePassword: client.MustChangePassword,
		User:               client,
	}, nil
}

// ChangeClientPassword rotates a tenant's credential after verifying the
// current one.
func (s *AuthService) ChangeClientPassword(ctx context.Context, clientID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Password must be at least 8 characters with upper, lower and digit", common.StatusBadRequest, nil)
	}

	client, err := s.clients.FindOneById(ctx, clientID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Failed to hash credentials", common.StatusInternalServerError, nil)
	}

	_, err = s.clients.UpdateById(ctx, clientID, bson.M{"$set": bson.M{
		"passwordHash":       string(hash),
		"mustChangePassword": false,
	}})
	return err
}

// EnsureAdminUser seeds the bootstrap administrator when missing. Used at
// startup with the configured admin credentials.
func (s *AuthService) EnsureAdminUser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	exists, err := s.admins.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.admins.InsertOne(ctx, authmodels.AdminUser{
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         "admin",
	})
	return err
}
