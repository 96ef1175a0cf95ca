// Package dto - request payloads for the auth domain.
package dto

// LoginInput is the credential body for both login endpoints.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the issued session.
type LoginResult struct {
	Token              string      `json:"token"`
	Role               string      `json:"role"`
	ExpiresAt          int64       `json:"expiresAt"` // UnixMilli
	MustChangePassword bool        `json:"mustChangePassword,omitempty"`
	User               interface{} `json:"user"`
}

// ChangePasswordInput rotates the caller's credential.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}
