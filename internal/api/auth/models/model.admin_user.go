// Package models - AdminUser belongs to the auth domain (admin_users).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser is a console administrator account.
type AdminUser struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Email        string `json:"email" bson:"email" index:"unique"`
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Role         string `json:"role" bson:"role" default:"admin"`

	LastLoginAt int64 `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt   int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64 `json:"updatedAt" bson:"updatedAt"`
}
