package auth

import (
	"strings"
	"time"
)

// User is the persisted credential record.
type User struct {
	ID               string     `bson:"_id,omitempty" json:"id,omitempty"`
	Email            string     `bson:"email" json:"email"`
	Name             string     `bson:"name,omitempty" json:"name,omitempty"`
	Phone            string     `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash     string     `bson:"password_hash,omitempty" json:"-"`
	VerificationCode *string    `bson:"verification_code" json:"-"`
	IsVerified       bool       `bson:"is_verified" json:"is_verified"`
	IsManager        bool       `bson:"is_manager" json:"is_manager"`
	CreatedAt        *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// UserUpdate describes a partial update to a user record. Nil pointer
// fields are left untouched; ClearVerificationCode persists an explicit
// null so a consumed code cannot be replayed.
type UserUpdate struct {
	IsVerified            *bool
	VerificationCode      *string
	ClearVerificationCode bool
}

// NormalizeEmail lowercases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
