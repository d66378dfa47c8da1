package model

import (
	"fmt"
	"time"
)

// User represents an authentication user.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// MinPasswordLength is the shortest password accepted for new credentials.
const MinPasswordLength = 8

// RoleAtLeast checks if role meets or exceeds the minimum required role.
// Unknown roles never qualify.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin:   3,
		RoleManager: 2,
		RoleUser:    1,
	}
	have, ok := levels[role]
	if !ok {
		return false
	}
	need, ok := levels[minimum]
	if !ok {
		return false
	}
	return have >= need
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleUser
}

// ValidatePassword checks that a new password is acceptable.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
