package model

import "github.com/google/uuid"

// Principal is the authenticated caller as seen by the service layer.
type Principal struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}
