package model

import "time"

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// AdminUser represents a dashboard operator account
type AdminUser struct {
	ID           string `gorm:"primary_key;default:gen_random_uuid()"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName sets the table name for GORM
func (AdminUser) TableName() string {
	return "admin_users"
}

// ============================================================================
// REPOSITORY DTOs (Internal)
// ============================================================================

// CreateAdminRequest represents input for creating an admin account
type CreateAdminRequest struct {
	Email    string
	Password string // plain text, hashed in the repository
	Name     string
}

// ============================================================================
// API DTOs (External)
// ============================================================================

// LoginRequest represents the admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful admin login
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int           `json:"expires_in"`
	Admin       AdminResponse `json:"admin"`
}

// AdminResponse represents an admin account without credentials
type AdminResponse struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// ToAdminResponse converts an AdminUser entity to an API response
func (a *AdminUser) ToAdminResponse() AdminResponse {
	return AdminResponse{
		AdminID: a.ID,
		Email:   a.Email,
		Name:    a.Name,
	}
}
