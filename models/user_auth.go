package models

import "time"

// User represents an account in Firestore
// @Description User account information
type User struct {
	ID          string          `json:"id" firestore:"-" example:"user@example.com"`
	Email       string          `json:"email" firestore:"email" example:"user@example.com"`
	Name        string          `json:"name" firestore:"name" example:"John Doe"`
	Password    string          `json:"-" firestore:"password"` // bcrypt hash, never sent to client
	Provider    string          `json:"provider" firestore:"provider" example:"email"`
	GoogleID    string          `json:"-" firestore:"googleId,omitempty"`
	Preferences UserPreferences `json:"preferences" firestore:"preferences"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt" firestore:"updatedAt"`
}

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
	Name     string `json:"name" binding:"required" example:"John Doe"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}
