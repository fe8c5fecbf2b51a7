package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=6"`
	Role      string     `json:"role" validate:"required,oneof=admin faculty student"`
	FacultyID *uuid.UUID `json:"faculty_id,omitempty"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}
