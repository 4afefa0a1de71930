package auth

import "confportal/internal/domain"

type SignupRequest struct {
	FullName string `json:"full_name" binding:"required" example:"Dr. A. Verma"`
	Email    string `json:"email" binding:"required,email" example:"a.verma@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Phone    string `json:"phone" example:"+91-9000000000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
