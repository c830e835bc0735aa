package dto

import "github.com/google/uuid"

type GoogleSignInRequest struct {
	Token string `json:"token" validate:"required"`
}

type UpdateProfileRequest struct {
	UserName    string `json:"user_name" validate:"omitempty,min=2,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=6,max=30"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"users_id"`
	Email       string    `json:"email"`
	UserName    string    `json:"user_name"`
	PhoneNumber *string   `json:"phone_number"`
	Gender      *string   `json:"gender"`
	Image       *string   `json:"image"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
