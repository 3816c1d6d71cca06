package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDonorRequest struct {
	Username     string `json:"username" validate:"required,min=3,max=150"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"required"`
	CityPostal   string `json:"city_postal"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobile_number"`
	DocumentURL  string `json:"document_url"`
}

type RegisterNGORequest struct {
	Username          string `json:"username" validate:"required,min=3,max=150"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	NGOName           string `json:"ngo_name" validate:"required"`
	ContactPerson     string `json:"contact_person" validate:"required"`
	RegCertificateURL string `json:"reg_certificate_url"`
	DocumentURL       string `json:"document_url"`
	CityPostal        string `json:"city_postal"`
	Address           string `json:"address"`
	NGOType           string `json:"ngo_type"`
	SocialLink        string `json:"social_link"`
	MobileNumber      string `json:"mobile_number"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UserResponse struct {
	Id          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	IsApproved  bool      `json:"is_approved"`
	IsSuperuser bool      `json:"is_superuser"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
