package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateDonorProfileRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	CityPostal   string `json:"city_postal"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobile_number"`
	DocumentURL  string `json:"document_url"`
}

type UpdateNGOProfileRequest struct {
	NGOName       string `json:"ngo_name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	CityPostal    string `json:"city_postal"`
	Address       string `json:"address"`
	NGOType       string `json:"ngo_type"`
	SocialLink    string `json:"social_link"`
	MobileNumber  string `json:"mobile_number"`
	DocumentURL   string `json:"document_url"`
}

type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatar_url" validate:"required,url"`
}

type DonorProfileResponse struct {
	UserResponse
	FullName     string `json:"full_name"`
	CityPostal   string `json:"city_postal"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobile_number"`
	DocumentURL  string `json:"document_url,omitempty"`
}

type NGOProfileResponse struct {
	UserResponse
	NGOName           string `json:"ngo_name"`
	ContactPerson     string `json:"contact_person"`
	RegCertificateURL string `json:"reg_certificate_url,omitempty"`
	DocumentURL       string `json:"document_url,omitempty"`
	CityPostal        string `json:"city_postal"`
	Address           string `json:"address"`
	NGOType           string `json:"ngo_type"`
	SocialLink        string `json:"social_link"`
	MobileNumber      string `json:"mobile_number"`
	IsVerified        bool   `json:"is_verified"`
}

type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

type ContactMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
