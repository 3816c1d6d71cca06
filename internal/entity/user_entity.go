package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"givebridge-be/internal/pkg/apperr"
)

type UserRole string

const (
	UserRoleDonorRecipient UserRole = "donor_recipient"
	UserRoleNGO            UserRole = "ngo"
	UserRoleAdmin          UserRole = "admin"
)

// ParseUserRole normalizes once at the boundary; role strings are never
// re-normalized internally.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToLower(strings.TrimSpace(s))) {
	case UserRoleDonorRecipient:
		return UserRoleDonorRecipient, nil
	case UserRoleNGO:
		return UserRoleNGO, nil
	case UserRoleAdmin:
		return UserRoleAdmin, nil
	}
	return "", apperr.Validationf("unknown user role %q", s)
}

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash *string
	Role         UserRole
	// IsApproved is only meaningful for the NGO role.
	IsApproved  bool
	IsSuperuser bool
	IsActive    bool
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DonorProfile is the role-specific payload for donor/recipient accounts.
type DonorProfile struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	FullName     string
	Email        string
	DocumentURL  *string
	CityPostal   string
	Address      string
	MobileNumber string
}

// NGOProfile is the role-specific payload for NGO accounts.
type NGOProfile struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	NGOName           string
	RegCertificateURL *string
	Email             string
	ContactPerson     string
	DocumentURL       *string
	CityPostal        string
	Address           string
	NGOType           string
	SocialLink        string
	MobileNumber      string
	IsVerified        bool
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
