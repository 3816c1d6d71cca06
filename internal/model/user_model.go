package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'donor_recipient'"`
	IsApproved   bool      `gorm:"default:false"`
	IsSuperuser  bool      `gorm:"default:false"`
	IsActive     bool      `gorm:"default:true"`
	AvatarURL    *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave keeps the role invariant: a superuser account is always an admin.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.IsSuperuser {
		u.Role = "admin"
	}
	return nil
}

type DonorProfile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	User         User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	FullName     string    `gorm:"type:varchar(200)"`
	Email        string    `gorm:"type:varchar(255)"`
	DocumentURL  *string   `gorm:"type:text"`
	CityPostal   string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:text"`
	MobileNumber string    `gorm:"type:varchar(20)"`
}

func (DonorProfile) TableName() string {
	return "donor_profiles"
}

type NGOProfile struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	User              User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	NGOName           string    `gorm:"type:varchar(200)"`
	RegCertificateURL *string   `gorm:"type:text"`
	Email             string    `gorm:"type:varchar(255)"`
	ContactPerson     string    `gorm:"type:varchar(200)"`
	DocumentURL       *string   `gorm:"type:text"`
	CityPostal        string    `gorm:"type:varchar(100)"`
	Address           string    `gorm:"type:text"`
	NGOType           string    `gorm:"type:varchar(100)"`
	SocialLink        string    `gorm:"type:text"`
	MobileNumber      string    `gorm:"type:varchar(20)"`
	IsVerified        bool      `gorm:"default:false"`
}

func (NGOProfile) TableName() string {
	return "ngo_profiles"
}
