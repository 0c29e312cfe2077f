package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a user in the system
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string     `gorm:"type:varchar(255);not null;unique;index" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"` // Never expose password
	Name         string     `gorm:"type:varchar(100)" json:"name"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone"`
	LastLoginAt  *time.Time `gorm:"type:timestamptz" json:"last_login_at"`
	IsActive     *bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Memberships  []Member `gorm:"foreignKey:UserID" json:"-"`
	OwnedLeagues []League `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName specifies the table name for User model
func (*User) TableName() string {
	return "users"
}

// BeforeCreate sets up the model before creation
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SetPassword hashes and sets the user password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the provided password against the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// UpdateLastLogin updates the last login timestamp
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// Validate performs validation on the user model
func (u *User) Validate() error {
	if !IsEmail(u.Email) {
		return ErrInvalidEmail
	}
	if u.PasswordHash == "" {
		return ErrInvalidPassword
	}
	return nil
}

func IsEmail(identity string) bool {
	return identity != "" && strings.Contains(identity, "@") && strings.Contains(identity, ".")
}

func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
