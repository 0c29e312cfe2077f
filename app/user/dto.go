package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propleague/ante/internal/formatter"
	"github.com/propleague/ante/internal/validator"
)

// RegisterUserRequest represents the request to create a user.
type RegisterUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

func (r *RegisterUserRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.Name), "name", "name is required")
	v.Check(validator.MinRunes(r.Name, 2) && validator.MaxRunes(r.Name, 100), "name", "name must be between 2 and 100 characters")
	v.Check(validator.IsEmail(r.Email), "email", "email is invalid")
	v.Check(validator.MinRunes(r.Password, 8), "password", "password must be at least 8 characters")

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if r.PhoneNumber != "" {
		v.Check(validator.NotBlank(r.CountryCode), "country_code", "country code is required with a phone number")
		formatted, err := formatter.FormatPhone(r.PhoneNumber, r.CountryCode)
		if err != nil {
			v.AddError("phone_number", "phone number is invalid")
		} else {
			r.PhoneNumber = formatted
		}
	}

	return v.Valid()
}

// LoginRequest represents the request to log in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Response represents the response for user data.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	User        Response `json:"user"`
}
