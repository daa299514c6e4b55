package authapimodels

import (
	"academy-apply-backend/models"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Role        models.UserRole `json:"role"`
	FullName    string          `json:"full_name"`
}

type RegisterRequest struct {
	NationalID    string `json:"national_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phone_number"`
	Institution   string `json:"institution"`
	AcademicTitle string `json:"academic_title"`
}

func (r RegisterRequest) Validate() error {
	if len(r.NationalID) != 11 {
		return errors.New("national id must be 11 digits")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
