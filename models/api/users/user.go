package usersapimodels

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
)

type CreateUserRequest struct {
	Role          models.UserRole `json:"role"`
	NationalID    string          `json:"national_id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	PhoneNumber   string          `json:"phone_number"`
	Institution   string          `json:"institution"`
	AcademicTitle string          `json:"academic_title"`
}

func (r CreateUserRequest) Validate() error {
	if !r.Role.IsValid() {
		return errors.Errorf("unknown role: %v", r.Role)
	}
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

type ListRequest struct {
	Role models.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	PhoneNumber   *string `json:"phone_number"`
	Institution   *string `json:"institution"`
	AcademicTitle *string `json:"academic_title"`
	IsActive      *bool   `json:"is_active"`
}

type UserView struct {
	ID            string          `json:"id"`
	IsActive      bool            `json:"is_active"`
	Role          models.UserRole `json:"role"`
	RoleName      string          `json:"role_name"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	PhoneNumber   string          `json:"phone_number"`
	Institution   string          `json:"institution"`
	AcademicTitle string          `json:"academic_title"`
}

func Convert(rec dbmodels.User) UserView {
	return UserView{
		ID:            rec.ID,
		IsActive:      rec.IsActive,
		Role:          rec.Role,
		RoleName:      rec.Role.ToHuman(),
		FullName:      rec.GetFullName(),
		Email:         rec.Email,
		PhoneNumber:   rec.PhoneNumber,
		Institution:   rec.Institution,
		AcademicTitle: rec.AcademicTitle,
	}
}
