package usershandler

import (
	"academy-apply-backend/db"
	usersstore "academy-apply-backend/lib/users/store"
	authutils "academy-apply-backend/lib/utils/auth-utils"
	"academy-apply-backend/models"
	usersapimodels "academy-apply-backend/models/api/users"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data usersapimodels.CreateUserRequest) (id string, err error)
	GetByID(id string) (usersapimodels.UserView, error)
	ListByRole(role models.UserRole) ([]usersapimodels.UserView, error)
	Update(id string, data usersapimodels.UpdateUserRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(data usersapimodels.CreateUserRequest) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errs.Validation(err.Error())
	}
	existing, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errs.Conflict("an account with this email already exists")
	}
	id, err = i.store.Create(dbmodels.User{
		IsActive:      true,
		Role:          data.Role,
		NationalID:    data.NationalID,
		Password:      authutils.GetMD5Hash(data.Password),
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		Institution:   data.Institution,
		AcademicTitle: data.AcademicTitle,
	})
	if err != nil {
		return "", err
	}
	log.
		WithField("user_id", id).
		WithField("role", data.Role).
		Info("user account created")
	return id, nil
}

func (i impl) GetByID(id string) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, errs.NotFound("user not found")
	}
	return usersapimodels.Convert(*rec), nil
}

func (i impl) ListByRole(role models.UserRole) ([]usersapimodels.UserView, error) {
	if !role.IsValid() {
		return nil, errs.Validation("unknown role")
	}
	list, err := i.store.ListByRole(role)
	if err != nil {
		return nil, err
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Update(id string, data usersapimodels.UpdateUserRequest) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errs.NotFound("user not found")
	}
	updMap := map[string]interface{}{}
	if data.PhoneNumber != nil {
		updMap["phone_number"] = *data.PhoneNumber
	}
	if data.Institution != nil {
		updMap["institution"] = *data.Institution
	}
	if data.AcademicTitle != nil {
		updMap["academic_title"] = *data.AcademicTitle
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	return i.store.Update(id, updMap)
}
