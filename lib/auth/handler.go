package authhandler

import (
	"academy-apply-backend/db"
	usersstore "academy-apply-backend/lib/users/store"
	authutils "academy-apply-backend/lib/utils/auth-utils"
	"academy-apply-backend/models"
	authapimodels "academy-apply-backend/models/api/auth"
	dbmodels "academy-apply-backend/models/db"
	"academy-apply-backend/models/errs"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (id string, err error)
	Login(data authapimodels.LoginRequest) (response authapimodels.LoginResponse, err error)
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

// Register creates a candidate account. Staff accounts are created by an
// administrator through the user management API.
func (i impl) Register(data authapimodels.RegisterRequest) (id string, err error) {
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
		Role:          models.CandidateRole,
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
	log.WithField("user_id", id).Info("candidate registered")
	return id, nil
}

func (i impl) Login(data authapimodels.LoginRequest) (response authapimodels.LoginResponse, err error) {
	if err = data.Validate(); err != nil {
		return authapimodels.LoginResponse{}, errs.Validation(err.Error())
	}
	logger := log.WithField("email", data.Email)
	user, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to find user by email")
		return authapimodels.LoginResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("login attempt for unknown or inactive account")
		return authapimodels.LoginResponse{}, errs.Validation("invalid email or password")
	}
	if authutils.GetMD5Hash(data.Password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.LoginResponse{}, errs.Validation("invalid email or password")
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("failed to sign token")
		return authapimodels.LoginResponse{}, err
	}
	return authapimodels.LoginResponse{
		AccessToken: token,
		Role:        user.Role,
		FullName:    user.GetFullName(),
	}, nil
}
