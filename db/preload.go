package db

import (
	"academy-apply-backend/config"
	criteriastore "academy-apply-backend/lib/criteria/store"
	usersstore "academy-apply-backend/lib/users/store"
	authutils "academy-apply-backend/lib/utils/auth-utils"
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
	seedCriteria()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("admin user not created, ADMIN_EMAIL is not set")
		return
	}
	userStore := usersstore.NewInstance(DB)
	existedRec, err := userStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to create admin user")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		IsActive:  true,
		Role:      models.AdminRole,
		Password:  authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName: config.Conf.Admin.FirstName,
		LastName:  config.Conf.Admin.LastName,
		Email:     config.Conf.Admin.Email,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create admin user")
	}
}

// seedCriteria upserts the default criteria set, one row per field group.
// Administrator edits survive restarts: existing rows are left untouched.
func seedCriteria() {
	store := criteriastore.NewInstance(DB)
	for _, rec := range criteriastore.DefaultSet() {
		existedRec, err := store.GetByFieldGroup(rec.FieldGroup)
		if err != nil {
			log.WithError(err).WithField("field_group", rec.FieldGroup).Error("failed to seed criteria")
			continue
		}
		if existedRec != nil {
			continue
		}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).WithField("field_group", rec.FieldGroup).Error("failed to seed criteria")
		}
	}
}
