package db

import (
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Posting{}); err != nil {
		return errors.Wrap(err, "migration failed for Posting")
	}
	if err := DB.AutoMigrate(&dbmodels.FieldGroupCriteria{}); err != nil {
		return errors.Wrap(err, "migration failed for FieldGroupCriteria")
	}
	if err := DB.AutoMigrate(&dbmodels.Publication{}); err != nil {
		return errors.Wrap(err, "migration failed for Publication")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "migration failed for Application")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationStatusEntry{}); err != nil {
		return errors.Wrap(err, "migration failed for ApplicationStatusEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.JuryAssignment{}); err != nil {
		return errors.Wrap(err, "migration failed for JuryAssignment")
	}
	if err := DB.AutoMigrate(&dbmodels.FileDocument{}); err != nil {
		return errors.Wrap(err, "migration failed for FileDocument")
	}
	log.Info("migrations finished")
	return nil
}
