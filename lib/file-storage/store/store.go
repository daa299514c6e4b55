package filesstore

import (
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileDocument) (id string, err error)
	GetByID(id string) (*dbmodels.FileDocument, error)
	ListByOwner(ownerID string, fileType dbmodels.FileType) ([]dbmodels.FileDocument, error)
	ListByApplication(applicationID string) ([]dbmodels.FileDocument, error)
	Delete(id string) error
}

type impl struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

func (i impl) SaveFile(rec dbmodels.FileDocument) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileDocument, error) {
	rec := dbmodels.FileDocument{}
	err := i.db.
		Model(&dbmodels.FileDocument{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByOwner(ownerID string, fileType dbmodels.FileType) (list []dbmodels.FileDocument, err error) {
	err = i.db.
		Model(&dbmodels.FileDocument{}).
		Where("owner_id = ? AND type = ?", ownerID, fileType).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.FileDocument, err error) {
	err = i.db.
		Model(&dbmodels.FileDocument{}).
		Where("application_id = ?", applicationID).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.FileDocument{}).
		Error
}
