package criteriastore

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.FieldGroupCriteria) (id string, err error)
	GetByFieldGroup(fieldGroup models.FieldGroup) (rec *dbmodels.FieldGroupCriteria, err error)
	List() (list []dbmodels.FieldGroupCriteria, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.FieldGroupCriteria) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByFieldGroup(fieldGroup models.FieldGroup) (*dbmodels.FieldGroupCriteria, error) {
	rec := dbmodels.FieldGroupCriteria{}
	err := i.db.
		Model(&dbmodels.FieldGroupCriteria{}).
		Where("field_group = ?", fieldGroup).
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

func (i impl) List() (list []dbmodels.FieldGroupCriteria, err error) {
	list = []dbmodels.FieldGroupCriteria{}
	err = i.db.
		Model(dbmodels.FieldGroupCriteria{}).
		Order("field_group").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.FieldGroupCriteria{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("criteria record not found")
	}
	return nil
}
