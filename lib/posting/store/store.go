package postingstore

import (
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Posting) (id string, err error)
	GetByID(id string) (rec *dbmodels.Posting, err error)
	List(filter dbmodels.PostingFilter) (list []dbmodels.Posting, err error)
	Update(id string, updMap map[string]interface{}) error
	IncApplicationsCount(id string, delta int) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Posting) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Posting, error) {
	rec := dbmodels.Posting{}
	err := i.db.
		Model(&dbmodels.Posting{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) List(filter dbmodels.PostingFilter) (list []dbmodels.Posting, err error) {
	list = []dbmodels.Posting{}
	tx := i.db.
		Model(dbmodels.Posting{})
	if filter.FieldGroup != "" {
		tx.Where("field_group = ?", filter.FieldGroup)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		searchValue := "%" + filter.Search + "%"
		tx.Where("title ilike ? or institution ilike ? or department ilike ?", searchValue, searchValue, searchValue)
	}
	err = tx.Order("created_at desc").Find(&list).Error
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
		Model(&dbmodels.Posting{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("posting not found")
	}
	return nil
}

func (i impl) IncApplicationsCount(id string, delta int) error {
	return i.db.
		Model(&dbmodels.Posting{}).
		Where("id = ?", id).
		UpdateColumn("applications_count", gorm.Expr("applications_count + ?", delta)).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Posting{}).
		Error
}
