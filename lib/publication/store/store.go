package publicationstore

import (
	dbmodels "academy-apply-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

type Provider interface {
	Create(rec dbmodels.Publication) (id string, err error)
	GetByID(id string) (rec *dbmodels.Publication, err error)
	ListByOwner(ownerID string) (list []dbmodels.Publication, err error)
	ListByApplication(applicationID string) (list []dbmodels.Publication, err error)
	Update(id string, updMap map[string]interface{}) error
	LinkToApplication(ownerID, applicationID string, ids []string) error
	DetachFromApplication(applicationID string) error
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

// IsUniqueViolation reports whether err is the postgres duplicate-key
// error, raised when a second publication carries an already known DOI.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

func (i impl) Create(rec dbmodels.Publication) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Publication, error) {
	rec := dbmodels.Publication{}
	err := i.db.
		Model(&dbmodels.Publication{}).
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

func (i impl) ListByOwner(ownerID string) (list []dbmodels.Publication, err error) {
	list = []dbmodels.Publication{}
	err = i.db.
		Model(dbmodels.Publication{}).
		Where("owner_id = ?", ownerID).
		Order("year desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Publication, err error) {
	list = []dbmodels.Publication{}
	err = i.db.
		Model(dbmodels.Publication{}).
		Where("application_id = ?", applicationID).
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
		Model(&dbmodels.Publication{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("publication not found")
	}
	return nil
}

func (i impl) LinkToApplication(ownerID, applicationID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Publication{}).
		Where("owner_id = ?", ownerID).
		Where("id in ?", ids).
		Update("application_id", applicationID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected != int64(len(ids)) {
		return errors.New("some publications were not found or belong to another candidate")
	}
	return nil
}

// DetachFromApplication clears the application reference; the publications
// themselves are preserved.
func (i impl) DetachFromApplication(applicationID string) error {
	return i.db.
		Model(&dbmodels.Publication{}).
		Where("application_id = ?", applicationID).
		Update("application_id", nil).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Publication{}).
		Error
}
