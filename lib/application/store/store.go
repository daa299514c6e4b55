package applicationstore

import (
	"academy-apply-backend/models"
	dbmodels "academy-apply-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	IsExist(candidateID, postingID string) (found bool, err error)
	List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error)
	ListCount(filter dbmodels.ApplicationFilter) (count int64, err error)
	ListAll(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error

	SetStatus(id string, status models.ApplicationStatus, note, authorName string) error
	StatusLog(id string) (list []dbmodels.ApplicationStatusEntry, err error)

	AddJuryMember(rec dbmodels.JuryAssignment) (id string, err error)
	UpdateJuryMember(id string, updMap map[string]interface{}) error
	DeleteJuryMember(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Candidate").
		Preload("Posting").
		Preload("Jury").
		Preload("Jury.Juror").
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
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

func (i impl) IsExist(candidateID, postingID string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.Application{}).
		Select("count(*) > 0").
		Where("candidate_id = ? and posting_id = ?", candidateID, postingID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.
		Preload("Candidate").
		Preload("Posting").
		Preload("Jury").
		Order("applications.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter dbmodels.ApplicationFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListAll ignores pagination; the export path needs the full filtered set.
func (i impl) ListAll(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{})
	i.addFilter(tx, filter)
	err = tx.
		Preload("Candidate").
		Preload("Posting").
		Preload("Jury").
		Preload("Jury.Juror").
		Order("applications.created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicationFilter) {
	if filter.PostingID != "" {
		tx.Where("posting_id = ?", filter.PostingID)
	}
	if filter.CandidateID != "" {
		tx.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.JurorID != "" {
		tx.Joins("join jury_assignments on jury_assignments.application_id = applications.id").
			Where("jury_assignments.juror_id = ?", filter.JurorID)
	}
	if filter.Status != "" {
		tx.Where("applications.status = ?", filter.Status)
	}
	if filter.Search != "" {
		subQuery := i.db.Select("id").Table("users").
			Where("first_name ilike ? or last_name ilike ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
		tx.Where("candidate_id in (?)", subQuery)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	if err := i.db.Where("application_id = ?", id).Delete(&dbmodels.JuryAssignment{}).Error; err != nil {
		return err
	}
	if err := i.db.Where("application_id = ?", id).Delete(&dbmodels.ApplicationStatusEntry{}).Error; err != nil {
		return err
	}
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Application{}).
		Error
}

// SetStatus updates the current-status column and appends the audit entry
// in one call; callers run it inside a transaction together with the rest
// of the mutation.
func (i impl) SetStatus(id string, status models.ApplicationStatus, note, authorName string) error {
	err := i.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return err
	}
	entry := dbmodels.ApplicationStatusEntry{
		ApplicationID: id,
		Status:        status,
		Note:          note,
		AuthorName:    authorName,
	}
	return i.db.Create(&entry).Error
}

func (i impl) StatusLog(id string) (list []dbmodels.ApplicationStatusEntry, err error) {
	list = []dbmodels.ApplicationStatusEntry{}
	err = i.db.
		Model(dbmodels.ApplicationStatusEntry{}).
		Where("application_id = ?", id).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AddJuryMember(rec dbmodels.JuryAssignment) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) UpdateJuryMember(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JuryAssignment{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("jury assignment not found")
	}
	return nil
}

func (i impl) DeleteJuryMember(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.JuryAssignment{}).
		Error
}
