package dbmodels

import (
	"time"

	"academy-apply-backend/models"

	"github.com/pkg/errors"
)

const minPublicationYear = 1900

type Publication struct {
	BaseModel
	OwnerID       string                     `gorm:"type:varchar(36);index"`
	Owner         *User                      `gorm:"foreignKey:OwnerID"`
	ApplicationID *string                    `gorm:"type:varchar(36);index"` // nil until linked at submit
	Category      models.PublicationCategory `gorm:"type:varchar(10)"`
	IndexName     string                     `gorm:"type:varchar(100)"` // derived from category
	Title         string                     `gorm:"type:varchar(500)"`
	DOI           string                     `gorm:"type:varchar(255);uniqueIndex"`
	Year          int
	IsMainAuthor  bool
	ProofFileID   string `gorm:"type:varchar(36)"`
}

type PublicationData struct {
	Category     models.PublicationCategory `json:"category"`
	Title        string                     `json:"title"`
	DOI          string                     `json:"doi"`
	Year         int                        `json:"year"`
	IsMainAuthor bool                       `json:"is_main_author"`
}

func (p PublicationData) Validate() error {
	if p.Title == "" {
		return errors.New("publication title is required")
	}
	if p.DOI == "" {
		return errors.New("publication DOI is required")
	}
	if p.Year < minPublicationYear || p.Year > time.Now().Year() {
		return errors.Errorf("publication year must be within [%v, %v]", minPublicationYear, time.Now().Year())
	}
	return nil
}
