package dbmodels

import (
	"time"

	"academy-apply-backend/models"

	"github.com/pkg/errors"
)

type Posting struct {
	BaseModel
	Title             string               `gorm:"type:varchar(255)"`
	Institution       string               `gorm:"type:varchar(255)"`
	Department        string               `gorm:"type:varchar(255)"`
	FieldGroup        models.FieldGroup    `gorm:"type:varchar(50);index"`
	Status            models.PostingStatus `gorm:"type:varchar(50);index"`
	Description       string
	StartDate         time.Time
	EndDate           time.Time
	ApplicationsCount int
	AuthorID          string `gorm:"type:varchar(36)"`
	Author            *User  `gorm:"foreignKey:AuthorID"`
}

func (p Posting) IsOpen() bool {
	return p.Status == models.PostingStatusOpen
}

type PostingFilter struct {
	Search     string               `json:"search"`
	FieldGroup models.FieldGroup    `json:"field_group"`
	Status     models.PostingStatus `json:"status"`
}

type PostingData struct {
	Title       string            `json:"title"`
	Institution string            `json:"institution"`
	Department  string            `json:"department"`
	FieldGroup  models.FieldGroup `json:"field_group"`
	Description string            `json:"description"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
}

func (p PostingData) Validate() error {
	if p.Title == "" {
		return errors.New("posting title is required")
	}
	if !p.FieldGroup.IsValid() {
		return errors.New("unknown field group")
	}
	if !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return errors.New("posting end date is before start date")
	}
	return nil
}
