package dbmodels

import (
	"fmt"

	"academy-apply-backend/models"
)

type User struct {
	BaseModel
	IsActive       bool
	Role           models.UserRole `gorm:"type:varchar(50);index"`
	NationalID     string          `gorm:"type:varchar(11);uniqueIndex"` // TC kimlik no, verified by the external identity service
	Password       string          `gorm:"type:varchar(100)"`
	FirstName      string          `gorm:"type:varchar(255)"`
	LastName       string          `gorm:"type:varchar(255)"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber    string          `gorm:"type:varchar(50)"`
	Institution    string          `gorm:"type:varchar(255)"`
	AcademicTitle  string          `gorm:"type:varchar(100)"`
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%v %v", u.FirstName, u.LastName)
}
