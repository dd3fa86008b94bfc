package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseCompanyModel запись, принадлежащая компании (тенанту)
type BaseCompanyModel struct {
	BaseModel
	CompanyID uint `gorm:"index"`
}

func (b BaseCompanyModel) Validate() error {
	if b.CompanyID == 0 {
		return errors.New("не указан идентификатор компании")
	}
	return nil
}
