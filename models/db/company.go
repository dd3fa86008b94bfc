package dbmodels

import (
	"github.com/pkg/errors"
)

type Company struct {
	BaseModel
	Name       string      `gorm:"type:varchar(255)"`
	Operations []Operation `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("не указано название компании")
	}
	return nil
}
