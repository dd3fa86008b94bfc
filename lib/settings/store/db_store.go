package settingsstore

import (
	apperrors "company-settings-backend/lib/utils/app-errors"
	dbmodels "company-settings-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewInstance(DB *gorm.DB) Provider {
	return &dbImpl{
		db: DB,
	}
}

type dbImpl struct {
	db *gorm.DB
}

func (i dbImpl) Load(companyID uint) (map[string]interface{}, bool, error) {
	rec := dbmodels.CompanySettings{}
	err := i.db.
		Where("company_id = ?", companyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStorageError("чтение настроек компании", err)
	}
	return map[string]interface{}(rec.Document), true, nil
}

func (i dbImpl) Save(companyID uint, doc map[string]interface{}) error {
	rec := dbmodels.CompanySettings{
		CompanyID: companyID,
		Document:  dbmodels.JSONMap(doc),
	}
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return apperrors.NewStorageError("сохранение настроек компании", err)
	}
	return nil
}
