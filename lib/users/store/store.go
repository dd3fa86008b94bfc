package usersstore

import (
	dbmodels "company-settings-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	GetByUserID(userID uint) (rec *dbmodels.UserSettings, err error)
	Upsert(userID uint, preferences map[string]interface{}) (rec *dbmodels.UserSettings, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByUserID(userID uint) (rec *dbmodels.UserSettings, err error) {
	rec = &dbmodels.UserSettings{}
	err = i.db.
		Where("user_id = ?", userID).
		First(rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Upsert(userID uint, preferences map[string]interface{}) (rec *dbmodels.UserSettings, err error) {
	rec = &dbmodels.UserSettings{
		UserID:      userID,
		Preferences: dbmodels.JSONMap(preferences),
	}
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferences", "updated_at"}),
		}).
		Create(rec).
		Error
	if err != nil {
		return nil, err
	}
	// при конфликте id в rec не заполняется, перечитываем запись
	return i.GetByUserID(userID)
}
