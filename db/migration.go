package db

import (
	dbmodels "company-settings-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB(db *gorm.DB) error {
	log.Info("Запуск миграций")
	if err := db.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := db.AutoMigrate(&dbmodels.Operation{}, &dbmodels.Action{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Operation")
	}
	if err := db.AutoMigrate(&dbmodels.CompanySettings{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CompanySettings")
	}
	if err := db.AutoMigrate(&dbmodels.UserSettings{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры UserSettings")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
