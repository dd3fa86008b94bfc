package db

import (
	companiesstore "company-settings-backend/lib/companies/store"

	log "github.com/sirupsen/logrus"
)

func InitPreload(defaultCompanyID uint, defaultCompanyName string) {
	addDefaultCompany(defaultCompanyID, defaultCompanyName)
}

func addDefaultCompany(id uint, name string) {
	if id == 0 {
		log.Warn("компания по умолчанию не добавлена, отсутствует настройка DEFAULT_COMPANY_ID")
		return
	}
	rec, err := companiesstore.NewInstance(DB).FindOrCreate(id, name)
	if err != nil {
		log.WithError(err).
			WithField("company_id", id).
			Error("ошибка добавления компании по умолчанию")
		return
	}
	log.WithField("company_id", rec.ID).
		WithField("company_name", rec.Name).
		Info("компания по умолчанию добавлена")
}
