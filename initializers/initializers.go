package initializers

import (
	"company-settings-backend/config"
	"company-settings-backend/db"
	"company-settings-backend/fiberlog"
	xlsexport "company-settings-backend/lib/export/xls"
	healthworker "company-settings-backend/lib/health/worker"
	operationshandler "company-settings-backend/lib/operations"
	settingshandler "company-settings-backend/lib/settings"
	settingsschema "company-settings-backend/lib/settings-schema"
	settingsstore "company-settings-backend/lib/settings/store"
	usershandler "company-settings-backend/lib/users"
	"company-settings-backend/models"
	"context"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger()
	InitDBConnection()
	operationshandler.NewHandler()
	settingshandler.NewHandler(loadCompanySchema(), newSettingsStore())
	usershandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача проверки доступности БД
	healthworker.StartWorker(ctx, db.PingDB)
}

// loadCompanySchema встроенная схема или файл из COMPANY_SCHEMA_PATH
func loadCompanySchema() settingsschema.SettingsSchema {
	path := config.Conf.Schema.CompanySchemaPath
	if path == "" {
		return settingsschema.CompanySettingsSchema
	}
	schema, err := settingsschema.LoadFile(path)
	if err != nil {
		panic(err.Error())
	}
	log.WithFields(log.Fields{
		"path":      path,
		"schema_id": schema.ID,
	}).Info("загружена схема настроек компании")
	return schema
}

func newSettingsStore() settingsstore.Provider {
	switch models.SettingsStorage(config.Conf.Settings.Storage) {
	case models.SettingsStorageDB:
		return settingsstore.NewInstance(db.DB)
	case models.SettingsStorageFile:
		return settingsstore.NewFileInstance(config.Conf.Settings.DataDir)
	default:
		panic("неизвестный тип хранилища настроек: " + config.Conf.Settings.Storage)
	}
}
