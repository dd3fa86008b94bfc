package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		// BodyLimit общий лимит тела запроса, UploadLimit для загрузки файлов настроек
		BodyLimit   int64  `default:"1048576" env:"APP_BODY_LIMIT"`
		UploadLimit int64  `default:"10485760" env:"APP_UPLOAD_LIMIT"`
		ErrNotify   string `default:"" env:"APP_ERR_NOTIFY_URL"`
	}
	Database struct {
		Driver         string `default:"postgres" env:"DB_DRIVER"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"company-settings" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		SqlitePath     string `default:"./data/company-settings.db" env:"DB_SQLITE_PATH"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Settings struct {
		// Storage file | db
		Storage string `default:"file" env:"SETTINGS_STORAGE"`
		DataDir string `default:"./data/settings" env:"SETTINGS_DATA_DIR"`
	}
	Schema struct {
		// CompanySchemaPath yaml/json файл схемы настроек компании, пусто - встроенная схема
		CompanySchemaPath string `default:"" env:"COMPANY_SCHEMA_PATH"`
	}
	Tenant struct {
		DefaultCompanyID   uint   `default:"1" env:"DEFAULT_COMPANY_ID"`
		DefaultCompanyName string `default:"Acme Corporation" env:"DEFAULT_COMPANY_NAME"`
	}
	Log struct {
		Level string `default:"info" env:"LOG_LEVEL"`
		// File при указании лог пишется ещё и в файл с ротацией
		File       string `default:"" env:"LOG_FILE"`
		MaxSizeMB  int    `default:"100" env:"LOG_MAX_SIZE_MB"`
		MaxBackups int    `default:"5" env:"LOG_MAX_BACKUPS"`
		MaxAgeDays int    `default:"30" env:"LOG_MAX_AGE_DAYS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
