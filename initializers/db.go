package initializers

import (
	"company-settings-backend/config"
	"company-settings-backend/db"
)

func InitDBConnection() {
	err := db.Connect(db.ConnectParams{
		Driver:     config.Conf.Database.Driver,
		Host:       config.Conf.Database.Host,
		Port:       config.Conf.Database.Port,
		Database:   config.Conf.Database.Name,
		User:       config.Conf.Database.User,
		Password:   config.Conf.Database.Password,
		SqlitePath: config.Conf.Database.SqlitePath,
		DebugMode:  *config.Conf.Database.DebugMode,
		Migrate:    *config.Conf.Database.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload(config.Conf.Tenant.DefaultCompanyID, config.Conf.Tenant.DefaultCompanyName)
}
