package db

import (
	"fmt"
	"os"
	"path/filepath"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type ConnectParams struct {
	Driver     string
	Host       string
	Port       string
	Database   string
	User       string
	Password   string
	SqlitePath string
	DebugMode  bool
	Migrate    bool
}

func Connect(params ConnectParams) (err error) {
	if DB == nil {
		var dialector gorm.Dialector
		switch params.Driver {
		case DriverSqlite:
			if err = os.MkdirAll(filepath.Dir(params.SqlitePath), 0o755); err != nil {
				return errors.Wrap(err, "Ошибка создания каталога БД")
			}
			dialector = sqlite.Open(params.SqlitePath)
		case DriverPostgres, "":
			dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
				params.Host, params.Port, params.User, params.Database, params.Password)
			dialector = postgres.Open(dbConnString)
		default:
			return errors.Errorf("неизвестный драйвер БД %q", params.Driver)
		}
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger:         gorm_logrus.New(),
			TranslateError: true,
		})
		if err != nil {
			return errors.Wrap(err, "Ошибка подключения к БД")
		}
		if params.Driver == DriverSqlite {
			if err = singleConnection(db); err != nil {
				return err
			}
		}
		if params.DebugMode {
			db.Logger = logger.Default.LogMode(logger.Info)
			DB = db.Debug()
		} else {
			DB = db
		}
		if params.Migrate {
			if err = AutoMigrateDB(DB); err != nil {
				return err
			}
		}
		log.WithField("driver", params.Driver).Info("Сервис успешно подключен к БД")
	}
	return nil
}

// OpenSqlite отдельное подключение к файлу sqlite с миграцией, без глобального DB
func OpenSqlite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if err = singleConnection(db); err != nil {
		return nil, err
	}
	if err = AutoMigrateDB(db); err != nil {
		return nil, err
	}
	return db, nil
}

// singleConnection sqlite допускает одного писателя, запросы выстраиваются в очередь на одном соединении
func singleConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "Ошибка получения соединения с БД")
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
