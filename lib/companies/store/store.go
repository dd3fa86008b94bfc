package companiesstore

import (
	dbmodels "company-settings-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Company) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.Company, err error)
	FindOrCreate(id uint, name string) (rec *dbmodels.Company, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (id uint, err error) {
	err = rec.Validate()
	if err != nil {
		return 0, err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// FindOrCreate компания с заданным идентификатором, создаётся при отсутствии
func (i impl) FindOrCreate(id uint, name string) (*dbmodels.Company, error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска компании")
	}
	if rec != nil {
		return rec, nil
	}
	newRec := dbmodels.Company{
		BaseModel: dbmodels.BaseModel{ID: id},
		Name:      name,
	}
	if _, err = i.Create(newRec); err != nil {
		return nil, errors.Wrap(err, "ошибка создания компании")
	}
	return &newRec, nil
}
