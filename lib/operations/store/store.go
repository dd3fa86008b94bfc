package operationsstore

import (
	dbmodels "company-settings-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	List(companyID uint) (list []dbmodels.Operation, err error)
	Count(companyID uint) (count int64, err error)
	Create(rec *dbmodels.Operation) error
	GetByID(companyID, id uint) (rec *dbmodels.Operation, err error)
	Update(companyID, id uint, updMap map[string]interface{}) (found bool, err error)
	GetAction(companyID, id uint) (rec *dbmodels.Action, err error)
	FindAction(operationID uint, actionType string) (rec *dbmodels.Action, err error)
	CreateAction(rec *dbmodels.Action) error
	UpdateAction(id uint, updMap map[string]interface{}) error
	DeleteAction(companyID, id uint) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func orderedActions(db *gorm.DB) *gorm.DB {
	return db.Order("actions.id ASC")
}

func (i impl) List(companyID uint) (list []dbmodels.Operation, err error) {
	list = []dbmodels.Operation{}
	err = i.db.
		Where("company_id = ?", companyID).
		Preload("Actions", orderedActions).
		Order("id ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(companyID uint) (count int64, err error) {
	err = i.db.Model(&dbmodels.Operation{}).
		Where("company_id = ?", companyID).
		Count(&count).
		Error
	return count, err
}

// Create сохраняет операцию вместе с вложенными действиями
func (i impl) Create(rec *dbmodels.Operation) error {
	return i.db.
		Create(rec).
		Error
}

func (i impl) GetByID(companyID, id uint) (*dbmodels.Operation, error) {
	rec := dbmodels.Operation{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Actions", orderedActions).
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

func (i impl) Update(companyID, id uint, updMap map[string]interface{}) (found bool, err error) {
	tx := i.db.
		Model(&dbmodels.Operation{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

// GetAction действие, принадлежащее одной из операций компании
func (i impl) GetAction(companyID, id uint) (*dbmodels.Action, error) {
	rec := dbmodels.Action{}
	err := i.db.
		Select("actions.*").
		Joins("JOIN operations ON operations.id = actions.operation_id").
		Where("actions.id = ?", id).
		Where("operations.company_id = ?", companyID).
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

func (i impl) FindAction(operationID uint, actionType string) (*dbmodels.Action, error) {
	rec := dbmodels.Action{}
	err := i.db.
		Where("operation_id = ?", operationID).
		Where("type = ?", actionType).
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

func (i impl) CreateAction(rec *dbmodels.Action) error {
	return i.db.Omit(clause.Associations).
		Create(rec).
		Error
}

func (i impl) UpdateAction(id uint, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Action{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) DeleteAction(companyID, id uint) (found bool, err error) {
	tx := i.db.
		Where("id = ?", id).
		Where("operation_id IN (?)", i.db.Model(&dbmodels.Operation{}).Select("id").Where("company_id = ?", companyID)).
		Delete(&dbmodels.Action{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}
