package operationshandler

import (
	"company-settings-backend/db"
	companiesstore "company-settings-backend/lib/companies/store"
	"company-settings-backend/lib/metrics"
	operationscatalog "company-settings-backend/lib/operations/catalog"
	operationsstore "company-settings-backend/lib/operations/store"
	apperrors "company-settings-backend/lib/utils/app-errors"
	initchecker "company-settings-backend/lib/utils/init-checker"
	"company-settings-backend/lib/utils/lock"
	operationsapimodels "company-settings-backend/models/api/operations"
	dbmodels "company-settings-backend/models/db"
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	List(ctx context.Context, companyID uint) ([]operationsapimodels.OperationView, error)
	ToggleOperation(companyID, id uint, enabled bool) (operationsapimodels.OperationView, error)
	UpdateOperationConfig(companyID, id uint, config map[string]interface{}) (operationsapimodels.OperationView, error)
	UpdateOperation(companyID, id uint, data operationsapimodels.UpdateRequest) (operationsapimodels.OperationView, error)
	ToggleAction(companyID, id uint, enabled bool) (operationsapimodels.ActionView, error)
	UpdateActionConfig(companyID, id uint, config map[string]interface{}) (operationsapimodels.ActionView, error)
	AddAction(companyID, operationID uint, draft operationsapimodels.ActionDraft) (operationsapimodels.ActionView, error)
	RemoveAction(companyID, id uint) error
}

var Instance Provider

const seedLockWait = 10 * time.Second

func NewHandler() {
	Instance = NewHandlerWithDB(db.DB)
}

func NewHandlerWithDB(DB *gorm.DB) Provider {
	instance := impl{
		db:    DB,
		store: operationsstore.NewInstance(DB),
	}
	initchecker.CheckInit(
		"db", instance.db,
		"store", instance.store,
	)
	return instance
}

type impl struct {
	db    *gorm.DB
	store operationsstore.Provider
}

// List операции компании, при первом обращении создаются операции по умолчанию
func (i impl) List(ctx context.Context, companyID uint) ([]operationsapimodels.OperationView, error) {
	logger := log.WithField("company_id", companyID)
	list, err := i.store.List(companyID)
	if err != nil {
		return nil, i.storageError(logger, metrics.EntityOperation, "ошибка получения списка операций", err)
	}
	if len(list) == 0 {
		err = lock.WithDelay(ctx, fmt.Sprintf("operations-seed-%d", companyID), seedLockWait, func() error {
			return i.seed(companyID)
		})
		if err != nil {
			logger.WithError(err).Warn("ошибка заполнения операций по умолчанию")
		}
		list, err = i.store.List(companyID)
		if err != nil {
			return nil, i.storageError(logger, metrics.EntityOperation, "ошибка получения списка операций", err)
		}
		if len(list) == 0 {
			return nil, i.storageError(logger, metrics.EntityOperation, "операции по умолчанию не созданы", errors.New("пустой список операций после заполнения"))
		}
	}
	result := make([]operationsapimodels.OperationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModelView())
	}
	return result, nil
}

func (i impl) seed(companyID uint) error {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := operationsstore.NewInstance(tx)
		count, err := store.Count(companyID)
		if err != nil {
			return err
		}
		if count != 0 {
			return nil
		}
		// операции ссылаются на компанию, для тенанта из заголовка запись создаётся вместе с ними
		if _, err = companiesstore.NewInstance(tx).FindOrCreate(companyID, fmt.Sprintf("Компания %d", companyID)); err != nil {
			return err
		}
		for _, seed := range operationscatalog.DefaultOperations() {
			rec := dbmodels.Operation{
				CompanyID:   companyID,
				Type:        seed.Type,
				Name:        seed.Name,
				Description: seed.Description,
				Enabled:     seed.Enabled,
				Config:      dbmodels.JSONMap(seed.Config),
				Actions:     make([]dbmodels.Action, 0, len(seed.Actions)),
			}
			for _, action := range seed.Actions {
				rec.Actions = append(rec.Actions, dbmodels.Action{
					Type:        action.Type,
					Name:        action.Name,
					Description: action.Description,
					Enabled:     action.Enabled,
					Config:      dbmodels.JSONMap(action.Config),
				})
			}
			if err = store.Create(&rec); err != nil {
				return errors.Wrapf(err, "ошибка создания операции %s", seed.Type)
			}
		}
		metrics.OperationsSeeded.Inc()
		log.WithField("company_id", companyID).Info("созданы операции по умолчанию")
		return nil
	})
	return err
}

func (i impl) ToggleOperation(companyID, id uint, enabled bool) (operationsapimodels.OperationView, error) {
	return i.updateOperation(companyID, id, "toggle", map[string]interface{}{"enabled": enabled})
}

func (i impl) UpdateOperationConfig(companyID, id uint, config map[string]interface{}) (operationsapimodels.OperationView, error) {
	rec, err := i.getOperation(companyID, id)
	if err != nil {
		return operationsapimodels.OperationView{}, err
	}
	if err = operationscatalog.ValidateOperationConfig(rec.Type, config); err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntityOperation).Inc()
		return operationsapimodels.OperationView{}, err
	}
	return i.updateOperation(companyID, id, "config", map[string]interface{}{"config": dbmodels.JSONMap(config)})
}

// UpdateOperation обновление реквизитов операции без указания updateType
func (i impl) UpdateOperation(companyID, id uint, data operationsapimodels.UpdateRequest) (operationsapimodels.OperationView, error) {
	rec, err := i.getOperation(companyID, id)
	if err != nil {
		return operationsapimodels.OperationView{}, err
	}
	updMap := map[string]interface{}{}
	if data.Name != nil {
		updMap["name"] = *data.Name
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.Enabled != nil {
		updMap["enabled"] = *data.Enabled
	}
	if data.Config != nil {
		if err = operationscatalog.ValidateOperationConfig(rec.Type, data.Config); err != nil {
			metrics.ValidationFailures.WithLabelValues(metrics.EntityOperation).Inc()
			return operationsapimodels.OperationView{}, err
		}
		updMap["config"] = dbmodels.JSONMap(data.Config)
	}
	if len(updMap) == 0 {
		return rec.ToModelView(), nil
	}
	return i.updateOperation(companyID, id, "details", updMap)
}

func (i impl) updateOperation(companyID, id uint, kind string, updMap map[string]interface{}) (operationsapimodels.OperationView, error) {
	logger := log.WithFields(log.Fields{
		"company_id":   companyID,
		"operation_id": id,
	})
	found, err := i.store.Update(companyID, id, updMap)
	if err != nil {
		return operationsapimodels.OperationView{}, i.storageError(logger, metrics.EntityOperation, "ошибка обновления операции", err)
	}
	if !found {
		return operationsapimodels.OperationView{}, apperrors.NewNotFoundError("операция", id)
	}
	rec, err := i.getOperation(companyID, id)
	if err != nil {
		return operationsapimodels.OperationView{}, err
	}
	metrics.Mutations.WithLabelValues(metrics.EntityOperation, kind).Inc()
	logger.WithField("kind", kind).Info("обновлена операция")
	return rec.ToModelView(), nil
}

func (i impl) ToggleAction(companyID, id uint, enabled bool) (operationsapimodels.ActionView, error) {
	if _, err := i.getAction(companyID, id); err != nil {
		return operationsapimodels.ActionView{}, err
	}
	return i.updateAction(companyID, id, "toggle", map[string]interface{}{"enabled": enabled})
}

func (i impl) UpdateActionConfig(companyID, id uint, config map[string]interface{}) (operationsapimodels.ActionView, error) {
	action, err := i.getAction(companyID, id)
	if err != nil {
		return operationsapimodels.ActionView{}, err
	}
	operation, err := i.getOperation(companyID, action.OperationID)
	if err != nil {
		return operationsapimodels.ActionView{}, err
	}
	if err = operationscatalog.ValidateActionConfig(operation.Type, action.Type, config); err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntityAction).Inc()
		return operationsapimodels.ActionView{}, err
	}
	return i.updateAction(companyID, id, "config", map[string]interface{}{"config": dbmodels.JSONMap(config)})
}

func (i impl) updateAction(companyID, id uint, kind string, updMap map[string]interface{}) (operationsapimodels.ActionView, error) {
	logger := log.WithFields(log.Fields{
		"company_id": companyID,
		"action_id":  id,
	})
	if err := i.store.UpdateAction(id, updMap); err != nil {
		return operationsapimodels.ActionView{}, i.storageError(logger, metrics.EntityAction, "ошибка обновления действия", err)
	}
	rec, err := i.getAction(companyID, id)
	if err != nil {
		return operationsapimodels.ActionView{}, err
	}
	metrics.Mutations.WithLabelValues(metrics.EntityAction, kind).Inc()
	logger.WithField("kind", kind).Info("обновлено действие")
	return rec.ToModelView(), nil
}

// AddAction добавляет действие из каталога, повторное добавление типа в ту же операцию запрещено
func (i impl) AddAction(companyID, operationID uint, draft operationsapimodels.ActionDraft) (operationsapimodels.ActionView, error) {
	logger := log.WithFields(log.Fields{
		"company_id":   companyID,
		"operation_id": operationID,
		"action_type":  draft.Type,
	})
	def, ok := operationscatalog.ActionDefaults(draft.Type)
	if !ok {
		metrics.ValidationFailures.WithLabelValues(metrics.EntityAction).Inc()
		return operationsapimodels.ActionView{}, apperrors.NewValidationError(fmt.Sprintf("неизвестный тип действия %s", draft.Type),
			apperrors.FieldError{FieldID: "action.type", Message: "Unknown action type"})
	}
	operation, err := i.getOperation(companyID, operationID)
	if err != nil {
		return operationsapimodels.ActionView{}, err
	}
	config := def.Config
	if draft.Config != nil {
		if err = operationscatalog.ValidateActionConfig(operation.Type, draft.Type, draft.Config); err != nil {
			metrics.ValidationFailures.WithLabelValues(metrics.EntityAction).Inc()
			return operationsapimodels.ActionView{}, err
		}
		config = draft.Config
	}
	existing, err := i.store.FindAction(operationID, string(draft.Type))
	if err != nil {
		return operationsapimodels.ActionView{}, i.storageError(logger, metrics.EntityAction, "ошибка поиска действия", err)
	}
	if existing != nil {
		return operationsapimodels.ActionView{}, apperrors.NewConflictError(
			fmt.Sprintf("действие %s уже добавлено в операцию %d", draft.Type, operationID))
	}
	enabled := true
	if draft.Enabled != nil {
		enabled = *draft.Enabled
	}
	rec := dbmodels.Action{
		OperationID: operationID,
		Type:        draft.Type,
		Name:        def.Name,
		Description: def.Description,
		Enabled:     enabled,
		Config:      dbmodels.JSONMap(config),
	}
	if err = i.store.CreateAction(&rec); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return operationsapimodels.ActionView{}, apperrors.NewConflictError(
				fmt.Sprintf("действие %s уже добавлено в операцию %d", draft.Type, operationID))
		}
		return operationsapimodels.ActionView{}, i.storageError(logger, metrics.EntityAction, "ошибка добавления действия", err)
	}
	metrics.Mutations.WithLabelValues(metrics.EntityAction, "create").Inc()
	logger.WithField("action_id", rec.ID).Info("добавлено действие")
	return rec.ToModelView(), nil
}

func (i impl) RemoveAction(companyID, id uint) error {
	logger := log.WithFields(log.Fields{
		"company_id": companyID,
		"action_id":  id,
	})
	found, err := i.store.DeleteAction(companyID, id)
	if err != nil {
		return i.storageError(logger, metrics.EntityAction, "ошибка удаления действия", err)
	}
	if !found {
		return apperrors.NewNotFoundError("действие", id)
	}
	metrics.Mutations.WithLabelValues(metrics.EntityAction, "delete").Inc()
	logger.Info("удалено действие")
	return nil
}

func (i impl) getOperation(companyID, id uint) (*dbmodels.Operation, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, i.storageError(log.WithField("company_id", companyID).WithField("operation_id", id),
			metrics.EntityOperation, "ошибка получения операции", err)
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("операция", id)
	}
	return rec, nil
}

func (i impl) getAction(companyID, id uint) (*dbmodels.Action, error) {
	rec, err := i.store.GetAction(companyID, id)
	if err != nil {
		return nil, i.storageError(log.WithField("company_id", companyID).WithField("action_id", id),
			metrics.EntityAction, "ошибка получения действия", err)
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("действие", id)
	}
	return rec, nil
}

func (i impl) storageError(logger *log.Entry, entity, msg string, err error) error {
	metrics.StorageErrors.WithLabelValues(entity).Inc()
	logger.WithError(err).Error(msg)
	return apperrors.NewStorageError(msg, err)
}
