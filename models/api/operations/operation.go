package operationsapimodels

import (
	"company-settings-backend/models"
	"time"

	"github.com/pkg/errors"
)

type OperationView struct {
	ID          uint                   `json:"id"`          // идентификатор операции
	CompanyID   uint                   `json:"companyId"`   // компания
	Type        models.OperationType   `json:"type"`        // тип канала
	Name        string                 `json:"name"`        // название
	Description string                 `json:"description"` // описание
	Enabled     bool                   `json:"enabled"`     // канал включен
	Config      map[string]interface{} `json:"config"`      // настройки канала
	Actions     []ActionView           `json:"actions"`     // действия канала
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type ActionView struct {
	ID          uint                   `json:"id"`          // идентификатор действия
	OperationID uint                   `json:"operationId"` // операция
	Type        models.ActionType      `json:"type"`        // тип события
	Name        string                 `json:"name"`        // название
	Description string                 `json:"description"` // описание
	Enabled     bool                   `json:"enabled"`     // действие включено
	Config      map[string]interface{} `json:"config"`      // настройки действия
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// UpdateRequest тело PATCH /operations/:id и PATCH /actions/:id
type UpdateRequest struct {
	UpdateType  models.UpdateType      `json:"updateType"`  // toggle | config, для операции пустой тип - обновление реквизитов
	Enabled     *bool                  `json:"enabled"`     // новое состояние для toggle
	Config      map[string]interface{} `json:"config"`      // новый конфиг для config
	Name        *string                `json:"name"`        // новое название (только операция)
	Description *string                `json:"description"` // новое описание (только операция)
}

var ErrInvalidUpdateType = errors.New("invalid update type")

func (r UpdateRequest) Validate() error {
	switch r.UpdateType {
	case models.UpdateTypeToggle:
		if r.Enabled == nil {
			return errors.New("не указано новое состояние")
		}
	case models.UpdateTypeConfig:
		if r.Config == nil {
			return errors.New("не указан конфиг")
		}
	default:
		return ErrInvalidUpdateType
	}
	return nil
}

// ValidateOperation для операции допускается обновление реквизитов без updateType
func (r UpdateRequest) ValidateOperation() error {
	if r.UpdateType != "" {
		return r.Validate()
	}
	if r.Name == nil && r.Description == nil && r.Enabled == nil && r.Config == nil {
		return errors.New("нет данных для обновления")
	}
	if r.Name != nil && *r.Name == "" {
		return errors.New("название операции не может быть пустым")
	}
	return nil
}

type ActionDraft struct {
	Type    models.ActionType      `json:"type"`    // тип события из каталога
	Enabled *bool                  `json:"enabled"` // начальное состояние, по умолчанию включено
	Config  map[string]interface{} `json:"config"`  // конфиг, по умолчанию из каталога
}

// AddActionRequest тело POST /actions
type AddActionRequest struct {
	OperationID uint        `json:"operationId"` // операция
	Action      ActionDraft `json:"action"`      // новое действие
}

func (r AddActionRequest) Validate() error {
	if r.OperationID == 0 {
		return errors.New("не указана операция")
	}
	if r.Action.Type == "" {
		return errors.New("не указан тип действия")
	}
	return nil
}
