package dbmodels

import (
	"company-settings-backend/models"
	operationsapimodels "company-settings-backend/models/api/operations"
)

// Operation канал компании, уникален по (company_id, type)
type Operation struct {
	BaseModel
	CompanyID   uint                 `gorm:"uniqueIndex:idx_operation_company_type"`
	Type        models.OperationType `gorm:"type:varchar(64);uniqueIndex:idx_operation_company_type"`
	Name        string               `gorm:"type:varchar(255)"`
	Description string               `gorm:"type:varchar(500)"`
	Enabled     bool
	Config      JSONMap  `gorm:"type:jsonb"`
	Actions     []Action `gorm:"foreignKey:OperationID;constraint:OnDelete:CASCADE"`
}

// Action реакция канала на событие, уникальна по (operation_id, type)
type Action struct {
	BaseModel
	OperationID uint              `gorm:"uniqueIndex:idx_action_operation_type"`
	Type        models.ActionType `gorm:"type:varchar(64);uniqueIndex:idx_action_operation_type"`
	Name        string            `gorm:"type:varchar(255)"`
	Description string            `gorm:"type:varchar(500)"`
	Enabled     bool
	Config      JSONMap `gorm:"type:jsonb"`
}

func (r Operation) ToModelView() operationsapimodels.OperationView {
	result := operationsapimodels.OperationView{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Type:        r.Type,
		Name:        r.Name,
		Description: r.Description,
		Enabled:     r.Enabled,
		Config:      map[string]interface{}(r.Config),
		Actions:     make([]operationsapimodels.ActionView, 0, len(r.Actions)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if result.Config == nil {
		result.Config = map[string]interface{}{}
	}
	for _, action := range r.Actions {
		result.Actions = append(result.Actions, action.ToModelView())
	}
	return result
}

func (r Action) ToModelView() operationsapimodels.ActionView {
	result := operationsapimodels.ActionView{
		ID:          r.ID,
		OperationID: r.OperationID,
		Type:        r.Type,
		Name:        r.Name,
		Description: r.Description,
		Enabled:     r.Enabled,
		Config:      map[string]interface{}(r.Config),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if result.Config == nil {
		result.Config = map[string]interface{}{}
	}
	return result
}
