package operationscatalog

import (
	"company-settings-backend/models"
)

type seedRule struct {
	action  models.ActionType
	enabled bool
}

// seedTable действия, создаваемые для канала при первичном заполнении, в порядке создания.
// Каждый тип действия встречается в канале не более одного раза
var seedTable = map[models.OperationType][]seedRule{
	models.OperationNotificationEmail: {
		{models.ActionUserCreated, true},
		{models.ActionUserUpdated, true},
		{models.ActionUserDeleted, true},
		{models.ActionPaymentReceived, true},
		{models.ActionPaymentRefunded, true},
		{models.ActionLoginFailed, true},
		{models.ActionDocumentShared, true},
		{models.ActionCustomEvent, false},
	},
	models.OperationNotificationWhatsapp: {
		{models.ActionUserCreated, false},
		{models.ActionUserUpdated, false},
		{models.ActionUserDeleted, false},
		{models.ActionLoginFailed, false},
		{models.ActionDocumentShared, false},
		{models.ActionCustomEvent, false},
	},
	models.OperationNotificationSms: {
		{models.ActionUserCreated, false},
		{models.ActionUserUpdated, false},
		{models.ActionUserDeleted, false},
		{models.ActionPaymentReceived, true},
		{models.ActionPaymentRefunded, true},
		{models.ActionLoginFailed, false},
		{models.ActionCustomEvent, false},
	},
	models.OperationNotificationSlack: {
		{models.ActionUserCreated, false},
		{models.ActionUserUpdated, false},
		{models.ActionUserDeleted, false},
		{models.ActionLoginFailed, false},
		{models.ActionCustomEvent, false},
	},
	models.OperationWebhookTrigger: {
		{models.ActionUserCreated, false},
		{models.ActionUserUpdated, false},
		{models.ActionUserDeleted, false},
		{models.ActionCustomEvent, false},
	},
	models.OperationLogActivity: {
		{models.ActionUserCreated, true},
		{models.ActionUserUpdated, true},
		{models.ActionUserDeleted, true},
		{models.ActionPaymentReceived, true},
		{models.ActionPaymentRefunded, true},
		{models.ActionLoginSuccess, true},
		{models.ActionLoginFailed, true},
		{models.ActionCustomEvent, false},
	},
	models.OperationAnalyticsTrack: {
		{models.ActionUserCreated, false},
		{models.ActionUserUpdated, false},
		{models.ActionUserDeleted, false},
		{models.ActionCustomEvent, false},
	},
	models.OperationAutomationWorkflow: {
		{models.ActionUserCreated, false},
		{models.ActionUserUpdated, false},
		{models.ActionUserDeleted, false},
		{models.ActionCustomEvent, false},
	},
}

// SeedAction черновик действия для первичного заполнения
type SeedAction struct {
	ActionDefault
	Enabled bool
}

// SeedOperation черновик канала вместе с его действиями
type SeedOperation struct {
	OperationDefault
	Config  map[string]interface{}
	Actions []SeedAction
}

// DefaultEnabled ячейка таблицы operationType × actionType. attached=false - действие не создаётся
func DefaultEnabled(operationType models.OperationType, actionType models.ActionType) (enabled, attached bool) {
	for _, rule := range seedTable[operationType] {
		if rule.action == actionType {
			return rule.enabled, true
		}
	}
	return false, false
}

func DefaultActionsFor(operationType models.OperationType) []SeedAction {
	rules := seedTable[operationType]
	result := make([]SeedAction, 0, len(rules))
	for _, rule := range rules {
		def, ok := ActionDefaults(rule.action)
		if !ok {
			continue
		}
		result = append(result, SeedAction{ActionDefault: def, Enabled: rule.enabled})
	}
	return result
}

// DefaultOperations полный набор каналов для новой компании в порядке models.OperationTypes
func DefaultOperations() []SeedOperation {
	result := make([]SeedOperation, 0, len(models.OperationTypes))
	for _, operationType := range models.OperationTypes {
		def, ok := OperationDefaults(operationType)
		if !ok {
			continue
		}
		config, _ := ChannelConfig(operationType)
		result = append(result, SeedOperation{
			OperationDefault: def,
			Config:           config,
			Actions:          DefaultActionsFor(operationType),
		})
	}
	return result
}
