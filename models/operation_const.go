package models

import "strings"

// OperationType канал уведомлений/автоматизации
type OperationType string

const (
	OperationNotificationEmail    OperationType = "notification.email"
	OperationNotificationWhatsapp OperationType = "notification.whatsapp"
	OperationNotificationSms      OperationType = "notification.sms"
	OperationNotificationSlack    OperationType = "notification.slack"
	OperationWebhookTrigger       OperationType = "webhook.trigger"
	OperationLogActivity          OperationType = "log.activity"
	OperationAnalyticsTrack       OperationType = "analytics.track"
	OperationAutomationWorkflow   OperationType = "automation.workflow"
)

// OperationTypes порядок каналов при первичном заполнении
var OperationTypes = []OperationType{
	OperationNotificationEmail,
	OperationNotificationWhatsapp,
	OperationNotificationSms,
	OperationNotificationSlack,
	OperationWebhookTrigger,
	OperationLogActivity,
	OperationAnalyticsTrack,
	OperationAutomationWorkflow,
}

func (t OperationType) IsNotification() bool {
	return strings.HasPrefix(string(t), "notification.")
}

// ActionType бизнес-событие, на которое реагирует канал
type ActionType string

const (
	ActionUserCreated           ActionType = "user.created"
	ActionUserUpdated           ActionType = "user.updated"
	ActionUserDeleted           ActionType = "user.deleted"
	ActionPaymentReceived       ActionType = "payment.received"
	ActionPaymentRefunded       ActionType = "payment.refunded"
	ActionDocumentCreated       ActionType = "document.created"
	ActionDocumentShared        ActionType = "document.shared"
	ActionLoginSuccess          ActionType = "login.success"
	ActionLoginFailed           ActionType = "login.failed"
	ActionDataExport            ActionType = "data.export"
	ActionDataImport            ActionType = "data.import"
	ActionCustomEvent           ActionType = "custom.event"
	ActionApplicationCreated    ActionType = "application.created"
	ActionApplicationSubmitted  ActionType = "application.submitted"
	ActionCommissionBillCreated ActionType = "commission.bill.created"
)

var ActionTypes = []ActionType{
	ActionUserCreated,
	ActionUserUpdated,
	ActionUserDeleted,
	ActionPaymentReceived,
	ActionPaymentRefunded,
	ActionDocumentCreated,
	ActionDocumentShared,
	ActionLoginSuccess,
	ActionLoginFailed,
	ActionDataExport,
	ActionDataImport,
	ActionCustomEvent,
	ActionApplicationCreated,
	ActionApplicationSubmitted,
	ActionCommissionBillCreated,
}

// UpdateType вариант PATCH запроса для операций и действий
type UpdateType string

const (
	UpdateTypeToggle UpdateType = "toggle"
	UpdateTypeConfig UpdateType = "config"
)

// SettingsStorage тип хранилища документа настроек компании
type SettingsStorage string

const (
	SettingsStorageFile SettingsStorage = "file"
	SettingsStorageDB   SettingsStorage = "db"
)
