package operationscatalog

import (
	"company-settings-backend/models"
)

type OperationDefault struct {
	Type        models.OperationType
	Name        string
	Description string
	Enabled     bool
}

type ActionDefault struct {
	Type        models.ActionType
	Name        string
	Description string
	Config      map[string]interface{}
}

var defaultOperationConfigs = map[models.OperationType]OperationDefault{
	models.OperationNotificationEmail: {
		Type:        models.OperationNotificationEmail,
		Name:        "Email Notifications",
		Description: "Send notifications via email",
		Enabled:     true,
	},
	models.OperationNotificationWhatsapp: {
		Type:        models.OperationNotificationWhatsapp,
		Name:        "WhatsApp Notifications",
		Description: "Send notifications via WhatsApp",
	},
	models.OperationNotificationSms: {
		Type:        models.OperationNotificationSms,
		Name:        "SMS Notifications",
		Description: "Send notifications via SMS",
	},
	models.OperationNotificationSlack: {
		Type:        models.OperationNotificationSlack,
		Name:        "Slack Notifications",
		Description: "Send notifications to Slack channels",
	},
	models.OperationWebhookTrigger: {
		Type:        models.OperationWebhookTrigger,
		Name:        "Webhook Triggers",
		Description: "Send data to external webhooks",
	},
	models.OperationLogActivity: {
		Type:        models.OperationLogActivity,
		Name:        "Activity Logging",
		Description: "Log activities in the system",
		Enabled:     true,
	},
	models.OperationAnalyticsTrack: {
		Type:        models.OperationAnalyticsTrack,
		Name:        "Analytics Tracking",
		Description: "Track events for analytics",
		Enabled:     true,
	},
	models.OperationAutomationWorkflow: {
		Type:        models.OperationAutomationWorkflow,
		Name:        "Workflow Automation",
		Description: "Trigger automated workflows",
	},
}

var defaultActionConfigs = map[models.ActionType]ActionDefault{
	models.ActionUserCreated: {
		Type:        models.ActionUserCreated,
		Name:        "User Created",
		Description: "When a new user is created in the system",
		Config: map[string]interface{}{
			"includeUserDetails": true,
			"notifyAdmin":        true,
			"welcomeNewUser":     true,
			"template":           "user-created",
			"subject":            "New User Created",
		},
	},
	models.ActionUserUpdated: {
		Type:        models.ActionUserUpdated,
		Name:        "User Updated",
		Description: "When a user profile is updated",
		Config: map[string]interface{}{
			"includeUserDetails": true,
			"notifyAdmin":        true,
			"highlightChanges":   true,
			"template":           "user-updated",
			"subject":            "User Profile Updated",
		},
	},
	models.ActionUserDeleted: {
		Type:        models.ActionUserDeleted,
		Name:        "User Deleted",
		Description: "When a user is deleted from the system",
		Config: map[string]interface{}{
			"includeUserDetails": true,
			"notifyAdmin":        true,
			"requestFeedback":    true,
			"template":           "user-deleted",
			"subject":            "User Account Deleted",
		},
	},
	models.ActionPaymentReceived: {
		Type:        models.ActionPaymentReceived,
		Name:        "Payment Received",
		Description: "When a payment is successfully processed",
		Config: map[string]interface{}{
			"includePaymentDetails": true,
			"sendReceipt":           true,
			"template":              "payment-received",
			"subject":               "Payment Received",
		},
	},
	models.ActionPaymentRefunded: {
		Type:        models.ActionPaymentRefunded,
		Name:        "Payment Refunded",
		Description: "When a payment is refunded",
		Config: map[string]interface{}{
			"includeRefundDetails":   true,
			"sendRefundConfirmation": true,
			"template":               "payment-refunded",
			"subject":                "Payment Refunded",
		},
	},
	models.ActionDocumentCreated: {
		Type:        models.ActionDocumentCreated,
		Name:        "Document Created",
		Description: "When a new document is created",
		Config: map[string]interface{}{
			"includeDocumentDetails": true,
			"template":               "document-created",
			"subject":                "New Document Created",
		},
	},
	models.ActionDocumentShared: {
		Type:        models.ActionDocumentShared,
		Name:        "Document Shared",
		Description: "When a document is shared with others",
		Config: map[string]interface{}{
			"includeDocumentDetails": true,
			"includeShareDetails":    true,
			"template":               "document-shared",
			"subject":                "Document Shared With You",
		},
	},
	models.ActionLoginSuccess: {
		Type:        models.ActionLoginSuccess,
		Name:        "Successful Login",
		Description: "When a user successfully logs in",
		Config: map[string]interface{}{
			"includeDeviceInfo":   true,
			"includeLocationInfo": true,
			"template":            "login-success",
			"subject":             "New Login to Your Account",
		},
	},
	models.ActionLoginFailed: {
		Type:        models.ActionLoginFailed,
		Name:        "Failed Login Attempt",
		Description: "When a login attempt fails",
		Config: map[string]interface{}{
			"includeAttemptDetails": true,
			"includeLocationInfo":   true,
			"template":              "login-failed",
			"subject":               "Failed Login Attempt",
		},
	},
	models.ActionDataExport: {
		Type:        models.ActionDataExport,
		Name:        "Data Exported",
		Description: "When data is exported from the system",
		Config: map[string]interface{}{
			"includeExportDetails": true,
			"template":             "data-export",
			"subject":              "Data Export Complete",
		},
	},
	models.ActionDataImport: {
		Type:        models.ActionDataImport,
		Name:        "Data Imported",
		Description: "When data is imported into the system",
		Config: map[string]interface{}{
			"includeImportDetails": true,
			"template":             "data-import",
			"subject":              "Data Import Complete",
		},
	},
	models.ActionCustomEvent: {
		Type:        models.ActionCustomEvent,
		Name:        "Custom Event",
		Description: "A custom event defined by the user",
		Config: map[string]interface{}{
			"customMessage": "",
			"template":      "custom",
			"subject":       "Custom Notification",
		},
	},
	models.ActionApplicationCreated: {
		Type:        models.ActionApplicationCreated,
		Name:        "Application Created",
		Description: "When a new application is created in the system",
		Config: map[string]interface{}{
			"includeApplicationDetails": true,
			"notifyAdmin":               true,
			"notifyApplicant":           true,
			"template":                  "application-created",
			"subject":                   "New Application Created",
		},
	},
	models.ActionApplicationSubmitted: {
		Type:        models.ActionApplicationSubmitted,
		Name:        "Application Submitted",
		Description: "When an application is submitted for review",
		Config: map[string]interface{}{
			"includeApplicationDetails": true,
			"notifyAdmin":               true,
			"notifyApplicant":           true,
			"sendConfirmation":          true,
			"template":                  "application-submitted",
			"subject":                   "Application Submitted Successfully",
		},
	},
	models.ActionCommissionBillCreated: {
		Type:        models.ActionCommissionBillCreated,
		Name:        "Commission Bill Created",
		Description: "When a new commission bill is generated",
		Config: map[string]interface{}{
			"includeBillDetails":         true,
			"includeCommissionBreakdown": true,
			"notifyAgent":                true,
			"notifyFinance":              true,
			"template":                   "commission-bill-created",
			"subject":                    "New Commission Bill Generated",
		},
	},
}

// шаблоны настроек каналов
var channelConfigTemplates = map[models.OperationType]map[string]interface{}{
	models.OperationNotificationEmail: {
		"recipients":    []interface{}{},
		"ccRecipients":  []interface{}{},
		"bccRecipients": []interface{}{},
		"fromName":      "System Notifications",
		"replyTo":       "",
		"attachments":   false,
	},
	models.OperationNotificationWhatsapp: {
		"phoneNumbers": []interface{}{},
		"includeMedia": false,
		"priority":     "normal",
	},
	models.OperationNotificationSms: {
		"phoneNumbers": []interface{}{},
		"senderId":     "System",
		"priority":     "normal",
	},
	models.OperationNotificationSlack: {
		"channel":            "general",
		"mentionUsers":       []interface{}{},
		"useThreads":         true,
		"includeAttachments": true,
	},
	models.OperationWebhookTrigger: {
		"url":                "",
		"method":             "POST",
		"headers":            map[string]interface{}{},
		"includeFullPayload": true,
		"retryOnFailure":     true,
	},
	models.OperationLogActivity: {
		"level":          "info",
		"includeDetails": true,
		"retention":      "90days",
		"alertOnError":   false,
	},
	models.OperationAnalyticsTrack: {
		"eventPrefix":      "",
		"includeUserData":  true,
		"anonymizeIp":      false,
		"customDimensions": map[string]interface{}{},
	},
	models.OperationAutomationWorkflow: {
		"workflowId":        "",
		"inputData":         map[string]interface{}{},
		"runAsynchronously": true,
		"priority":          "normal",
	},
}

func OperationDefaults(operationType models.OperationType) (OperationDefault, bool) {
	rec, ok := defaultOperationConfigs[operationType]
	return rec, ok
}

// ActionDefaults возвращает копию, конфиг можно менять
func ActionDefaults(actionType models.ActionType) (ActionDefault, bool) {
	rec, ok := defaultActionConfigs[actionType]
	if !ok {
		return ActionDefault{}, false
	}
	rec.Config = CloneConfig(rec.Config)
	return rec, true
}

func ChannelConfig(operationType models.OperationType) (map[string]interface{}, bool) {
	config, ok := channelConfigTemplates[operationType]
	if !ok {
		return nil, false
	}
	return CloneConfig(config), true
}

func IsKnownOperation(operationType models.OperationType) bool {
	_, ok := defaultOperationConfigs[operationType]
	return ok
}

func IsKnownAction(actionType models.ActionType) bool {
	_, ok := defaultActionConfigs[actionType]
	return ok
}

// CloneConfig глубокая копия вложенных map/slice
func CloneConfig(config map[string]interface{}) map[string]interface{} {
	if config == nil {
		return nil
	}
	result := make(map[string]interface{}, len(config))
	for k, v := range config {
		result[k] = cloneValue(v)
	}
	return result
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return CloneConfig(v)
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = cloneValue(item)
		}
		return result
	case []string:
		return append([]string{}, v...)
	}
	return value
}
