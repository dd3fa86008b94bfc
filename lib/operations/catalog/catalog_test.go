package operationscatalog

import (
	apperrors "company-settings-backend/lib/utils/app-errors"
	"company-settings-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run(`every type has defaults`, func(t *testing.T) {
		for _, operationType := range models.OperationTypes {
			require.True(t, IsKnownOperation(operationType), operationType)
			config, ok := ChannelConfig(operationType)
			require.True(t, ok, operationType)
			require.NotEmpty(t, config)
			require.Nil(t, ValidateOperationConfig(operationType, config), operationType)
		}
		for _, actionType := range models.ActionTypes {
			def, ok := ActionDefaults(actionType)
			require.True(t, ok, actionType)
			require.NotEmpty(t, def.Name)
		}
	})

	t.Run(`defaults are copies`, func(t *testing.T) {
		config, _ := ChannelConfig(models.OperationWebhookTrigger)
		config["headers"].(map[string]interface{})["X-Token"] = "secret"
		fresh, _ := ChannelConfig(models.OperationWebhookTrigger)
		require.Empty(t, fresh["headers"])

		def, _ := ActionDefaults(models.ActionCustomEvent)
		def.Config["customMessage"] = "changed"
		fresh2, _ := ActionDefaults(models.ActionCustomEvent)
		require.Equal(t, "", fresh2.Config["customMessage"])
	})
}

func TestSeedTable(t *testing.T) {
	t.Run(`one operation per type with custom event disabled`, func(t *testing.T) {
		operations := DefaultOperations()
		require.Len(t, operations, 8)
		for i, operation := range operations {
			require.Equal(t, models.OperationTypes[i], operation.Type)
			seen := map[models.ActionType]bool{}
			for _, action := range operation.Actions {
				require.False(t, seen[action.Type], "duplicate %s in %s", action.Type, operation.Type)
				seen[action.Type] = true
			}
			last := operation.Actions[len(operation.Actions)-1]
			require.Equal(t, models.ActionCustomEvent, last.Type)
			require.False(t, last.Enabled)
		}
	})

	t.Run(`compatibility table`, func(t *testing.T) {
		cases := []struct {
			operation models.OperationType
			action    models.ActionType
			enabled   bool
			attached  bool
		}{
			{models.OperationNotificationEmail, models.ActionUserCreated, true, true},
			{models.OperationNotificationSms, models.ActionUserCreated, false, true},
			{models.OperationNotificationSms, models.ActionPaymentReceived, true, true},
			{models.OperationNotificationSlack, models.ActionPaymentReceived, false, false},
			{models.OperationNotificationWhatsapp, models.ActionDocumentShared, false, true},
			{models.OperationNotificationSlack, models.ActionLoginFailed, false, true},
			{models.OperationWebhookTrigger, models.ActionLoginFailed, false, false},
			{models.OperationLogActivity, models.ActionUserDeleted, true, true},
			{models.OperationLogActivity, models.ActionLoginSuccess, true, true},
			{models.OperationLogActivity, models.ActionLoginFailed, true, true},
			{models.OperationAnalyticsTrack, models.ActionCustomEvent, false, true},
			{models.OperationAutomationWorkflow, models.ActionDataExport, false, false},
		}
		for _, c := range cases {
			enabled, attached := DefaultEnabled(c.operation, c.action)
			require.Equal(t, c.attached, attached, "%s × %s", c.operation, c.action)
			require.Equal(t, c.enabled, enabled, "%s × %s", c.operation, c.action)
		}
	})

	t.Run(`logging order`, func(t *testing.T) {
		var types []models.ActionType
		for _, action := range DefaultActionsFor(models.OperationLogActivity) {
			types = append(types, action.Type)
		}
		require.Equal(t, []models.ActionType{
			models.ActionUserCreated,
			models.ActionUserUpdated,
			models.ActionUserDeleted,
			models.ActionPaymentReceived,
			models.ActionPaymentRefunded,
			models.ActionLoginSuccess,
			models.ActionLoginFailed,
			models.ActionCustomEvent,
		}, types)
	})
}

func TestConfigShape(t *testing.T) {
	fieldIDs := func(err error) []string {
		validationErr, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		var ids []string
		for _, f := range validationErr.Fields {
			ids = append(ids, f.FieldID)
		}
		return ids
	}

	t.Run(`webhook`, func(t *testing.T) {
		err := ValidateOperationConfig(models.OperationWebhookTrigger, map[string]interface{}{
			"url":    "ftp://example.com",
			"method": "TRACE",
		})
		require.Equal(t, []string{"config.method", "config.url"}, fieldIDs(err))

		require.Nil(t, ValidateOperationConfig(models.OperationWebhookTrigger, map[string]interface{}{
			"url":     "https://hooks.example.com/in",
			"method":  "PUT",
			"headers": map[string]interface{}{"Authorization": "Bearer x"},
			"extra":   42,
		}))
	})

	t.Run(`kinds follow the template`, func(t *testing.T) {
		err := ValidateOperationConfig(models.OperationLogActivity, map[string]interface{}{
			"includeDetails": "yes",
		})
		require.Equal(t, []string{"config.includeDetails"}, fieldIDs(err))
	})

	t.Run(`email recipients`, func(t *testing.T) {
		err := ValidateOperationConfig(models.OperationNotificationEmail, map[string]interface{}{
			"recipients": []interface{}{"ops@example.com", "nobody"},
		})
		require.Equal(t, []string{"config.recipients"}, fieldIDs(err))
	})

	t.Run(`action config`, func(t *testing.T) {
		require.Nil(t, ValidateActionConfig(models.OperationLogActivity, models.ActionUserCreated, map[string]interface{}{
			"template":  "user-created",
			"level":     "warning",
			"retention": "1year",
		}))
		err := ValidateActionConfig(models.OperationLogActivity, models.ActionUserCreated, map[string]interface{}{
			"notifyAdmin": "true",
			"level":       "verbose",
		})
		require.Equal(t, []string{"config.notifyAdmin", "config.level"}, fieldIDs(err))
	})

	t.Run(`unknown types`, func(t *testing.T) {
		require.NotNil(t, ValidateOperationConfig("notification.pager", nil))
		require.NotNil(t, ValidateActionConfig(models.OperationNotificationEmail, "user.renamed", nil))
	})
}
