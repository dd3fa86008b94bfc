package operationshandler

import (
	"company-settings-backend/db"
	companiesstore "company-settings-backend/lib/companies/store"
	apperrors "company-settings-backend/lib/utils/app-errors"
	"company-settings-backend/models"
	operationsapimodels "company-settings-backend/models/api/operations"
	dbmodels "company-settings-backend/models/db"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestHandler(t *testing.T) Provider {
	return NewHandlerWithDB(newTestDB(t))
}

func newTestDB(t *testing.T) *gorm.DB {
	gormDB, err := db.OpenSqlite(filepath.Join(t.TempDir(), "operations.db"))
	require.Nil(t, err)
	return gormDB
}

func findOperation(list []operationsapimodels.OperationView, operationType models.OperationType) operationsapimodels.OperationView {
	for _, item := range list {
		if item.Type == operationType {
			return item
		}
	}
	return operationsapimodels.OperationView{}
}

func findAction(operation operationsapimodels.OperationView, actionType models.ActionType) *operationsapimodels.ActionView {
	for i := range operation.Actions {
		if operation.Actions[i].Type == actionType {
			return &operation.Actions[i]
		}
	}
	return nil
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run(`seeding creates the owning company`, func(t *testing.T) {
		gormDB := newTestDB(t)
		h := NewHandlerWithDB(gormDB)
		_, err := h.List(ctx, 42)
		require.Nil(t, err)

		company, err := companiesstore.NewInstance(gormDB).GetByID(42)
		require.Nil(t, err)
		require.NotNil(t, company)
		require.Equal(t, "Компания 42", company.Name)

		var count int64
		require.Nil(t, gormDB.Model(&dbmodels.Operation{}).Where("company_id = ?", 42).Count(&count).Error)
		require.Equal(t, int64(8), count)
	})

	t.Run(`existing company is kept`, func(t *testing.T) {
		gormDB := newTestDB(t)
		_, err := companiesstore.NewInstance(gormDB).FindOrCreate(1, "Acme Corporation")
		require.Nil(t, err)
		_, err = NewHandlerWithDB(gormDB).List(ctx, 1)
		require.Nil(t, err)

		company, err := companiesstore.NewInstance(gormDB).GetByID(1)
		require.Nil(t, err)
		require.Equal(t, "Acme Corporation", company.Name)
	})

	t.Run(`seeds default operations`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		require.Len(t, list, 8)
		for i, operation := range list {
			require.Equal(t, models.OperationTypes[i], operation.Type)
			require.Equal(t, uint(1), operation.CompanyID)
			custom := findAction(operation, models.ActionCustomEvent)
			require.NotNil(t, custom, operation.Type)
			require.False(t, custom.Enabled)
		}
		email := findOperation(list, models.OperationNotificationEmail)
		require.True(t, email.Enabled)
		require.Equal(t, "System Notifications", email.Config["fromName"])
		require.True(t, findAction(email, models.ActionUserCreated).Enabled)
		sms := findOperation(list, models.OperationNotificationSms)
		require.False(t, sms.Enabled)
		require.False(t, findAction(sms, models.ActionUserCreated).Enabled)
		require.True(t, findAction(sms, models.ActionPaymentReceived).Enabled)
	})

	t.Run(`seeding is idempotent`, func(t *testing.T) {
		h := newTestHandler(t)
		first, err := h.List(ctx, 1)
		require.Nil(t, err)
		second, err := h.List(ctx, 1)
		require.Nil(t, err)
		require.Len(t, second, 8)
		for i := range first {
			require.Equal(t, first[i].ID, second[i].ID)
			require.Len(t, second[i].Actions, len(first[i].Actions))
		}
	})

	t.Run(`concurrent first requests seed once`, func(t *testing.T) {
		h := newTestHandler(t)
		wg := sync.WaitGroup{}
		results := make([]int, 4)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				list, err := h.List(ctx, 7)
				if err == nil {
					results[i] = len(list)
				}
			}(i)
		}
		wg.Wait()
		for _, count := range results {
			require.Equal(t, 8, count)
		}
	})

	t.Run(`tenants are separate`, func(t *testing.T) {
		h := newTestHandler(t)
		first, err := h.List(ctx, 1)
		require.Nil(t, err)
		second, err := h.List(ctx, 2)
		require.Nil(t, err)
		require.NotEqual(t, first[0].ID, second[0].ID)

		_, err = h.ToggleOperation(2, first[0].ID, false)
		require.True(t, apperrors.IsNotFound(err))
		err = h.RemoveAction(2, first[0].Actions[0].ID)
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestOperationMutations(t *testing.T) {
	ctx := context.Background()

	t.Run(`config round trip`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		webhook := findOperation(list, models.OperationWebhookTrigger)
		cfg := map[string]interface{}{
			"url":                "https://hooks.example.com/settings",
			"method":             "PUT",
			"headers":            map[string]interface{}{"X-Token": "abc"},
			"includeFullPayload": false,
			"retryOnFailure":     true,
		}
		updated, err := h.UpdateOperationConfig(1, webhook.ID, cfg)
		require.Nil(t, err)
		require.Equal(t, cfg, updated.Config)

		list, err = h.List(ctx, 1)
		require.Nil(t, err)
		require.Equal(t, cfg, findOperation(list, models.OperationWebhookTrigger).Config)
	})

	t.Run(`invalid config is rejected`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		logOperation := findOperation(list, models.OperationLogActivity)
		_, err = h.UpdateOperationConfig(1, logOperation.ID, map[string]interface{}{"level": "verbose"})
		_, ok := apperrors.AsValidation(err)
		require.True(t, ok)

		list, err = h.List(ctx, 1)
		require.Nil(t, err)
		require.Equal(t, "info", findOperation(list, models.OperationLogActivity).Config["level"])
	})

	t.Run(`toggle keeps action flags`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		email := findOperation(list, models.OperationNotificationEmail)
		require.True(t, email.Enabled)

		updated, err := h.ToggleOperation(1, email.ID, false)
		require.Nil(t, err)
		require.False(t, updated.Enabled)

		list, err = h.List(ctx, 1)
		require.Nil(t, err)
		after := findOperation(list, models.OperationNotificationEmail)
		require.False(t, after.Enabled)
		require.Len(t, after.Actions, len(email.Actions))
		for i := range email.Actions {
			require.Equal(t, email.Actions[i].Enabled, after.Actions[i].Enabled)
		}
	})

	t.Run(`update details`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		name := "Mail"
		updated, err := h.UpdateOperation(1, list[0].ID, operationsapimodels.UpdateRequest{Name: &name})
		require.Nil(t, err)
		require.Equal(t, "Mail", updated.Name)
		require.Equal(t, list[0].Enabled, updated.Enabled)
	})

	t.Run(`unknown operation`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.List(ctx, 1)
		require.Nil(t, err)
		_, err = h.ToggleOperation(1, 9999, true)
		require.True(t, apperrors.IsNotFound(err))
		_, err = h.UpdateOperationConfig(1, 9999, map[string]interface{}{})
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestActionMutations(t *testing.T) {
	ctx := context.Background()

	t.Run(`toggle and config`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		custom := findAction(findOperation(list, models.OperationNotificationEmail), models.ActionCustomEvent)

		toggled, err := h.ToggleAction(1, custom.ID, true)
		require.Nil(t, err)
		require.True(t, toggled.Enabled)

		cfg := map[string]interface{}{"customMessage": "Hello", "template": "custom", "subject": "Hi"}
		updated, err := h.UpdateActionConfig(1, custom.ID, cfg)
		require.Nil(t, err)
		require.Equal(t, cfg, updated.Config)
		require.True(t, updated.Enabled)

		_, err = h.UpdateActionConfig(1, custom.ID, map[string]interface{}{"customMessage": 5})
		_, ok := apperrors.AsValidation(err)
		require.True(t, ok)
	})

	t.Run(`add action`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		slack := findOperation(list, models.OperationNotificationSlack)

		enabled := false
		added, err := h.AddAction(1, slack.ID, operationsapimodels.ActionDraft{Type: models.ActionDataExport, Enabled: &enabled})
		require.Nil(t, err)
		require.Equal(t, "Data Exported", added.Name)
		require.False(t, added.Enabled)
		require.Equal(t, "data-export", added.Config["template"])

		_, err = h.AddAction(1, slack.ID, operationsapimodels.ActionDraft{Type: models.ActionDataExport})
		require.True(t, apperrors.IsConflict(err))

		_, err = h.AddAction(1, slack.ID, operationsapimodels.ActionDraft{Type: "user.renamed"})
		_, ok := apperrors.AsValidation(err)
		require.True(t, ok)

		_, err = h.AddAction(1, 9999, operationsapimodels.ActionDraft{Type: models.ActionDataImport})
		require.True(t, apperrors.IsNotFound(err))

		list, err = h.List(ctx, 1)
		require.Nil(t, err)
		require.NotNil(t, findAction(findOperation(list, models.OperationNotificationSlack), models.ActionDataExport))
	})

	t.Run(`remove action twice`, func(t *testing.T) {
		h := newTestHandler(t)
		list, err := h.List(ctx, 1)
		require.Nil(t, err)
		email := findOperation(list, models.OperationNotificationEmail)
		target := findAction(email, models.ActionDocumentShared)
		require.NotNil(t, target)

		require.Nil(t, h.RemoveAction(1, target.ID))
		list, err = h.List(ctx, 1)
		require.Nil(t, err)
		require.Nil(t, findAction(findOperation(list, models.OperationNotificationEmail), models.ActionDocumentShared))

		err = h.RemoveAction(1, target.ID)
		require.True(t, apperrors.IsNotFound(err))
	})
}
