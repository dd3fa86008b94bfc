package usershandler

import (
	"company-settings-backend/db"
	"company-settings-backend/lib/metrics"
	settingsform "company-settings-backend/lib/settings-form"
	settingsschema "company-settings-backend/lib/settings-schema"
	usersstore "company-settings-backend/lib/users/store"
	apperrors "company-settings-backend/lib/utils/app-errors"
	initchecker "company-settings-backend/lib/utils/init-checker"
	usersapimodels "company-settings-backend/models/api/users"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const preferencesKey = "preferences"

type Provider interface {
	Get(userID uint) (usersapimodels.UserSettingsView, error)
	Patch(userID uint, patch []byte) (usersapimodels.UserSettingsView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithDB(db.DB)
}

func NewHandlerWithDB(DB *gorm.DB) Provider {
	instance := impl{
		store:  usersstore.NewInstance(DB),
		schema: settingsschema.PersonalSettingsSchema,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store  usersstore.Provider
	schema settingsschema.SettingsSchema
}

func (i impl) Get(userID uint) (usersapimodels.UserSettingsView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return usersapimodels.UserSettingsView{}, i.storageError(userID, "ошибка получения настроек пользователя", err)
	}
	if rec == nil {
		return usersapimodels.UserSettingsView{}, apperrors.NewNotFoundError("настройки пользователя", userID)
	}
	return rec.ToModelView(), nil
}

// Patch применяет merge patch (RFC 7386) к {"preferences": ...} и сохраняет результат, записи может ещё не быть
func (i impl) Patch(userID uint, patch []byte) (usersapimodels.UserSettingsView, error) {
	logger := log.WithField("user_id", userID)
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return usersapimodels.UserSettingsView{}, i.storageError(userID, "ошибка получения настроек пользователя", err)
	}
	current := map[string]interface{}{}
	if rec != nil && rec.Preferences != nil {
		current = rec.Preferences
	}
	original, err := json.Marshal(map[string]interface{}{preferencesKey: current})
	if err != nil {
		return usersapimodels.UserSettingsView{}, apperrors.NewSerializationError("настройки пользователя", err)
	}
	merged, err := jsonpatch.MergePatch(original, patch)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntityUserSettings).Inc()
		return usersapimodels.UserSettingsView{}, apperrors.NewValidationError("некорректный merge patch",
			apperrors.FieldError{FieldID: preferencesKey, Message: "Invalid merge patch"})
	}
	preferences, err := decodePreferences(merged)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntityUserSettings).Inc()
		return usersapimodels.UserSettingsView{}, err
	}
	if err = i.validate(preferences); err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntityUserSettings).Inc()
		logger.WithError(err).Info("настройки пользователя не прошли проверку")
		return usersapimodels.UserSettingsView{}, err
	}
	rec, err = i.store.Upsert(userID, preferences)
	if err != nil {
		return usersapimodels.UserSettingsView{}, i.storageError(userID, "ошибка сохранения настроек пользователя", err)
	}
	metrics.Mutations.WithLabelValues(metrics.EntityUserSettings, "patch").Inc()
	logger.Info("настройки пользователя сохранены")
	return rec.ToModelView(), nil
}

// validate поля персональной схемы проверяются с учётом значений по умолчанию, прочие ключи не трогаем
func (i impl) validate(preferences map[string]interface{}) error {
	doc := map[string]interface{}{preferencesKey: preferences}
	form, err := settingsform.New(i.schema, settingsform.ExtractValues(doc, i.schema.Fields()))
	if err != nil {
		return err
	}
	if fieldErrors := form.Validate(); len(fieldErrors) != 0 {
		return apperrors.NewValidationError("проверка настроек пользователя не пройдена", fieldErrors...)
	}
	return nil
}

func (i impl) storageError(userID uint, msg string, err error) error {
	metrics.StorageErrors.WithLabelValues(metrics.EntityUserSettings).Inc()
	log.WithField("user_id", userID).WithError(err).Error(msg)
	return apperrors.NewStorageError(msg, err)
}

func decodePreferences(merged []byte) (map[string]interface{}, error) {
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(merged, &doc); err != nil {
		return nil, apperrors.NewValidationError("некорректный merge patch",
			apperrors.FieldError{FieldID: preferencesKey, Message: "Invalid merge patch"})
	}
	raw, ok := doc[preferencesKey]
	if !ok || string(raw) == "null" {
		return map[string]interface{}{}, nil
	}
	preferences := map[string]interface{}{}
	if err := json.Unmarshal(raw, &preferences); err != nil {
		return nil, apperrors.NewValidationError("preferences должен быть объектом",
			apperrors.FieldError{FieldID: preferencesKey, Message: "Preferences must be an object"})
	}
	return preferences, nil
}
