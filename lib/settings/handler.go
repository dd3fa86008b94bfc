package settingshandler

import (
	"company-settings-backend/lib/metrics"
	settingsform "company-settings-backend/lib/settings-form"
	settingsschema "company-settings-backend/lib/settings-schema"
	settingsstore "company-settings-backend/lib/settings/store"
	apperrors "company-settings-backend/lib/utils/app-errors"
	initchecker "company-settings-backend/lib/utils/init-checker"
	settingsapimodels "company-settings-backend/models/api/settings"
	"context"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Get(companyID uint) (map[string]interface{}, error)
	Update(ctx context.Context, companyID uint, submitted map[string]interface{}) (map[string]interface{}, error)
	Form(companyID uint) (settingsapimodels.SettingsFormView, error)
	AttachFile(ctx context.Context, companyID uint, fieldID string, upload settingsform.FileUpload) (map[string]interface{}, error)
	ClearFile(ctx context.Context, companyID uint, fieldID string) (map[string]interface{}, error)
}

var Instance Provider

func NewHandler(schema settingsschema.SettingsSchema, store settingsstore.Provider) {
	Instance = NewHandlerWithStore(schema, store)
}

func NewHandlerWithStore(schema settingsschema.SettingsSchema, store settingsstore.Provider) Provider {
	instance := impl{
		schema: schema,
		fields: schema.Fields(),
		store:  store,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	schema settingsschema.SettingsSchema
	fields []settingsschema.FieldDescriptor
	store  settingsstore.Provider
}

// Get документ компании, при отсутствии сохраняются и возвращаются значения по умолчанию
func (i impl) Get(companyID uint) (map[string]interface{}, error) {
	doc, _, err := i.load(companyID, true)
	return doc, err
}

// Update проверяет документ по схеме (сохранённые значения ⊕ присланные) и сохраняет его целиком
func (i impl) Update(ctx context.Context, companyID uint, submitted map[string]interface{}) (map[string]interface{}, error) {
	logger := log.WithField("company_id", companyID)
	form, err := i.newForm(companyID)
	if err != nil {
		return nil, err
	}
	for fieldID, value := range settingsform.ExtractValues(submitted, i.fields) {
		if settingsschema.SameValue(form.Value(fieldID), value) {
			continue
		}
		if err = form.Set(fieldID, value); err != nil {
			metrics.ValidationFailures.WithLabelValues(metrics.EntitySettings).Inc()
			return nil, err
		}
	}
	return i.submit(ctx, logger, companyID, form, "update")
}

func (i impl) Form(companyID uint) (settingsapimodels.SettingsFormView, error) {
	form, err := i.newForm(companyID)
	if err != nil {
		return settingsapimodels.SettingsFormView{}, err
	}
	return settingsapimodels.SettingsFormView{
		Form:     form.Render(),
		Document: settingsform.BuildDocument(form.Values()),
	}, nil
}

func (i impl) AttachFile(ctx context.Context, companyID uint, fieldID string, upload settingsform.FileUpload) (map[string]interface{}, error) {
	logger := log.WithFields(log.Fields{
		"company_id": companyID,
		"field_id":   fieldID,
		"file_name":  upload.Name,
		"file_size":  len(upload.Data),
	})
	form, err := i.newForm(companyID)
	if err != nil {
		return nil, err
	}
	if err = form.AttachFile(fieldID, upload); err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntitySettings).Inc()
		logger.WithError(err).Info("файл отклонён")
		return nil, err
	}
	return i.submit(ctx, logger, companyID, form, "attach_file")
}

func (i impl) ClearFile(ctx context.Context, companyID uint, fieldID string) (map[string]interface{}, error) {
	logger := log.WithFields(log.Fields{
		"company_id": companyID,
		"field_id":   fieldID,
	})
	form, err := i.newForm(companyID)
	if err != nil {
		return nil, err
	}
	if err = form.ClearFile(fieldID); err != nil {
		metrics.ValidationFailures.WithLabelValues(metrics.EntitySettings).Inc()
		return nil, err
	}
	return i.submit(ctx, logger, companyID, form, "clear_file")
}

func (i impl) submit(ctx context.Context, logger *log.Entry, companyID uint, form *settingsform.Form, kind string) (map[string]interface{}, error) {
	values, err := form.Submit(ctx, func(ctx context.Context, values map[string]interface{}) error {
		return i.store.Save(companyID, settingsform.BuildDocument(values))
	})
	if err != nil {
		if validationErr, ok := apperrors.AsValidation(err); ok {
			metrics.ValidationFailures.WithLabelValues(metrics.EntitySettings).Inc()
			logger.WithField("errors", validationErr.Fields).Info("настройки компании не прошли проверку")
			return nil, err
		}
		metrics.StorageErrors.WithLabelValues(metrics.EntitySettings).Inc()
		logger.WithError(err).Error("ошибка сохранения настроек компании")
		return nil, err
	}
	metrics.Mutations.WithLabelValues(metrics.EntitySettings, kind).Inc()
	logger.WithField("kind", kind).Info("настройки компании сохранены")
	return settingsform.BuildDocument(values), nil
}

func (i impl) newForm(companyID uint) (*settingsform.Form, error) {
	doc, _, err := i.load(companyID, false)
	if err != nil {
		return nil, err
	}
	return settingsform.New(i.schema, settingsform.ExtractValues(doc, i.fields))
}

// load persistDefaults=true сохраняет документ по умолчанию при первом чтении
func (i impl) load(companyID uint, persistDefaults bool) (map[string]interface{}, bool, error) {
	logger := log.WithField("company_id", companyID)
	doc, found, err := i.store.Load(companyID)
	if err != nil {
		if apperrors.IsSerialization(err) {
			logger.WithError(err).Error("документ настроек компании повреждён")
		} else {
			logger.WithError(err).Error("ошибка чтения настроек компании")
		}
		metrics.StorageErrors.WithLabelValues(metrics.EntitySettings).Inc()
		return nil, false, err
	}
	if found {
		return doc, true, nil
	}
	doc = i.defaultDocument()
	if persistDefaults {
		if err = i.store.Save(companyID, doc); err != nil {
			metrics.StorageErrors.WithLabelValues(metrics.EntitySettings).Inc()
			logger.WithError(err).Error("ошибка сохранения настроек компании по умолчанию")
			return nil, false, err
		}
		logger.Info("созданы настройки компании по умолчанию")
	}
	return doc, false, nil
}

func (i impl) defaultDocument() map[string]interface{} {
	return settingsform.BuildDocument(settingsschema.Defaults(i.fields))
}
