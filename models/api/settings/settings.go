package settingsapimodels

import (
	settingsform "company-settings-backend/lib/settings-form"
)

// SettingsFormView схема формы с текущими значениями
type SettingsFormView struct {
	Form     settingsform.View      `json:"form"`     // табы, секции и видимые поля
	Document map[string]interface{} `json:"document"` // текущий документ настроек
}

// ValidationErrorsView данные ответа при ошибке проверки
type ValidationErrorsView struct {
	Errors interface{} `json:"errors"` // список {fieldId, message}
}
