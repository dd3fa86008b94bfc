package settingsform

import (
	settingsschema "company-settings-backend/lib/settings-schema"
	apperrors "company-settings-backend/lib/utils/app-errors"
	"context"

	"github.com/pkg/errors"
)

// PersistFunc сохраняет итоговые значения формы, вызывается только после успешной проверки
type PersistFunc func(ctx context.Context, values map[string]interface{}) error

// Form состояние формы настроек: значения по умолчанию, исходные данные и правки пользователя
type Form struct {
	schema    settingsschema.SettingsSchema
	fields    []settingsschema.FieldDescriptor
	index     settingsschema.FieldIndex
	validator *settingsschema.Validator
	defaults  map[string]interface{}
	initial   map[string]interface{}
	edits     map[string]interface{}
}

func New(schema settingsschema.SettingsSchema, initial map[string]interface{}) (*Form, error) {
	if err := schema.Check(); err != nil {
		return nil, errors.Wrap(err, "некорректная схема настроек")
	}
	fields := schema.Fields()
	validator, err := settingsschema.Compile(fields)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка компиляции схемы настроек")
	}
	f := &Form{
		schema:    schema,
		fields:    fields,
		index:     settingsschema.Index(fields),
		validator: validator,
		defaults:  settingsschema.Defaults(fields),
		initial:   make(map[string]interface{}, len(initial)),
		edits:     make(map[string]interface{}),
	}
	for id, value := range initial {
		if _, ok := f.index[id]; ok {
			f.initial[id] = value
		}
	}
	return f, nil
}

func (f *Form) Schema() settingsschema.SettingsSchema {
	return f.schema
}

// Set фиксирует правку поля, видимость зависимых полей пересчитывается при следующем обращении
func (f *Form) Set(fieldID string, value interface{}) error {
	field, ok := f.index[fieldID]
	if !ok {
		return apperrors.NewValidationError("неизвестное поле формы",
			apperrors.FieldError{FieldID: fieldID, Message: "Unknown field"})
	}
	if field.Disabled {
		if settingsschema.SameValue(f.Value(fieldID), value) {
			return nil
		}
		return apperrors.NewValidationError("поле недоступно для изменения",
			apperrors.FieldError{FieldID: fieldID, Message: field.Label + " cannot be changed"})
	}
	f.edits[fieldID] = value
	return nil
}

func (f *Form) Reset() {
	f.edits = make(map[string]interface{})
}

func (f *Form) IsDirty() bool {
	return len(f.edits) != 0
}

func (f *Form) Edits() map[string]interface{} {
	result := make(map[string]interface{}, len(f.edits))
	for id, value := range f.edits {
		result[id] = value
	}
	return result
}

func (f *Form) Value(fieldID string) interface{} {
	if value, ok := f.edits[fieldID]; ok {
		return value
	}
	if value, ok := f.initial[fieldID]; ok {
		return value
	}
	return f.defaults[fieldID]
}

// Values defaults ⊕ initial ⊕ edits, более поздний источник перекрывает ранний
func (f *Form) Values() map[string]interface{} {
	result := make(map[string]interface{}, len(f.defaults))
	for _, src := range []map[string]interface{}{f.defaults, f.initial, f.edits} {
		for id, value := range src {
			result[id] = value
		}
	}
	return result
}

func (f *Form) IsVisible(fieldID string) bool {
	return f.index.IsVisible(fieldID, f.Values())
}

// Validate проверяет текущие значения, поля со невыполненным dependsOn пропускаются
func (f *Form) Validate() []settingsschema.FieldError {
	return f.validate(f.Values())
}

func (f *Form) validate(values map[string]interface{}) []settingsschema.FieldError {
	return f.validator.ValidateSkipping(values, func(fieldID string) bool {
		return !f.index.IsVisible(fieldID, values)
	})
}

// Submit проверяет форму и передаёт значения в persist. При ошибке сохранения правки остаются в форме
func (f *Form) Submit(ctx context.Context, persist PersistFunc) (map[string]interface{}, error) {
	values := f.Values()
	if fieldErrors := f.validate(values); len(fieldErrors) != 0 {
		return nil, apperrors.NewValidationError("проверка настроек не пройдена", fieldErrors...)
	}
	if err := persist(ctx, values); err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения настроек")
	}
	f.initial = values
	f.edits = make(map[string]interface{})
	return values, nil
}
