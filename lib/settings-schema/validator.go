package settingsschema

import (
	apperrors "company-settings-backend/lib/utils/app-errors"
	"encoding/json"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type FieldError = apperrors.FieldError

// Validator - скомпилированный набор правил для списка полей
type Validator struct {
	rules []fieldRule
}

type fieldRule struct {
	field   FieldDescriptor
	pattern *regexp.Regexp
	options map[string]bool
}

func Compile(fields []FieldDescriptor) (*Validator, error) {
	v := &Validator{rules: make([]fieldRule, 0, len(fields))}
	for _, field := range fields {
		rule := fieldRule{field: field}
		if field.Validation.Pattern != "" {
			re, err := regexp.Compile(field.Validation.Pattern)
			if err != nil {
				return nil, errors.Wrapf(err, "field %q: invalid pattern", field.ID)
			}
			rule.pattern = re
		}
		if field.Type == FieldSelect || field.Type == FieldRadio {
			rule.options = make(map[string]bool, len(field.Options))
			for _, key := range field.OptionValues() {
				rule.options[key] = true
			}
		}
		v.rules = append(v.rules, rule)
	}
	return v, nil
}

func (v *Validator) Validate(values map[string]interface{}) []FieldError {
	return v.ValidateSkipping(values, nil)
}

// ValidateSkipping не проверяет поля, для которых skip вернул true
func (v *Validator) ValidateSkipping(values map[string]interface{}, skip func(fieldID string) bool) []FieldError {
	var result []FieldError
	for _, rule := range v.rules {
		if skip != nil && skip(rule.field.ID) {
			continue
		}
		value, present := values[rule.field.ID]
		if msg := rule.check(value, present); msg != "" {
			result = append(result, FieldError{FieldID: rule.field.ID, Message: msg})
		}
	}
	return result
}

func (r fieldRule) check(value interface{}, present bool) string {
	f := r.field
	label := f.Label
	if label == "" {
		label = f.ID
	}
	if value == nil {
		present = false
	}

	switch {
	case f.Type.IsBoolean():
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s must be true or false", label)
		}
		return ""
	case f.Type == FieldFile:
		if !present {
			return ""
		}
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s must be a file reference", label)
		}
		return ""
	}

	// для select/radio пустая строка отсутствием не считается, допустима только как объявленный вариант
	choice := f.Type == FieldSelect || f.Type == FieldRadio
	if !present || (isEmptyString(value) && (f.Required || !choice)) {
		if f.Required {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}

	switch f.Type {
	case FieldText, FieldTextarea, FieldPassword, FieldEmail, FieldColor, FieldDate, FieldTime:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s must be a string", label)
		}
		if f.Type == FieldEmail && !govalidator.IsEmail(s) {
			return "Please enter a valid email address"
		}
		if f.Type == FieldText || f.Type == FieldTextarea {
			length := utf8.RuneCountInString(s)
			if f.Validation.MinLength != nil && length < *f.Validation.MinLength {
				return fmt.Sprintf("%s must be at least %d characters", label, *f.Validation.MinLength)
			}
			if f.Validation.MaxLength != nil && length > *f.Validation.MaxLength {
				return fmt.Sprintf("%s must be at most %d characters", label, *f.Validation.MaxLength)
			}
		}
		if r.pattern != nil && !r.pattern.MatchString(s) {
			return fmt.Sprintf("%s has an invalid format", label)
		}
	case FieldNumber, FieldSlider:
		n, ok := toNumber(value)
		if !ok {
			return fmt.Sprintf("%s must be a number", label)
		}
		if f.Validation.Min != nil && n < *f.Validation.Min {
			return fmt.Sprintf("%s must be at least %v", label, *f.Validation.Min)
		}
		if f.Validation.Max != nil && n > *f.Validation.Max {
			return fmt.Sprintf("%s must be at most %v", label, *f.Validation.Max)
		}
	case FieldSelect, FieldRadio:
		key, err := cast.ToStringE(value)
		if err != nil || !r.options[key] {
			return fmt.Sprintf("%s must be one of the available options", label)
		}
	case FieldMultiselect:
		if _, ok := toStringSlice(value); !ok {
			return fmt.Sprintf("%s must be a list of values", label)
		}
	}
	return ""
}

// Defaults значения по умолчанию: явный defaultValue, иначе нулевое значение по типу поля
func Defaults(fields []FieldDescriptor) map[string]interface{} {
	result := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if field.DefaultValue != nil {
			result[field.ID] = field.DefaultValue
			continue
		}
		switch field.Type {
		case FieldNumber, FieldSlider:
			result[field.ID] = 0
		case FieldSelect, FieldRadio:
			if len(field.Options) > 0 {
				result[field.ID] = field.Options[0].Value
			} else {
				result[field.ID] = ""
			}
		case FieldMultiselect:
			result[field.ID] = []string{}
		case FieldCheckbox, FieldSwitch:
			result[field.ID] = false
		case FieldFile:
			result[field.ID] = nil
		default:
			result[field.ID] = ""
		}
	}
	return result
}

func isEmptyString(value interface{}) bool {
	s, ok := value.(string)
	return ok && s == ""
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		n, err := cast.ToFloat64E(v)
		return n, err == nil
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	}
	return 0, false
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	}
	return nil, false
}

func optionKey(value interface{}) string {
	return cast.ToString(value)
}
