package operationscatalog

import (
	apperrors "company-settings-backend/lib/utils/app-errors"
	"company-settings-backend/models"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

// valueRule проверка значения одного ключа конфига, пустая строка - значение корректно
type valueRule func(value interface{}) string

// channelShape форма конфига канала: типы значений из шаблона и дополнительные правила по ключам.
// Правила по ключам применяются и к конфигу действий этого канала
type channelShape struct {
	template map[string]interface{}
	rules    map[string]valueRule
}

var priorities = []string{"low", "normal", "high"}

var channelShapes = map[models.OperationType]channelShape{
	models.OperationNotificationEmail: {
		template: channelConfigTemplates[models.OperationNotificationEmail],
		rules: map[string]valueRule{
			"recipients":    emailList,
			"ccRecipients":  emailList,
			"bccRecipients": emailList,
			"replyTo":       optionalEmail,
		},
	},
	models.OperationNotificationWhatsapp: {
		template: channelConfigTemplates[models.OperationNotificationWhatsapp],
		rules: map[string]valueRule{
			"phoneNumbers": stringList,
			"priority":     oneOf(priorities...),
		},
	},
	models.OperationNotificationSms: {
		template: channelConfigTemplates[models.OperationNotificationSms],
		rules: map[string]valueRule{
			"phoneNumbers": stringList,
			"priority":     oneOf(priorities...),
		},
	},
	models.OperationNotificationSlack: {
		template: channelConfigTemplates[models.OperationNotificationSlack],
		rules: map[string]valueRule{
			"mentionUsers": stringList,
		},
	},
	models.OperationWebhookTrigger: {
		template: channelConfigTemplates[models.OperationWebhookTrigger],
		rules: map[string]valueRule{
			"url":     webhookURL,
			"method":  oneOf("GET", "POST", "PUT", "PATCH", "DELETE"),
			"headers": stringMap,
		},
	},
	models.OperationLogActivity: {
		template: channelConfigTemplates[models.OperationLogActivity],
		rules: map[string]valueRule{
			"level":     oneOf("debug", "info", "warning", "error"),
			"retention": oneOf("30days", "90days", "1year", "2years", "forever"),
		},
	},
	models.OperationAnalyticsTrack: {
		template: channelConfigTemplates[models.OperationAnalyticsTrack],
		rules: map[string]valueRule{
			"customDimensions": stringMap,
		},
	},
	models.OperationAutomationWorkflow: {
		template: channelConfigTemplates[models.OperationAutomationWorkflow],
		rules: map[string]valueRule{
			"priority": oneOf(priorities...),
		},
	},
}

// ValidateOperationConfig проверяет конфиг канала перед заменой. Неизвестные ключи допускаются
func ValidateOperationConfig(operationType models.OperationType, config map[string]interface{}) error {
	shape, ok := channelShapes[operationType]
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("неизвестный тип операции %s", operationType))
	}
	var fieldErrors []apperrors.FieldError
	fieldErrors = append(fieldErrors, checkKinds(shape.template, config)...)
	fieldErrors = append(fieldErrors, checkRules(shape.rules, config)...)
	return toError(fieldErrors)
}

// ValidateActionConfig проверяет конфиг действия: типы значений из каталога действия и правила канала
func ValidateActionConfig(operationType models.OperationType, actionType models.ActionType, config map[string]interface{}) error {
	shape, ok := channelShapes[operationType]
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("неизвестный тип операции %s", operationType))
	}
	def, ok := defaultActionConfigs[actionType]
	if !ok {
		return apperrors.NewValidationError(fmt.Sprintf("неизвестный тип действия %s", actionType))
	}
	var fieldErrors []apperrors.FieldError
	fieldErrors = append(fieldErrors, checkKinds(def.Config, config)...)
	fieldErrors = append(fieldErrors, checkRules(shape.rules, config)...)
	return toError(fieldErrors)
}

func toError(fieldErrors []apperrors.FieldError) error {
	if len(fieldErrors) == 0 {
		return nil
	}
	return apperrors.NewValidationError("некорректный конфиг", fieldErrors...)
}

func checkKinds(template, config map[string]interface{}) []apperrors.FieldError {
	var result []apperrors.FieldError
	for _, key := range sortedKeys(config) {
		expected, ok := template[key]
		if !ok {
			continue
		}
		if want, got := jsonKind(expected), jsonKind(config[key]); want != got {
			result = append(result, apperrors.FieldError{
				FieldID: "config." + key,
				Message: fmt.Sprintf("%s must be %s", key, want),
			})
		}
	}
	return result
}

func checkRules(rules map[string]valueRule, config map[string]interface{}) []apperrors.FieldError {
	var result []apperrors.FieldError
	for _, key := range sortedKeys(config) {
		rule, ok := rules[key]
		if !ok {
			continue
		}
		if msg := rule(config[key]); msg != "" {
			result = append(result, apperrors.FieldError{FieldID: "config." + key, Message: key + " " + msg})
		}
	}
	return result
}

// jsonKind тип значения в терминах JSON
func jsonKind(value interface{}) string {
	if value == nil {
		return "null"
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	}
	return "unknown"
}

func oneOf(allowed ...string) valueRule {
	return func(value interface{}) string {
		s, ok := value.(string)
		if !ok {
			return "must be a string"
		}
		for _, item := range allowed {
			if item == s {
				return ""
			}
		}
		return fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))
	}
}

func stringList(value interface{}) string {
	if _, ok := toStrings(value); !ok {
		return "must be a list of strings"
	}
	return ""
}

func emailList(value interface{}) string {
	items, ok := toStrings(value)
	if !ok {
		return "must be a list of email addresses"
	}
	for _, item := range items {
		if !govalidator.IsEmail(item) {
			return fmt.Sprintf("contains an invalid email address %q", item)
		}
	}
	return ""
}

func optionalEmail(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return "must be a string"
	}
	if s != "" && !govalidator.IsEmail(s) {
		return "must be a valid email address"
	}
	return ""
}

func webhookURL(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return "must be a string"
	}
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || !govalidator.IsURL(s) {
		return "must be an http(s) URL"
	}
	return ""
}

func stringMap(value interface{}) string {
	m, ok := value.(map[string]interface{})
	if !ok {
		return "must be an object"
	}
	for _, v := range m {
		if _, ok := v.(string); !ok {
			return "values must be strings"
		}
	}
	return ""
}

func sortedKeys(config map[string]interface{}) []string {
	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func toStrings(value interface{}) ([]string, bool) {
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
