package settingsschema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	t.Run(`required text-like empty string gives exactly one error`, func(t *testing.T) {
		for _, fieldType := range []FieldType{FieldText, FieldTextarea, FieldEmail} {
			fields := []FieldDescriptor{{
				ID:         "profile.value",
				Type:       fieldType,
				Label:      "Value",
				Required:   true,
				Validation: FieldValidation{MinLength: intPtr(2)},
			}}
			v, err := Compile(fields)
			require.Nil(t, err)
			errs := v.Validate(map[string]interface{}{"profile.value": ""})
			require.Len(t, errs, 1, string(fieldType))
			require.Equal(t, "profile.value", errs[0].FieldID)
			require.Equal(t, "Value is required", errs[0].Message)
		}
	})

	t.Run(`select and radio options`, func(t *testing.T) {
		for _, fieldType := range []FieldType{FieldSelect, FieldRadio} {
			fields := []FieldDescriptor{{
				ID:      "display.theme",
				Type:    fieldType,
				Label:   "Theme",
				Options: themeOptions,
			}}
			v, err := Compile(fields)
			require.Nil(t, err)
			for _, opt := range themeOptions {
				require.Empty(t, v.Validate(map[string]interface{}{"display.theme": opt.Value}))
			}
			errs := v.Validate(map[string]interface{}{"display.theme": "purple"})
			require.Len(t, errs, 1)
			require.Equal(t, "display.theme", errs[0].FieldID)
		}
	})

	t.Run(`empty string is not an absent option`, func(t *testing.T) {
		fields := []FieldDescriptor{
			{ID: "display.theme", Type: FieldSelect, Label: "Theme", Options: themeOptions},
			{ID: "display.accent", Type: FieldRadio, Label: "Accent", Options: []FieldOption{{Label: "None", Value: ""}, {Label: "Blue", Value: "blue"}}},
		}
		v, err := Compile(fields)
		require.Nil(t, err)

		errs := v.Validate(map[string]interface{}{"display.theme": "", "display.accent": ""})
		require.Len(t, errs, 1)
		require.Equal(t, "display.theme", errs[0].FieldID)
		require.Empty(t, v.Validate(map[string]interface{}{"display.theme": nil, "display.accent": "blue"}))

		fields[0].Required = true
		v, err = Compile(fields)
		require.Nil(t, err)
		errs = v.Validate(map[string]interface{}{"display.theme": "", "display.accent": ""})
		require.Len(t, errs, 1)
		require.Equal(t, "Theme is required", errs[0].Message)
	})

	t.Run(`numeric option values compare as strings`, func(t *testing.T) {
		fields := []FieldDescriptor{{
			ID:      "data.level",
			Type:    FieldSelect,
			Options: []FieldOption{{Label: "One", Value: 1}, {Label: "Two", Value: 2}},
		}}
		v, err := Compile(fields)
		require.Nil(t, err)
		require.Empty(t, v.Validate(map[string]interface{}{"data.level": float64(2)}))
		require.Empty(t, v.Validate(map[string]interface{}{"data.level": "1"}))
		require.Len(t, v.Validate(map[string]interface{}{"data.level": 3}), 1)
	})

	t.Run(`number bounds and type`, func(t *testing.T) {
		fields := []FieldDescriptor{{
			ID:         "security.sessionTimeoutMinutes",
			Type:       FieldNumber,
			Label:      "Timeout",
			Validation: FieldValidation{Min: floatPtr(5), Max: floatPtr(1440)},
		}}
		v, err := Compile(fields)
		require.Nil(t, err)
		require.Empty(t, v.Validate(map[string]interface{}{"security.sessionTimeoutMinutes": 60}))
		require.Empty(t, v.Validate(map[string]interface{}{"security.sessionTimeoutMinutes": float64(5)}))
		require.Empty(t, v.Validate(map[string]interface{}{}))

		errs := v.Validate(map[string]interface{}{"security.sessionTimeoutMinutes": 1})
		require.Len(t, errs, 1)
		require.Equal(t, "Timeout must be at least 5", errs[0].Message)

		errs = v.Validate(map[string]interface{}{"security.sessionTimeoutMinutes": 2000})
		require.Len(t, errs, 1)
		require.Equal(t, "Timeout must be at most 1440", errs[0].Message)

		errs = v.Validate(map[string]interface{}{"security.sessionTimeoutMinutes": "60"})
		require.Len(t, errs, 1)
		require.Equal(t, "Timeout must be a number", errs[0].Message)
	})

	t.Run(`booleans are never optional`, func(t *testing.T) {
		fields := []FieldDescriptor{
			{ID: "a.check", Type: FieldCheckbox, Label: "Check"},
			{ID: "a.switch", Type: FieldSwitch, Label: "Switch"},
		}
		v, err := Compile(fields)
		require.Nil(t, err)
		require.Empty(t, v.Validate(map[string]interface{}{"a.check": false, "a.switch": true}))
		errs := v.Validate(map[string]interface{}{"a.check": "yes"})
		require.Len(t, errs, 2)
		require.Equal(t, "a.check", errs[0].FieldID)
		require.Equal(t, "a.switch", errs[1].FieldID)
	})

	t.Run(`email format`, func(t *testing.T) {
		fields := []FieldDescriptor{{ID: "profile.email", Type: FieldEmail, Label: "Email"}}
		v, err := Compile(fields)
		require.Nil(t, err)
		require.Empty(t, v.Validate(map[string]interface{}{"profile.email": "admin@example.com"}))
		require.Empty(t, v.Validate(map[string]interface{}{"profile.email": ""}))
		errs := v.Validate(map[string]interface{}{"profile.email": "not-an-email"})
		require.Len(t, errs, 1)
		require.Equal(t, "Please enter a valid email address", errs[0].Message)
	})

	t.Run(`text length and pattern`, func(t *testing.T) {
		fields := []FieldDescriptor{{
			ID:         "profile.foundedYear",
			Type:       FieldText,
			Label:      "Founded Year",
			Validation: FieldValidation{MaxLength: intPtr(4), Pattern: `^\d+$`},
		}}
		v, err := Compile(fields)
		require.Nil(t, err)
		require.Empty(t, v.Validate(map[string]interface{}{"profile.foundedYear": "2010"}))
		require.Equal(t, "Founded Year must be at most 4 characters",
			v.Validate(map[string]interface{}{"profile.foundedYear": "20100"})[0].Message)
		require.Equal(t, "Founded Year has an invalid format",
			v.Validate(map[string]interface{}{"profile.foundedYear": "20a0"})[0].Message)
	})

	t.Run(`multiselect and file`, func(t *testing.T) {
		fields := []FieldDescriptor{
			{ID: "a.tags", Type: FieldMultiselect, Label: "Tags"},
			{ID: "a.logo", Type: FieldFile, Label: "Logo", Required: true},
		}
		v, err := Compile(fields)
		require.Nil(t, err)
		require.Empty(t, v.Validate(map[string]interface{}{"a.tags": []interface{}{"x", "y"}}))
		require.Empty(t, v.Validate(map[string]interface{}{"a.tags": []string{}, "a.logo": nil}))
		errs := v.Validate(map[string]interface{}{"a.tags": []interface{}{"x", 1}, "a.logo": 42})
		require.Len(t, errs, 2)
	})

	t.Run(`invalid pattern fails compile`, func(t *testing.T) {
		_, err := Compile([]FieldDescriptor{{ID: "a", Type: FieldText, Validation: FieldValidation{Pattern: "("}}})
		require.NotNil(t, err)
	})
}

func TestDefaults(t *testing.T) {
	t.Run(`type zero values and explicit defaults`, func(t *testing.T) {
		fields := []FieldDescriptor{
			{ID: "text", Type: FieldText},
			{ID: "explicit", Type: FieldText, DefaultValue: "value"},
			{ID: "number", Type: FieldNumber},
			{ID: "slider", Type: FieldSlider},
			{ID: "select", Type: FieldSelect, Options: themeOptions},
			{ID: "radio", Type: FieldRadio, Options: securityLevelOptions},
			{ID: "multi", Type: FieldMultiselect},
			{ID: "check", Type: FieldCheckbox},
			{ID: "switch", Type: FieldSwitch, DefaultValue: true},
			{ID: "file", Type: FieldFile},
			{ID: "color", Type: FieldColor},
			{ID: "date", Type: FieldDate},
			{ID: "time", Type: FieldTime},
		}
		defaults := Defaults(fields)
		require.Equal(t, "", defaults["text"])
		require.Equal(t, "value", defaults["explicit"])
		require.Equal(t, 0, defaults["number"])
		require.Equal(t, 0, defaults["slider"])
		require.Equal(t, "light", defaults["select"])
		require.Equal(t, "low", defaults["radio"])
		require.Equal(t, []string{}, defaults["multi"])
		require.Equal(t, false, defaults["check"])
		require.Equal(t, true, defaults["switch"])
		val, exist := defaults["file"]
		require.True(t, exist)
		require.Nil(t, val)
		require.Equal(t, "", defaults["color"])
		require.Equal(t, "", defaults["date"])
		require.Equal(t, "", defaults["time"])
	})

	t.Run(`defaults are deterministic`, func(t *testing.T) {
		fields := CompanySettingsSchema.Fields()
		require.Equal(t, Defaults(fields), Defaults(fields))
	})

	t.Run(`company defaults pass validation`, func(t *testing.T) {
		fields := CompanySettingsSchema.Fields()
		v, err := Compile(fields)
		require.Nil(t, err)
		idx := Index(fields)
		defaults := Defaults(fields)
		errs := v.ValidateSkipping(defaults, func(id string) bool { return !idx.IsVisible(id, defaults) })
		require.Empty(t, errs)
	})
}
