package settingsschema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDependsOn(t *testing.T) {
	t.Run(`operators`, func(t *testing.T) {
		cases := []struct {
			name   string
			dep    DependsOn
			actual interface{}
			expect bool
		}{
			{"default operator equals", DependsOn{Value: true}, true, true},
			{"default operator not equal", DependsOn{Value: true}, false, false},
			{"equals numbers of different kinds", DependsOn{Value: 5, Operator: OperatorEquals}, float64(5), true},
			{"equals strings", DependsOn{Value: "none", Operator: OperatorEquals}, "none", true},
			{"notEquals", DependsOn{Value: "none", Operator: OperatorNotEquals}, "hubspot", true},
			{"notEquals same", DependsOn{Value: "none", Operator: OperatorNotEquals}, "none", false},
			{"notEquals absent", DependsOn{Value: "none", Operator: OperatorNotEquals}, nil, true},
			{"contains", DependsOn{Value: "sms", Operator: OperatorContains}, []interface{}{"email", "sms"}, true},
			{"contains string slice", DependsOn{Value: "sms", Operator: OperatorContains}, []string{"email"}, false},
			{"contains non array", DependsOn{Value: "sms", Operator: OperatorContains}, "sms", false},
			{"greaterThan", DependsOn{Value: 3, Operator: OperatorGreaterThan}, 4, true},
			{"greaterThan equal", DependsOn{Value: 3, Operator: OperatorGreaterThan}, float64(3), false},
			{"greaterThan absent", DependsOn{Value: 3, Operator: OperatorGreaterThan}, nil, false},
			{"lessThan", DependsOn{Value: 3, Operator: OperatorLessThan}, 2.5, true},
			{"lessThan strings", DependsOn{Value: "b", Operator: OperatorLessThan}, "a", true},
			{"lessThan mixed", DependsOn{Value: 3, Operator: OperatorLessThan}, "1", false},
		}
		for _, c := range cases {
			require.Equal(t, c.expect, c.dep.Satisfied(c.actual), c.name)
		}
	})

	t.Run(`visibility is transitive`, func(t *testing.T) {
		idx := Index(PersonalSettingsSchema.Fields())
		state := Defaults(PersonalSettingsSchema.Fields())
		state["preferences.notifications.quietHoursEnabled"] = true
		require.True(t, idx.IsVisible("preferences.notifications.quietHoursStart", state))

		state["preferences.notifications.enabled"] = false
		require.False(t, idx.IsVisible("preferences.notifications.quietHoursEnabled", state))
		require.False(t, idx.IsVisible("preferences.notifications.quietHoursStart", state))
		require.True(t, idx.IsVisible("preferences.theme", state))
	})
}

func TestSchemaCheck(t *testing.T) {
	t.Run(`built-in schemas are valid`, func(t *testing.T) {
		require.Nil(t, CompanySettingsSchema.Check())
		require.Nil(t, PersonalSettingsSchema.Check())
	})

	t.Run(`duplicate field id`, func(t *testing.T) {
		err := CheckFields([]FieldDescriptor{{ID: "a", Type: FieldText}, {ID: "a", Type: FieldText}})
		require.NotNil(t, err)
	})

	t.Run(`field id nested in another field`, func(t *testing.T) {
		err := CheckFields([]FieldDescriptor{
			{ID: "profile", Type: FieldText},
			{ID: "profile.name", Type: FieldText},
		})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "nested")

		require.Nil(t, CheckFields([]FieldDescriptor{
			{ID: "profile.name", Type: FieldText},
			{ID: "profile.nameFull", Type: FieldText},
		}))
	})

	t.Run(`unresolved dependency`, func(t *testing.T) {
		err := CheckFields([]FieldDescriptor{{ID: "a", Type: FieldText, DependsOn: &DependsOn{Field: "b"}}})
		require.NotNil(t, err)
	})

	t.Run(`dependency cycle`, func(t *testing.T) {
		err := CheckFields([]FieldDescriptor{
			{ID: "a", Type: FieldSwitch, DependsOn: &DependsOn{Field: "c", Value: true}},
			{ID: "b", Type: FieldSwitch, DependsOn: &DependsOn{Field: "a", Value: true}},
			{ID: "c", Type: FieldSwitch, DependsOn: &DependsOn{Field: "b", Value: true}},
			{ID: "d", Type: FieldSwitch, DependsOn: &DependsOn{Field: "a", Value: true}},
		})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "cycle")
	})

	t.Run(`chain without cycle`, func(t *testing.T) {
		err := CheckFields([]FieldDescriptor{
			{ID: "c", Type: FieldSwitch, DependsOn: &DependsOn{Field: "b", Value: true}},
			{ID: "b", Type: FieldSwitch, DependsOn: &DependsOn{Field: "a", Value: true}},
			{ID: "a", Type: FieldSwitch},
			{ID: "d", Type: FieldSwitch, DependsOn: &DependsOn{Field: "b", Value: true}},
		})
		require.Nil(t, err)
	})

	t.Run(`duplicate option value`, func(t *testing.T) {
		err := CheckFields([]FieldDescriptor{{
			ID:      "a",
			Type:    FieldSelect,
			Options: []FieldOption{{Label: "One", Value: "1"}, {Label: "Uno", Value: 1}},
		}})
		require.NotNil(t, err)
	})

	t.Run(`unknown type and operator`, func(t *testing.T) {
		require.NotNil(t, CheckFields([]FieldDescriptor{{ID: "a", Type: "rich-text"}}))
		require.NotNil(t, CheckFields([]FieldDescriptor{
			{ID: "a", Type: FieldSwitch},
			{ID: "b", Type: FieldText, DependsOn: &DependsOn{Field: "a", Operator: "matches"}},
		}))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run(`yaml schema`, func(t *testing.T) {
		data := `
id: custom
title: Custom
tabs:
  - id: main
    title: Main
    sections:
      - id: general
        title: General
        fields:
          - id: general.enabled
            type: switch
            label: Enabled
            defaultValue: true
          - id: general.limit
            type: number
            label: Limit
            validation:
              min: 1
              max: 10
            dependsOn:
              field: general.enabled
              value: true
`
		path := filepath.Join(t.TempDir(), "schema.yml")
		require.Nil(t, os.WriteFile(path, []byte(data), 0o600))
		schema, err := LoadFile(path)
		require.Nil(t, err)
		require.Equal(t, "custom", schema.ID)
		fields := schema.Fields()
		require.Len(t, fields, 2)
		require.Equal(t, FieldNumber, fields[1].Type)
		require.Equal(t, float64(10), *fields[1].Validation.Max)
		require.Equal(t, "general.enabled", fields[1].DependsOn.Field)
	})

	t.Run(`yaml schema with cycle is rejected`, func(t *testing.T) {
		data := `
id: broken
tabs:
  - id: main
    sections:
      - id: general
        fields:
          - {id: a, type: switch, dependsOn: {field: b, value: true}}
          - {id: b, type: switch, dependsOn: {field: a, value: true}}
`
		_, err := Parse([]byte(data))
		require.NotNil(t, err)
	})
}
