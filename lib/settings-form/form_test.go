package settingsform

import (
	settingsschema "company-settings-backend/lib/settings-schema"
	apperrors "company-settings-backend/lib/utils/app-errors"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newCompanyForm(t *testing.T, initial map[string]interface{}) *Form {
	form, err := New(settingsschema.CompanySettingsSchema, initial)
	require.Nil(t, err)
	return form
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run(`hidden required field does not block submission`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.Nil(t, form.Set("security.ipRestriction", false))
		require.Nil(t, form.Set("security.allowedIpAddresses", ""))

		var persisted map[string]interface{}
		values, err := form.Submit(ctx, func(ctx context.Context, values map[string]interface{}) error {
			persisted = values
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, values, persisted)
		require.Equal(t, false, persisted["security.ipRestriction"])
		require.Equal(t, "", persisted["security.allowedIpAddresses"])
		require.False(t, form.IsDirty())
	})

	t.Run(`visible required field blocks submission`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.Nil(t, form.Set("security.ipRestriction", true))

		called := false
		_, err := form.Submit(ctx, func(ctx context.Context, values map[string]interface{}) error {
			called = true
			return nil
		})
		require.False(t, called)
		validationErr, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		require.Len(t, validationErr.Fields, 1)
		require.Equal(t, "security.allowedIpAddresses", validationErr.Fields[0].FieldID)
		require.True(t, form.IsDirty())
	})

	t.Run(`persistence failure keeps edits`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.Nil(t, form.Set("profile.name", "Globex"))
		_, err := form.Submit(ctx, func(ctx context.Context, values map[string]interface{}) error {
			return errors.New("disk full")
		})
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "disk full")
		require.Equal(t, "Globex", form.Edits()["profile.name"])

		_, err = form.Submit(ctx, func(ctx context.Context, values map[string]interface{}) error {
			return nil
		})
		require.Nil(t, err)
		require.Equal(t, "Globex", form.Value("profile.name"))
		require.Empty(t, form.Edits())
	})

	t.Run(`initial values override defaults and unknown keys are dropped`, func(t *testing.T) {
		form := newCompanyForm(t, map[string]interface{}{
			"profile.name": "Initech",
			"operations":   []interface{}{},
		})
		values := form.Values()
		require.Equal(t, "Initech", values["profile.name"])
		_, ok := values["operations"]
		require.False(t, ok)
		require.Equal(t, float64(90), toFloat(values["security.passwordExpiryDays"]))
	})
}

func TestSet(t *testing.T) {
	t.Run(`unknown field`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		err := form.Set("profile.unknown", "x")
		_, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		require.False(t, form.IsDirty())
	})

	t.Run(`reset drops edits`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.Nil(t, form.Set("profile.name", "Globex"))
		form.Reset()
		require.Equal(t, "Acme Corporation", form.Value("profile.name"))
	})

	t.Run(`disabled field`, func(t *testing.T) {
		schema := settingsschema.SettingsSchema{
			ID: "locked",
			Tabs: []settingsschema.TabDescriptor{{
				ID: "main",
				Sections: []settingsschema.SectionDescriptor{{
					ID: "general",
					Fields: []settingsschema.FieldDescriptor{
						{ID: "general.plan", Type: settingsschema.FieldText, Label: "Plan", Disabled: true, DefaultValue: "free"},
					},
				}},
			}},
		}
		form, err := New(schema, nil)
		require.Nil(t, err)
		require.NotNil(t, form.Set("general.plan", "enterprise"))
		require.Equal(t, "free", form.Value("general.plan"))
	})

	t.Run(`disabled field accepts its current value`, func(t *testing.T) {
		schema := settingsschema.SettingsSchema{
			ID: "locked",
			Tabs: []settingsschema.TabDescriptor{{
				ID: "main",
				Sections: []settingsschema.SectionDescriptor{{
					ID: "limits",
					Fields: []settingsschema.FieldDescriptor{
						{ID: "limits.seats", Type: settingsschema.FieldNumber, Label: "Seats", Disabled: true},
						{ID: "limits.regions", Type: settingsschema.FieldMultiselect, Label: "Regions", Disabled: true,
							Options: []settingsschema.FieldOption{{Label: "EU", Value: "eu"}}},
					},
				}},
			}},
		}
		form, err := New(schema, nil)
		require.Nil(t, err)
		require.Nil(t, form.Set("limits.seats", float64(0)))
		require.Nil(t, form.Set("limits.regions", []interface{}{}))
		require.False(t, form.IsDirty())
		require.NotNil(t, form.Set("limits.seats", float64(5)))
	})
}

func TestRender(t *testing.T) {
	findControl := func(view View, id string) *Control {
		for _, tab := range view.Tabs {
			for _, section := range tab.Sections {
				for i := range section.Controls {
					if section.Controls[i].ID == id {
						return &section.Controls[i]
					}
				}
			}
		}
		return nil
	}

	t.Run(`dependent field appears after edit`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.Nil(t, findControl(form.Render(), "security.allowedIpAddresses"))

		require.Nil(t, form.Set("security.ipRestriction", true))
		control := findControl(form.Render(), "security.allowedIpAddresses")
		require.NotNil(t, control)
		require.True(t, control.Required)
	})

	t.Run(`controls carry current values`, func(t *testing.T) {
		form := newCompanyForm(t, map[string]interface{}{"profile.name": "Initech"})
		view := form.Render()
		require.Equal(t, "company-settings", view.ID)
		require.Len(t, view.Tabs, 6)
		control := findControl(view, "profile.name")
		require.NotNil(t, control)
		require.Equal(t, "Initech", control.Value)
	})

	t.Run(`empty sections are omitted`, func(t *testing.T) {
		schema := settingsschema.SettingsSchema{
			ID: "sparse",
			Tabs: []settingsschema.TabDescriptor{
				{ID: "visible", Sections: []settingsschema.SectionDescriptor{{
					ID:     "one",
					Fields: []settingsschema.FieldDescriptor{{ID: "one.flag", Type: settingsschema.FieldSwitch}},
				}}},
				{ID: "hidden", Sections: []settingsschema.SectionDescriptor{{
					ID:     "two",
					Fields: []settingsschema.FieldDescriptor{{ID: "two.secret", Type: settingsschema.FieldText, Hidden: true}},
				}}},
			},
		}
		form, err := New(schema, nil)
		require.Nil(t, err)
		view := form.Render()
		require.Len(t, view.Tabs, 1)
		require.Equal(t, "visible", view.Tabs[0].ID)
	})
}

func TestAttachFile(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	t.Run(`image becomes data url`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.Nil(t, form.AttachFile("profile.logo", FileUpload{Name: "logo.png", Data: png}))
		value, ok := form.Value("profile.logo").(string)
		require.True(t, ok)
		require.True(t, strings.HasPrefix(value, "data:image/png;base64,"))
		require.Empty(t, form.Validate())
	})

	t.Run(`oversized file is rejected without state change`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		data := make([]byte, 5*1024*1024+1)
		copy(data, png)
		err := form.AttachFile("profile.logo", FileUpload{Name: "logo.png", ContentType: "image/png", Data: data})
		validationErr, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "Maximum file size is 5.00MB", validationErr.Fields[0].Message)
		require.Nil(t, form.Value("profile.logo"))
		require.False(t, form.IsDirty())
	})

	t.Run(`wrong content type`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		err := form.AttachFile("profile.logo", FileUpload{Name: "report.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")})
		require.NotNil(t, err)
	})

	t.Run(`not a file field`, func(t *testing.T) {
		form := newCompanyForm(t, nil)
		require.NotNil(t, form.AttachFile("profile.name", FileUpload{Name: "logo.png", Data: png}))
	})

	t.Run(`clear`, func(t *testing.T) {
		form := newCompanyForm(t, map[string]interface{}{"profile.logo": "data:image/png;base64,AAAA"})
		require.Nil(t, form.ClearFile("profile.logo"))
		require.Nil(t, form.Value("profile.logo"))
	})
}

func TestDocument(t *testing.T) {
	fields := settingsschema.CompanySettingsSchema.Fields()

	t.Run(`build and extract`, func(t *testing.T) {
		values := map[string]interface{}{
			"profile.name": "Initech",
			"integrations.enabledSocialProviders.github": true,
		}
		doc := BuildDocument(values)
		profile, ok := doc["profile"].(map[string]interface{})
		require.True(t, ok)
		require.Equal(t, "Initech", profile["name"])
		require.Equal(t, values, ExtractValues(doc, fields))
	})

	t.Run(`flat keys and foreign keys`, func(t *testing.T) {
		doc := map[string]interface{}{
			"profile.name": "Initech",
			"operations":   []interface{}{map[string]interface{}{"id": 1}},
			"profile":      "broken",
		}
		require.Equal(t, map[string]interface{}{"profile.name": "Initech"}, ExtractValues(doc, fields))
	})
}

func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return -1
}
