package settingsform

import (
	settingsschema "company-settings-backend/lib/settings-schema"
)

type View struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tabs        []TabView `json:"tabs"`
}

type TabView struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Icon     string        `json:"icon,omitempty"`
	Sections []SectionView `json:"sections"`
}

type SectionView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Controls    []Control `json:"controls"`
}

// Control одно поле ввода с текущим значением
type Control struct {
	ID          string                       `json:"id"`
	Type        settingsschema.FieldType     `json:"type"`
	Label       string                       `json:"label"`
	Description string                       `json:"description,omitempty"`
	Placeholder string                       `json:"placeholder,omitempty"`
	Value       interface{}                  `json:"value"`
	Required    bool                         `json:"required,omitempty"`
	Disabled    bool                         `json:"disabled,omitempty"`
	Options     []settingsschema.FieldOption `json:"options,omitempty"`
	Min         *float64                     `json:"min,omitempty"`
	Max         *float64                     `json:"max,omitempty"`
	Step        *float64                     `json:"step,omitempty"`
	MinLength   *int                         `json:"minLength,omitempty"`
	MaxLength   *int                         `json:"maxLength,omitempty"`
	Accept      string                       `json:"accept,omitempty"`
	MaxSize     int64                        `json:"maxSize,omitempty"`
}

// Render строит представление формы: только видимые поля, пустые секции и табы отбрасываются
func (f *Form) Render() View {
	values := f.Values()
	view := View{
		ID:          f.schema.ID,
		Title:       f.schema.Title,
		Description: f.schema.Description,
		Tabs:        []TabView{},
	}
	for _, tab := range f.schema.Tabs {
		tabView := TabView{ID: tab.ID, Title: tab.Title, Icon: tab.Icon}
		for _, section := range tab.Sections {
			sectionView := SectionView{ID: section.ID, Title: section.Title, Description: section.Description}
			for _, field := range section.Fields {
				if field.Hidden || !f.index.IsVisible(field.ID, values) {
					continue
				}
				sectionView.Controls = append(sectionView.Controls, newControl(field, values[field.ID]))
			}
			if len(sectionView.Controls) != 0 {
				tabView.Sections = append(tabView.Sections, sectionView)
			}
		}
		if len(tabView.Sections) != 0 {
			view.Tabs = append(view.Tabs, tabView)
		}
	}
	return view
}

func newControl(field settingsschema.FieldDescriptor, value interface{}) Control {
	return Control{
		ID:          field.ID,
		Type:        field.Type,
		Label:       field.Label,
		Description: field.Description,
		Placeholder: field.Placeholder,
		Value:       value,
		Required:    field.Required,
		Disabled:    field.Disabled,
		Options:     field.Options,
		Min:         field.Validation.Min,
		Max:         field.Validation.Max,
		Step:        field.Step,
		MinLength:   field.Validation.MinLength,
		MaxLength:   field.Validation.MaxLength,
		Accept:      field.Accept,
		MaxSize:     field.MaxSize,
	}
}
