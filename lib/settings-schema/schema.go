package settingsschema

type SectionDescriptor struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldDescriptor `json:"fields" yaml:"fields"`
}

type TabDescriptor struct {
	ID       string              `json:"id" yaml:"id"`
	Title    string              `json:"title" yaml:"title"`
	Icon     string              `json:"icon,omitempty" yaml:"icon,omitempty"`
	Sections []SectionDescriptor `json:"sections" yaml:"sections"`
}

type SettingsSchema struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Tabs        []TabDescriptor `json:"tabs" yaml:"tabs"`
}

// Fields возвращает все поля схемы в порядке табов, секций и полей
func (s SettingsSchema) Fields() []FieldDescriptor {
	var fields []FieldDescriptor
	for _, tab := range s.Tabs {
		for _, section := range tab.Sections {
			fields = append(fields, section.Fields...)
		}
	}
	return fields
}

func (s SettingsSchema) Field(id string) (FieldDescriptor, bool) {
	for _, field := range s.Fields() {
		if field.ID == id {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}
