package settingsschema

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldEmail       FieldType = "email"
	FieldPassword    FieldType = "password"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldCheckbox    FieldType = "checkbox"
	FieldSwitch      FieldType = "switch"
	FieldRadio       FieldType = "radio"
	FieldColor       FieldType = "color"
	FieldDate        FieldType = "date"
	FieldTime        FieldType = "time"
	FieldFile        FieldType = "file"
	FieldSlider      FieldType = "slider"
)

var knownFieldTypes = map[FieldType]bool{
	FieldText: true, FieldTextarea: true, FieldNumber: true, FieldEmail: true, FieldPassword: true,
	FieldSelect: true, FieldMultiselect: true, FieldCheckbox: true, FieldSwitch: true, FieldRadio: true,
	FieldColor: true, FieldDate: true, FieldTime: true, FieldFile: true, FieldSlider: true,
}

func (t FieldType) IsKnown() bool {
	return knownFieldTypes[t]
}

// IsBoolean - checkbox/switch, такие поля никогда не бывают необязательными
func (t FieldType) IsBoolean() bool {
	return t == FieldCheckbox || t == FieldSwitch
}

func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldMultiselect
}

type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "notEquals"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greaterThan"
	OperatorLessThan    Operator = "lessThan"
)

func (o Operator) IsKnown() bool {
	switch o {
	case "", OperatorEquals, OperatorNotEquals, OperatorContains, OperatorGreaterThan, OperatorLessThan:
		return true
	}
	return false
}

type FieldOption struct {
	Label    string      `json:"label" yaml:"label"`
	Value    interface{} `json:"value" yaml:"value"`
	Disabled bool        `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

type DependsOn struct {
	Field    string      `json:"field" yaml:"field"`                           // идентификатор поля, от которого зависит видимость
	Value    interface{} `json:"value" yaml:"value"`                           // значение для сравнения
	Operator Operator    `json:"operator,omitempty" yaml:"operator,omitempty"` // по умолчанию equals
}

type FieldValidation struct {
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

type FieldDescriptor struct {
	ID           string          `json:"id" yaml:"id"` // путь в документе настроек, например profile.name
	Type         FieldType       `json:"type" yaml:"type"`
	Label        string          `json:"label" yaml:"label"`
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Placeholder  string          `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required     bool            `json:"required,omitempty" yaml:"required,omitempty"`
	DefaultValue interface{}     `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	Disabled     bool            `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Hidden       bool            `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Validation   FieldValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
	Options      []FieldOption   `json:"options,omitempty" yaml:"options,omitempty"`
	DependsOn    *DependsOn      `json:"dependsOn,omitempty" yaml:"dependsOn,omitempty"`
	Step         *float64        `json:"step,omitempty" yaml:"step,omitempty"`
	Accept       string          `json:"accept,omitempty" yaml:"accept,omitempty"`
	MaxSize      int64           `json:"maxSize,omitempty" yaml:"maxSize,omitempty"` // байты, только для file
}

func (f FieldDescriptor) OptionValues() []string {
	values := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		values = append(values, optionKey(opt.Value))
	}
	return values
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
