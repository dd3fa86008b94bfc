package settingsschema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Check проверяет схему при загрузке: уникальность полей, ссылки dependsOn и отсутствие циклов
func (s SettingsSchema) Check() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("schema id is empty")
	}
	fields := s.Fields()
	return CheckFields(fields)
}

func CheckFields(fields []FieldDescriptor) error {
	index := make(map[string]FieldDescriptor, len(fields))
	for _, field := range fields {
		if strings.TrimSpace(field.ID) == "" {
			return errors.New("field id is empty")
		}
		if _, exist := index[field.ID]; exist {
			return errors.Errorf("duplicate field id %q", field.ID)
		}
		if err := checkField(field); err != nil {
			return errors.Wrapf(err, "field %q", field.ID)
		}
		index[field.ID] = field
	}
	for _, field := range fields {
		parts := strings.Split(field.ID, ".")
		for n := 1; n < len(parts); n++ {
			prefix := strings.Join(parts[:n], ".")
			if _, exist := index[prefix]; exist {
				return errors.Errorf("field %q is nested in field %q", field.ID, prefix)
			}
		}
	}
	for _, field := range fields {
		if field.DependsOn == nil {
			continue
		}
		if field.DependsOn.Field == field.ID {
			return errors.Errorf("field %q depends on itself", field.ID)
		}
		if _, exist := index[field.DependsOn.Field]; !exist {
			return errors.Errorf("field %q depends on unknown field %q", field.ID, field.DependsOn.Field)
		}
	}
	return checkCycles(fields, index)
}

func checkField(field FieldDescriptor) error {
	if !field.Type.IsKnown() {
		return errors.Errorf("unknown field type %q", field.Type)
	}
	if field.DependsOn != nil && !field.DependsOn.Operator.IsKnown() {
		return errors.Errorf("unknown dependsOn operator %q", field.DependsOn.Operator)
	}
	if field.Validation.Pattern != "" {
		if _, err := regexp.Compile(field.Validation.Pattern); err != nil {
			return errors.Wrap(err, "invalid pattern")
		}
	}
	if field.Type.HasOptions() {
		seen := make(map[string]bool, len(field.Options))
		for _, opt := range field.Options {
			key := optionKey(opt.Value)
			if seen[key] {
				return errors.Errorf("duplicate option value %q", key)
			}
			seen[key] = true
		}
		if field.Type != FieldMultiselect && len(field.Options) == 0 {
			return errors.New("no options declared")
		}
	}
	v := field.Validation
	if v.Min != nil && v.Max != nil && *v.Min > *v.Max {
		return errors.New("min is greater than max")
	}
	if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
		return errors.New("minLength is greater than maxLength")
	}
	return nil
}

// обход в глубину с тремя цветами, цепочка dependsOn у поля всегда одна
func checkCycles(fields []FieldDescriptor, index map[string]FieldDescriptor) error {
	const (
		white = iota
		grey
		black
	)
	state := make(map[string]int, len(fields))
	for _, field := range fields {
		if state[field.ID] != white {
			continue
		}
		var path []string
		current := field.ID
		for {
			if state[current] == black {
				break
			}
			if state[current] == grey {
				return errors.Errorf("dependsOn cycle: %s", formatCycle(path, current))
			}
			state[current] = grey
			path = append(path, current)
			dep := index[current].DependsOn
			if dep == nil {
				break
			}
			current = dep.Field
		}
		for _, id := range path {
			state[id] = black
		}
	}
	return nil
}

func formatCycle(path []string, start string) string {
	for i, id := range path {
		if id == start {
			return fmt.Sprintf("%s -> %s", strings.Join(path[i:], " -> "), start)
		}
	}
	return strings.Join(path, " -> ")
}
