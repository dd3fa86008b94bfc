package settingsschema

import (
	"encoding/json"
	"reflect"
)

type FieldIndex map[string]FieldDescriptor

func Index(fields []FieldDescriptor) FieldIndex {
	index := make(FieldIndex, len(fields))
	for _, field := range fields {
		index[field.ID] = field
	}
	return index
}

// Satisfied сравнивает текущее значение поля-зависимости с ожидаемым значением
func (d DependsOn) Satisfied(actual interface{}) bool {
	switch d.Operator {
	case "", OperatorEquals:
		return looseEqual(actual, d.Value)
	case OperatorNotEquals:
		return !looseEqual(actual, d.Value)
	case OperatorContains:
		list := reflect.ValueOf(actual)
		if actual == nil || (list.Kind() != reflect.Slice && list.Kind() != reflect.Array) {
			return false
		}
		for i := 0; i < list.Len(); i++ {
			if looseEqual(list.Index(i).Interface(), d.Value) {
				return true
			}
		}
		return false
	case OperatorGreaterThan:
		cmp, ok := compare(actual, d.Value)
		return ok && cmp > 0
	case OperatorLessThan:
		cmp, ok := compare(actual, d.Value)
		return ok && cmp < 0
	}
	return true
}

// IsVisible - поле видимо, если выполнено его условие dependsOn и видимо поле, от которого оно зависит
func (idx FieldIndex) IsVisible(fieldID string, state map[string]interface{}) bool {
	seen := make(map[string]bool)
	current := fieldID
	for {
		field, ok := idx[current]
		if !ok || field.DependsOn == nil {
			return true
		}
		if seen[current] {
			return false
		}
		seen[current] = true
		if !field.DependsOn.Satisfied(state[field.DependsOn.Field]) {
			return false
		}
		current = field.DependsOn.Field
	}
}

func looseEqual(a, b interface{}) bool {
	an, aNum := toNumber(a)
	bn, bNum := toNumber(b)
	if aNum && bNum {
		return an == bn
	}
	return reflect.DeepEqual(a, b)
}

// SameValue равенство значений в JSON-представлении: int 0 равен float64 0, []string равен []interface{}
func SameValue(a, b interface{}) bool {
	return reflect.DeepEqual(normalizeJSON(a), normalizeJSON(b))
}

func normalizeJSON(value interface{}) interface{} {
	data, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var result interface{}
	if err = json.Unmarshal(data, &result); err != nil {
		return value
	}
	return result
}

func compare(a, b interface{}) (int, bool) {
	an, aNum := toNumber(a)
	bn, bNum := toNumber(b)
	if aNum && bNum {
		switch {
		case an > bn:
			return 1, true
		case an < bn:
			return -1, true
		}
		return 0, true
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		switch {
		case as > bs:
			return 1, true
		case as < bs:
			return -1, true
		}
		return 0, true
	}
	return 0, false
}
