package settingsform

import (
	settingsschema "company-settings-backend/lib/settings-schema"
	"sort"
	"strings"
)

// ExtractValues достаёт значения полей схемы из вложенного документа по пути id ("profile.name" → doc["profile"]["name"]).
// Плоский ключ с точками тоже принимается. Ключи вне схемы отбрасываются
func ExtractValues(doc map[string]interface{}, fields []settingsschema.FieldDescriptor) map[string]interface{} {
	result := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		if value, ok := lookup(doc, field.ID); ok {
			result[field.ID] = value
		}
	}
	return result
}

// BuildDocument обратная операция: плоская карта id → вложенный документ
func BuildDocument(values map[string]interface{}) map[string]interface{} {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	doc := make(map[string]interface{})
	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := doc
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = values[key]
	}
	return doc
}

func lookup(doc map[string]interface{}, path string) (interface{}, bool) {
	if value, ok := doc[path]; ok {
		return value, true
	}
	parts := strings.Split(path, ".")
	var node interface{} = doc
	for _, part := range parts {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return node, true
}
