package settingsschema

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile читает схему настроек из yaml-файла и проверяет её
func LoadFile(path string) (SettingsSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SettingsSchema{}, errors.Wrap(err, "ошибка чтения файла схемы")
	}
	return Parse(data)
}

func Parse(data []byte) (SettingsSchema, error) {
	var schema SettingsSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return SettingsSchema{}, errors.Wrap(err, "ошибка разбора схемы")
	}
	if err := schema.Check(); err != nil {
		return SettingsSchema{}, errors.Wrapf(err, "схема %q некорректна", schema.ID)
	}
	return schema, nil
}
