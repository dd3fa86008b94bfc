package settingsstore

import (
	apperrors "company-settings-backend/lib/utils/app-errors"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

// NewFileInstance документы в каталоге dataDir, по файлу company-<id>.json на компанию
func NewFileInstance(dataDir string) Provider {
	return &fileImpl{
		dataDir: dataDir,
	}
}

type fileImpl struct {
	dataDir string
}

func (i fileImpl) path(companyID uint) string {
	return filepath.Join(i.dataDir, fmt.Sprintf("company-%d.json", companyID))
}

func (i fileImpl) Load(companyID uint) (map[string]interface{}, bool, error) {
	path := i.path(companyID)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStorageError("чтение файла настроек", err)
	}
	doc := map[string]interface{}{}
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, false, apperrors.NewSerializationError(path, err)
	}
	return doc, true, nil
}

// Save пишет во временный файл и переименовывает, читатель не увидит частично записанный документ
func (i fileImpl) Save(companyID uint, doc map[string]interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewSerializationError("документ настроек", err)
	}
	if err = os.MkdirAll(i.dataDir, 0o755); err != nil {
		return apperrors.NewStorageError("создание каталога настроек", err)
	}
	if err = renameio.WriteFile(i.path(companyID), data, 0o644); err != nil {
		return apperrors.NewStorageError("запись файла настроек", err)
	}
	return nil
}
