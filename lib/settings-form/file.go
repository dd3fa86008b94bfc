package settingsform

import (
	settingsschema "company-settings-backend/lib/settings-schema"
	apperrors "company-settings-backend/lib/utils/app-errors"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// AttachFile кладёт файл в поле типа file в виде data URL
func (f *Form) AttachFile(fieldID string, upload FileUpload) error {
	field, ok := f.index[fieldID]
	if !ok || field.Type != settingsschema.FieldFile {
		return apperrors.NewValidationError("поле не принимает файлы",
			apperrors.FieldError{FieldID: fieldID, Message: "Field does not accept files"})
	}
	if field.MaxSize > 0 && int64(len(upload.Data)) > field.MaxSize {
		return apperrors.NewValidationError("файл слишком большой",
			apperrors.FieldError{
				FieldID: fieldID,
				Message: fmt.Sprintf("Maximum file size is %.2fMB", float64(field.MaxSize)/(1024*1024)),
			})
	}
	contentType := detectContentType(upload)
	if !acceptable(field.Accept, contentType, upload.Name) {
		return apperrors.NewValidationError("недопустимый тип файла",
			apperrors.FieldError{FieldID: fieldID, Message: fmt.Sprintf("File type %s is not allowed", contentType)})
	}
	return f.Set(fieldID, "data:"+contentType+";base64,"+base64.StdEncoding.EncodeToString(upload.Data))
}

func (f *Form) ClearFile(fieldID string) error {
	field, ok := f.index[fieldID]
	if !ok || field.Type != settingsschema.FieldFile {
		return apperrors.NewValidationError("поле не принимает файлы",
			apperrors.FieldError{FieldID: fieldID, Message: "Field does not accept files"})
	}
	return f.Set(fieldID, nil)
}

func detectContentType(upload FileUpload) string {
	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(upload.Data)
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	return contentType
}

// acceptable разбирает accept в формате html input: "image/*", "image/png", ".pdf"
func acceptable(accept, contentType, name string) bool {
	if strings.TrimSpace(accept) == "" {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, item := range strings.Split(accept, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		switch {
		case item == "":
			continue
		case strings.HasPrefix(item, "."):
			if ext == item {
				return true
			}
		case strings.HasSuffix(item, "/*"):
			if strings.HasPrefix(contentType, strings.TrimSuffix(item, "*")) {
				return true
			}
		case item == contentType:
			return true
		}
	}
	return false
}
