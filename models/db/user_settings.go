package dbmodels

import (
	usersapimodels "company-settings-backend/models/api/users"
)

// UserSettings персональные настройки, одна запись на пользователя
type UserSettings struct {
	BaseModel
	UserID      uint    `gorm:"uniqueIndex"`
	Preferences JSONMap `gorm:"type:jsonb"`
}

func (r UserSettings) ToModelView() usersapimodels.UserSettingsView {
	preferences := map[string]interface{}(r.Preferences)
	if preferences == nil {
		preferences = map[string]interface{}{}
	}
	return usersapimodels.UserSettingsView{
		ID:          r.ID,
		UserID:      r.UserID,
		Preferences: preferences,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
