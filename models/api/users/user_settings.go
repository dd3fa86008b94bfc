package usersapimodels

import "time"

type UserSettingsView struct {
	ID          uint                   `json:"id"`          // идентификатор записи
	UserID      uint                   `json:"userId"`      // пользователь
	Preferences map[string]interface{} `json:"preferences"` // персональные настройки
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}
