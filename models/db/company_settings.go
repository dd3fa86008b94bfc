package dbmodels

// CompanySettings документ настроек компании, одна запись на компанию
type CompanySettings struct {
	BaseModel
	CompanyID uint    `gorm:"uniqueIndex"`
	Document  JSONMap `gorm:"type:jsonb"`
}
