package settingsstore

// Provider хранилище документа настроек компании, один документ на компанию
type Provider interface {
	// Load found=false, если документ ещё не сохранялся
	Load(companyID uint) (doc map[string]interface{}, found bool, err error)
	// Save заменяет документ целиком
	Save(companyID uint, doc map[string]interface{}) error
}
