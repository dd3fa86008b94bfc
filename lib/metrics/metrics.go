package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsSeeded компании, для которых созданы операции по умолчанию
	OperationsSeeded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "company_settings",
		Name:      "operations_seeded_total",
		Help:      "Number of companies seeded with default operations.",
	})

	// Mutations изменения по сущностям: operation, action, settings, user_settings
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "company_settings",
		Name:      "mutations_total",
		Help:      "Number of persisted mutations by entity and kind.",
	}, []string{"entity", "kind"})

	// ValidationFailures отклонённые проверкой запросы
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "company_settings",
		Name:      "validation_failures_total",
		Help:      "Number of payloads rejected by validation.",
	}, []string{"entity"})

	// StorageErrors ошибки хранилища
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "company_settings",
		Name:      "storage_errors_total",
		Help:      "Number of storage failures by entity.",
	}, []string{"entity"})

	// DatabaseUp результат последней проверки соединения с БД
	DatabaseUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "company_settings",
		Name:      "database_up",
		Help:      "1 when the last database ping succeeded.",
	})
)

const (
	EntityOperation    = "operation"
	EntityAction       = "action"
	EntitySettings     = "settings"
	EntityUserSettings = "user_settings"
)
