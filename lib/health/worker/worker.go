package healthworker

import (
	"company-settings-backend/lib/metrics"
	baseworker "company-settings-backend/lib/utils/base-worker"
	"context"
	"time"
)

const (
	firstRunDelay = 5 * time.Second
	checkInterval = 30 * time.Second
)

// PingFunc проверка доступности БД
type PingFunc func() error

func StartWorker(ctx context.Context, ping PingFunc) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("DatabaseHealthWorker", firstRunDelay, checkInterval),
		ping:     ping,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	ping PingFunc
}

func (i impl) handle(ctx context.Context) error {
	if err := i.ping(); err != nil {
		metrics.DatabaseUp.Set(0)
		return err
	}
	metrics.DatabaseUp.Set(1)
	return nil
}
