package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

// JobFunc одна итерация задачи, ошибка логируется и не останавливает воркер
type JobFunc func(ctx context.Context) error

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(workerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    workerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	return log.WithField("worker_name", i.WorkerName)
}

// Run выполняет job до отмены ctx: первый раз через firstRunDelay, далее каждые runInterval
func (i BaseImpl) Run(ctx context.Context, job JobFunc) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-timer.C:
			i.runOnce(ctx, logger, job)
			timer.Reset(i.runInterval)
		}
	}
}

func (i BaseImpl) runOnce(ctx context.Context, logger *log.Entry, job JobFunc) {
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	started := time.Now()
	if err := job(ctx); err != nil {
		logger.WithError(err).Error("Задача завершилась с ошибкой")
		return
	}
	logger.WithField("duration", time.Since(started).String()).Debug("Задача выполнена")
}
