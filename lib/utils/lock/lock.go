package lock

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout блокировку не удалось получить за отведённое время
var ErrTimeout = errors.New("не удалось получить блокировку")

var lockMap sync.Map

// WithDelay выполняет safeCode под блокировкой key, ожидая её освобождения не дольше wait
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) error {
	deadline := time.NewTimer(wait)
	defer deadline.Stop()
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, struct{}{}); !loaded {
			break
		}
		select {
		case <-deadline.C:
			return ErrTimeout
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), ErrTimeout.Error())
		case <-ticker.C:
		}
	}
	defer lockMap.Delete(key)
	return safeCode()
}
