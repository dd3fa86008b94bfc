package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const HeaderRequestID = "X-Request-ID"

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		switch v := value.(type) {
		case nil:
		case string:
			if v != "" {
				f[k] = v
			}
		default:
			f[k] = v
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(TagRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}
		if _, ok := skip[c.Path()]; ok {
			return err
		}

		message := getMessage(c)
		var entry *log.Entry
		if cfg.Logger == nil {
			entry = log.WithFields(getLogrusFields(ftm, c, d))
		} else {
			entry = cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		}
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			entry.Error(message)
		case status >= fiber.StatusMultipleChoices:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
		return err
	}
}

// GetRequestID идентификатор запроса, выставленный middleware
func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(TagRequestID).(string); ok {
		return requestID
	}
	return ""
}

func getMessage(c *fiber.Ctx) string {
	return "запрос api"
}
