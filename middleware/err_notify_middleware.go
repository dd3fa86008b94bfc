package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type errNotification struct {
	Code      int    `json:"code"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	CompanyID uint   `json:"companyId"`
	Error     string `json:"error"`
}

// ErrNotify отправляет сведения об ответах 5xx на addr, пустой addr отключает отправку
func ErrNotify(addr string) fiber.Handler {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if addr == "" {
			return err
		}
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}
		var resp struct {
			Error string `json:"error"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &resp); unmErr != nil {
			resp.Error = string(c.Response().Body())
		}
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}
		payload, marshalErr := json.Marshal(errNotification{
			Code:      statusCode,
			Method:    c.Method(),
			Path:      path,
			CompanyID: GetCompanyID(c),
			Error:     resp.Error,
		})
		if marshalErr != nil {
			log.WithError(marshalErr).Warn("ошибка формирования уведомления об ошибке")
			return err
		}
		go func() {
			reqResp, reqErr := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			_ = reqResp.Body.Close()
		}()
		return err
	}
}
