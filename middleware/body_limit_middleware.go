package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit ограничивает размер тела запроса, для путей с префиксами из uploadPaths действует uploadLimit
func WithBodyLimit(limit, uploadLimit int64, uploadPaths ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed := limit
		for _, prefix := range uploadPaths {
			if strings.Contains(c.Path(), prefix) {
				allowed = uploadLimit
				break
			}
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength == "" || contentLength == "0" {
			return c.Next()
		}
		size, err := strconv.ParseInt(contentLength, 10, 64)
		if err == nil && size > allowed {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"status": "fail",
				"error":  fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", allowed),
			})
		}
		return c.Next()
	}
}
