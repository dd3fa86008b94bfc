package middleware

import (
	apimodels "company-settings-backend/models/api"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	HeaderCompanyID = "X-Company-ID"
	companyIDKey    = "company_id"
)

// CompanyScope определяет компанию запроса по заголовку X-Company-ID, без заголовка берётся defaultCompanyID
func CompanyScope(defaultCompanyID uint) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		companyID := defaultCompanyID
		if header := ctx.Get(HeaderCompanyID); header != "" {
			id, err := strconv.ParseUint(header, 10, 64)
			if err != nil || id == 0 {
				return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Invalid company id"))
			}
			companyID = uint(id)
		}
		ctx.Locals(companyIDKey, companyID)
		return ctx.Next()
	}
}

func GetCompanyID(ctx *fiber.Ctx) uint {
	if companyID, ok := ctx.Locals(companyIDKey).(uint); ok {
		return companyID
	}
	return 0
}
