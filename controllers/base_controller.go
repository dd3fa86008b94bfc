package controllers

import (
	"company-settings-backend/fiberlog"
	apperrors "company-settings-backend/lib/utils/app-errors"
	"company-settings-backend/middleware"
	apimodels "company-settings-backend/models/api"
	settingsapimodels "company-settings-backend/models/api/settings"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	MsgValidationFailed = "Validation failed"
	MsgNotFound         = "Not found"
	MsgAlreadyExists    = "Already exists"
	MsgInvalidID        = "Invalid id"
	MsgInvalidBody      = "Invalid request body"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка распознавания запроса")
		return errors.New(MsgInvalidBody)
	}
	return nil
}

// GetIDByKey числовой идентификатор из параметра пути
func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(key), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New(MsgInvalidID)
	}
	return uint(id), nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (uint, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetCompanyID(ctx *fiber.Ctx) uint {
	return middleware.GetCompanyID(ctx)
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"request_id": fiberlog.GetRequestID(ctx),
		"company_id": middleware.GetCompanyID(ctx),
		"path":       ctx.Path(),
	})
}

// SendError переводит ошибку в статус ответа. Клиент получает только фиксированный текст, детали пишутся в лог
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, failMsg string) error {
	if validationErr, ok := apperrors.AsValidation(err); ok {
		fields := validationErr.Fields
		if fields == nil {
			fields = []apperrors.FieldError{}
		}
		return ctx.Status(fiber.StatusBadRequest).
			JSON(apimodels.NewErrorWithData(MsgValidationFailed, settingsapimodels.ValidationErrorsView{Errors: fields}))
	}
	if apperrors.IsNotFound(err) {
		logger.WithError(err).Info(failMsg)
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(MsgNotFound))
	}
	if apperrors.IsConflict(err) {
		logger.WithError(err).Info(failMsg)
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(MsgAlreadyExists))
	}
	logger.WithError(err).Error(failMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(failMsg))
}
