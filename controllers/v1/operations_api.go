package apiv1

import (
	"company-settings-backend/controllers"
	xlsexport "company-settings-backend/lib/export/xls"
	operationshandler "company-settings-backend/lib/operations"
	"company-settings-backend/models"
	apimodels "company-settings-backend/models/api"
	operationsapimodels "company-settings-backend/models/api/operations"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const (
	msgInvalidUpdateType      = "Invalid update type"
	msgFetchOperationsFailed  = "Failed to fetch operations"
	msgUpdateOperationFailed  = "Failed to update operation"
	msgExportOperationsFailed = "Failed to export operations"
)

type operationsApiController struct {
	controllers.BaseAPIController
}

func InitOperationsRouters(app *fiber.App) {
	controller := operationsApiController{}
	app.Route("operations", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("export", controller.export)
		router.Patch(":id", controller.update)
	})
}

// @Summary Операции компании
// @Tags Операции
// @Description Список операций с действиями, при первом обращении создаются операции по умолчанию
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Success 200 {object} apimodels.Response{data=[]operationsapimodels.OperationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/operations [get]
func (c *operationsApiController) list(ctx *fiber.Ctx) error {
	list, err := operationshandler.Instance.List(ctx.UserContext(), c.GetCompanyID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgFetchOperationsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка операций в Excel
// @Tags Операции
// @Description Лист операций и матрица действие × операция
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/operations/export [get]
func (c *operationsApiController) export(ctx *fiber.Ctx) error {
	list, err := operationshandler.Instance.List(ctx.UserContext(), c.GetCompanyID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgFetchOperationsFailed)
	}
	data, err := xlsexport.Instance.ExportOperations(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgExportOperationsFailed)
	}
	fileName := fmt.Sprintf("operations-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Изменить операцию
// @Tags Операции
// @Description updateType=toggle меняет enabled, updateType=config заменяет конфиг, без updateType обновляются переданные реквизиты
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param   id					path		int		true	"operation ID"
// @Param	body body	 operationsapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=operationsapimodels.OperationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/operations/{id} [patch]
func (c *operationsApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload operationsapimodels.UpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.ValidateOperation(); err != nil {
		return c.sendInvalidPayload(ctx, err)
	}

	companyID := c.GetCompanyID(ctx)
	var view operationsapimodels.OperationView
	switch payload.UpdateType {
	case models.UpdateTypeToggle:
		view, err = operationshandler.Instance.ToggleOperation(companyID, id, *payload.Enabled)
	case models.UpdateTypeConfig:
		view, err = operationshandler.Instance.UpdateOperationConfig(companyID, id, payload.Config)
	default:
		view, err = operationshandler.Instance.UpdateOperation(companyID, id, payload)
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUpdateOperationFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *operationsApiController) sendInvalidPayload(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, operationsapimodels.ErrInvalidUpdateType) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(msgInvalidUpdateType))
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}
