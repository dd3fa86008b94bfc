package apiv1

import (
	"company-settings-backend/controllers"
	operationshandler "company-settings-backend/lib/operations"
	"company-settings-backend/models"
	apimodels "company-settings-backend/models/api"
	operationsapimodels "company-settings-backend/models/api/operations"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const (
	msgAddActionFailed    = "Failed to add action"
	msgUpdateActionFailed = "Failed to update action"
	msgDeleteActionFailed = "Failed to delete action"
)

type actionsApiController struct {
	controllers.BaseAPIController
}

func InitActionsRouters(app *fiber.App) {
	controller := actionsApiController{}
	app.Route("actions", func(router fiber.Router) {
		router.Post("", controller.add)
		router.Patch(":id", controller.update)
		router.Delete(":id", controller.remove)
	})
}

// @Summary Добавить действие
// @Tags Действия
// @Description Действие создаётся из каталога по типу, enabled по умолчанию true. Повтор типа в операции - 409
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param	body body	 operationsapimodels.AddActionRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=operationsapimodels.ActionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions [post]
func (c *actionsApiController) add(ctx *fiber.Ctx) error {
	var payload operationsapimodels.AddActionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := operationshandler.Instance.AddAction(c.GetCompanyID(ctx), payload.OperationID, payload.Action)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgAddActionFailed)
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить действие
// @Tags Действия
// @Description updateType=toggle меняет enabled, updateType=config заменяет конфиг
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param   id					path		int		true	"action ID"
// @Param	body body	 operationsapimodels.UpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=operationsapimodels.ActionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/{id} [patch]
func (c *actionsApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload operationsapimodels.UpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		if errors.Is(err, operationsapimodels.ErrInvalidUpdateType) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(msgInvalidUpdateType))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	companyID := c.GetCompanyID(ctx)
	var view operationsapimodels.ActionView
	if payload.UpdateType == models.UpdateTypeToggle {
		view, err = operationshandler.Instance.ToggleAction(companyID, id, *payload.Enabled)
	} else {
		view, err = operationshandler.Instance.UpdateActionConfig(companyID, id, payload.Config)
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUpdateActionFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Удалить действие
// @Tags Действия
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param   id					path		int		true	"action ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/actions/{id} [delete]
func (c *actionsApiController) remove(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = operationshandler.Instance.RemoveAction(c.GetCompanyID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgDeleteActionFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
