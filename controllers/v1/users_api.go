package apiv1

import (
	"company-settings-backend/controllers"
	usershandler "company-settings-backend/lib/users"
	apperrors "company-settings-backend/lib/utils/app-errors"
	apimodels "company-settings-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

const (
	msgUserSettingsNotFound     = "User settings not found"
	msgFetchUserSettingsFailed  = "Failed to fetch user settings"
	msgUpdateUserSettingsFailed = "Failed to update user settings"
)

type usersApiController struct {
	controllers.BaseAPIController
}

func InitUsersRouters(app *fiber.App) {
	controller := usersApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get(":id", controller.get)
		router.Patch(":id", controller.patch)
	})
}

// @Summary Настройки пользователя
// @Tags Настройки пользователя
// @Param   id					path		int		true	"user ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserSettingsView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *usersApiController) get(ctx *fiber.Ctx) error {
	userID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := usershandler.Instance.Get(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(msgUserSettingsNotFound))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, msgFetchUserSettingsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Изменить настройки пользователя
// @Tags Настройки пользователя
// @Description JSON merge patch (RFC 7386) поверх {"preferences": ...}, запись создаётся при первом изменении
// @Param   id					path		int		true	"user ID"
// @Param	body body	 map[string]interface{}	true	"merge patch"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserSettingsView}
// @Failure 400 {object} apimodels.Response{data=settingsapimodels.ValidationErrorsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [patch]
func (c *usersApiController) patch(ctx *fiber.Ctx) error {
	userID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := usershandler.Instance.Patch(userID, ctx.Body())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUpdateUserSettingsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
