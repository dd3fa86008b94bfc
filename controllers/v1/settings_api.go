package apiv1

import (
	"company-settings-backend/controllers"
	settingshandler "company-settings-backend/lib/settings"
	settingsform "company-settings-backend/lib/settings-form"
	apimodels "company-settings-backend/models/api"
	"io"

	"github.com/gofiber/fiber/v2"
)

const (
	msgFetchSettingsFailed  = "Failed to fetch company settings"
	msgUpdateSettingsFailed = "Failed to update company settings"
	msgUploadFileFailed     = "Failed to upload file"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Get("", controller.getSettings)
		router.Post("", controller.updateSettings)
		router.Get("form", controller.getForm)
		router.Route("files/:field", func(fileRoute fiber.Router) {
			fileRoute.Post("", controller.uploadFile)
			fileRoute.Delete("", controller.clearFile)
		})
	})
}

// @Summary Настройки компании
// @Tags Настройки компании
// @Description Документ настроек компании, при первом обращении создаётся из значений по умолчанию
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Success 200 {object} apimodels.Response{data=map[string]interface{}}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [get]
func (c *settingsApiController) getSettings(ctx *fiber.Ctx) error {
	doc, err := settingshandler.Instance.Get(c.GetCompanyID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgFetchSettingsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(doc))
}

// @Summary Сохранить настройки компании
// @Tags Настройки компании
// @Description Проверка по схеме и замена документа. Ключи вне схемы отбрасываются
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param	body body	map[string]interface{}	true	"settings document"
// @Success 200 {object} apimodels.Response{data=map[string]interface{}}
// @Failure 400 {object} apimodels.Response{data=settingsapimodels.ValidationErrorsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings [post]
func (c *settingsApiController) updateSettings(ctx *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	doc, err := settingshandler.Instance.Update(ctx.UserContext(), c.GetCompanyID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUpdateSettingsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(doc))
}

// @Summary Форма настроек
// @Tags Настройки компании
// @Description Табы, секции и видимые поля с текущими значениями
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Success 200 {object} apimodels.Response{data=settingsapimodels.SettingsFormView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/form [get]
func (c *settingsApiController) getForm(ctx *fiber.Ctx) error {
	view, err := settingshandler.Instance.Form(c.GetCompanyID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgFetchSettingsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Загрузить файл
// @Tags Настройки компании
// @Description Файл сохраняется в поле типа file в виде data URL
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param   field				path		string	true	"field id, например profile.logo"
// @Param   file				formData	file 	true 	"Файл"
// @Success 200 {object} apimodels.Response{data=map[string]interface{}}
// @Failure 400 {object} apimodels.Response{data=settingsapimodels.ValidationErrorsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/files/{field} [post]
func (c *settingsApiController) uploadFile(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("File is required"))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUploadFileFailed)
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUploadFileFailed)
	}
	upload := settingsform.FileUpload{
		Name:        file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Data:        fileBody,
	}
	doc, err := settingshandler.Instance.AttachFile(ctx.UserContext(), c.GetCompanyID(ctx), ctx.Params("field"), upload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUploadFileFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(doc))
}

// @Summary Удалить файл
// @Tags Настройки компании
// @Param   X-Company-ID		header		int		false	"Company ID"
// @Param   field				path		string	true	"field id"
// @Success 200 {object} apimodels.Response{data=map[string]interface{}}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/settings/files/{field} [delete]
func (c *settingsApiController) clearFile(ctx *fiber.Ctx) error {
	doc, err := settingshandler.Instance.ClearFile(ctx.UserContext(), c.GetCompanyID(ctx), ctx.Params("field"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, msgUpdateSettingsFailed)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(doc))
}
