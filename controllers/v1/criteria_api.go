package apiv1

import (
	"academy-apply-backend/controllers"
	criteriahandler "academy-apply-backend/lib/criteria"
	"academy-apply-backend/middleware"
	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"
	criteriaapimodels "academy-apply-backend/models/api/criteria"

	"github.com/gofiber/fiber/v2"
)

type criteriaApiController struct {
	controllers.BaseAPIController
}

func InitCriteriaApiRouters(app *fiber.App) {
	controller := criteriaApiController{}
	app.Route("criteria", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("reseed", middleware.AdminRoleRequired(), controller.reseed)
		router.Route(":field_group", func(fgRoute fiber.Router) {
			fgRoute.Get("", controller.get)
			fgRoute.Put("", controller.update)
		})
	})
}

// @Summary Kriter listesi
// @Tags Kriterler
// @Description Tüm temel alanların başvuru kriterleri
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]criteriaapimodels.CriteriaView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/criteria [get]
func (c *criteriaApiController) list(ctx *fiber.Ctx) error {
	list, err := criteriahandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kriterler listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Temel alan kriteri
// @Tags Kriterler
// @Description Temel alanın başvuru kriterleri
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   field_group  		path    string  				    	true         "field group"
// @Success 200 {object} apimodels.Response{data=criteriaapimodels.CriteriaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/criteria/{field_group} [get]
func (c *criteriaApiController) get(ctx *fiber.Ctx) error {
	fieldGroup := models.FieldGroup(ctx.Params("field_group"))
	resp, err := criteriahandler.Instance.GetByFieldGroup(fieldGroup)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kriter bilgisi alınamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Kriter güncelleme
// @Tags Kriterler
// @Description Temel alan kriterlerini güncelleme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   field_group  		path    string  				    	true         "field group"
// @Param	body body	 criteriaapimodels.CriteriaData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/criteria/{field_group} [put]
func (c *criteriaApiController) update(ctx *fiber.Ctx) error {
	fieldGroup := models.FieldGroup(ctx.Params("field_group"))
	var payload criteriaapimodels.CriteriaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := criteriahandler.Instance.Update(fieldGroup, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kriterler güncellenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Varsayılan kriterleri geri yükleme
// @Tags Kriterler
// @Description Silinmiş temel alanlar için varsayılan kriter satırlarını geri yükler
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/criteria/reseed [post]
func (c *criteriaApiController) reseed(ctx *fiber.Ctx) error {
	if err := criteriahandler.Instance.Reseed(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Varsayılan kriterler geri yüklenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
