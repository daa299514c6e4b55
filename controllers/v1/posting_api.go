package apiv1

import (
	"academy-apply-backend/controllers"
	postinghandler "academy-apply-backend/lib/posting"
	"academy-apply-backend/middleware"
	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"
	dbmodels "academy-apply-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type postingApiController struct {
	controllers.BaseAPIController
}

func InitPostingApiRouters(app *fiber.App) {
	controller := postingApiController{}
	app.Route("postings", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_status", controller.changeStatus)
		})
	})
}

// @Summary İlan oluşturma
// @Tags İlanlar
// @Description İlan oluşturma
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dbmodels.PostingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings [post]
func (c *postingApiController) create(ctx *fiber.Ctx) error {
	var payload dbmodels.PostingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := postinghandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "İlan oluşturulamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary İlan listesi
// @Tags İlanlar
// @Description Filtreli ilan listesi
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dbmodels.PostingFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings/list [post]
func (c *postingApiController) list(ctx *fiber.Ctx) error {
	var payload dbmodels.PostingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := postinghandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "İlanlar listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary İlan bilgisi
// @Tags İlanlar
// @Description İlan bilgisi
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=postingapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings/{id} [get]
func (c *postingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := postinghandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "İlan bilgisi alınamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary İlan güncelleme
// @Tags İlanlar
// @Description İlan güncelleme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 dbmodels.PostingData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings/{id} [put]
func (c *postingApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dbmodels.PostingData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = postinghandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "İlan güncellenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary İlan durumu değiştirme
// @Tags İlanlar
// @Description İlanı açma veya kapatma
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   status      		query   string  				    	true         "OPEN/CLOSED"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings/{id}/change_status [put]
func (c *postingApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status := models.PostingStatus(ctx.Query("status"))
	if err = postinghandler.Instance.SetStatus(id, status); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "İlan durumu değiştirilemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary İlan silme
// @Tags İlanlar
// @Description Başvurusu olmayan ilanı silme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/postings/{id} [delete]
func (c *postingApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = postinghandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "İlan silinemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
