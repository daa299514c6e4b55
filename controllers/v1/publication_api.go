package apiv1

import (
	"io"

	"academy-apply-backend/controllers"
	publicationhandler "academy-apply-backend/lib/publication"
	"academy-apply-backend/middleware"
	apimodels "academy-apply-backend/models/api"
	dbmodels "academy-apply-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type publicationApiController struct {
	controllers.BaseAPIController
}

func InitPublicationApiRouters(app *fiber.App) {
	controller := publicationApiController{}
	app.Route("publications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Post("upload-proof", controller.uploadProof)
		})
	})
}

// @Summary Yayın ekleme
// @Tags Yayınlar
// @Description Adayın yayın kaydı oluşturması
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dbmodels.PublicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/publications [post]
func (c *publicationApiController) create(ctx *fiber.Ctx) error {
	var payload dbmodels.PublicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := publicationhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Yayın kaydedilemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Yayın listesi
// @Tags Yayınlar
// @Description Adayın yayınları, puanlarıyla birlikte
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]publicationapimodels.PublicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/publications [get]
func (c *publicationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	list, err := publicationhandler.Instance.ListByOwner(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Yayınlar listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Yayın bilgisi
// @Tags Yayınlar
// @Description Yayın bilgisi
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=publicationapimodels.PublicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/publications/{id} [get]
func (c *publicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	resp, err := publicationhandler.Instance.GetByID(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Yayın bilgisi alınamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Yayın kanıtı yükleme
// @Tags Yayınlar
// @Description Yayın için kanıt dosyası yükleme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   proof		formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/publications/{id}/upload-proof [post]
func (c *publicationApiController) uploadProof(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("proof")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kanıt dosyası açılamadı")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kanıt dosyası okunamadı")
	}
	userID := middleware.GetUserID(ctx)
	fileID, err := publicationhandler.Instance.AttachProof(ctx.Context(), userID, id, file.Filename, file.Header.Get("Content-Type"), fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kanıt dosyası yüklenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Yayın silme
// @Tags Yayınlar
// @Description Yayını silme; bağlı başvuru sonuçlanmışsa silinemez
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/publications/{id} [delete]
func (c *publicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = publicationhandler.Instance.Delete(userID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Yayın silinemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
