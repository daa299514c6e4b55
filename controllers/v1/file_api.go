package apiv1

import (
	"academy-apply-backend/controllers"
	filestorage "academy-apply-backend/lib/file-storage"
	"academy-apply-backend/middleware"
	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Get(":id", controller.download)
	})
}

// @Summary Dosya indirme
// @Tags Dosyalar
// @Description Yüklenmiş belgeyi indirme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "file ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.GetFile(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Dosya indirilemedi")
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	if role == models.CandidateRole && rec.OwnerID != userID {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("bu dosyaya erişim yetkiniz yok"))
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
