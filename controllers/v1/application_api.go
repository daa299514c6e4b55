package apiv1

import (
	"io"

	"academy-apply-backend/controllers"
	applicationhandler "academy-apply-backend/lib/application"
	xlsexport "academy-apply-backend/lib/export/xls"
	filestorage "academy-apply-backend/lib/file-storage"
	"academy-apply-backend/middleware"
	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"
	applicationapimodels "academy-apply-backend/models/api/application"
	dbmodels "academy-apply-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Get("my", controller.my)
		router.Get("assigned", controller.assigned)
		router.Post("list", middleware.StaffRoleRequired(), controller.list)
		router.Post("export", middleware.StaffRoleRequired(), controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.updateStatus)
			idRoute.Put("jury", controller.assignJury)
			idRoute.Delete("jury/:juror_id", controller.removeJuror)
			idRoute.Post("evaluation", controller.submitEvaluation)
		})
	})
}

// @Summary Başvuru oluşturma
// @Tags Başvurular
// @Description Adayın ilana başvurusu; uygunluk kontrolü sunucu tarafında tekrarlanır
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) submit(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := applicationhandler.Instance.Submit(ctx.Context(), userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvuru oluşturulamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Başvurularım
// @Tags Başvurular
// @Description Adayın kendi başvuruları
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/my [get]
func (c *applicationApiController) my(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	filter := dbmodels.ApplicationFilter{CandidateID: userID}
	filter.Page = ctx.QueryInt("page")
	filter.Limit = ctx.QueryInt("limit")
	list, rowCount, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvurular listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Atanmış başvurular
// @Tags Başvurular
// @Description Jüri üyesine atanmış başvurular
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/assigned [get]
func (c *applicationApiController) assigned(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	filter := dbmodels.ApplicationFilter{JurorID: userID}
	filter.Page = ctx.QueryInt("page")
	filter.Limit = ctx.QueryInt("limit")
	list, rowCount, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvurular listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Başvuru listesi
// @Tags Başvurular
// @Description Filtreli başvuru listesi
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicationhandler.Instance.List(payload.Filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvurular listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Başvuru dışa aktarma
// @Tags Başvurular
// @Description Filtreli başvuru listesini xlsx olarak indirme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ListRequest	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/export [post]
func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	records, err := applicationhandler.Instance.ListRecords(payload.Filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvurular listelenemedi")
	}
	buf, err := xlsexport.Instance.ExportApplicationList(records)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Dışa aktarma dosyası oluşturulamadı")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="basvurular.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Başvuru bilgisi
// @Tags Başvurular
// @Description Başvuru detayı; aday kendi başvurusunu, jüri atandığı başvuruyu görür
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvuru bilgisi alınamadı")
	}
	if !canViewApplication(ctx, resp) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("bu başvuruya erişim yetkiniz yok"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func canViewApplication(ctx *fiber.Ctx, view applicationapimodels.ApplicationView) bool {
	userID := middleware.GetUserID(ctx)
	switch middleware.GetUserRole(ctx) {
	case models.AdminRole, models.ManagerRole:
		return true
	case models.CandidateRole:
		return view.CandidateID == userID
	case models.JuryRole:
		for _, member := range view.Jury {
			if member.JurorID == userID {
				return true
			}
		}
	}
	return false
}

// @Summary Jüri atama
// @Tags Başvurular
// @Description Başvuruya jüri üyeleri atama
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.AssignJuryRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/jury [put]
func (c *applicationApiController) assignJury(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.AssignJuryRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = applicationhandler.Instance.AssignJury(id, userID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Jüri ataması yapılamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Jüri üyesi çıkarma
// @Tags Başvurular
// @Description Paneldeki jüri üyesini çıkarma
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   juror_id    		path    string  				    	true         "juror ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/jury/{juror_id} [delete]
func (c *applicationApiController) removeJuror(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	jurorID := ctx.Params("juror_id")
	if jurorID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("jüri üyesi kimliği belirtilmedi"))
	}
	userID := middleware.GetUserID(ctx)
	if err = applicationhandler.Instance.RemoveJuror(ctx.Context(), id, jurorID, userID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Jüri üyesi çıkarılamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Değerlendirme gönderme
// @Tags Başvurular
// @Description Jüri üyesinin kararını ve isteğe bağlı raporunu göndermesi
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   decision    		formData	string	true	"POSITIVE/NEGATIVE"
// @Param   comments    		formData	string	false	"comments"
// @Param   report				formData	file 	false 	"report file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/evaluation [post]
func (c *applicationApiController) submitEvaluation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	payload := applicationapimodels.EvaluationRequest{
		Decision: models.EvaluationDecision(ctx.FormValue("decision")),
		Comments: ctx.FormValue("comments"),
	}

	reportFileID := ""
	if file, fErr := ctx.FormFile("report"); fErr == nil {
		buffer, err := file.Open()
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Rapor dosyası açılamadı")
		}
		defer buffer.Close()
		fileBody, err := io.ReadAll(buffer)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Rapor dosyası okunamadı")
		}
		reportFileID, err = filestorage.Instance.Upload(ctx.Context(), filestorage.UploadMeta{
			Name:          file.Filename,
			OwnerID:       userID,
			ApplicationID: &id,
			Type:          dbmodels.JuryReport,
			ContentType:   file.Header.Get("Content-Type"),
		}, fileBody)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "Rapor dosyası yüklenemedi")
		}
	}

	if err = applicationhandler.Instance.SubmitEvaluation(ctx.Context(), id, userID, payload, reportFileID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Değerlendirme kaydedilemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Durum güncelleme
// @Tags Başvurular
// @Description Başvuru durumunu elle güncelleme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 applicationapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id}/status [put]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	if err = applicationhandler.Instance.UpdateStatus(id, userID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvuru durumu güncellenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Başvuru silme
// @Tags Başvurular
// @Description Başvuruyu belgeleriyle birlikte silme; yayın kayıtları korunur
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.Delete(ctx.Context(), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Başvuru silinemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
