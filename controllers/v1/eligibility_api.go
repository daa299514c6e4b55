package apiv1

import (
	"academy-apply-backend/controllers"
	"academy-apply-backend/lib/eligibility"
	"academy-apply-backend/middleware"
	apimodels "academy-apply-backend/models/api"
	eligibilityapimodels "academy-apply-backend/models/api/eligibility"

	"github.com/gofiber/fiber/v2"
)

type eligibilityApiController struct {
	controllers.BaseAPIController
}

func InitEligibilityApiRouters(app *fiber.App) {
	controller := eligibilityApiController{}
	app.Route("eligibility", func(router fiber.Router) {
		router.Post("check", controller.check)
	})
}

// @Summary Ön kontrol
// @Tags Uygunluk
// @Description Adayın kayıtlı yayınlarına göre başvuru uygunluk kontrolü
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 eligibilityapimodels.CheckRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=eligibilityapimodels.CheckResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/eligibility/check [post]
func (c *eligibilityApiController) check(ctx *fiber.Ctx) error {
	var payload eligibilityapimodels.CheckRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	result, stats, err := eligibility.Instance.Check(userID, payload.FieldGroup, payload.LanguageExam, payload.LanguageScore)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Uygunluk kontrolü yapılamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(eligibilityapimodels.CheckResponse{
		Result: result,
		Stats:  stats,
	}))
}
