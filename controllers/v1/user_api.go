package apiv1

import (
	"academy-apply-backend/controllers"
	usershandler "academy-apply-backend/lib/users"
	"academy-apply-backend/middleware"
	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"
	usersapimodels "academy-apply-backend/models/api/users"

	"github.com/gofiber/fiber/v2"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Post("", middleware.AdminRoleRequired(), controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.AdminRoleRequired(), controller.update)
		})
	})
}

// @Summary Kullanıcı oluşturma
// @Tags Kullanıcılar
// @Description Jüri, yönetici veya aday hesabı oluşturma
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.CreateUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload usersapimodels.CreateUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kullanıcı oluşturulamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Role göre listeleme
// @Tags Kullanıcılar
// @Description Role göre aktif kullanıcıları listeleme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 usersapimodels.ListRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/list [post]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var payload usersapimodels.ListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	role := payload.Role
	if role == "" {
		role = models.JuryRole
	}
	list, err := usershandler.Instance.ListByRole(role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kullanıcılar listelenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Kullanıcı bilgisi
// @Tags Kullanıcılar
// @Description Kullanıcı bilgisi
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kullanıcı bilgisi alınamadı")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Kullanıcı güncelleme
// @Tags Kullanıcılar
// @Description Kullanıcı güncelleme
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 usersapimodels.UpdateUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload usersapimodels.UpdateUserRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = usershandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Kullanıcı güncellenemedi")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
