package middleware

import (
	authutils "academy-apply-backend/lib/utils/auth-utils"
	"academy-apply-backend/models"
	apimodels "academy-apply-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.AdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("işlem bu rol için kapalı"))
		}
		return ctx.Next()
	}
}

func StaffRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if role != models.AdminRole && role != models.ManagerRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("işlem bu rol için kapalı"))
		}
		return ctx.Next()
	}
}
