package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/users/auth/service"
	userModel "lingkunganku_backend/internals/features/users/user/model"
	helper "lingkunganku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}

// Profil user yang sedang login, plus menu sesuai perannya.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	role, ok := constants.ParseRole(user.Role)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenal")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"user": fiber.Map{
			"id":          user.ID,
			"user_name":   user.UserName,
			"email":       user.Email,
			"role":        user.Role,
			"keluarga_id": user.KeluargaID,
			"is_active":   user.IsActive,
			"menu":        constants.MenuForRole(role),
		},
	})
}
