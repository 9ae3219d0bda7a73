package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	authHelper "lingkunganku_backend/internals/features/users/auth/helper"
	"lingkunganku_backend/internals/features/users/user/dto"
	userModel "lingkunganku_backend/internals/features/users/user/model"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/a/admin/users?search=&role=&page=&limit=
func (uc *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&userModel.UserModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if roleStr := strings.TrimSpace(c.Query("role")); roleStr != "" {
		role, ok := constants.ParseRole(roleStr)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role filter tidak dikenal")
		}
		q = q.Where("role = ?", role.String())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonList(c, "OK", dto.ToUserResponseList(users), helper.BuildPagination(total, paging))
}

// GET /api/a/admin/users/:id
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", dto.ToUserResponse(user))
}

// PATCH /api/a/admin/users/:id/role
// Pengangkatan pengurus hanya lewat sini, bukan lewat registrasi.
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	role, ok := constants.ParseRole(req.Role)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Role tidak dikenal: "+req.Role)
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := uc.DB.Model(&user).Update("role", role.String()).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update role")
	}

	user.Role = role.String()
	return helper.JsonUpdated(c, "Role berhasil diperbarui", dto.ToUserResponse(user))
}

// PATCH /api/a/admin/users/:id/active
func (uc *UserController) UpdateActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := uc.DB.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status user")
	}

	user.IsActive = *req.IsActive
	return helper.JsonUpdated(c, "Status user berhasil diperbarui", dto.ToUserResponse(user))
}

// PATCH /api/a/admin/users/:id/keluarga
// Tautkan atau lepas akun umat ke data keluarga. KeluargaID null = lepas tautan.
func (uc *UserController) LinkKeluarga(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.LinkKeluargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if err := uc.DB.Model(&user).Update("keluarga_id", req.KeluargaID).Error; err != nil {
		// index parsial uq_users_keluarga menolak dua akun untuk satu keluarga
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Keluarga sudah tertaut ke akun lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan keluarga")
	}

	user.KeluargaID = req.KeluargaID
	return helper.JsonUpdated(c, "Tautan keluarga berhasil diperbarui", dto.ToUserResponse(user))
}

// POST /api/a/admin/users/:id/reset-password
// Reset paksa oleh superuser, tanpa passphrase.
func (uc *UserController) AdminResetPassword(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.AdminResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	hashed, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	if err := uc.DB.Model(&user).Update("password", hashed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal reset password")
	}

	return helper.JsonUpdated(c, "Password berhasil direset", nil)
}
