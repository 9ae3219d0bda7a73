package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/features/notifications/model"
	helper "lingkunganku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications?unread=true&page=&per_page=
func (nc *NotificationController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := nc.DB.Model(&model.NotificationModel{}).Where("recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("dibaca = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var rows []model.NotificationModel
	if err := q.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPagination(total, paging))
}

// PATCH /api/u/notifications/:id/read
// Flag dibaca hanya berpindah false -> true.
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := nc.DB.Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, userID).
		Update("dibaca", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", nil)
}

// PATCH /api/u/notifications/read-all
func (nc *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := nc.DB.Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND dibaca = false", userID).
		Update("dibaca", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}

	return helper.JsonUpdated(c, "Semua notifikasi ditandai dibaca", nil)
}

// DELETE /api/u/notifications
// Clear eksplisit oleh pemilik; satu-satunya jalan notifikasi terhapus.
func (nc *NotificationController) ClearMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := nc.DB.
		Where("recipient_id = ?", userID).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus notifikasi")
	}

	return helper.JsonDeleted(c, "Notifikasi dibersihkan", nil)
}
