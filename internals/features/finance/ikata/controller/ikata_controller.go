package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	"lingkunganku_backend/internals/features/finance/ikata/dto"
	"lingkunganku_backend/internals/features/finance/ikata/model"
	"lingkunganku_backend/internals/features/finance/ikata/service"
	"lingkunganku_backend/internals/features/finance/rekap"
	keluargaModel "lingkunganku_backend/internals/features/lingkungan/keluarga/model"
	notifModel "lingkunganku_backend/internals/features/notifications/model"
	notifService "lingkunganku_backend/internals/features/notifications/service"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type IkataController struct {
	DB *gorm.DB
}

func NewIkataController(db *gorm.DB) *IkataController {
	return &IkataController{DB: db}
}

// GET /api/a/ikata?tahun=&keluarga_id=&page=&per_page=
func (ic *IkataController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ic.DB.Model(&model.IkataModel{})
	if tahunStr := c.Query("tahun"); tahunStr != "" {
		tahun, err := strconv.Atoi(tahunStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
		}
		q = q.Where("tahun = ?", tahun)
	}
	if kidStr := c.Query("keluarga_id"); kidStr != "" {
		kid, err := uuid.Parse(kidStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "keluarga_id tidak valid")
		}
		q = q.Where("keluarga_id = ?", kid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.IkataModel
	if err := q.
		Order("tahun DESC, bulan_dari DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPagination(total, paging))
}

// POST /api/a/ikata
func (ic *IkataController) Create(c *fiber.Ctx) error {
	var req dto.CreateIkataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	if err := rekap.ValidateTahun(req.Tahun, time.Now(), configs.DuesYearBack, configs.DuesYearForward); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.BulanSampai < req.BulanDari {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "bulan_sampai tidak boleh sebelum bulan_dari")
	}

	var keluarga keluargaModel.KeluargaModel
	if err := ic.DB.First(&keluarga, "id = ?", req.KeluargaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}

	overlap, err := service.RentangTumpangTindih(ic.DB, req.KeluargaID, req.Tahun, req.BulanDari, req.BulanSampai)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa rentang")
	}
	if overlap {
		return helper.JsonError(c, fiber.StatusConflict, "Rentang bulan beririsan dengan pembayaran yang sudah tercatat")
	}

	tanggal, err := time.Parse("2006-01-02", req.TanggalBayar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal_bayar harus YYYY-MM-DD")
	}

	pencatat, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	row := model.IkataModel{
		KeluargaID:   req.KeluargaID,
		Tahun:        req.Tahun,
		BulanDari:    req.BulanDari,
		BulanSampai:  req.BulanSampai,
		Jumlah:       req.Jumlah,
		TanggalBayar: tanggal,
		DicatatOleh:  pencatat,
	}
	if err := ic.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pembayaran IKATA")
	}

	notifService.NotifyKeluarga(ic.DB, req.KeluargaID, notifModel.JenisPembayaran,
		fmt.Sprintf("Pembayaran IKATA bulan %d-%d tahun %d sebesar Rp%d telah dicatat.",
			req.BulanDari, req.BulanSampai, req.Tahun, req.Jumlah))

	return helper.JsonCreated(c, "Pembayaran IKATA dicatat", row)
}

// GET /api/a/ikata/rekap/:keluargaId?tahun=
func (ic *IkataController) Rekap(c *fiber.Ctx) error {
	keluargaID, err := uuid.Parse(c.Params("keluargaId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID keluarga tidak valid")
	}

	tahun, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}

	ringkasan, err := service.RekapTahunan(ic.DB, keluargaID, tahun, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonOK(c, "OK", ringkasan)
}

// POST /api/a/ikata/setor
func (ic *IkataController) TandaiSetor(c *fiber.Ctx) error {
	var req dto.SetorIkataRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	tanggal, err := time.Parse("2006-01-02", req.TanggalSetor)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal_setor harus YYYY-MM-DD")
	}

	var updated int64
	txErr := ic.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.IkataModel{}).
			Where("id IN ? AND disetor = false", req.IDs).
			Updates(map[string]any{
				"disetor":       true,
				"tanggal_setor": tanggal,
			})
		if res.Error != nil {
			return res.Error
		}
		updated = res.RowsAffected
		if updated != int64(len(req.IDs)) {
			return gorm.ErrInvalidData
		}
		return nil
	})
	if txErr == gorm.ErrInvalidData {
		return helper.JsonError(c, fiber.StatusConflict, "Sebagian baris sudah disetor atau tidak ditemukan")
	}
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai setoran")
	}

	return helper.JsonUpdated(c, fmt.Sprintf("%d baris ditandai disetor", updated), nil)
}
