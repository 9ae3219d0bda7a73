package controller

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/features/finance/dana_mandiri/dto"
	"lingkunganku_backend/internals/features/finance/dana_mandiri/model"
	"lingkunganku_backend/internals/features/finance/dana_mandiri/service"
	keluargaModel "lingkunganku_backend/internals/features/lingkungan/keluarga/model"
	notifModel "lingkunganku_backend/internals/features/notifications/model"
	notifService "lingkunganku_backend/internals/features/notifications/service"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

var namaBulan = [13]string{"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember"}

type DanaMandiriController struct {
	DB *gorm.DB
}

func NewDanaMandiriController(db *gorm.DB) *DanaMandiriController {
	return &DanaMandiriController{DB: db}
}

// GET /api/a/danamandiri?tahun=&keluarga_id=&page=&per_page=
func (dc *DanaMandiriController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := dc.DB.Model(&model.DanaMandiriModel{})
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

	var rows []model.DanaMandiriModel
	if err := q.
		Order("tahun DESC, bulan DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPagination(total, paging))
}

// POST /api/a/danamandiri
func (dc *DanaMandiriController) Create(c *fiber.Ctx) error {
	var req dto.CreateDanaMandiriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row, status, msg := dc.createOne(c, req)
	if msg != "" {
		return helper.JsonError(c, status, msg)
	}

	// fire-and-forget, kegagalan notifikasi tidak membatalkan pencatatan
	notifService.NotifyKeluarga(dc.DB, req.KeluargaID, notifModel.JenisPembayaran,
		fmt.Sprintf("Pembayaran Dana Mandiri %s %d sebesar Rp%d telah dicatat.",
			namaBulan[req.Bulan], req.Tahun, req.Jumlah))

	return helper.JsonCreated(c, "Pembayaran Dana Mandiri dicatat", row)
}

func (dc *DanaMandiriController) createOne(c *fiber.Ctx, req dto.CreateDanaMandiriRequest) (*model.DanaMandiriModel, int, string) {
	if err := rekapValidateTahun(req.Tahun); err != nil {
		return nil, fiber.StatusUnprocessableEntity, err.Error()
	}

	var keluarga keluargaModel.KeluargaModel
	if err := dc.DB.First(&keluarga, "id = ?", req.KeluargaID).Error; err != nil {
		return nil, fiber.StatusNotFound, "Keluarga tidak ditemukan"
	}

	tanggal, err := time.Parse("2006-01-02", req.TanggalBayar)
	if err != nil {
		return nil, fiber.StatusUnprocessableEntity, "Format tanggal_bayar harus YYYY-MM-DD"
	}

	pencatat, err := helper.GetUserUUID(c)
	if err != nil {
		return nil, fiber.StatusUnauthorized, "Unauthorized"
	}

	row := model.DanaMandiriModel{
		KeluargaID:   req.KeluargaID,
		Tahun:        req.Tahun,
		Bulan:        req.Bulan,
		Jumlah:       req.Jumlah,
		TanggalBayar: tanggal,
		DicatatOleh:  pencatat,
	}
	if err := dc.DB.Create(&row).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, fiber.StatusConflict,
				fmt.Sprintf("Iuran %s %d untuk keluarga ini sudah tercatat", namaBulan[req.Bulan], req.Tahun)
		}
		return nil, fiber.StatusInternalServerError, "Gagal mencatat pembayaran"
	}

	return &row, 0, ""
}

// POST /api/a/danamandiri/bulk
// Beberapa bulan sekaligus dalam satu transaksi, gagal satu batal semua.
func (dc *DanaMandiriController) CreateBulk(c *fiber.Ctx) error {
	var req dto.BulkDanaMandiriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := rekapValidateTahun(req.Tahun); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var keluarga keluargaModel.KeluargaModel
	if err := dc.DB.First(&keluarga, "id = ?", req.KeluargaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}

	tanggal, err := time.Parse("2006-01-02", req.TanggalBayar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal_bayar harus YYYY-MM-DD")
	}

	pencatat, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows := make([]model.DanaMandiriModel, 0, len(req.Bulan))
	for _, bulan := range req.Bulan {
		rows = append(rows, model.DanaMandiriModel{
			KeluargaID:   req.KeluargaID,
			Tahun:        req.Tahun,
			Bulan:        bulan,
			Jumlah:       req.JumlahPerBln,
			TanggalBayar: tanggal,
			DicatatOleh:  pencatat,
		})
	}

	if err := dc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Sebagian bulan sudah tercatat, tidak ada yang disimpan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	notifService.NotifyKeluarga(dc.DB, req.KeluargaID, notifModel.JenisPembayaran,
		fmt.Sprintf("Pembayaran Dana Mandiri %d bulan tahun %d telah dicatat.", len(rows), req.Tahun))

	return helper.JsonCreated(c, "Pembayaran Dana Mandiri dicatat", rows)
}

// GET /api/a/danamandiri/rekap/:keluargaId?tahun=
func (dc *DanaMandiriController) Rekap(c *fiber.Ctx) error {
	keluargaID, err := uuid.Parse(c.Params("keluargaId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID keluarga tidak valid")
	}

	tahun, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}

	ringkasan, err := service.RekapTahunan(dc.DB, keluargaID, tahun, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonOK(c, "OK", ringkasan)
}

// GET /api/u/danamandiri/rekap-saya?tahun=
// Umat melihat rekap keluarganya sendiri; keluarga diambil dari token.
func (dc *DanaMandiriController) RekapSaya(c *fiber.Ctx) error {
	keluargaID, err := helper.GetKeluargaUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda belum tertaut ke data keluarga")
	}

	tahun, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}

	ringkasan, err := service.RekapTahunan(dc.DB, keluargaID, tahun, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return helper.JsonOK(c, "OK", ringkasan)
}

// POST /api/a/danamandiri/setor
// Flag disetor hanya berpindah false -> true; baris yang sudah disetor ditolak.
func (dc *DanaMandiriController) TandaiSetor(c *fiber.Ctx) error {
	var req dto.SetorDanaMandiriRequest
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
	txErr := dc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DanaMandiriModel{}).
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

// GET /api/a/danamandiri/laporan-setoran?tahun=
func (dc *DanaMandiriController) LaporanSetoran(c *fiber.Ctx) error {
	tahun, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}

	laporan, err := service.HitungLaporanSetoran(dc.DB, tahun)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan setoran")
	}

	return helper.JsonOK(c, "OK", laporan)
}
