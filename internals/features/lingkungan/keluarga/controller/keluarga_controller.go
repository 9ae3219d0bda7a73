package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/features/lingkungan/keluarga/dto"
	"lingkunganku_backend/internals/features/lingkungan/keluarga/model"
	"lingkunganku_backend/internals/features/lingkungan/keluarga/service"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type KeluargaController struct {
	DB *gorm.DB
}

func NewKeluargaController(db *gorm.DB) *KeluargaController {
	return &KeluargaController{DB: db}
}

// GET /api/a/keluarga?search=&status=&page=&per_page=
func (kc *KeluargaController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := kc.DB.Model(&model.KeluargaModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(nama_kepala_keluarga) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	switch strings.TrimSpace(c.Query("status")) {
	case model.StatusHidup:
		q = q.Where("status = ?", model.StatusHidup)
	case model.StatusPindah:
		q = q.Where("status = ?", model.StatusPindah)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung keluarga")
	}

	var rows []model.KeluargaModel
	if err := q.
		Order("nama_kepala_keluarga ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPagination(total, paging))
}

// GET /api/a/keluarga/:id (lengkap dengan pasangan & tanggungan)
func (kc *KeluargaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var keluarga model.KeluargaModel
	if err := kc.DB.
		Preload("Pasangan").
		Preload("Tanggungan", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		First(&keluarga, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", keluarga)
}

// POST /api/a/keluarga
func (kc *KeluargaController) Create(c *fiber.Ctx) error {
	var req dto.CreateKeluargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	keluarga := model.KeluargaModel{
		NamaKepalaKeluarga: strings.TrimSpace(req.NamaKepalaKeluarga),
		Alamat:             strings.TrimSpace(req.Alamat),
		NomorTelepon:       req.NomorTelepon,
		Status:             model.StatusHidup,
	}

	err := kc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&keluarga).Error; err != nil {
			return err
		}

		if req.Pasangan != nil {
			tgl, err := service.ParseDateInput(req.Pasangan.TanggalLahir)
			if err != nil {
				return err
			}
			if err := tx.Create(&model.PasanganModel{
				KeluargaID:   keluarga.ID,
				Nama:         strings.TrimSpace(req.Pasangan.Nama),
				TanggalLahir: tgl,
			}).Error; err != nil {
				return err
			}
		}

		if len(req.Tanggungan) > 0 {
			rows, err := service.BuildTanggungan(keluarga.ID, req.Tanggungan)
			if err != nil {
				return err
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return service.RecountAnggota(tx, keluarga.ID)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data keluarga")
	}

	kc.DB.Preload("Pasangan").Preload("Tanggungan").First(&keluarga, "id = ?", keluarga.ID)
	return helper.JsonCreated(c, "Keluarga berhasil dibuat", keluarga)
}

// PUT /api/a/keluarga/:id
func (kc *KeluargaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateKeluargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var keluarga model.KeluargaModel
	if err := kc.DB.First(&keluarga, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}

	updates := map[string]any{}
	if req.NamaKepalaKeluarga != nil {
		updates["nama_kepala_keluarga"] = strings.TrimSpace(*req.NamaKepalaKeluarga)
	}
	if req.Alamat != nil {
		updates["alamat"] = strings.TrimSpace(*req.Alamat)
	}
	if req.NomorTelepon != nil {
		updates["nomor_telepon"] = req.NomorTelepon
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := kc.DB.Model(&keluarga).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update keluarga")
	}

	kc.DB.First(&keluarga, "id = ?", id)
	return helper.JsonUpdated(c, "Keluarga berhasil diperbarui", keluarga)
}

// POST /api/a/keluarga/:id/tutup
// Penutupan lunak: set status pindah + tanggal keluar. Data dan riwayat
// iuran tidak dihapus.
func (kc *KeluargaController) Tutup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TutupKeluargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	tanggal, err := time.Parse("2006-01-02", req.TanggalKeluar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal_keluar harus YYYY-MM-DD")
	}

	var keluarga model.KeluargaModel
	if err := kc.DB.First(&keluarga, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}
	if keluarga.TanggalKeluar != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Keluarga sudah ditutup")
	}

	if err := kc.DB.Model(&keluarga).Updates(map[string]any{
		"status":         model.StatusPindah,
		"tanggal_keluar": tanggal,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menutup keluarga")
	}

	kc.DB.First(&keluarga, "id = ?", id)
	return helper.JsonUpdated(c, "Keluarga ditandai pindah", keluarga)
}
