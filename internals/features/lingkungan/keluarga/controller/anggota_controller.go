package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/features/lingkungan/keluarga/dto"
	"lingkunganku_backend/internals/features/lingkungan/keluarga/model"
	"lingkunganku_backend/internals/features/lingkungan/keluarga/service"
	helper "lingkunganku_backend/internals/helpers"
)

// Sub-resource pasangan & tanggungan. Setiap mutasi menghitung ulang
// jumlah_anggota dalam transaksi yang sama.

// PUT /api/a/keluarga/:id/pasangan (buat atau ganti)
func (kc *KeluargaController) SetPasangan(c *fiber.Ctx) error {
	keluargaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PasanganInput
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var keluarga model.KeluargaModel
	if err := kc.DB.First(&keluarga, "id = ?", keluargaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}

	tgl, err := service.ParseDateInput(req.TanggalLahir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal_lahir harus YYYY-MM-DD")
	}

	var pasangan model.PasanganModel
	txErr := kc.DB.Transaction(func(tx *gorm.DB) error {
		// maksimal satu pasangan: hapus yang lama kalau ada
		if err := tx.Where("keluarga_id = ?", keluargaID).Delete(&model.PasanganModel{}).Error; err != nil {
			return err
		}
		pasangan = model.PasanganModel{
			KeluargaID:   keluargaID,
			Nama:         strings.TrimSpace(req.Nama),
			TanggalLahir: tgl,
		}
		if err := tx.Create(&pasangan).Error; err != nil {
			return err
		}
		return service.RecountAnggota(tx, keluargaID)
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pasangan")
	}

	return helper.JsonUpdated(c, "Pasangan berhasil disimpan", pasangan)
}

// DELETE /api/a/keluarga/:id/pasangan
func (kc *KeluargaController) DeletePasangan(c *fiber.Ctx) error {
	keluargaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	txErr := kc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("keluarga_id = ?", keluargaID).Delete(&model.PasanganModel{}).Error; err != nil {
			return err
		}
		return service.RecountAnggota(tx, keluargaID)
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pasangan")
	}

	return helper.JsonDeleted(c, "Pasangan dihapus", nil)
}

// POST /api/a/keluarga/:id/tanggungan
func (kc *KeluargaController) AddTanggungan(c *fiber.Ctx) error {
	keluargaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TanggunganInput
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var keluarga model.KeluargaModel
	if err := kc.DB.First(&keluarga, "id = ?", keluargaID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
	}

	tgl, err := service.ParseDateInput(req.TanggalLahir)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal_lahir harus YYYY-MM-DD")
	}

	var tanggungan model.TanggunganModel
	txErr := kc.DB.Transaction(func(tx *gorm.DB) error {
		urutan := req.Urutan
		if urutan <= 0 {
			var maxUrutan int
			if err := tx.Model(&model.TanggunganModel{}).
				Where("keluarga_id = ?", keluargaID).
				Select("COALESCE(MAX(urutan), 0)").
				Scan(&maxUrutan).Error; err != nil {
				return err
			}
			urutan = maxUrutan + 1
		}

		tanggungan = model.TanggunganModel{
			KeluargaID:   keluargaID,
			Nama:         strings.TrimSpace(req.Nama),
			Urutan:       urutan,
			TanggalLahir: tgl,
		}
		if err := tx.Create(&tanggungan).Error; err != nil {
			return err
		}
		return service.RecountAnggota(tx, keluargaID)
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah tanggungan")
	}

	return helper.JsonCreated(c, "Tanggungan berhasil ditambahkan", tanggungan)
}

// DELETE /api/a/keluarga/:id/tanggungan/:tanggunganId
func (kc *KeluargaController) DeleteTanggungan(c *fiber.Ctx) error {
	keluargaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	tanggunganID, err := uuid.Parse(c.Params("tanggunganId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tanggungan tidak valid")
	}

	txErr := kc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND keluarga_id = ?", tanggunganID, keluargaID).
			Delete(&model.TanggunganModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return service.RecountAnggota(tx, keluargaID)
	})
	if txErr == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusNotFound, "Tanggungan tidak ditemukan")
	}
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tanggungan")
	}

	return helper.JsonDeleted(c, "Tanggungan dihapus", nil)
}
