package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/features/finance/kas/dto"
	"lingkunganku_backend/internals/features/finance/kas/model"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type KasController struct {
	DB   *gorm.DB
	Buku string
}

// Satu controller per buku kas; buku dipatri saat wiring route.
func NewKasController(db *gorm.DB, buku string) *KasController {
	return &KasController{DB: db, Buku: buku}
}

// Baris buku kas dengan saldo berjalan.
type kasRow struct {
	model.KasModel
	Saldo int64 `json:"saldo"`
}

// GET /api/a/{lingkungan|ikata}/kas?tahun=
// Seluruh mutasi tahun tsb urut tanggal, saldo berjalan dihitung dari
// saldo akhir tahun-tahun sebelumnya.
func (kc *KasController) GetLedger(c *fiber.Ctx) error {
	tahun, err := strconv.Atoi(c.Query("tahun", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}

	awalTahun := time.Date(tahun, time.January, 1, 0, 0, 0, 0, time.UTC)

	// saldo awal = akumulasi sebelum tahun berjalan
	var saldoAwal int64
	if err := kc.DB.Model(&model.KasModel{}).
		Select("COALESCE(SUM(debit - kredit), 0)").
		Where("buku = ? AND tanggal < ?", kc.Buku, awalTahun).
		Scan(&saldoAwal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung saldo awal")
	}

	var rows []model.KasModel
	if err := kc.DB.
		Where("buku = ? AND tanggal >= ? AND tanggal < ?",
			kc.Buku, awalTahun, awalTahun.AddDate(1, 0, 0)).
		Order("tanggal ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil buku kas")
	}

	saldo := saldoAwal
	out := make([]kasRow, 0, len(rows))
	for _, r := range rows {
		saldo += r.Debit - r.Kredit
		out = append(out, kasRow{KasModel: r, Saldo: saldo})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"buku":        kc.Buku,
		"tahun":       tahun,
		"saldo_awal":  saldoAwal,
		"saldo_akhir": saldo,
		"mutasi":      out,
	})
}

// POST /api/a/{lingkungan|ikata}/kas
func (kc *KasController) Create(c *fiber.Ctx) error {
	var req dto.CreateKasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	// tepat satu sisi terisi
	if (req.Debit > 0) == (req.Kredit > 0) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Isi salah satu: debit atau kredit, tidak keduanya dan tidak kosong")
	}

	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tanggal harus YYYY-MM-DD")
	}

	pencatat, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	row := model.KasModel{
		Buku:        kc.Buku,
		Tanggal:     tanggal,
		Keterangan:  strings.TrimSpace(req.Keterangan),
		Debit:       req.Debit,
		Kredit:      req.Kredit,
		DicatatOleh: pencatat,
	}
	if err := kc.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat mutasi kas")
	}

	return helper.JsonCreated(c, "Mutasi kas dicatat", row)
}

// GET /api/a/{lingkungan|ikata}/kas/saldo
func (kc *KasController) Saldo(c *fiber.Ctx) error {
	var saldo int64
	if err := kc.DB.Model(&model.KasModel{}).
		Select("COALESCE(SUM(debit - kredit), 0)").
		Where("buku = ?", kc.Buku).
		Scan(&saldo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung saldo")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"buku":  kc.Buku,
		"saldo": saldo,
	})
}
