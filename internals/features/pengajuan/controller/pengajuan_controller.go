package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	notifModel "lingkunganku_backend/internals/features/notifications/model"
	notifService "lingkunganku_backend/internals/features/notifications/service"
	"lingkunganku_backend/internals/features/pengajuan/dto"
	"lingkunganku_backend/internals/features/pengajuan/model"
	"lingkunganku_backend/internals/features/pengajuan/workflow"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type PengajuanController struct {
	DB *gorm.DB
}

func NewPengajuanController(db *gorm.DB) *PengajuanController {
	return &PengajuanController{DB: db}
}

// Respons pengajuan plus turunan mesin workflow.
type pengajuanResponse struct {
	model.PengajuanModel
	TingkatSaatIni string   `json:"tingkat_saat_ini"`
	AksiTersedia   []string `json:"aksi_tersedia"`
}

func toResponse(p model.PengajuanModel) pengajuanResponse {
	s := p.Keadaan()
	return pengajuanResponse{
		PengajuanModel: p,
		TingkatSaatIni: workflow.CurrentTier(s),
		AksiTersedia:   workflow.AllowedActions(s),
	}
}

// tingkatScope menerjemahkan aturan workflow.CurrentTier ke predikat SQL
// di atas kolom tersimpan, supaya filter tingkat ikut memengaruhi total
// dan pembagian halaman, bukan disaring belakangan di memori.
func tingkatScope(tingkat string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		switch tingkat {
		case workflow.TierParoki:
			return q.Where("hasil_akhir <> '' OR update_status = ? OR tindak_lanjut = ?",
				workflow.UpdateDiteruskanParoki, workflow.TindakLanjutParoki)
		case workflow.TierWilayah:
			return q.Where("tindak_lanjut = ? AND update_status <> ?",
				workflow.TindakLanjutWilayah, workflow.UpdateDiteruskanParoki)
		case workflow.TierLingkungan:
			return q.Where("hasil_akhir = '' AND update_status <> ? AND tindak_lanjut NOT IN ?",
				workflow.UpdateDiteruskanParoki,
				[]string{workflow.TindakLanjutWilayah, workflow.TindakLanjutParoki})
		default:
			return q
		}
	}
}

// GET /api/a/approval?status=&tingkat=&page=&per_page=
func (pc *PengajuanController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := pc.DB.Model(&model.PengajuanModel{})
	switch c.Query("status") {
	case workflow.StatusOpen:
		q = q.Where("status = ?", workflow.StatusOpen)
	case workflow.StatusClosed:
		q = q.Where("status = ?", workflow.StatusClosed)
	}
	if tingkat := c.Query("tingkat"); tingkat != "" {
		q = q.Scopes(tingkatScope(tingkat))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengajuan")
	}

	var rows []model.PengajuanModel
	if err := q.
		Order("tanggal_pengajuan DESC, created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}

	out := make([]pengajuanResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toResponse(p))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPagination(total, paging))
}

// GET /api/a/approval/:id
func (pc *PengajuanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p model.PengajuanModel
	if err := pc.DB.First(&p, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", toResponse(p))
}

// GET /api/u/pengajuan/saya
func (pc *PengajuanController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []model.PengajuanModel
	if err := pc.DB.
		Where("pengaju_id = ?", userID).
		Order("tanggal_pengajuan DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan")
	}

	out := make([]pengajuanResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toResponse(p))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/u/pengajuan
func (pc *PengajuanController) Create(c *fiber.Ctx) error {
	var req dto.CreatePengajuanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	awal := workflow.Baru()
	p := model.PengajuanModel{
		TanggalPengajuan: time.Now(),
		Perihal:          strings.TrimSpace(req.Perihal),
		TujuanTingkat:    req.TujuanTingkat,
		PengajuID:        userID,
	}
	p.TerapkanKeadaan(awal)

	if err := pc.DB.Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengajuan")
	}

	return helper.JsonCreated(c, "Pengajuan berhasil dibuat", toResponse(p))
}

// transisi menjalankan satu langkah mesin workflow di dalam transaksi
// dengan row lock, supaya dua pengurus tidak bisa balapan menutup
// pengajuan yang sama lewat cabang berbeda.
func (pc *PengajuanController) transisi(
	c *fiber.Ctx,
	apply func(workflow.Keadaan, string, string) (workflow.Keadaan, error),
	pesanSukses string,
) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TransisiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var p model.PengajuanModel
	txErr := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "id = ?", id).Error; err != nil {
			return err
		}

		next, err := apply(p.Keadaan(), req.Nilai, strings.TrimSpace(req.Alasan))
		if err != nil {
			return err
		}

		p.TerapkanKeadaan(next)
		return tx.Model(&p).Updates(map[string]any{
			"status":           p.Status,
			"tindak_lanjut":    p.TindakLanjut,
			"update_status":    p.UpdateStatus,
			"hasil_akhir":      p.HasilAkhir,
			"alasan_penolakan": p.AlasanPenolakan,
		}).Error
	})

	switch {
	case txErr == nil:
		// notifikasi ke pengaju di luar transaksi, gagal kirim tidak membatalkan
		if p.Status == workflow.StatusClosed {
			pesan := fmt.Sprintf("Pengajuan %q telah selesai diproses.", p.Perihal)
			if workflow.Ditolak(p.Keadaan()) {
				pesan = fmt.Sprintf("Pengajuan %q ditolak: %s", p.Perihal, p.AlasanPenolakan)
			}
			notifService.Notify(pc.DB, p.PengajuID, notifModel.JenisPengajuan, pesan)
		}
		return helper.JsonUpdated(c, pesanSukses, toResponse(p))
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
	case errors.Is(txErr, workflow.ErrSudahFinal),
		errors.Is(txErr, workflow.ErrTransisiTidakValid):
		return helper.JsonError(c, fiber.StatusConflict, txErr.Error())
	case errors.Is(txErr, workflow.ErrAlasanWajib):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, txErr.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses transisi")
	}
}

// PATCH /api/a/approval/:id/tindak-lanjut
func (pc *PengajuanController) TindakLanjut(c *fiber.Ctx) error {
	return pc.transisi(c, workflow.ApplyTindakLanjut, "Tindak lanjut dicatat")
}

// PATCH /api/a/approval/:id/update-status
func (pc *PengajuanController) UpdateStatus(c *fiber.Ctx) error {
	return pc.transisi(c, workflow.ApplyUpdateStatus, "Update status dicatat")
}

// PATCH /api/a/approval/:id/hasil-akhir
func (pc *PengajuanController) HasilAkhir(c *fiber.Ctx) error {
	return pc.transisi(c, workflow.ApplyHasilAkhir, "Hasil akhir dicatat")
}
