package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	notifModel "lingkunganku_backend/internals/features/notifications/model"
	notifService "lingkunganku_backend/internals/features/notifications/service"
	"lingkunganku_backend/internals/features/pengumuman/model"
	helper "lingkunganku_backend/internals/helpers"
)

var validate = validator.New()

type PengumumanController struct {
	DB *gorm.DB
}

func NewPengumumanController(db *gorm.DB) *PengumumanController {
	return &PengumumanController{DB: db}
}

type createPengumumanRequest struct {
	Judul        string   `json:"judul" validate:"required,min=3,max=200"`
	Isi          string   `json:"isi" validate:"required"`
	Klasifikasi  string   `json:"klasifikasi" validate:"required"`
	RolePenerima []string `json:"role_penerima"`
	Tenggat      *string  `json:"tenggat" validate:"omitempty,datetime=2006-01-02"`
	Lampiran     []string `json:"lampiran"`
}

// POST /api/a/pengumuman
// Pengumuman dibuat sekali dan tidak bisa diedit setelahnya.
func (pc *PengumumanController) Create(c *fiber.Ctx) error {
	var req createPengumumanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if !model.ValidKlasifikasi(req.Klasifikasi) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Klasifikasi tidak dikenal")
	}

	penerima := make([]string, 0, len(req.RolePenerima))
	penerimaRoles := make([]constants.Role, 0, len(req.RolePenerima))
	for _, r := range req.RolePenerima {
		role, ok := constants.ParseRole(r)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Role penerima tidak dikenal: "+r)
		}
		penerima = append(penerima, role.String())
		penerimaRoles = append(penerimaRoles, role)
	}

	var tenggat *time.Time
	if req.Tenggat != nil && *req.Tenggat != "" {
		t, err := time.Parse("2006-01-02", *req.Tenggat)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Format tenggat harus YYYY-MM-DD")
		}
		tenggat = &t
	}

	penulisID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := model.PengumumanModel{
		Judul:        strings.TrimSpace(req.Judul),
		Isi:          req.Isi,
		Lampiran:     pq.StringArray(req.Lampiran),
		Klasifikasi:  req.Klasifikasi,
		RolePenerima: pq.StringArray(penerima),
		Tenggat:      tenggat,
		PenulisID:    penulisID,
	}
	if err := pc.DB.Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menerbitkan pengumuman")
	}

	// fan-out notifikasi; kosong berarti semua role
	targetRoles := penerimaRoles
	if len(targetRoles) == 0 {
		targetRoles = constants.AllRoles
	}
	notifService.NotifyRoles(pc.DB, targetRoles, notifModel.JenisPengumuman,
		"Pengumuman baru: "+p.Judul)

	return helper.JsonCreated(c, "Pengumuman diterbitkan", p)
}

// GET /api/u/pengumuman
// Umat/pengurus hanya melihat pengumuman untuk role-nya.
func (pc *PengumumanController) GetForViewer(c *fiber.Ctx) error {
	role, err := helper.GetUserRole(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := pc.DB.Model(&model.PengumumanModel{}).
		Where("role_penerima IS NULL OR cardinality(role_penerima) = 0 OR ? = ANY(role_penerima)", role.String())

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var rows []model.PengumumanModel
	if err := q.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPagination(total, paging))
}

// GET /api/u/pengumuman/:id
func (pc *PengumumanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p model.PengumumanModel
	if err := pc.DB.First(&p, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	role, err := helper.GetUserRole(c)
	if err != nil || !p.UntukRole(role.String()) {
		// jangan bocorkan keberadaan pengumuman rahasia
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	return helper.JsonOK(c, "OK", p)
}

// POST /api/a/pengumuman/lampiran (multipart, field "file")
// Upload dilakukan sebelum create; hasilnya daftar path untuk payload create.
func (pc *PengumumanController) UploadLampiran(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File lampiran wajib diunggah di field 'file'")
	}

	saved, err := helper.SaveAttachment("pengumuman", fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan lampiran")
	}

	return helper.JsonCreated(c, "Lampiran tersimpan", fiber.Map{"path": saved})
}

// GET /api/u/pengumuman/:id/lampiran/*
// File hanya dilayani kalau viewer berhak atas pengumumannya, dan path
// resolusi dijaga tetap di bawah uploads root.
func (pc *PengumumanController) ServeLampiran(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var p model.PengumumanModel
	if err := pc.DB.First(&p, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	role, err := helper.GetUserRole(c)
	if err != nil || !p.UntukRole(role.String()) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	rel := c.Params("*")
	found := false
	for _, l := range p.Lampiran {
		if l == rel {
			found = true
			break
		}
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Lampiran tidak ditemukan")
	}

	abs, err := helper.ResolveUpload(rel)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Lampiran tidak ditemukan")
	}

	return c.SendFile(abs)
}
