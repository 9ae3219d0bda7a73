package model

import (
	"time"

	"github.com/google/uuid"

	"lingkunganku_backend/internals/features/pengajuan/workflow"
)

// PengajuanModel: permohonan administratif dari umat/pengurus. Kolom
// status, tindak_lanjut, update_status, hasil_akhir, dan alasan_penolakan
// hanya ditulis lewat mesin workflow, tidak pernah langsung.
type PengajuanModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TanggalPengajuan time.Time `gorm:"type:date;not null" json:"tanggal_pengajuan"`
	Perihal          string    `gorm:"type:text;not null" json:"perihal"`
	TujuanTingkat    string    `gorm:"type:varchar(15);not null" json:"tujuan_tingkat"`

	Status          string `gorm:"type:varchar(10);not null;default:'open';index:idx_pengajuan_status" json:"status"`
	TindakLanjut    string `gorm:"type:varchar(25);not null;default:''" json:"tindak_lanjut"`
	UpdateStatus    string `gorm:"type:varchar(25);not null;default:''" json:"update_status"`
	HasilAkhir      string `gorm:"type:varchar(10);not null;default:''" json:"hasil_akhir"`
	AlasanPenolakan string `gorm:"type:text;not null;default:''" json:"alasan_penolakan"`

	PengajuID uuid.UUID `gorm:"type:uuid;not null;index:idx_pengajuan_pengaju" json:"pengaju_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PengajuanModel) TableName() string {
	return "pengajuan"
}

// Keadaan memetakan kolom workflow ke potret mesin status.
func (p *PengajuanModel) Keadaan() workflow.Keadaan {
	return workflow.Keadaan{
		Status:          p.Status,
		TindakLanjut:    p.TindakLanjut,
		UpdateStatus:    p.UpdateStatus,
		HasilAkhir:      p.HasilAkhir,
		AlasanPenolakan: p.AlasanPenolakan,
	}
}

// TerapkanKeadaan menulis balik hasil transisi ke kolom model.
func (p *PengajuanModel) TerapkanKeadaan(s workflow.Keadaan) {
	p.Status = s.Status
	p.TindakLanjut = s.TindakLanjut
	p.UpdateStatus = s.UpdateStatus
	p.HasilAkhir = s.HasilAkhir
	p.AlasanPenolakan = s.AlasanPenolakan
}
