package model

import (
	"time"

	"github.com/google/uuid"
)

// DanaMandiriModel: satu baris per (keluarga, tahun, bulan). Index unik
// uq_dana_mandiri menolak pembayaran ganda untuk bulan yang sama.
type DanaMandiriModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	KeluargaID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_dana_mandiri,priority:1;index:idx_dana_mandiri_keluarga" json:"keluarga_id"`
	Tahun      int       `gorm:"not null;uniqueIndex:uq_dana_mandiri,priority:2" json:"tahun"`
	Bulan      int       `gorm:"not null;uniqueIndex:uq_dana_mandiri,priority:3" json:"bulan"`
	Jumlah     int64     `gorm:"not null" json:"jumlah"`

	// Setoran ke paroki: flag hanya berpindah false -> true, sekali.
	// TanggalSetor wajib terisi saat flag true.
	Disetor      bool       `gorm:"not null;default:false" json:"disetor"`
	TanggalSetor *time.Time `gorm:"type:date" json:"tanggal_setor,omitempty"`

	TanggalBayar time.Time `gorm:"type:date;not null" json:"tanggal_bayar"`
	DicatatOleh  uuid.UUID `gorm:"type:uuid;not null" json:"dicatat_oleh"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DanaMandiriModel) TableName() string {
	return "dana_mandiri"
}
