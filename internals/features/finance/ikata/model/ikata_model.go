package model

import (
	"time"

	"github.com/google/uuid"
)

// IkataModel: iuran IKATA dicatat per rentang bulan berurutan
// (bulan_dari..bulan_sampai) dalam satu tahun. Aturan setoran sama
// dengan Dana Mandiri: flag hanya berpindah false -> true.
type IkataModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	KeluargaID  uuid.UUID `gorm:"type:uuid;not null;index:idx_ikata_keluarga" json:"keluarga_id"`
	Tahun       int       `gorm:"not null;index:idx_ikata_tahun" json:"tahun"`
	BulanDari   int       `gorm:"not null" json:"bulan_dari"`
	BulanSampai int       `gorm:"not null" json:"bulan_sampai"`
	Jumlah      int64     `gorm:"not null" json:"jumlah"`

	Disetor      bool       `gorm:"not null;default:false" json:"disetor"`
	TanggalSetor *time.Time `gorm:"type:date" json:"tanggal_setor,omitempty"`

	TanggalBayar time.Time `gorm:"type:date;not null" json:"tanggal_bayar"`
	DicatatOleh  uuid.UUID `gorm:"type:uuid;not null" json:"dicatat_oleh"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (IkataModel) TableName() string {
	return "ikata"
}
