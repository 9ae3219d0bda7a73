package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status kehidupan keluarga di lingkungan.
const (
	StatusHidup  = "hidup"
	StatusPindah = "pindah"
)

// KeluargaModel: satu kartu keluarga umat. Tidak pernah dihapus — keluarga
// yang pindah ditutup lunak lewat tanggal_keluar, riwayat iuran tetap utuh.
type KeluargaModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NamaKepalaKeluarga string     `gorm:"type:varchar(100);not null" json:"nama_kepala_keluarga"`
	Alamat             string     `gorm:"type:text;not null" json:"alamat"`
	NomorTelepon       *string    `gorm:"type:varchar(20)" json:"nomor_telepon,omitempty"`
	Status             string     `gorm:"type:varchar(10);not null;default:'hidup'" json:"status"`
	TanggalKeluar      *time.Time `gorm:"type:date" json:"tanggal_keluar,omitempty"`
	JumlahAnggota      int        `gorm:"not null;default:1" json:"jumlah_anggota"`

	Pasangan   *PasanganModel    `gorm:"foreignKey:KeluargaID;constraint:OnDelete:CASCADE" json:"pasangan,omitempty"`
	Tanggungan []TanggunganModel `gorm:"foreignKey:KeluargaID;constraint:OnDelete:CASCADE" json:"tanggungan,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KeluargaModel) TableName() string {
	return "keluarga"
}

// Aktif: keluarga masih tercatat di lingkungan (belum ditutup).
func (k *KeluargaModel) Aktif() bool {
	return k.TanggalKeluar == nil && k.Status == StatusHidup
}

// PasanganModel: maksimal satu per keluarga (unique index di keluarga_id).
type PasanganModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	KeluargaID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_pasangan_keluarga" json:"keluarga_id"`
	Nama         string          `gorm:"type:varchar(100);not null" json:"nama"`
	TanggalLahir *datatypes.Date `gorm:"type:date" json:"tanggal_lahir,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PasanganModel) TableName() string {
	return "pasangan"
}

// TanggunganModel: anak atau anggota lain yang ditanggung keluarga,
// berurutan sesuai kolom urutan.
type TanggunganModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	KeluargaID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_tanggungan_keluarga" json:"keluarga_id"`
	Nama         string          `gorm:"type:varchar(100);not null" json:"nama"`
	Urutan       int             `gorm:"not null;default:1" json:"urutan"`
	TanggalLahir *datatypes.Date `gorm:"type:date" json:"tanggal_lahir,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TanggunganModel) TableName() string {
	return "tanggungan"
}
