package model

import (
	"time"

	"github.com/google/uuid"
)

// Dua buku kas terpisah dalam satu tabel.
const (
	BukuLingkungan = "lingkungan"
	BukuIkata      = "ikata"
)

// KasModel: satu baris mutasi kas, debit atau kredit (tidak keduanya).
// Saldo berjalan dihitung saat query, tidak disimpan.
type KasModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Buku       string    `gorm:"type:varchar(15);not null;index:idx_kas_buku" json:"buku"`
	Tanggal    time.Time `gorm:"type:date;not null" json:"tanggal"`
	Keterangan string    `gorm:"type:text;not null" json:"keterangan"`
	Debit      int64     `gorm:"not null;default:0" json:"debit"`
	Kredit     int64     `gorm:"not null;default:0" json:"kredit"`

	DicatatOleh uuid.UUID `gorm:"type:uuid;not null" json:"dicatat_oleh"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KasModel) TableName() string {
	return "kas"
}

func ValidBuku(buku string) bool {
	return buku == BukuLingkungan || buku == BukuIkata
}
