package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Klasifikasi pengumuman
const (
	KlasifikasiUmum     = "umum"
	KlasifikasiPenting  = "penting"
	KlasifikasiMendesak = "mendesak"
	KlasifikasiRahasia  = "rahasia"
)

// PengumumanModel: pengumuman lingkungan. Sekali terbit tidak diubah;
// tanda baca per umat dilacak lewat notifikasi, bukan di baris ini.
type PengumumanModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Judul       string         `gorm:"type:varchar(200);not null" json:"judul"`
	Isi         string         `gorm:"type:text;not null" json:"isi"`
	Lampiran    pq.StringArray `gorm:"type:text[]" json:"lampiran"`
	Klasifikasi string         `gorm:"type:varchar(15);not null;default:'umum'" json:"klasifikasi"`

	// role penerima; kosong berarti semua role
	RolePenerima pq.StringArray `gorm:"type:text[]" json:"role_penerima"`

	Tenggat   *time.Time `gorm:"type:date" json:"tenggat,omitempty"`
	PenulisID uuid.UUID  `gorm:"type:uuid;not null" json:"penulis_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PengumumanModel) TableName() string {
	return "pengumuman"
}

func ValidKlasifikasi(k string) bool {
	switch k {
	case KlasifikasiUmum, KlasifikasiPenting, KlasifikasiMendesak, KlasifikasiRahasia:
		return true
	}
	return false
}

// UntukRole: pengumuman terlihat oleh role tsb.
func (p *PengumumanModel) UntukRole(role string) bool {
	if len(p.RolePenerima) == 0 {
		return true
	}
	for _, r := range p.RolePenerima {
		if r == role {
			return true
		}
	}
	return false
}
