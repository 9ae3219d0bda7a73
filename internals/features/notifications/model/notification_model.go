package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu model notifikasi untuk semua peristiwa (pembayaran tercatat,
// pengumuman terbit, status pengajuan berubah). Hanya flag dibaca yang
// boleh berubah setelah dibuat; baris hilang hanya lewat clear eksplisit.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient" json:"recipient_id"`
	Pesan       string    `gorm:"type:text;not null" json:"pesan"`
	Jenis       string    `gorm:"type:varchar(30);not null;default:'umum'" json:"jenis"`
	Dibaca      bool      `gorm:"not null;default:false" json:"dibaca"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// Jenis notifikasi
const (
	JenisUmum       = "umum"
	JenisPembayaran = "pembayaran"
	JenisPengumuman = "pengumuman"
	JenisPengajuan  = "pengajuan"
)
