package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	"lingkunganku_backend/internals/features/notifications/model"
	userModel "lingkunganku_backend/internals/features/users/user/model"
)

// Notify mencatat satu notifikasi. Gagal kirim hanya dicatat di log,
// tidak pernah menggagalkan transaksi pemicunya.
func Notify(db *gorm.DB, recipientID uuid.UUID, jenis, pesan string) {
	if recipientID == uuid.Nil || pesan == "" {
		return
	}
	n := model.NotificationModel{
		RecipientID: recipientID,
		Jenis:       jenis,
		Pesan:       pesan,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[NOTIFY] gagal simpan notifikasi untuk %s: %v", recipientID, err)
	}
}

// NotifyRoles fan-out ke semua user aktif yang memegang salah satu role.
func NotifyRoles(db *gorm.DB, roles []constants.Role, jenis, pesan string) {
	if len(roles) == 0 || pesan == "" {
		return
	}

	var users []userModel.UserModel
	if err := db.
		Select("id").
		Where("role IN ? AND is_active = true", constants.RoleStrings(roles)).
		Find(&users).Error; err != nil {
		log.Printf("[NOTIFY] gagal ambil penerima per role: %v", err)
		return
	}

	rows := make([]model.NotificationModel, 0, len(users))
	for _, u := range users {
		rows = append(rows, model.NotificationModel{
			RecipientID: u.ID,
			Jenis:       jenis,
			Pesan:       pesan,
		})
	}
	if len(rows) == 0 {
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Printf("[NOTIFY] gagal fan-out notifikasi: %v", err)
	}
}

// NotifyKeluarga mengirim ke akun umat yang tertaut ke keluarga tsb (kalau ada).
func NotifyKeluarga(db *gorm.DB, keluargaID uuid.UUID, jenis, pesan string) {
	if keluargaID == uuid.Nil {
		return
	}
	var user userModel.UserModel
	err := db.Select("id").Where("keluarga_id = ?", keluargaID).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return
	}
	if err != nil {
		log.Printf("[NOTIFY] gagal cari akun keluarga %s: %v", keluargaID, err)
		return
	}
	Notify(db, user.ID, jenis, pesan)
}
