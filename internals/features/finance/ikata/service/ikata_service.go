package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	"lingkunganku_backend/internals/features/finance/ikata/model"
	"lingkunganku_backend/internals/features/finance/rekap"
)

// RekapTahunan: rentang bayar diurai jadi bulan dulu, lalu diserahkan ke
// aggregator yang sama dengan Dana Mandiri.
func RekapTahunan(db *gorm.DB, keluargaID uuid.UUID, tahun int, now time.Time) (rekap.Ringkasan, error) {
	if err := rekap.ValidateTahun(tahun, now, configs.DuesYearBack, configs.DuesYearForward); err != nil {
		return rekap.Ringkasan{}, err
	}

	var rows []model.IkataModel
	if err := db.
		Where("keluarga_id = ? AND tahun = ?", keluargaID, tahun).
		Order("bulan_dari ASC").
		Find(&rows).Error; err != nil {
		return rekap.Ringkasan{}, err
	}

	pembayaran := make([]rekap.Pembayaran, 0, 12)
	for _, r := range rows {
		expanded, err := rekap.ExpandRentang(r.BulanDari, r.BulanSampai, r.Jumlah)
		if err != nil {
			return rekap.Ringkasan{}, err
		}
		pembayaran = append(pembayaran, expanded...)
	}

	return rekap.Summarize(pembayaran, tahun, now)
}

// RentangTumpangTindih cek apakah rentang baru beririsan dengan rentang
// yang sudah tercatat untuk (keluarga, tahun).
func RentangTumpangTindih(db *gorm.DB, keluargaID uuid.UUID, tahun, dari, sampai int) (bool, error) {
	var count int64
	err := db.Model(&model.IkataModel{}).
		Where("keluarga_id = ? AND tahun = ? AND bulan_dari <= ? AND bulan_sampai >= ?",
			keluargaID, tahun, sampai, dari).
		Count(&count).Error
	return count > 0, err
}
