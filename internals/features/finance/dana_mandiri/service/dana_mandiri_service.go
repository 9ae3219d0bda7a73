package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	"lingkunganku_backend/internals/features/finance/dana_mandiri/model"
	"lingkunganku_backend/internals/features/finance/rekap"
)

// RekapTahunan mengambil semua pembayaran (keluarga, tahun) lalu
// menyerahkan perhitungan ke aggregator murni.
func RekapTahunan(db *gorm.DB, keluargaID uuid.UUID, tahun int, now time.Time) (rekap.Ringkasan, error) {
	if err := rekap.ValidateTahun(tahun, now, configs.DuesYearBack, configs.DuesYearForward); err != nil {
		return rekap.Ringkasan{}, err
	}

	var rows []model.DanaMandiriModel
	if err := db.
		Where("keluarga_id = ? AND tahun = ?", keluargaID, tahun).
		Order("bulan ASC").
		Find(&rows).Error; err != nil {
		return rekap.Ringkasan{}, err
	}

	pembayaran := make([]rekap.Pembayaran, 0, len(rows))
	for _, r := range rows {
		pembayaran = append(pembayaran, rekap.Pembayaran{Bulan: r.Bulan, Jumlah: r.Jumlah})
	}

	return rekap.Summarize(pembayaran, tahun, now)
}

// LaporanSetoran: total diterima vs total sudah/belum disetor ke paroki.
// Angka setoran dipisah dari angka penerimaan, jangan dicampur.
type LaporanSetoran struct {
	Tahun        int   `json:"tahun"`
	TotalTerima  int64 `json:"total_terima"`
	TotalDisetor int64 `json:"total_disetor"`
	BelumDisetor int64 `json:"belum_disetor"`
	JumlahBaris  int64 `json:"jumlah_baris"`
}

func HitungLaporanSetoran(db *gorm.DB, tahun int) (LaporanSetoran, error) {
	out := LaporanSetoran{Tahun: tahun}

	type agg struct {
		Total  int64
		Setor  int64
		Jumlah int64
	}
	var a agg
	if err := db.Model(&model.DanaMandiriModel{}).
		Select("COALESCE(SUM(jumlah),0) AS total, COALESCE(SUM(jumlah) FILTER (WHERE disetor),0) AS setor, COUNT(*) AS jumlah").
		Where("tahun = ?", tahun).
		Scan(&a).Error; err != nil {
		return out, err
	}

	out.TotalTerima = a.Total
	out.TotalDisetor = a.Setor
	out.BelumDisetor = a.Total - a.Setor
	out.JumlahBaris = a.Jumlah
	return out, nil
}
