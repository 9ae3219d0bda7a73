package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/features/lingkungan/keluarga/dto"
	"lingkunganku_backend/internals/features/lingkungan/keluarga/model"
)

// RecountAnggota hitung ulang jumlah_anggota: kepala keluarga (1) +
// pasangan + tanggungan. Dipanggil setiap kali komposisi keluarga berubah,
// selalu di dalam transaksi yang sama dengan perubahan itu.
func RecountAnggota(tx *gorm.DB, keluargaID uuid.UUID) error {
	var pasanganCount int64
	if err := tx.Model(&model.PasanganModel{}).
		Where("keluarga_id = ?", keluargaID).
		Count(&pasanganCount).Error; err != nil {
		return err
	}

	var tanggunganCount int64
	if err := tx.Model(&model.TanggunganModel{}).
		Where("keluarga_id = ?", keluargaID).
		Count(&tanggunganCount).Error; err != nil {
		return err
	}

	total := 1 + int(pasanganCount) + int(tanggunganCount)
	return tx.Model(&model.KeluargaModel{}).
		Where("id = ?", keluargaID).
		Update("jumlah_anggota", total).Error
}

// ParseDateInput: "2006-01-02" -> datatypes.Date, nil kalau kosong.
func ParseDateInput(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

// BuildTanggungan menyiapkan baris tanggungan dari input, mengisi urutan
// berjalan kalau tidak diberikan.
func BuildTanggungan(keluargaID uuid.UUID, inputs []dto.TanggunganInput) ([]model.TanggunganModel, error) {
	rows := make([]model.TanggunganModel, 0, len(inputs))
	for i, in := range inputs {
		tgl, err := ParseDateInput(in.TanggalLahir)
		if err != nil {
			return nil, err
		}
		urutan := in.Urutan
		if urutan <= 0 {
			urutan = i + 1
		}
		rows = append(rows, model.TanggunganModel{
			KeluargaID:   keluargaID,
			Nama:         in.Nama,
			Urutan:       urutan,
			TanggalLahir: tgl,
		})
	}
	return rows, nil
}
