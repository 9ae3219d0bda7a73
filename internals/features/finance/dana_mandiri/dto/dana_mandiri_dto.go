package dto

import "github.com/google/uuid"

type CreateDanaMandiriRequest struct {
	KeluargaID   uuid.UUID `json:"keluarga_id" validate:"required"`
	Tahun        int       `json:"tahun" validate:"required"`
	Bulan        int       `json:"bulan" validate:"required,min=1,max=12"`
	Jumlah       int64     `json:"jumlah" validate:"required,gt=0"`
	TanggalBayar string    `json:"tanggal_bayar" validate:"required,datetime=2006-01-02"`
}

// Entri massal: satu keluarga, beberapa bulan sekaligus.
type BulkDanaMandiriRequest struct {
	KeluargaID   uuid.UUID `json:"keluarga_id" validate:"required"`
	Tahun        int       `json:"tahun" validate:"required"`
	Bulan        []int     `json:"bulan" validate:"required,min=1,dive,min=1,max=12"`
	JumlahPerBln int64     `json:"jumlah_per_bulan" validate:"required,gt=0"`
	TanggalBayar string    `json:"tanggal_bayar" validate:"required,datetime=2006-01-02"`
}

// Tandai setor ke paroki: flag hanya berpindah false -> true.
type SetorDanaMandiriRequest struct {
	IDs          []uuid.UUID `json:"ids" validate:"required,min=1"`
	TanggalSetor string      `json:"tanggal_setor" validate:"required,datetime=2006-01-02"`
}
