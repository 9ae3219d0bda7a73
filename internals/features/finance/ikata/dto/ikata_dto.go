package dto

import "github.com/google/uuid"

type CreateIkataRequest struct {
	KeluargaID   uuid.UUID `json:"keluarga_id" validate:"required"`
	Tahun        int       `json:"tahun" validate:"required"`
	BulanDari    int       `json:"bulan_dari" validate:"required,min=1,max=12"`
	BulanSampai  int       `json:"bulan_sampai" validate:"required,min=1,max=12"`
	Jumlah       int64     `json:"jumlah" validate:"required,gt=0"`
	TanggalBayar string    `json:"tanggal_bayar" validate:"required,datetime=2006-01-02"`
}

type SetorIkataRequest struct {
	IDs          []uuid.UUID `json:"ids" validate:"required,min=1"`
	TanggalSetor string      `json:"tanggal_setor" validate:"required,datetime=2006-01-02"`
}
