package dto

type CreateKeluargaRequest struct {
	NamaKepalaKeluarga string  `json:"nama_kepala_keluarga" validate:"required,min=2,max=100"`
	Alamat             string  `json:"alamat" validate:"required"`
	NomorTelepon       *string `json:"nomor_telepon" validate:"omitempty,max=20"`

	Pasangan   *PasanganInput    `json:"pasangan"`
	Tanggungan []TanggunganInput `json:"tanggungan" validate:"dive"`
}

type UpdateKeluargaRequest struct {
	NamaKepalaKeluarga *string `json:"nama_kepala_keluarga" validate:"omitempty,min=2,max=100"`
	Alamat             *string `json:"alamat"`
	NomorTelepon       *string `json:"nomor_telepon" validate:"omitempty,max=20"`
}

// Penutupan lunak: keluarga pindah dari lingkungan.
type TutupKeluargaRequest struct {
	TanggalKeluar string `json:"tanggal_keluar" validate:"required,datetime=2006-01-02"`
}

type PasanganInput struct {
	Nama         string  `json:"nama" validate:"required,min=2,max=100"`
	TanggalLahir *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
}

type TanggunganInput struct {
	Nama         string  `json:"nama" validate:"required,min=2,max=100"`
	Urutan       int     `json:"urutan" validate:"omitempty,min=1"`
	TanggalLahir *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
}
