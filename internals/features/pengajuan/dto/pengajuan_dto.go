package dto

type CreatePengajuanRequest struct {
	Perihal       string `json:"perihal" validate:"required,min=5"`
	TujuanTingkat string `json:"tujuan_tingkat" validate:"required,oneof=lingkungan wilayah paroki"`
}

// Satu DTO untuk ketiga langkah workflow; field aksi menentukan fungsi
// mesin mana yang dipanggil.
type TransisiRequest struct {
	Nilai  string `json:"nilai" validate:"required"`
	Alasan string `json:"alasan"`
}
