package dto

type CreateKasRequest struct {
	Tanggal    string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Keterangan string `json:"keterangan" validate:"required"`
	Debit      int64  `json:"debit" validate:"min=0"`
	Kredit     int64  `json:"kredit" validate:"min=0"`
}
