// Package workflow memegang mesin status pengajuan. Seluruh aturan
// transisi hidup di sini sebagai fungsi murni; kolom status di tabel
// pengajuan hanya boleh ditulis lewat paket ini.
package workflow

import "errors"

var (
	ErrSudahFinal         = errors.New("pengajuan sudah final, tidak bisa diubah lagi")
	ErrTransisiTidakValid = errors.New("transisi status tidak valid")
	ErrAlasanWajib        = errors.New("alasan penolakan wajib diisi")
)

// Status keseluruhan
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Tingkat penanganan
const (
	TierLingkungan = "lingkungan"
	TierWilayah    = "wilayah"
	TierParoki     = "paroki"
)

// Tindak lanjut (langkah pertama setelah pengajuan masuk)
const (
	TindakLanjutLingkungan = "diproses_lingkungan"
	TindakLanjutWilayah    = "diproses_wilayah"
	TindakLanjutParoki     = "diproses_paroki"
	TindakLanjutDitolak    = "ditolak"
)

// Update status (langkah kedua)
const (
	UpdateSelesai          = "selesai"
	UpdateDiteruskanParoki = "diteruskan_paroki"
	UpdateDitolak          = "ditolak"
)

// Hasil akhir (hanya setelah sampai paroki)
const (
	HasilSelesai = "selesai"
	HasilDitolak = "ditolak"
)

// Keadaan: potret kolom-kolom workflow sebuah pengajuan. String kosong
// berarti belum diisi.
type Keadaan struct {
	Status          string
	TindakLanjut    string
	UpdateStatus    string
	HasilAkhir      string
	AlasanPenolakan string
}

// Baru: keadaan awal pengajuan yang baru masuk.
func Baru() Keadaan {
	return Keadaan{Status: StatusOpen}
}

// ApplyTindakLanjut: langkah pertama. Penolakan di sini langsung menutup
// pengajuan (ditolak di tingkat asal).
func ApplyTindakLanjut(s Keadaan, nilai, alasan string) (Keadaan, error) {
	if s.Status == StatusClosed {
		return s, ErrSudahFinal
	}
	if s.TindakLanjut != "" {
		return s, ErrTransisiTidakValid
	}

	switch nilai {
	case TindakLanjutDitolak:
		if alasan == "" {
			return s, ErrAlasanWajib
		}
		s.TindakLanjut = nilai
		s.AlasanPenolakan = alasan
		s.Status = StatusClosed
		return s, nil
	case TindakLanjutLingkungan, TindakLanjutWilayah, TindakLanjutParoki:
		s.TindakLanjut = nilai
		return s, nil
	}
	return s, ErrTransisiTidakValid
}

// ApplyUpdateStatus: langkah kedua. Selesai atau ditolak menutup
// pengajuan; diteruskan ke paroki membiarkannya terbuka menunggu hasil
// akhir.
func ApplyUpdateStatus(s Keadaan, nilai, alasan string) (Keadaan, error) {
	if s.Status == StatusClosed {
		return s, ErrSudahFinal
	}
	if s.TindakLanjut == "" || s.UpdateStatus != "" {
		return s, ErrTransisiTidakValid
	}

	switch nilai {
	case UpdateSelesai:
		s.UpdateStatus = nilai
		s.Status = StatusClosed
		return s, nil
	case UpdateDiteruskanParoki:
		// hanya dari wilayah ke atas, lingkungan tidak meneruskan langsung
		if s.TindakLanjut != TindakLanjutWilayah && s.TindakLanjut != TindakLanjutParoki {
			return s, ErrTransisiTidakValid
		}
		s.UpdateStatus = nilai
		return s, nil
	case UpdateDitolak:
		if alasan == "" {
			return s, ErrAlasanWajib
		}
		s.UpdateStatus = nilai
		s.AlasanPenolakan = alasan
		s.Status = StatusClosed
		return s, nil
	}
	return s, ErrTransisiTidakValid
}

// ApplyHasilAkhir: keputusan paroki. Hanya sah setelah pengajuan
// diteruskan; mengisi hasil akhir langsung dari OPEN adalah lompatan
// tingkat dan ditolak.
func ApplyHasilAkhir(s Keadaan, nilai, alasan string) (Keadaan, error) {
	if s.Status == StatusClosed {
		return s, ErrSudahFinal
	}
	if s.UpdateStatus != UpdateDiteruskanParoki {
		return s, ErrTransisiTidakValid
	}

	switch nilai {
	case HasilSelesai:
		s.HasilAkhir = nilai
		s.Status = StatusClosed
		return s, nil
	case HasilDitolak:
		if alasan == "" {
			return s, ErrAlasanWajib
		}
		s.HasilAkhir = nilai
		s.AlasanPenolakan = alasan
		s.Status = StatusClosed
		return s, nil
	}
	return s, ErrTransisiTidakValid
}

// CurrentTier: tingkat pemilik saat ini, diturunkan dari field non-kosong
// yang paling spesifik, bukan dari field yang terakhir ditulis.
func CurrentTier(s Keadaan) string {
	if s.HasilAkhir != "" || s.UpdateStatus == UpdateDiteruskanParoki {
		return TierParoki
	}
	switch s.TindakLanjut {
	case TindakLanjutParoki:
		return TierParoki
	case TindakLanjutWilayah:
		return TierWilayah
	}
	return TierLingkungan
}

// Ditolak: pengajuan berakhir dengan penolakan di tingkat manapun.
func Ditolak(s Keadaan) bool {
	return s.TindakLanjut == TindakLanjutDitolak ||
		s.UpdateStatus == UpdateDitolak ||
		s.HasilAkhir == HasilDitolak
}

// AllowedActions: aksi yang masih bisa diambil dari keadaan ini.
func AllowedActions(s Keadaan) []string {
	if s.Status == StatusClosed {
		return nil
	}
	if s.TindakLanjut == "" {
		return []string{TindakLanjutLingkungan, TindakLanjutWilayah, TindakLanjutParoki, TindakLanjutDitolak}
	}
	if s.UpdateStatus == "" {
		actions := []string{UpdateSelesai, UpdateDitolak}
		if s.TindakLanjut == TindakLanjutWilayah || s.TindakLanjut == TindakLanjutParoki {
			actions = append(actions, UpdateDiteruskanParoki)
		}
		return actions
	}
	// sudah diteruskan, tinggal keputusan paroki
	return []string{HasilSelesai, HasilDitolak}
}
