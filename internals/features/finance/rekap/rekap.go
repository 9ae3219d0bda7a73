// Package rekap merangkum status iuran bulanan sebuah keluarga dalam satu
// tahun: bulan mana yang sudah dibayar dan rentang tunggakan mana yang
// tersisa. Dipakai Dana Mandiri langsung dan IKATA setelah rentang bayar
// diurai jadi bulan.
package rekap

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTahunDiLuarJangkauan = errors.New("tahun di luar jangkauan yang diizinkan")
	ErrBulanTidakValid      = errors.New("bulan harus di antara 1 dan 12")
)

// RentangTunggakan: rentang bulan inklusif yang belum dibayar.
// Satu bulan bolong menghasilkan Dari == Sampai.
type RentangTunggakan struct {
	Dari   int `json:"dari"`
	Sampai int `json:"sampai"`
}

type Ringkasan struct {
	Tahun       int                `json:"tahun"`
	BulanLunas  []int              `json:"bulan_lunas"`
	TotalBayar  int64              `json:"total_bayar"`
	Lunas       bool               `json:"lunas"`
	Tunggakan   []RentangTunggakan `json:"tunggakan"`

	// Tahun yang belum berjalan sama sekali: Lunas true secara hampa,
	// tapi pesan ke umat harus "belum jatuh tempo", bukan "lunas".
	BelumJatuhTempo bool `json:"belum_jatuh_tempo"`
}

// Pembayaran: satu bulan terbayar beserta jumlahnya.
type Pembayaran struct {
	Bulan  int
	Jumlah int64
}

// ValidateTahun memeriksa tahun 4 digit dalam jendela [now-back, now+forward].
func ValidateTahun(tahun int, now time.Time, back, forward int) error {
	if tahun < 1000 || tahun > 9999 {
		return fmt.Errorf("%w: %d", ErrTahunDiLuarJangkauan, tahun)
	}
	cur := now.Year()
	if tahun < cur-back || tahun > cur+forward {
		return fmt.Errorf("%w: %d (diizinkan %d..%d)", ErrTahunDiLuarJangkauan, tahun, cur-back, cur+forward)
	}
	return nil
}

// BulanBerjalan: bulan terakhir yang sudah jatuh tempo untuk tahun tsb.
// Tahun lampau = 12, tahun berjalan = bulan sekarang, tahun depan = 0.
func BulanBerjalan(tahun int, now time.Time) int {
	switch {
	case tahun < now.Year():
		return 12
	case tahun > now.Year():
		return 0
	default:
		return int(now.Month())
	}
}

// Summarize merangkum daftar pembayaran satu keluarga untuk satu tahun.
// Murni: tidak menyentuh DB, deterministik terhadap (pembayaran, tahun, now).
func Summarize(pembayaran []Pembayaran, tahun int, now time.Time) (Ringkasan, error) {
	elapsed := BulanBerjalan(tahun, now)

	var lunasSet [13]bool
	var total int64
	for _, p := range pembayaran {
		if p.Bulan < 1 || p.Bulan > 12 {
			return Ringkasan{}, fmt.Errorf("%w: %d", ErrBulanTidakValid, p.Bulan)
		}
		if p.Jumlah <= 0 {
			continue
		}
		lunasSet[p.Bulan] = true
		total += p.Jumlah
	}

	bulanLunas := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		if lunasSet[m] {
			bulanLunas = append(bulanLunas, m)
		}
	}

	// Tunggakan: deretan maksimal bulan bolong di dalam jendela berjalan.
	tunggakan := []RentangTunggakan{}
	for m := 1; m <= elapsed; m++ {
		if lunasSet[m] {
			continue
		}
		dari := m
		for m+1 <= elapsed && !lunasSet[m+1] {
			m++
		}
		tunggakan = append(tunggakan, RentangTunggakan{Dari: dari, Sampai: m})
	}

	return Ringkasan{
		Tahun:           tahun,
		BulanLunas:      bulanLunas,
		TotalBayar:      total,
		Lunas:           len(tunggakan) == 0,
		Tunggakan:       tunggakan,
		BelumJatuhTempo: elapsed == 0,
	}, nil
}

// ExpandRentang mengurai rentang bayar (dari..sampai) jadi daftar bulan,
// dipakai IKATA sebelum memanggil Summarize.
func ExpandRentang(dari, sampai int, jumlah int64) ([]Pembayaran, error) {
	if dari < 1 || dari > 12 || sampai < 1 || sampai > 12 || sampai < dari {
		return nil, fmt.Errorf("%w: rentang %d..%d", ErrBulanTidakValid, dari, sampai)
	}
	n := sampai - dari + 1
	perBulan := jumlah / int64(n)
	// sisa pembagian menempel di bulan terakhir supaya total uang yang
	// dirangkum tetap sama dengan jumlah yang diterima
	sisa := jumlah % int64(n)
	out := make([]Pembayaran, 0, n)
	for m := dari; m <= sampai; m++ {
		j := perBulan
		if m == sampai {
			j += sisa
		}
		out = append(out, Pembayaran{Bulan: m, Jumlah: j})
	}
	return out, nil
}
