package rekap

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func juni(tahun int) time.Time {
	return time.Date(tahun, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func bayar(bulan ...int) []Pembayaran {
	out := make([]Pembayaran, 0, len(bulan))
	for _, m := range bulan {
		out = append(out, Pembayaran{Bulan: m, Jumlah: 10000})
	}
	return out
}

func TestSummarizeTahunBerjalan(t *testing.T) {
	// bulan 1,2,3,5 terbayar, jendela berjalan sampai Juni
	r, err := Summarize(bayar(1, 2, 3, 5), 2026, juni(2026))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if got, want := r.BulanLunas, []int{1, 2, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("BulanLunas = %v, want %v", got, want)
	}
	wantTunggakan := []RentangTunggakan{{Dari: 4, Sampai: 4}, {Dari: 6, Sampai: 6}}
	if !reflect.DeepEqual(r.Tunggakan, wantTunggakan) {
		t.Errorf("Tunggakan = %v, want %v", r.Tunggakan, wantTunggakan)
	}
	if r.Lunas {
		t.Error("Lunas = true, want false")
	}
	if r.BelumJatuhTempo {
		t.Error("BelumJatuhTempo = true, want false")
	}
	if r.TotalBayar != 40000 {
		t.Errorf("TotalBayar = %d, want 40000", r.TotalBayar)
	}
}

func TestSummarizeTanpaPembayaran(t *testing.T) {
	// nol pembayaran bukan error: seluruh jendela berjalan jadi tunggakan
	r, err := Summarize(nil, 2026, juni(2026))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := []RentangTunggakan{{Dari: 1, Sampai: 6}}
	if !reflect.DeepEqual(r.Tunggakan, want) {
		t.Errorf("Tunggakan = %v, want %v", r.Tunggakan, want)
	}
	if len(r.BulanLunas) != 0 {
		t.Errorf("BulanLunas = %v, want kosong", r.BulanLunas)
	}
}

func TestSummarizeTahunLampau(t *testing.T) {
	r, err := Summarize(bayar(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12), 2025, juni(2026))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !r.Lunas {
		t.Error("Lunas = false, want true untuk 12 bulan terbayar di tahun lampau")
	}
	if len(r.Tunggakan) != 0 {
		t.Errorf("Tunggakan = %v, want kosong", r.Tunggakan)
	}
}

func TestSummarizeTahunDepan(t *testing.T) {
	// belum ada bulan jatuh tempo: lunas hampa + flag belum_jatuh_tempo
	r, err := Summarize(nil, 2027, juni(2026))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !r.Lunas {
		t.Error("Lunas = false, want true (hampa)")
	}
	if !r.BelumJatuhTempo {
		t.Error("BelumJatuhTempo = false, want true")
	}
	if len(r.Tunggakan) != 0 {
		t.Errorf("Tunggakan = %v, want kosong", r.Tunggakan)
	}
}

func TestSummarizeJumlahNolTidakDihitung(t *testing.T) {
	r, err := Summarize([]Pembayaran{{Bulan: 1, Jumlah: 0}, {Bulan: 2, Jumlah: 5000}}, 2026, juni(2026))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got, want := r.BulanLunas, []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("BulanLunas = %v, want %v", got, want)
	}
}

func TestSummarizeIdempoten(t *testing.T) {
	now := juni(2026)
	p := bayar(1, 3, 4)
	r1, err := Summarize(p, 2026, now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	r2, err := Summarize(p, 2026, now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("dua pemanggilan beda hasil:\n%+v\n%+v", r1, r2)
	}
}

func TestSummarizeBulanInvalid(t *testing.T) {
	_, err := Summarize([]Pembayaran{{Bulan: 13, Jumlah: 1000}}, 2026, juni(2026))
	if !errors.Is(err, ErrBulanTidakValid) {
		t.Errorf("err = %v, want ErrBulanTidakValid", err)
	}
	_, err = Summarize([]Pembayaran{{Bulan: 0, Jumlah: 1000}}, 2026, juni(2026))
	if !errors.Is(err, ErrBulanTidakValid) {
		t.Errorf("err = %v, want ErrBulanTidakValid", err)
	}
}

func TestValidateTahun(t *testing.T) {
	now := juni(2026)
	cases := []struct {
		tahun int
		ok    bool
	}{
		{2026, true},
		{2021, true},  // now-5
		{2029, true},  // now+3
		{2020, false}, // di bawah jendela
		{2030, false}, // di atas jendela
		{999, false},  // bukan 4 digit
		{10000, false},
	}
	for _, tc := range cases {
		err := ValidateTahun(tc.tahun, now, 5, 3)
		if tc.ok && err != nil {
			t.Errorf("ValidateTahun(%d) = %v, want nil", tc.tahun, err)
		}
		if !tc.ok && !errors.Is(err, ErrTahunDiLuarJangkauan) {
			t.Errorf("ValidateTahun(%d) = %v, want ErrTahunDiLuarJangkauan", tc.tahun, err)
		}
	}
}

func TestExpandRentang(t *testing.T) {
	got, err := ExpandRentang(3, 5, 30000)
	if err != nil {
		t.Fatalf("ExpandRentang: %v", err)
	}
	want := []Pembayaran{
		{Bulan: 3, Jumlah: 10000},
		{Bulan: 4, Jumlah: 10000},
		{Bulan: 5, Jumlah: 10000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRentang = %v, want %v", got, want)
	}

	// jumlah tidak habis dibagi: sisa menempel di bulan terakhir,
	// total hasil urai wajib sama dengan jumlah yang disetor
	got, err = ExpandRentang(1, 3, 100000)
	if err != nil {
		t.Fatalf("ExpandRentang: %v", err)
	}
	want = []Pembayaran{
		{Bulan: 1, Jumlah: 33333},
		{Bulan: 2, Jumlah: 33333},
		{Bulan: 3, Jumlah: 33334},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandRentang = %v, want %v", got, want)
	}
	r, err := Summarize(got, 2026, juni(2026))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if r.TotalBayar != 100000 {
		t.Errorf("TotalBayar = %d, want 100000", r.TotalBayar)
	}

	if _, err := ExpandRentang(5, 3, 1000); !errors.Is(err, ErrBulanTidakValid) {
		t.Errorf("rentang terbalik: err = %v, want ErrBulanTidakValid", err)
	}
	if _, err := ExpandRentang(0, 3, 1000); !errors.Is(err, ErrBulanTidakValid) {
		t.Errorf("dari=0: err = %v, want ErrBulanTidakValid", err)
	}
}
