package workflow

import (
	"errors"
	"testing"
)

// Lintasan a: ditolak langsung di tingkat asal.
func TestDitolakDiTingkatAsal(t *testing.T) {
	s, err := ApplyTindakLanjut(Baru(), TindakLanjutDitolak, "dana tidak tersedia")
	if err != nil {
		t.Fatalf("ApplyTindakLanjut: %v", err)
	}
	if s.Status != StatusClosed {
		t.Errorf("Status = %q, want closed", s.Status)
	}
	if s.AlasanPenolakan == "" {
		t.Error("AlasanPenolakan kosong pada penolakan")
	}
	if !Ditolak(s) {
		t.Error("Ditolak = false, want true")
	}
}

// Lintasan b: diproses dan selesai di lingkungan.
func TestSelesaiDiLingkungan(t *testing.T) {
	s, err := ApplyTindakLanjut(Baru(), TindakLanjutLingkungan, "")
	if err != nil {
		t.Fatalf("ApplyTindakLanjut: %v", err)
	}
	if s.Status != StatusOpen {
		t.Errorf("Status = %q, want open setelah tindak lanjut", s.Status)
	}

	s, err = ApplyUpdateStatus(s, UpdateSelesai, "")
	if err != nil {
		t.Fatalf("ApplyUpdateStatus: %v", err)
	}
	if s.Status != StatusClosed {
		t.Errorf("Status = %q, want closed", s.Status)
	}
	if s.AlasanPenolakan != "" {
		t.Errorf("AlasanPenolakan = %q, want kosong pada selesai", s.AlasanPenolakan)
	}
}

// Lintasan c: diteruskan ke paroki lalu diputus di sana.
func TestDiteruskanKeParoki(t *testing.T) {
	for _, hasil := range []string{HasilSelesai, HasilDitolak} {
		s, err := ApplyTindakLanjut(Baru(), TindakLanjutWilayah, "")
		if err != nil {
			t.Fatalf("ApplyTindakLanjut: %v", err)
		}
		s, err = ApplyUpdateStatus(s, UpdateDiteruskanParoki, "")
		if err != nil {
			t.Fatalf("ApplyUpdateStatus: %v", err)
		}
		if s.Status != StatusOpen {
			t.Errorf("Status = %q, want open menunggu keputusan paroki", s.Status)
		}
		if got := CurrentTier(s); got != TierParoki {
			t.Errorf("CurrentTier = %q, want paroki setelah diteruskan", got)
		}

		alasan := ""
		if hasil == HasilDitolak {
			alasan = "tidak sesuai prioritas paroki"
		}
		s, err = ApplyHasilAkhir(s, hasil, alasan)
		if err != nil {
			t.Fatalf("ApplyHasilAkhir(%s): %v", hasil, err)
		}
		if s.Status != StatusClosed {
			t.Errorf("Status = %q, want closed", s.Status)
		}
		if hasil == HasilDitolak && s.AlasanPenolakan == "" {
			t.Error("AlasanPenolakan kosong pada hasil ditolak")
		}
		if hasil == HasilSelesai && s.AlasanPenolakan != "" {
			t.Errorf("AlasanPenolakan = %q, want kosong pada hasil selesai", s.AlasanPenolakan)
		}
	}
}

// Lintasan d: ditolak di tingkat antara setelah tindak lanjut.
func TestDitolakSetelahTindakLanjut(t *testing.T) {
	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutWilayah, "")
	s, err := ApplyUpdateStatus(s, UpdateDitolak, "tidak lengkap")
	if err != nil {
		t.Fatalf("ApplyUpdateStatus: %v", err)
	}
	if s.Status != StatusClosed || !Ditolak(s) {
		t.Errorf("keadaan = %+v, want closed dan ditolak", s)
	}
}

// Setelah CLOSED semua transisi gagal; tidak ada jalan kembali ke OPEN.
func TestTidakAdaReopen(t *testing.T) {
	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutDitolak, "alasan")

	if _, err := ApplyTindakLanjut(s, TindakLanjutLingkungan, ""); !errors.Is(err, ErrSudahFinal) {
		t.Errorf("ApplyTindakLanjut setelah closed: err = %v, want ErrSudahFinal", err)
	}
	if _, err := ApplyUpdateStatus(s, UpdateSelesai, ""); !errors.Is(err, ErrSudahFinal) {
		t.Errorf("ApplyUpdateStatus setelah closed: err = %v, want ErrSudahFinal", err)
	}
	if _, err := ApplyHasilAkhir(s, HasilSelesai, ""); !errors.Is(err, ErrSudahFinal) {
		t.Errorf("ApplyHasilAkhir setelah closed: err = %v, want ErrSudahFinal", err)
	}
}

// Lompatan tingkat: hasil akhir langsung dari OPEN ditolak.
func TestLompatanTingkatDitolak(t *testing.T) {
	if _, err := ApplyHasilAkhir(Baru(), HasilSelesai, ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("hasil akhir dari OPEN: err = %v, want ErrTransisiTidakValid", err)
	}

	// update status tanpa tindak lanjut juga lompatan
	if _, err := ApplyUpdateStatus(Baru(), UpdateSelesai, ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("update status dari OPEN: err = %v, want ErrTransisiTidakValid", err)
	}

	// hasil akhir sebelum diteruskan
	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutLingkungan, "")
	if _, err := ApplyHasilAkhir(s, HasilSelesai, ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("hasil akhir sebelum diteruskan: err = %v, want ErrTransisiTidakValid", err)
	}

	// lingkungan tidak boleh meneruskan langsung ke paroki
	if _, err := ApplyUpdateStatus(s, UpdateDiteruskanParoki, ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("teruskan dari lingkungan: err = %v, want ErrTransisiTidakValid", err)
	}
}

// Alasan wajib tepat pada cabang penolakan.
func TestAlasanWajibSaatDitolak(t *testing.T) {
	if _, err := ApplyTindakLanjut(Baru(), TindakLanjutDitolak, ""); !errors.Is(err, ErrAlasanWajib) {
		t.Errorf("tolak tanpa alasan: err = %v, want ErrAlasanWajib", err)
	}

	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutWilayah, "")
	if _, err := ApplyUpdateStatus(s, UpdateDitolak, ""); !errors.Is(err, ErrAlasanWajib) {
		t.Errorf("update ditolak tanpa alasan: err = %v, want ErrAlasanWajib", err)
	}

	s2, _ := ApplyUpdateStatus(s, UpdateDiteruskanParoki, "")
	if _, err := ApplyHasilAkhir(s2, HasilDitolak, ""); !errors.Is(err, ErrAlasanWajib) {
		t.Errorf("hasil ditolak tanpa alasan: err = %v, want ErrAlasanWajib", err)
	}
}

func TestCurrentTier(t *testing.T) {
	if got := CurrentTier(Baru()); got != TierLingkungan {
		t.Errorf("tier awal = %q, want lingkungan", got)
	}

	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutWilayah, "")
	if got := CurrentTier(s); got != TierWilayah {
		t.Errorf("tier setelah tindak lanjut wilayah = %q, want wilayah", got)
	}

	s, _ = ApplyTindakLanjut(Baru(), TindakLanjutParoki, "")
	if got := CurrentTier(s); got != TierParoki {
		t.Errorf("tier setelah tindak lanjut paroki = %q, want paroki", got)
	}
}

func TestAllowedActions(t *testing.T) {
	if got := AllowedActions(Baru()); len(got) != 4 {
		t.Errorf("aksi awal = %v, want 4 pilihan tindak lanjut", got)
	}

	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutLingkungan, "")
	got := AllowedActions(s)
	for _, a := range got {
		if a == UpdateDiteruskanParoki {
			t.Error("lingkungan tidak boleh punya aksi diteruskan_paroki")
		}
	}

	s, _ = ApplyTindakLanjut(Baru(), TindakLanjutDitolak, "alasan")
	if got := AllowedActions(s); got != nil {
		t.Errorf("aksi setelah closed = %v, want nil", got)
	}
}

// Nilai transisi yang tidak dikenal ditolak sebagai transisi tidak valid.
func TestNilaiTidakDikenal(t *testing.T) {
	if _, err := ApplyTindakLanjut(Baru(), "dibekukan", ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("nilai asing tindak lanjut: err = %v, want ErrTransisiTidakValid", err)
	}
	s, _ := ApplyTindakLanjut(Baru(), TindakLanjutLingkungan, "")
	if _, err := ApplyUpdateStatus(s, "ditunda", ""); !errors.Is(err, ErrTransisiTidakValid) {
		t.Errorf("nilai asing update status: err = %v, want ErrTransisiTidakValid", err)
	}
}
