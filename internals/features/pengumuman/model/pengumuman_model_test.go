package model

import (
	"testing"

	"github.com/lib/pq"
)

func TestUntukRole(t *testing.T) {
	semua := PengumumanModel{}
	if !semua.UntukRole("umat") || !semua.UntukRole("ketua") {
		t.Error("pengumuman tanpa role penerima harus terlihat semua role")
	}

	rahasia := PengumumanModel{RolePenerima: pq.StringArray{"ketua", "bendahara"}}
	if !rahasia.UntukRole("bendahara") {
		t.Error("bendahara termasuk penerima, harus true")
	}
	if rahasia.UntukRole("umat") {
		t.Error("umat bukan penerima, harus false")
	}
}

func TestValidKlasifikasi(t *testing.T) {
	for _, k := range []string{KlasifikasiUmum, KlasifikasiPenting, KlasifikasiMendesak, KlasifikasiRahasia} {
		if !ValidKlasifikasi(k) {
			t.Errorf("ValidKlasifikasi(%q) = false", k)
		}
	}
	if ValidKlasifikasi("biasa") {
		t.Error("klasifikasi asing harus ditolak")
	}
}
