package constants

import "testing"

func TestCanAccessDirectRouteMatch(t *testing.T) {
	tests := []struct {
		name string
		role Role
		path string
		want bool
	}{
		{"bendahara kas ikata", RoleBendahara, "/ikata/kas", true},
		{"wakil bendahara kas lingkungan", RoleWakilBendahara, "/lingkungan/kas", true},
		{"umat ditolak approval", RoleUmat, "/approval", false},
		{"sekretaris approval", RoleSekretaris, "/approval", true},
		{"umat dashboard", RoleUmat, "/dashboard", true},
		{"umat admin users", RoleUmat, "/admin/users", false},
		{"ketua admin users", RoleKetua, "/admin/users", false},
		{"superuser admin users", RoleSuperUser, "/admin/users", true},
		{"bendahara keluarga ditolak", RoleBendahara, "/keluarga", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.role, tt.path); got != tt.want {
				t.Fatalf("CanAccess(%s, %s) = %v, want %v", tt.role, tt.path, got, tt.want)
			}
		})
	}
}

func TestCanAccessSegmentPrefix(t *testing.T) {
	if !CanAccess(RoleBendahara, "/ikata/kas/2026") {
		t.Fatal("sub-path kas ikata seharusnya ikut allow-list prefix")
	}
	if !CanAccess(RoleSekretaris, "/keluarga/7f1c/anggota") {
		t.Fatal("sub-path keluarga seharusnya ikut allow-list prefix")
	}
	// substring bukan prefix segmen
	if CanAccess(RoleBendahara, "/ikatan") {
		t.Fatal("/ikatan tidak boleh cocok dengan prefix /ikata")
	}
}

func TestCanAccessMenuFallback(t *testing.T) {
	// /laporan/umat hanya ada di menu sekretariat, tidak di tabel route
	if !CanAccess(RoleSekretaris, "/laporan/umat") {
		t.Fatal("path menu sekretariat seharusnya diizinkan lewat fallback menu")
	}
	if CanAccess(RoleBendahara, "/laporan/umat") {
		t.Fatal("bendahara tidak punya item menu /laporan/umat")
	}
	if CanAccess(RoleUmat, "/laporan/umat") {
		t.Fatal("umat tidak punya item menu /laporan/umat")
	}
}

func TestCanAccessDeniesUnknown(t *testing.T) {
	// route yang tidak dikonfigurasi dimanapun tertutup untuk semua role,
	// termasuk superuser
	for _, r := range AllRoles {
		if CanAccess(r, "/rahasia/internal") {
			t.Fatalf("role %s seharusnya ditolak untuk route tak terdaftar", r)
		}
	}
	// role tak dikenal selalu ditolak
	if CanAccess(Role("hacker"), "/dashboard") {
		t.Fatal("role tak dikenal harus ditolak")
	}
}

func TestParseRoleFailsClosed(t *testing.T) {
	if _, ok := ParseRole("  Bendahara "); !ok {
		t.Fatal("ParseRole harus menerima variasi kapital/spasi")
	}
	if role, ok := ParseRole("admin"); ok {
		t.Fatalf("ParseRole(admin) seharusnya gagal, dapat %s", role)
	}
	if _, ok := ParseRole(""); ok {
		t.Fatal("ParseRole(kosong) seharusnya gagal")
	}
}
