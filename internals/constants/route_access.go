package constants

import "strings"

// RouteAllowedRoles adalah allow-list statis Route→Roles. Route yang tidak
// terdaftar di sini DAN tidak muncul di menu role manapun berarti tertutup
// untuk semua role — termasuk superuser. Tidak ada bypass implisit.
var RouteAllowedRoles = map[string][]Role{
	"/dashboard": AllRoles,
	"/notifikasi": AllRoles,

	// Data umat
	"/keluarga":      SekretariatRoles,
	"/keluarga/saya": AllRoles,

	// Keuangan
	"/danamandiri":      KeuanganRoles,
	"/danamandiri/saya": AllRoles,
	"/ikata":            KeuanganRoles,
	"/ikata/saya":       AllRoles,
	"/ikata/kas":        KeuanganRoles,
	"/lingkungan/kas":   KeuanganRoles,

	// Pengajuan & approval
	"/pengajuan": AllRoles,
	"/approval":  append(append([]Role{}, KetuaAndAbove...), RoleSekretaris, RoleWakilSekretaris),

	// Pengumuman
	"/pengumuman": AllRoles,

	// Administrasi akun
	"/admin/users": SuperUserOnly,
}

// CanAccess memutuskan apakah role boleh membuka path. Murni: hanya membaca
// tabel konfigurasi immutable di atas. Urutan aturan (yang pertama cocok
// menang — union tiga allow-list, bukan deny-overrides):
//  1. exact match pada RouteAllowedRoles;
//  2. prefix match per segmen path;
//  3. path muncul di pohon menu role tersebut.
// Selain itu: tolak.
func CanAccess(role Role, path string) bool {
	path = normalizePath(path)

	// 1) exact match
	if allowed, ok := RouteAllowedRoles[path]; ok && RoleIn(role, allowed) {
		return true
	}

	// 2) prefix match (menghormati batas segmen, bukan substring)
	for key, allowed := range RouteAllowedRoles {
		if pathHasSegmentPrefix(path, key) && RoleIn(role, allowed) {
			return true
		}
	}

	// 3) fallback menu navigasi role
	if menuContainsPath(MenuForRole(role), path) {
		return true
	}

	return false
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// pathHasSegmentPrefix: "/ikata/kas/123" cocok dengan "/ikata/kas",
// tapi "/ikatan" TIDAK cocok dengan "/ikata".
func pathHasSegmentPrefix(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
