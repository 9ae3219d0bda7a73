package constants

import (
	"fmt"
	"strings"
)

// Role pengurus/umat lingkungan. Nilai disimpan di kolom users.role —
// jangan diubah tanpa migrasi.
type Role string

const (
	RoleSuperUser       Role = "superuser"
	RoleKetua           Role = "ketua"
	RoleWakilKetua      Role = "wakil_ketua"
	RoleSekretaris      Role = "sekretaris"
	RoleWakilSekretaris Role = "wakil_sekretaris"
	RoleBendahara       Role = "bendahara"
	RoleWakilBendahara  Role = "wakil_bendahara"
	RoleUmat            Role = "umat"
)

func (r Role) String() string { return string(r) }

// ParseRole memetakan string bebas (payload token, env override) ke enum
// tertutup. String yang tidak dikenal mengembalikan false — pemanggil wajib
// menolak akses, bukan memberi role default.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSuperUser:
		return RoleSuperUser, true
	case RoleKetua:
		return RoleKetua, true
	case RoleWakilKetua:
		return RoleWakilKetua, true
	case RoleSekretaris:
		return RoleSekretaris, true
	case RoleWakilSekretaris:
		return RoleWakilSekretaris, true
	case RoleBendahara:
		return RoleBendahara, true
	case RoleWakilBendahara:
		return RoleWakilBendahara, true
	case RoleUmat:
		return RoleUmat, true
	}
	return "", false
}

// Template pesan error role
const (
	ErrOnlyPengurusCanAccess  = "❌ Hanya pengurus lingkungan yang boleh mengakses fitur %s."
	ErrOnlyBendaharaCanAccess = "❌ Hanya bendahara yang boleh mengakses fitur %s."
	ErrOnlyKetuaCanAccess     = "❌ Hanya ketua atau wakil ketua yang boleh mengakses fitur %s."
)

func RoleErrorPengurus(feature string) string {
	return fmt.Sprintf(ErrOnlyPengurusCanAccess, feature)
}

func RoleErrorBendahara(feature string) string {
	return fmt.Sprintf(ErrOnlyBendaharaCanAccess, feature)
}

func RoleErrorKetua(feature string) string {
	return fmt.Sprintf(ErrOnlyKetuaCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleSuperUser,
		RoleKetua,
		RoleWakilKetua,
		RoleSekretaris,
		RoleWakilSekretaris,
		RoleBendahara,
		RoleWakilBendahara,
		RoleUmat,
	}

	// Seluruh pengurus (tanpa umat).
	PengurusRoles = []Role{
		RoleSuperUser,
		RoleKetua,
		RoleWakilKetua,
		RoleSekretaris,
		RoleWakilSekretaris,
		RoleBendahara,
		RoleWakilBendahara,
	}

	KetuaAndAbove = []Role{
		RoleSuperUser,
		RoleKetua,
		RoleWakilKetua,
	}

	SekretariatRoles = []Role{
		RoleSuperUser,
		RoleKetua,
		RoleWakilKetua,
		RoleSekretaris,
		RoleWakilSekretaris,
	}

	KeuanganRoles = []Role{
		RoleSuperUser,
		RoleKetua,
		RoleWakilKetua,
		RoleBendahara,
		RoleWakilBendahara,
	}

	SuperUserOnly = []Role{
		RoleSuperUser,
	}
)

func RoleIn(role Role, allowed []Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RoleStrings dipakai middleware lama yang masih menerima []string.
func RoleStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
