package constants

// MenuItem adalah satu entri navigasi: leaf (Path terisi, Children kosong)
// atau group (Children terisi). Pohon ini dibangun sekali saat init dan
// tidak boleh dimutasi setelahnya — aman dibaca lintas goroutine.
type MenuItem struct {
	Label    string
	Path     string
	Children []MenuItem
}

var menuUmat = []MenuItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Keluarga Saya", Path: "/keluarga/saya"},
	{Label: "Iuran", Children: []MenuItem{
		{Label: "Dana Mandiri", Path: "/danamandiri/saya"},
		{Label: "IKATA", Path: "/ikata/saya"},
	}},
	{Label: "Pengajuan", Path: "/pengajuan"},
	{Label: "Pengumuman", Path: "/pengumuman"},
	{Label: "Notifikasi", Path: "/notifikasi"},
}

var menuSekretariat = []MenuItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Data Umat", Children: []MenuItem{
		{Label: "Keluarga", Path: "/keluarga"},
		{Label: "Anggota", Path: "/keluarga/anggota"},
	}},
	{Label: "Pengajuan", Path: "/pengajuan"},
	{Label: "Approval", Path: "/approval"},
	{Label: "Pengumuman", Path: "/pengumuman"},
	{Label: "Laporan Umat", Path: "/laporan/umat"},
	{Label: "Notifikasi", Path: "/notifikasi"},
}

var menuKeuangan = []MenuItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Dana Mandiri", Children: []MenuItem{
		{Label: "Setoran Bulanan", Path: "/danamandiri"},
		{Label: "Rekap Tahunan", Path: "/danamandiri/rekap"},
	}},
	{Label: "IKATA", Children: []MenuItem{
		{Label: "Iuran", Path: "/ikata"},
		{Label: "Kas IKATA", Path: "/ikata/kas"},
	}},
	{Label: "Kas Lingkungan", Path: "/lingkungan/kas"},
	{Label: "Pembayaran Online", Path: "/danamandiri/online"},
	{Label: "Notifikasi", Path: "/notifikasi"},
}

var menuKetua = []MenuItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Data Umat", Children: []MenuItem{
		{Label: "Keluarga", Path: "/keluarga"},
		{Label: "Anggota", Path: "/keluarga/anggota"},
	}},
	{Label: "Keuangan", Children: []MenuItem{
		{Label: "Dana Mandiri", Path: "/danamandiri"},
		{Label: "IKATA", Path: "/ikata"},
		{Label: "Kas Lingkungan", Path: "/lingkungan/kas"},
		{Label: "Kas IKATA", Path: "/ikata/kas"},
	}},
	{Label: "Pengajuan", Path: "/pengajuan"},
	{Label: "Approval", Path: "/approval"},
	{Label: "Pengumuman", Path: "/pengumuman"},
	{Label: "Notifikasi", Path: "/notifikasi"},
}

var menuSuperUser = append(append([]MenuItem{}, menuKetua...), MenuItem{
	Label: "Administrasi", Children: []MenuItem{
		{Label: "Pengguna", Path: "/admin/users"},
		{Label: "Reset Password", Path: "/admin/users/reset"},
	},
})

// RoleMenus dipetakan dari enum Role tertutup — bukan lookup dinamis
// berbasis string — dan dianggap immutable setelah process start.
var RoleMenus = map[Role][]MenuItem{
	RoleSuperUser:       menuSuperUser,
	RoleKetua:           menuKetua,
	RoleWakilKetua:      menuKetua,
	RoleSekretaris:      menuSekretariat,
	RoleWakilSekretaris: menuSekretariat,
	RoleBendahara:       menuKeuangan,
	RoleWakilBendahara:  menuKeuangan,
	RoleUmat:            menuUmat,
}

// MenuForRole mengembalikan menu navigasi untuk role; role tak dikenal
// mendapat menu kosong.
func MenuForRole(role Role) []MenuItem {
	return RoleMenus[role]
}

func menuContainsPath(items []MenuItem, path string) bool {
	for _, it := range items {
		if it.Path != "" && it.Path == path {
			return true
		}
		if len(it.Children) > 0 && menuContainsPath(it.Children, path) {
			return true
		}
	}
	return false
}
