package controller

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"lingkunganku_backend/internals/features/pengajuan/model"
	"lingkunganku_backend/internals/features/pengajuan/workflow"
)

func tingkatSQL(t *testing.T, tingkat string) (string, []any) {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	var rows []model.PengajuanModel
	stmt := db.Model(&model.PengajuanModel{}).
		Scopes(tingkatScope(tingkat)).
		Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func adaVar(vars []any, want string) bool {
	for _, v := range vars {
		if s, ok := v.(string); ok && s == want {
			return true
		}
	}
	return false
}

// Filter tingkat harus jadi bagian WHERE, bukan saringan di memori,
// supaya total dan pembagian halaman ikut terfilter.
func TestTingkatScopeMasukWhere(t *testing.T) {
	sql, vars := tingkatSQL(t, workflow.TierParoki)
	if !strings.Contains(sql, "hasil_akhir") {
		t.Errorf("paroki: SQL tanpa kondisi hasil_akhir: %s", sql)
	}
	if !adaVar(vars, workflow.UpdateDiteruskanParoki) || !adaVar(vars, workflow.TindakLanjutParoki) {
		t.Errorf("paroki: vars = %v, kurang nilai diteruskan/diproses paroki", vars)
	}

	sql, vars = tingkatSQL(t, workflow.TierWilayah)
	if !strings.Contains(sql, "tindak_lanjut") || !adaVar(vars, workflow.TindakLanjutWilayah) {
		t.Errorf("wilayah: SQL %s vars %v tidak memfilter tindak_lanjut wilayah", sql, vars)
	}

	sql, _ = tingkatSQL(t, workflow.TierLingkungan)
	if !strings.Contains(sql, "NOT IN") {
		t.Errorf("lingkungan: SQL tanpa pengecualian tingkat lebih tinggi: %s", sql)
	}

	// tingkat asing tidak menambah kondisi apa pun
	sql, _ = tingkatSQL(t, "keuskupan")
	if strings.Contains(sql, "WHERE") {
		t.Errorf("tingkat asing: SQL tidak boleh menambah WHERE: %s", sql)
	}
}

// cocokTingkat mengevaluasi cabang-cabang tingkatScope di memori, satu
// lawan satu dengan predikat SQL-nya.
func cocokTingkat(s workflow.Keadaan, tingkat string) bool {
	switch tingkat {
	case workflow.TierParoki:
		return s.HasilAkhir != "" ||
			s.UpdateStatus == workflow.UpdateDiteruskanParoki ||
			s.TindakLanjut == workflow.TindakLanjutParoki
	case workflow.TierWilayah:
		return s.TindakLanjut == workflow.TindakLanjutWilayah &&
			s.UpdateStatus != workflow.UpdateDiteruskanParoki
	case workflow.TierLingkungan:
		return s.HasilAkhir == "" &&
			s.UpdateStatus != workflow.UpdateDiteruskanParoki &&
			s.TindakLanjut != workflow.TindakLanjutWilayah &&
			s.TindakLanjut != workflow.TindakLanjutParoki
	}
	return false
}

// keadaanTerjangkau menjelajahi seluruh keadaan yang bisa dicapai mesin
// workflow dari pengajuan baru.
func keadaanTerjangkau() []workflow.Keadaan {
	apply := []func(workflow.Keadaan, string, string) (workflow.Keadaan, error){
		workflow.ApplyTindakLanjut,
		workflow.ApplyUpdateStatus,
		workflow.ApplyHasilAkhir,
	}
	nilai := []string{
		workflow.TindakLanjutLingkungan, workflow.TindakLanjutWilayah,
		workflow.TindakLanjutParoki, workflow.TindakLanjutDitolak,
		workflow.UpdateSelesai, workflow.UpdateDiteruskanParoki,
		workflow.HasilSelesai, workflow.HasilDitolak,
	}

	semua := []workflow.Keadaan{workflow.Baru()}
	antrean := []workflow.Keadaan{workflow.Baru()}
	for len(antrean) > 0 {
		s := antrean[0]
		antrean = antrean[1:]
		for _, f := range apply {
			for _, n := range nilai {
				next, err := f(s, n, "alasan uji")
				if err != nil {
					continue
				}
				antrean = append(antrean, next)
				semua = append(semua, next)
			}
		}
	}
	return semua
}

// Setiap keadaan yang bisa dicapai harus jatuh ke tepat satu cabang
// filter, dan cabang itu harus sama dengan CurrentTier. Kalau tidak,
// daftar terfilter dan amplop pagination akan saling bertentangan.
func TestTingkatScopeSelarasCurrentTier(t *testing.T) {
	tingkatSemua := []string{workflow.TierLingkungan, workflow.TierWilayah, workflow.TierParoki}
	for _, s := range keadaanTerjangkau() {
		tier := workflow.CurrentTier(s)
		for _, tingkat := range tingkatSemua {
			got := cocokTingkat(s, tingkat)
			want := tier == tingkat
			if got != want {
				t.Errorf("keadaan %+v: cocokTingkat(%s) = %v, CurrentTier = %s", s, tingkat, got, tier)
			}
		}
	}
}
