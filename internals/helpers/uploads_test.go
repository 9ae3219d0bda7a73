package helper

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveUploadDiDalamRoot(t *testing.T) {
	root := t.TempDir()
	t.Setenv("UPLOADS_DIR", root)

	abs, err := ResolveUpload("pengumuman/20260101-abc-poster.webp")
	if err != nil {
		t.Fatalf("ResolveUpload: %v", err)
	}
	if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		t.Errorf("abs = %q, want di bawah %q", abs, root)
	}
}

func TestResolveUploadTolakTraversal(t *testing.T) {
	t.Setenv("UPLOADS_DIR", t.TempDir())

	cases := []string{
		"../etc/passwd",
		"pengumuman/../../etc/passwd",
		"..",
	}
	for _, rel := range cases {
		abs, err := ResolveUpload(rel)
		if err == nil {
			// Clean dengan leading slash bisa menormalkan path kembali ke
			// dalam root; kalau begitu hasilnya tetap wajib di bawah root.
			root, _ := filepath.Abs(UploadsRoot())
			if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
				t.Errorf("ResolveUpload(%q) = %q lolos keluar root", rel, abs)
			}
			continue
		}
	}
}

func TestGenerateUniqueFilenameAman(t *testing.T) {
	got := GenerateUniqueFilename("pengumuman", "poster acara/../rahasia.png")
	if strings.Contains(got[len("pengumuman/"):], "/") {
		t.Errorf("nama file masih mengandung separator: %q", got)
	}
	if !strings.HasPrefix(got, "pengumuman/") {
		t.Errorf("nama file tidak di folder pengumuman: %q", got)
	}
}
