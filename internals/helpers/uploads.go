package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxImageWidth = 1600

// UploadsRoot dibaca sekali dari env; default ./uploads.
func UploadsRoot() string {
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		return v
	}
	return "./uploads"
}

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: <folder>/<tanggal>-<uuid>-<nama asli aman>
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, sanitizeFilename(originalFilename))
}

// SaveAttachment menyimpan satu lampiran multipart di bawah uploads root.
// Gambar (jpeg/png) dinormalisasi: resize maksimal 1600px lebar, lalu
// encode ulang ke WebP q80 supaya ukuran wajar. File lain disimpan apa
// adanya. Mengembalikan path relatif terhadap uploads root.
func SaveAttachment(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka lampiran: %w", err)
	}
	defer src.Close()

	name := GenerateUniqueFilename(folder, fileHeader.Filename)

	if isImageFilename(fileHeader.Filename) {
		img, _, decErr := image.Decode(src)
		if decErr == nil {
			if img.Bounds().Dx() > maxImageWidth {
				img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
			}
			var buf bytes.Buffer
			if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
				return "", fmt.Errorf("gagal encode webp: %w", err)
			}
			name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
			return name, writeUnderRoot(name, buf.Bytes())
		}
		// bukan gambar yang bisa didecode → simpan mentah
		if _, err := src.Seek(0, 0); err != nil {
			return "", err
		}
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("gagal membaca lampiran: %w", err)
	}
	return name, writeUnderRoot(name, buf.Bytes())
}

func isImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func writeUnderRoot(rel string, data []byte) error {
	abs, err := ResolveUpload(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, data, 0o644)
}

// ResolveUpload mengubah path relatif menjadi absolut di bawah uploads
// root. Path yang keluar dari root (".." dsb.) ditolak.
func ResolveUpload(rel string) (string, error) {
	root, err := filepath.Abs(UploadsRoot())
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Join(root, filepath.Clean("/"+rel)))
	if err != nil {
		return "", err
	}
	if abs != root && !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path lampiran di luar uploads root")
	}
	return abs, nil
}
