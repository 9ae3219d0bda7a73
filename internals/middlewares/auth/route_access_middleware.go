package auth

import (
	"github.com/gofiber/fiber/v2"

	"lingkunganku_backend/internals/constants"
)

// RouteAccessMiddleware memeriksa role+path lewat constants.CanAccess.
// Saat ditolak: redirect ke /dashboard tanpa bocoran alasan — konten
// terproteksi tidak boleh dirender sebagian. Role yang tidak bisa diparse
// diperlakukan sama dengan ditolak.
func RouteAccessMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, _ := c.Locals("userRole").(string)
		role, ok := constants.ParseRole(raw)
		if !ok || !constants.CanAccess(role, accessPath(c)) {
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// accessPath memetakan path API ke kunci tabel akses: prefix group
// ("/api/u", "/api/a") dibuang supaya satu tabel dipakai untuk halaman
// maupun API.
func accessPath(c *fiber.Ctx) string {
	p := c.Path()
	for _, g := range []string{"/api/a", "/api/u", "/api"} {
		if len(p) > len(g) && p[:len(g)] == g && p[len(g)] == '/' {
			return p[len(g):]
		}
	}
	return p
}
