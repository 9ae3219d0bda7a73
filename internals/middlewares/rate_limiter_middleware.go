package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func tooMany(pesan string) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"message": pesan,
		})
	}
}

// Global limiter: semua endpoint portal. Satu pengurus yang menginput
// iuran berurutan masih jauh di bawah batas ini.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("❌ Terlalu banyak permintaan ke portal. Silakan coba lagi nanti."),
	})
}

// Login lebih ketat; percobaan yang berhasil tidak dihitung supaya
// satu keluarga yang berbagi jaringan tidak saling mengunci.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:                    5,
		Expiration:             1 * time.Minute,
		SkipSuccessfulRequests: true,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("❌ Terlalu banyak percobaan login. Coba beberapa saat lagi."),
	})
}

// Pendaftaran akun umat baru jarang terjadi, batasnya rendah.
func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        3,
		Expiration: 5 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("❌ Terlalu banyak percobaan pendaftaran. Tunggu beberapa menit ya."),
	})
}

// Reset password lewat passphrase: paling ketat karena endpoint ini
// bisa dipakai menebak passphrase.
func ResetPasswordRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:                    2,
		Expiration:             10 * time.Minute,
		SkipSuccessfulRequests: true,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: tooMany("❌ Terlalu banyak permintaan reset password. Silakan coba lagi dalam 10 menit."),
	})
}
