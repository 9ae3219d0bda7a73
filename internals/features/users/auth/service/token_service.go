// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	authModel "lingkunganku_backend/internals/features/users/auth/model"
	authRepo "lingkunganku_backend/internals/features/users/auth/repository"
	helper "lingkunganku_backend/internals/helpers"
)

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Missing refresh secret")
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB dan belum di-revoke
	if _, err := findRefreshTokenByHashActive(db, computeRefreshHash(refreshCookie, refreshSecret)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	userFull, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !userFull.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama
	if err := deleteRefreshTokenByHash(db, refreshCookie); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	now := nowUTC()
	newAccess, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*userFull, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat access baru")
	}
	newRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userFull.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat refresh baru")
	}

	if err := createRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    userFull.ID,
		Token:     computeRefreshHash(newRefresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan refresh baru")
	}

	setRefreshCookie(c, newRefresh, now)

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": newAccess,
	})
}

// ========================== Mini-repo refresh token ==========================

func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func createRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

func findRefreshTokenByHashActive(db *gorm.DB, hash string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		Limit(1).
		Find(&rt).Error; err != nil {
		return nil, err
	}
	if rt.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &rt, nil
}

func deleteRefreshTokenByHash(db *gorm.DB, rawToken string) error {
	hash := computeRefreshHash(rawToken, configs.JWTRefreshSecret)
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

// ========================== Cookies ==========================

func setRefreshCookie(c *fiber.Ctx, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{"refresh_token", "access_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
}
