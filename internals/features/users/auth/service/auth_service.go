package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/configs"
	"lingkunganku_backend/internals/constants"
	authHelper "lingkunganku_backend/internals/features/users/auth/helper"
	authModel "lingkunganku_backend/internals/features/users/auth/model"
	authRepo "lingkunganku_backend/internals/features/users/auth/repository"
	userModel "lingkunganku_backend/internals/features/users/user/model"
	helper "lingkunganku_backend/internals/helpers"
)

/* ==========================
   Const & Types
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName   string `json:"user_name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		Passphrase string `json:"passphrase"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
		Role:     constants.RoleUmat.String(),
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if strings.TrimSpace(input.Passphrase) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Passphrase wajib diisi")
	}

	hashedPassword, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	hashedPassphrase, err := authHelper.HashPassword(input.Passphrase)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash passphrase")
	}
	user.Password = hashedPassword
	user.Passphrase = hashedPassphrase

	if err := db.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email atau username sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Minimal user
	userLight, err := authRepo.FindUserByEmailOrUsernameLight(db, input.Identifier)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !userLight.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi pengurus.")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return issueTokens(c, db, *userFull)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.IDToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal decode Google ID token")
	}

	var user userModel.UserModel
	err = db.Where("google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		// akun baru: selalu role umat; pengurus diangkat lewat admin
		sub := claimSet.Sub
		user = userModel.UserModel{
			UserName: strings.Split(claimSet.Email, "@")[0],
			Email:    claimSet.Email,
			Password: uuid.New().String(),
			GoogleID: &sub,
			Role:     constants.RoleUmat.String(),
		}
		if err := db.Create(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun Google")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi pengurus.")
	}

	return issueTokens(c, db, user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString != "" {
		// masukkan access token ke blacklist sampai masa berlakunya habis
		blacklist := authModel.TokenBlacklistModel{
			Token:     tokenString,
			ExpiredAt: nowUTC().Add(accessTTLDefault),
		}
		if err := db.Create(&blacklist).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	// revoke refresh token aktif milik sesi ini
	if refreshCookie := c.Cookies("refresh_token"); refreshCookie != "" {
		_ = deleteRefreshTokenByHash(db, refreshCookie)
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"id":  userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if user.KeluargaID != nil {
		claims["keluarga_id"] = user.KeluargaID.String()
	}
	return claims
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, user userModel.UserModel) error {
	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	if err := createRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refreshToken, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan refresh token")
	}

	setRefreshCookie(c, refreshToken, now)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"id":          user.ID,
			"user_name":   user.UserName,
			"email":       user.Email,
			"role":        user.Role,
			"keluarga_id": user.KeluargaID,
			"menu":        constants.MenuForRole(constants.Role(user.Role)),
		},
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
