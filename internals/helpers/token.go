package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lingkunganku_backend/internals/constants"
)

// GetUserUUID mengambil user_id yang disimpan auth middleware di Locals.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak ada di context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id bukan UUID valid")
	}
	return id, nil
}

// GetUserRole mengambil role dari Locals dan memvalidasinya terhadap enum
// tertutup. Role tak dikenal gagal (fail closed), bukan default umat.
func GetUserRole(c *fiber.Ctx) (constants.Role, error) {
	raw, ok := c.Locals("userRole").(string)
	if !ok || raw == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ada di context")
	}
	role, ok := constants.ParseRole(raw)
	if !ok {
		return "", fiber.NewError(fiber.StatusForbidden, "Role tidak dikenal")
	}
	return role, nil
}

// GetKeluargaUUID mengambil keluarga_id dari Locals. Error kalau akun
// belum tertaut ke data keluarga.
func GetKeluargaUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("keluarga_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun belum tertaut ke data keluarga")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "keluarga_id bukan UUID valid")
	}
	return id, nil
}
