package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" {
		return errors.New("Identifier wajib diisi")
	}
	if password == "" {
		return errors.New("Password wajib diisi")
	}
	return nil
}

func ValidateResetPassword(email, newPassword, passphrase string) error {
	if !strings.Contains(email, "@") {
		return errors.New("Format email tidak valid")
	}
	if len(newPassword) < 8 {
		return errors.New("Password baru minimal 8 karakter")
	}
	if strings.TrimSpace(passphrase) == "" {
		return errors.New("Passphrase wajib diisi")
	}
	return nil
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
