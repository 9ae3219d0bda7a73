package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "lingkunganku_backend/internals/features/users/user/model"
)

// Response DTO tanpa kolom sensitif (password, passphrase).
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	UserName   string     `json:"user_name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	KeluargaID *uuid.UUID `json:"keluarga_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:         u.ID,
		UserName:   u.UserName,
		Email:      u.Email,
		Role:       u.Role,
		KeluargaID: u.KeluargaID,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func ToUserResponseList(users []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type UpdateActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type LinkKeluargaRequest struct {
	KeluargaID *uuid.UUID `json:"keluarga_id"`
}

type AdminResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
