// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"vahanhub_backend/internals/features/users/user/model"
)

/* ==========================
   Requests
========================== */

type UserUpdateProfileDTO struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

// UserAdminUpdateDTO is the tenant-admin / owner surface: role and
// activation on top of the profile fields.
type UserAdminUpdateDTO struct {
	FullName *string    `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string    `json:"phone" validate:"omitempty,max=20"`
	Role     *string    `json:"role" validate:"omitempty,oneof=user sales manager admin"`
	TenantID *uuid.UUID `json:"tenant_id"`
	IsActive *bool      `json:"is_active"`
}

type UserCreateStaffDTO struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Role     string  `json:"role" validate:"required,oneof=user sales manager admin"`
}

/* ==========================
   Responses
========================== */

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserName  string     `json:"user_name"`
	FullName  *string    `json:"full_name,omitempty"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

/* ==========================
   Mappers
========================== */

func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		TenantID:  m.TenantID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *ToUserResponse(&ms[i]))
	}
	return out
}

func ApplyProfileUpdate(m *model.UserModel, in *UserUpdateProfileDTO) {
	if in.UserName != nil {
		m.UserName = *in.UserName
	}
	if in.FullName != nil {
		m.FullName = in.FullName
	}
	if in.Phone != nil {
		m.Phone = in.Phone
	}
}

func ApplyAdminUpdate(m *model.UserModel, in *UserAdminUpdateDTO) {
	if in.FullName != nil {
		m.FullName = in.FullName
	}
	if in.Phone != nil {
		m.Phone = in.Phone
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.TenantID != nil {
		m.TenantID = in.TenantID
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
}
