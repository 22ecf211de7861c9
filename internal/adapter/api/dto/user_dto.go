package dto

import (
	"time"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Email             string    `json:"email" binding:"required,email"`
	Name              string    `json:"name" binding:"required"`
	Password          string    `json:"password" binding:"required,min=6"`
	Role              user.Role `json:"role" binding:"required,oneof=admin worker"`
	CommissionPercent *float64  `json:"commission_percent" binding:"omitempty,min=0,max=100"`
}

// UserUpdateRequest representa a requisição de atualização de usuário
type UserUpdateRequest struct {
	Name              string    `json:"name" binding:"required"`
	Role              user.Role `json:"role" binding:"required,oneof=admin worker"`
	CommissionPercent *float64  `json:"commission_percent" binding:"omitempty,min=0,max=100"`
}

// AdminSetupRequest representa a requisição de criação do primeiro administrador
type AdminSetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Role              user.Role  `json:"role"`
	CommissionPercent *float64   `json:"commission_percent"`
	LastLoginAt       *time.Time `json:"last_login_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToUserResponse converte um usuário do domínio para DTO
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role,
		CommissionPercent: u.CommissionPercent,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// ToUserListResponse converte uma lista de usuários do domínio para DTO
func ToUserListResponse(users []*user.User, total, page, size, totalPages int) *UserListResponse {
	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = *ToUserResponse(u)
	}

	return &UserListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}
