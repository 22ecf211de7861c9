package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email (login e papel da sessão)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários com paginação
	List(ctx context.Context, limit, offset int) ([]*User, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete remove um usuário
	Delete(ctx context.Context, id string) error

	// Count conta quantos usuários existem
	Count(ctx context.Context) (int, error)

	// CountAdmins conta quantos administradores existem (bootstrap)
	CountAdmins(ctx context.Context) (int, error)

	// UpdateLastLogin registra o último login do usuário
	UpdateLastLogin(ctx context.Context, id string) error
}
