package service

import (
	"context"
)

// Repository define a interface para operações de repositório de serviços
type Repository interface {
	// Create cria um novo serviço
	Create(ctx context.Context, s *Service) error

	// FindByID busca um serviço pelo ID
	FindByID(ctx context.Context, id string) (*Service, error)

	// List lista os serviços com paginação
	List(ctx context.Context, limit, offset int) ([]*Service, error)

	// FindByStatus lista os serviços por status (seletor de vendas usa active)
	FindByStatus(ctx context.Context, status Status, limit, offset int) ([]*Service, error)

	// Update atualiza os dados de um serviço existente
	Update(ctx context.Context, s *Service) error

	// UpdateStatus atualiza o status de um serviço
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete remove um serviço
	Delete(ctx context.Context, id string) error

	// Count conta quantos serviços existem
	Count(ctx context.Context) (int, error)

	// Exists verifica se um serviço existe
	Exists(ctx context.Context, id string) (bool, error)
}
