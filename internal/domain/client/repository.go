package client

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// FindByNationalID busca um cliente pelo documento de identidade
	FindByNationalID(ctx context.Context, nationalID string) (*Client, error)

	// List lista os clientes com paginação
	List(ctx context.Context, limit, offset int) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)

	// Exists verifica se um cliente existe
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsByNationalID verifica se já existe um cliente com o documento
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
}
