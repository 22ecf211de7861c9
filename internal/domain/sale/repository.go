package sale

import (
	"context"
)

// Repository define a interface para operações de repositório de vendas.
// CreateGroup grava a venda, seus itens, o abono opcional e a comissão em
// uma única transação.
type Repository interface {
	// CreateGroup cria a venda com itens, abono (opcional) e comissão
	CreateGroup(ctx context.Context, s *Sale, details []SaleDetail, deposit *Deposit, commission *Commission) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// FindDetails busca os itens de uma venda
	FindDetails(ctx context.Context, saleID string) ([]SaleDetail, error)

	// List lista as vendas com paginação, mais recentes primeiro
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// ListByWorker lista as vendas de um trabalhador
	ListByWorker(ctx context.Context, workerID string, limit, offset int) ([]*Sale, error)

	// ListAll lista todas as vendas (folds de relatório)
	ListAll(ctx context.Context) ([]*Sale, error)

	// Delete remove a venda, seus itens, abonos, comissões e os
	// agendamentos que a referenciam, em uma única transação
	Delete(ctx context.Context, id string) error

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)

	// AddDeposit registra um novo abono e a comissão derivada dele
	AddDeposit(ctx context.Context, deposit *Deposit, commission *Commission) error

	// FindDeposits busca os abonos de uma venda
	FindDeposits(ctx context.Context, saleID string) ([]Deposit, error)

	// ListCommissions lista todas as comissões (folds de relatório)
	ListCommissions(ctx context.Context) ([]Commission, error)
}
