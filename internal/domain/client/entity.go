package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("nome não pode ser vazio")
	ErrEmptyNationalID = errors.New("documento de identidade não pode ser vazio")
)

// Client representa um cliente do salão
type Client struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	NationalID string    `json:"national_id"` // RUT/cédula, único no sistema
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewClient cria um novo cliente
func NewClient(name, phone, nationalID string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if nationalID == "" {
		return nil, ErrEmptyNationalID
	}

	now := time.Now()
	return &Client{
		ID:         uuid.New().String(),
		Name:       name,
		Phone:      phone,
		NationalID: nationalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Client) Update(name, phone, nationalID string) error {
	if name == "" {
		return ErrEmptyName
	}

	if nationalID == "" {
		return ErrEmptyNationalID
	}

	c.Name = name
	c.Phone = phone
	c.NationalID = nationalID
	c.UpdatedAt = time.Now()

	return nil
}
