package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrEmptyEmail   = errors.New("email não pode ser vazio")
	ErrInvalidRole  = errors.New("papel inválido")
	ErrWeakPassword = errors.New("senha deve ter ao menos 6 caracteres")
)

// Role representa o papel/função do usuário
type Role string

const (
	RoleAdmin  Role = "admin"  // Administrador do salão
	RoleWorker Role = "worker" // Trabalhador que registra vendas
)

// User representa um usuário do sistema
type User struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Password          string     `json:"-"` // O campo senha não é retornado nas respostas JSON
	Role              Role       `json:"role"`
	CommissionPercent *float64   `json:"commission_percent"` // Percentual próprio, opcional
	LastLoginAt       *time.Time `json:"last_login_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewUser cria um novo usuário
func NewUser(email, name, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if email == "" {
		return nil, ErrEmptyEmail
	}

	if role != RoleAdmin && role != RoleWorker {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Update atualiza os dados do usuário
func (u *User) Update(name string, role Role, commissionPercent *float64) error {
	if name == "" {
		return ErrEmptyName
	}

	if role != RoleAdmin && role != RoleWorker {
		return ErrInvalidRole
	}

	u.Name = name
	u.Role = role
	u.CommissionPercent = commissionPercent
	u.UpdatedAt = time.Now()

	return nil
}
