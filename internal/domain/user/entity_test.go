package user

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		userName string
		password string
		role     Role
		wantErr  error
	}{
		{name: "administrador válido", email: "admin@salon.cl", userName: "Admin", password: "secreta1", role: RoleAdmin, wantErr: nil},
		{name: "trabalhador válido", email: "worker@salon.cl", userName: "Trabajadora", password: "secreta1", role: RoleWorker, wantErr: nil},
		{name: "nome vazio", email: "a@b.cl", userName: "", password: "secreta1", role: RoleWorker, wantErr: ErrEmptyName},
		{name: "email vazio", email: "", userName: "Nome", password: "secreta1", role: RoleWorker, wantErr: ErrEmptyEmail},
		{name: "papel inválido", email: "a@b.cl", userName: "Nome", password: "secreta1", role: Role("manager"), wantErr: ErrInvalidRole},
		{name: "senha curta", email: "a@b.cl", userName: "Nome", password: "12345", role: RoleWorker, wantErr: ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.email, tt.userName, tt.password, tt.role)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewUser() error = %v, esperado %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if u.Password == tt.password {
				t.Error("senha armazenada em texto plano")
			}
			if !u.CheckPassword(tt.password) {
				t.Error("CheckPassword() rejeitou a senha correta")
			}
			if u.CheckPassword("outra-senha") {
				t.Error("CheckPassword() aceitou senha incorreta")
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin, err := NewUser("admin@salon.cl", "Admin", "secreta1", RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	if !admin.IsAdmin() {
		t.Error("IsAdmin() = false para administrador")
	}

	worker, err := NewUser("worker@salon.cl", "Trabajadora", "secreta1", RoleWorker)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	if worker.IsAdmin() {
		t.Error("IsAdmin() = true para trabalhador")
	}
}

func TestUserUpdate(t *testing.T) {
	u, err := NewUser("worker@salon.cl", "Trabajadora", "secreta1", RoleWorker)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	percent := 15.0
	if err := u.Update("Nuevo Nombre", RoleAdmin, &percent); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if u.Name != "Nuevo Nombre" || u.Role != RoleAdmin {
		t.Errorf("Update() não aplicou os novos valores: %+v", u)
	}
	if u.CommissionPercent == nil || *u.CommissionPercent != percent {
		t.Errorf("CommissionPercent = %v, esperado %v", u.CommissionPercent, percent)
	}

	if err := u.Update("", RoleAdmin, nil); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Update() error = %v, esperado %v", err, ErrEmptyName)
	}
}
