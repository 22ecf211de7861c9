package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CrisMolina12/angelesWeb-sub000/internal/adapter/api/dto"
	clientdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/client"
	ptdomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/paymenttype"
	saledomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/sale"
	servicedomain "github.com/CrisMolina12/angelesWeb-sub000/internal/domain/service"
	"github.com/CrisMolina12/angelesWeb-sub000/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Stubs mínimos dos repositórios: apenas os métodos que o fluxo de registro
// de venda usa são implementados; o restante vem da interface embutida.

type stubClientRepo struct{ clientdomain.Repository }

func (s *stubClientRepo) FindByID(ctx context.Context, id string) (*clientdomain.Client, error) {
	return &clientdomain.Client{ID: id, Name: "María Pérez", NationalID: "12345678-9"}, nil
}

type stubServiceRepo struct{ servicedomain.Repository }

func (s *stubServiceRepo) FindByID(ctx context.Context, id string) (*servicedomain.Service, error) {
	return &servicedomain.Service{
		ID:           id,
		Name:         "Manicure",
		SessionCount: 1,
		Status:       servicedomain.StatusActive,
	}, nil
}

type stubPaymentTypeRepo struct{ ptdomain.Repository }

func (s *stubPaymentTypeRepo) FindByID(ctx context.Context, id string) (*ptdomain.PaymentType, error) {
	return &ptdomain.PaymentType{ID: id, Name: "Tarjeta", Percentage: 10}, nil
}

type stubSaleRepo struct {
	saledomain.Repository

	sale       *saledomain.Sale
	details    []saledomain.SaleDetail
	deposit    *saledomain.Deposit
	commission *saledomain.Commission
}

func (s *stubSaleRepo) CreateGroup(ctx context.Context, sl *saledomain.Sale, details []saledomain.SaleDetail, deposit *saledomain.Deposit, commission *saledomain.Commission) error {
	s.sale = sl
	s.details = details
	s.deposit = deposit
	s.commission = commission
	return nil
}

func newSaleController(saleRepo *stubSaleRepo) *SaleController {
	return NewSaleController(saleRepo, &stubClientRepo{}, &stubServiceRepo{}, &stubPaymentTypeRepo{}, logger.NewLogger())
}

func postSale(t *testing.T, ctrl *SaleController, req dto.SaleRequest) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("erro ao montar requisição: %v", err)
	}

	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	ctx.Request = httpReq
	ctx.Set("user_id", "worker-1")

	ctrl.Create(ctx)
	return w
}

// Venda sem abono ainda assim grava exatamente uma comissão, de valor zero.
func TestSaleCreateWithoutDepositRecordsZeroCommission(t *testing.T) {
	saleRepo := &stubSaleRepo{}
	ctrl := newSaleController(saleRepo)

	w := postSale(t, ctrl, dto.SaleRequest{
		ClientID:      "client-1",
		PaymentTypeID: "pt-1",
		DepositAmount: 0,
		Items: []dto.SaleItemRequest{
			{ServiceID: "svc-1", SessionCount: 1, LinePrice: 1000},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	if saleRepo.deposit != nil {
		t.Errorf("venda sem abono não deveria gravar abono: %+v", saleRepo.deposit)
	}
	if saleRepo.commission == nil {
		t.Fatal("venda sem abono deveria gravar comissão de valor zero")
	}
	if saleRepo.commission.Amount != 0 {
		t.Errorf("comissão = %v, esperado 0", saleRepo.commission.Amount)
	}
	if saleRepo.commission.EmployeeID != "worker-1" {
		t.Errorf("EmployeeID = %q, esperado %q", saleRepo.commission.EmployeeID, "worker-1")
	}
	if saleRepo.commission.SaleID != saleRepo.sale.ID {
		t.Errorf("comissão aponta para a venda %q, esperado %q", saleRepo.commission.SaleID, saleRepo.sale.ID)
	}
}

// Venda com abono grava o abono e a comissão derivada dele.
func TestSaleCreateWithDepositRecordsDerivedCommission(t *testing.T) {
	saleRepo := &stubSaleRepo{}
	ctrl := newSaleController(saleRepo)

	w := postSale(t, ctrl, dto.SaleRequest{
		ClientID:      "client-1",
		PaymentTypeID: "pt-1",
		DepositAmount: 500,
		Items: []dto.SaleItemRequest{
			{ServiceID: "svc-1", SessionCount: 4, LinePrice: 1000},
			{ServiceID: "svc-2", SessionCount: 2, LinePrice: 2000},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, esperado %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	if saleRepo.sale.TotalPrice != 3000 {
		t.Errorf("TotalPrice = %v, esperado 3000", saleRepo.sale.TotalPrice)
	}
	if saleRepo.deposit == nil || saleRepo.deposit.Amount != 500 {
		t.Fatalf("abono = %+v, esperado valor 500", saleRepo.deposit)
	}

	// 500 com 10 por cento de desconto: round(450 * 0.10) = 45
	if saleRepo.commission == nil {
		t.Fatal("venda com abono deveria gravar comissão")
	}
	if saleRepo.commission.Amount != 45 {
		t.Errorf("comissão = %v, esperado 45", saleRepo.commission.Amount)
	}
}
