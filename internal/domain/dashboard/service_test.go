package dashboard_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/domain/dashboard"
	"github.com/crediario/crediario-api/internal/domain/merchant"
)

func seedBook(t *testing.T) (*dashboard.Service, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	merchants := merchant.NewRepository()
	clients := client.NewRepository()

	active := &merchant.Merchant{ID: uuid.New(), Name: "Loja do João", Status: merchant.StatusActive, TotalDebt: decimal.Zero}
	inactive := &merchant.Merchant{ID: uuid.New(), Name: "Padaria Estrela", Status: merchant.StatusInactive, TotalDebt: decimal.Zero}
	for _, m := range []*merchant.Merchant{active, inactive} {
		if err := merchants.Create(ctx, m); err != nil {
			t.Fatalf("create merchant failed: %v", err)
		}
	}

	book := []struct {
		merchantID uuid.UUID
		debt       string
		status     client.PaymentStatus
	}{
		{active.ID, "0", client.StatusCurrent},
		{active.ID, "150.50", client.StatusDueSoon},
		{active.ID, "300", client.StatusOverdue},
		{inactive.ID, "49.50", client.StatusDueSoon},
	}
	for i, b := range book {
		c := &client.Client{
			ID:            uuid.New(),
			Name:          "Cliente",
			CPF:           uuid.NewString()[:11],
			CreditLimit:   decimal.RequireFromString("1000"),
			CurrentDebt:   decimal.RequireFromString(b.debt),
			PaymentStatus: b.status,
			MerchantID:    b.merchantID,
		}
		if err := clients.Upsert(ctx, c); err != nil {
			t.Fatalf("seed client %d failed: %v", i, err)
		}
	}

	return dashboard.NewService(merchants, clients), active.ID
}

func TestAdminStats(t *testing.T) {
	svc, _ := seedBook(t)

	got := svc.AdminStats(context.Background())
	if got.TotalMerchants != 2 || got.ActiveMerchants != 1 {
		t.Fatalf("unexpected merchant counts: %+v", got)
	}
	if got.TotalClients != 4 {
		t.Fatalf("expected 4 clients, got %d", got.TotalClients)
	}
	if !got.TotalDebt.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("expected total debt 500, got %s", got.TotalDebt)
	}
}

func TestMerchantStats(t *testing.T) {
	svc, merchantID := seedBook(t)

	got := svc.MerchantStats(context.Background(), merchantID)
	if got.TotalClients != 3 {
		t.Fatalf("expected 3 clients, got %d", got.TotalClients)
	}
	if got.ClientsInDebt != 2 {
		t.Fatalf("expected 2 clients in debt, got %d", got.ClientsInDebt)
	}
	if got.OverdueClients != 1 {
		t.Fatalf("expected 1 overdue client, got %d", got.OverdueClients)
	}
	if !got.TotalDebt.Equal(decimal.RequireFromString("450.50")) {
		t.Fatalf("expected debt 450.50, got %s", got.TotalDebt)
	}
}

func TestCashierStats(t *testing.T) {
	svc, merchantID := seedBook(t)

	got := svc.CashierStats(context.Background(), merchantID)
	if got.TotalClients != 3 || got.OverdueClients != 1 {
		t.Fatalf("unexpected cashier stats: %+v", got)
	}
}

func TestStatsForUnknownMerchantAreEmpty(t *testing.T) {
	svc, _ := seedBook(t)

	got := svc.MerchantStats(context.Background(), uuid.New())
	if got.TotalClients != 0 || !got.TotalDebt.IsZero() {
		t.Fatalf("expected empty stats, got %+v", got)
	}
}
