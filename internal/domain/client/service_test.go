package client_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
)

func TestCreateDefaultsToCurrentStatus(t *testing.T) {
	ctx := context.Background()
	svc := client.NewService(client.NewRepository())

	c, err := svc.Create(ctx, uuid.New(), &client.UpsertRequest{
		Name:        "Ana Almeida",
		CPF:         "12345678900",
		CreditLimit: decimal.RequireFromString("1000"),
		CurrentDebt: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if c.PaymentStatus != client.StatusCurrent {
		t.Fatalf("expected em_dia default, got %s", c.PaymentStatus)
	}
	if c.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
}

func TestUpdatePreservesHistoryFields(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	svc := client.NewService(client.NewRepository())

	created, err := svc.Create(ctx, merchantID, &client.UpsertRequest{
		Name:        "Bruno Barbosa",
		CPF:         "22222222222",
		CreditLimit: decimal.RequireFromString("1000"),
		CurrentDebt: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, merchantID, created.ID, &client.UpsertRequest{
		Name:        "Bruno Barbosa Filho",
		CPF:         "22222222222",
		CreditLimit: decimal.RequireFromString("2000"),
		CurrentDebt: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Name != "Bruno Barbosa Filho" {
		t.Fatalf("expected new name, got %s", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must not touch created_at")
	}
	if !updated.LastPayment.Equal(created.LastPayment) {
		t.Fatal("update must not touch last_payment")
	}
	if updated.MerchantID != merchantID {
		t.Fatal("update must not move the client to another merchant")
	}
}

func TestCreateRejectsInvalidBalance(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	repo := client.NewRepository()
	svc := client.NewService(repo)

	cases := []struct {
		name        string
		limit, debt string
	}{
		{"debt over limit", "1000", "5000"},
		{"negative limit", "-1000", "0"},
		{"negative debt", "1000", "-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, merchantID, &client.UpsertRequest{
				Name:        "Ana Almeida",
				CPF:         "12345678900",
				CreditLimit: decimal.RequireFromString(tc.limit),
				CurrentDebt: decimal.RequireFromString(tc.debt),
			})
			if !errors.Is(err, client.ErrInvalidBalance) {
				t.Fatalf("expected ErrInvalidBalance, got %v", err)
			}
		})
	}

	if got := len(repo.All(ctx)); got != 0 {
		t.Fatalf("rejected creates must not persist, found %d clients", got)
	}
}

func TestUpdateRejectsInvalidBalance(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	repo := client.NewRepository()
	svc := client.NewService(repo)

	created, err := svc.Create(ctx, merchantID, &client.UpsertRequest{
		Name:        "Ana Almeida",
		CPF:         "12345678900",
		CreditLimit: decimal.RequireFromString("1000"),
		CurrentDebt: decimal.RequireFromString("200"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, merchantID, created.ID, &client.UpsertRequest{
		Name:        "Ana Almeida",
		CPF:         "12345678900",
		CreditLimit: decimal.RequireFromString("1000"),
		CurrentDebt: decimal.RequireFromString("5000"),
	})
	if !errors.Is(err, client.ErrInvalidBalance) {
		t.Fatalf("expected ErrInvalidBalance, got %v", err)
	}

	stored, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !stored.CurrentDebt.Equal(decimal.RequireFromString("200")) {
		t.Fatalf("rejected update changed the debt: %s", stored.CurrentDebt)
	}
	if stored.AvailableCredit().IsNegative() {
		t.Fatalf("available credit went negative: %s", stored.AvailableCredit())
	}
}

func TestGetHidesOtherMerchantsClients(t *testing.T) {
	ctx := context.Background()
	svc := client.NewService(client.NewRepository())

	c, err := svc.Create(ctx, uuid.New(), &client.UpsertRequest{
		Name:        "Carla Cardoso",
		CPF:         "33333333333",
		CreditLimit: decimal.RequireFromString("1000"),
		CurrentDebt: decimal.Zero,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Get(ctx, uuid.New(), c.ID)
	if !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign merchant, got %v", err)
	}
}

func TestSendReminderMatchesStatus(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	repo := client.NewRepository()
	svc := client.NewService(repo)

	overdue := addClient(t, repo, merchantID, "Diego Dias", "44444444444", client.StatusOverdue)
	current := addClient(t, repo, merchantID, "Elisa Ferreira", "55555555555", client.StatusCurrent)

	got, err := svc.SendReminder(ctx, merchantID, overdue.ID, client.ReminderOverdue)
	if err != nil {
		t.Fatalf("reminder failed: %v", err)
	}
	if !strings.Contains(got.Message, overdue.Name) {
		t.Fatalf("message must address the client: %q", got.Message)
	}
	if !strings.Contains(got.Message, "atraso") {
		t.Fatalf("overdue reminder must mention late payments: %q", got.Message)
	}

	// an overdue nudge to a client in good standing is rejected
	_, err = svc.SendReminder(ctx, merchantID, current.ID, client.ReminderOverdue)
	if !errors.Is(err, client.ErrReminderNotApplicable) {
		t.Fatalf("expected ErrReminderNotApplicable, got %v", err)
	}

	// promotions go the other way
	if _, err := svc.SendReminder(ctx, merchantID, current.ID, client.ReminderPromotion); err != nil {
		t.Fatalf("promotion failed: %v", err)
	}
	_, err = svc.SendReminder(ctx, merchantID, overdue.ID, client.ReminderPromotion)
	if !errors.Is(err, client.ErrReminderNotApplicable) {
		t.Fatalf("expected ErrReminderNotApplicable, got %v", err)
	}
}

func TestSendReminderRejectsUnknownKind(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	repo := client.NewRepository()
	svc := client.NewService(repo)

	c := addClient(t, repo, merchantID, "Felipe Gomes", "66666666666", client.StatusCurrent)

	_, err := svc.SendReminder(ctx, merchantID, c.ID, "birthday")
	if !errors.Is(err, client.ErrInvalidReminderKind) {
		t.Fatalf("expected ErrInvalidReminderKind, got %v", err)
	}
}
