package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/domain/ledger"
)

func newClient(limit, debt string, status client.PaymentStatus) client.Client {
	return client.Client{
		Name:          "Ana Almeida",
		CreditLimit:   decimal.RequireFromString(limit),
		CurrentDebt:   decimal.RequireFromString(debt),
		PaymentStatus: status,
	}
}

func TestApplyPaymentReducesDebt(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	c := newClient("1000", "300", client.StatusDueSoon)

	got, err := ledger.ApplyPayment(c, decimal.RequireFromString("100"), now)
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if !got.CurrentDebt.Equal(decimal.RequireFromString("200")) {
		t.Fatalf("expected debt 200, got %s", got.CurrentDebt)
	}
	if got.PaymentStatus != client.StatusDueSoon {
		t.Fatalf("partial payment must not change status, got %s", got.PaymentStatus)
	}
	if !got.LastPayment.Equal(now) {
		t.Fatalf("expected last payment %v, got %v", now, got.LastPayment)
	}
}

func TestApplyPaymentFullSettleFlipsStatus(t *testing.T) {
	now := time.Now()
	c := newClient("1000", "300", client.StatusOverdue)

	got, err := ledger.ApplyPayment(c, decimal.RequireFromString("300"), now)
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if !got.CurrentDebt.IsZero() {
		t.Fatalf("expected zero debt, got %s", got.CurrentDebt)
	}
	if got.PaymentStatus != client.StatusCurrent {
		t.Fatalf("expected em_dia after full settlement, got %s", got.PaymentStatus)
	}
}

func TestApplyPaymentRejectsExcess(t *testing.T) {
	c := newClient("1000", "300", client.StatusDueSoon)

	_, err := ledger.ApplyPayment(c, decimal.RequireFromString("300.01"), time.Now())
	if !errors.Is(err, ledger.ErrExceedsDebt) {
		t.Fatalf("expected ErrExceedsDebt, got %v", err)
	}
}

func TestApplyPaymentRejectsNonPositive(t *testing.T) {
	c := newClient("1000", "300", client.StatusDueSoon)

	for _, amount := range []string{"0", "-10"} {
		_, err := ledger.ApplyPayment(c, decimal.RequireFromString(amount), time.Now())
		if !errors.Is(err, ledger.ErrInvalidAmount) {
			t.Fatalf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestApplyCreditIncreasesDebt(t *testing.T) {
	c := newClient("1000", "300", client.StatusCurrent)

	got, err := ledger.ApplyCredit(c, decimal.RequireFromString("700"), "Compra no crediário")
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if !got.CurrentDebt.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("expected debt 1000, got %s", got.CurrentDebt)
	}
	if got.PaymentStatus != client.StatusDueSoon {
		t.Fatalf("expected a_vencer after grant, got %s", got.PaymentStatus)
	}
}

func TestApplyCreditRejectsOverLimit(t *testing.T) {
	c := newClient("1000", "300", client.StatusCurrent)

	_, err := ledger.ApplyCredit(c, decimal.RequireFromString("700.01"), "Compra")
	if !errors.Is(err, ledger.ErrExceedsAvailableCredit) {
		t.Fatalf("expected ErrExceedsAvailableCredit, got %v", err)
	}
}

func TestApplyCreditRequiresDescription(t *testing.T) {
	c := newClient("1000", "0", client.StatusCurrent)

	for _, desc := range []string{"", "   "} {
		_, err := ledger.ApplyCredit(c, decimal.RequireFromString("100"), desc)
		if !errors.Is(err, ledger.ErrMissingDescription) {
			t.Fatalf("description %q: expected ErrMissingDescription, got %v", desc, err)
		}
	}
}

func TestRejectionsLeaveClientUnchanged(t *testing.T) {
	c := newClient("1000", "300", client.StatusDueSoon)
	before := c

	if _, err := ledger.ApplyPayment(c, decimal.RequireFromString("500"), time.Now()); err == nil {
		t.Fatal("expected payment rejection")
	}
	if _, err := ledger.ApplyCredit(c, decimal.RequireFromString("5000"), "Compra"); err == nil {
		t.Fatal("expected credit rejection")
	}

	if !c.CurrentDebt.Equal(before.CurrentDebt) || c.PaymentStatus != before.PaymentStatus {
		t.Fatalf("rejected operation mutated the client: %+v", c)
	}
}

func TestGrantThenPayRoundTrip(t *testing.T) {
	now := time.Now()
	c := newClient("2000", "0", client.StatusCurrent)

	c, err := ledger.ApplyCredit(c, decimal.RequireFromString("850.50"), "Venda a prazo")
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	c, err = ledger.ApplyPayment(c, decimal.RequireFromString("850.50"), now)
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}

	if !c.CurrentDebt.IsZero() {
		t.Fatalf("expected zero debt after round trip, got %s", c.CurrentDebt)
	}
	if c.PaymentStatus != client.StatusCurrent {
		t.Fatalf("expected em_dia, got %s", c.PaymentStatus)
	}
	if !c.AvailableCredit().Equal(c.CreditLimit) {
		t.Fatalf("expected full headroom, got %s", c.AvailableCredit())
	}
}
