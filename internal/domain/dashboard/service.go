package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/domain/merchant"
)

// AdminStats summarizes the whole platform for the super admin panel.
type AdminStats struct {
	TotalMerchants  int             `json:"total_merchants"`
	ActiveMerchants int             `json:"active_merchants"`
	TotalClients    int             `json:"total_clients"`
	TotalDebt       decimal.Decimal `json:"total_debt"`
}

// MerchantStats summarizes a single merchant's client book.
type MerchantStats struct {
	TotalClients   int             `json:"total_clients"`
	ClientsInDebt  int             `json:"clients_in_debt"`
	OverdueClients int             `json:"overdue_clients"`
	TotalDebt      decimal.Decimal `json:"total_debt"`
}

// CashierStats is the light summary shown on the point-of-sale screen.
type CashierStats struct {
	TotalClients   int `json:"total_clients"`
	OverdueClients int `json:"overdue_clients"`
}

// Service aggregates dashboard figures from the merchant and client books
type Service struct {
	merchants merchant.Repository
	clients   client.Repository
}

// NewService creates dashboard service
func NewService(merchants merchant.Repository, clients client.Repository) *Service {
	return &Service{merchants: merchants, clients: clients}
}

// AdminStats aggregates across every merchant. Client counts and debt come
// from the live client book, not the cached merchant totals.
func (s *Service) AdminStats(ctx context.Context) AdminStats {
	stats := AdminStats{TotalDebt: decimal.Zero}

	for _, m := range s.merchants.All(ctx) {
		stats.TotalMerchants++
		if m.IsActive() {
			stats.ActiveMerchants++
		}
	}

	for _, c := range s.clients.All(ctx) {
		stats.TotalClients++
		stats.TotalDebt = stats.TotalDebt.Add(c.CurrentDebt)
	}

	return stats
}

// MerchantStats aggregates the merchant's own clients.
func (s *Service) MerchantStats(ctx context.Context, merchantID uuid.UUID) MerchantStats {
	stats := MerchantStats{TotalDebt: decimal.Zero}

	for _, c := range s.clients.ByMerchant(ctx, merchantID) {
		stats.TotalClients++
		if c.HasDebt() {
			stats.ClientsInDebt++
		}
		if c.PaymentStatus == client.StatusOverdue {
			stats.OverdueClients++
		}
		stats.TotalDebt = stats.TotalDebt.Add(c.CurrentDebt)
	}

	return stats
}

// CashierStats returns the subset of merchant figures a cashier may see.
func (s *Service) CashierStats(ctx context.Context, merchantID uuid.UUID) CashierStats {
	full := s.MerchantStats(ctx, merchantID)
	return CashierStats{
		TotalClients:   full.TotalClients,
		OverdueClients: full.OverdueClients,
	}
}
