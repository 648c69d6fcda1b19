package config

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/domain/ledger"
	"github.com/crediario/crediario-api/internal/domain/merchant"
	"github.com/crediario/crediario-api/internal/domain/user"
	"github.com/crediario/crediario-api/internal/pkg/password"
)

// Seeder populates the in-memory stores with the demo dataset. The RNG is
// seeded from config so every boot produces the same data.
type Seeder struct {
	cfg       *Config
	users     user.Repository
	merchants merchant.Repository
	clients   client.Repository
	records   ledger.Repository
	rng       *rand.Rand
	now       time.Time
}

// NewSeeder creates a new seeder instance
func NewSeeder(cfg *Config, users user.Repository, merchants merchant.Repository, clients client.Repository, records ledger.Repository) *Seeder {
	return &Seeder{
		cfg:       cfg,
		users:     users,
		merchants: merchants,
		clients:   clients,
		records:   records,
		rng:       rand.New(rand.NewSource(cfg.SeedRandSeed)),
		now:       time.Now(),
	}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Info().Msg("seeding demo data")

	merchants, err := s.seedMerchants(ctx)
	if err != nil {
		return err
	}

	if err := s.seedUsers(ctx, merchants[0].ID); err != nil {
		return err
	}

	if err := s.seedClients(ctx, merchants[0]); err != nil {
		return err
	}

	log.Info().
		Int("merchants", len(merchants)).
		Msg("seeding completed")
	return nil
}

var merchantNames = []string{
	"Loja do João",
	"Mercadinho Central",
	"Armarinho Dona Rosa",
	"Padaria Estrela",
	"Magazine Boa Compra",
	"Farmácia Vida",
	"Casa de Carnes Dois Irmãos",
	"Papelaria Saber",
}

func (s *Seeder) seedMerchants(ctx context.Context) ([]*merchant.Merchant, error) {
	out := make([]*merchant.Merchant, 0, len(merchantNames))
	for i, name := range merchantNames {
		status := merchant.StatusActive
		if i >= 6 {
			status = merchant.StatusInactive
		}
		m := &merchant.Merchant{
			ID:           uuid.New(),
			Name:         name,
			Email:        fmt.Sprintf("contato%d@loja.com", i+1),
			Phone:        fmt.Sprintf("(11) 9%04d-%04d", s.rng.Intn(10000), s.rng.Intn(10000)),
			Address:      fmt.Sprintf("Rua das Flores, %d", 100+i*37),
			Status:       status,
			CreatedAt:    s.now.AddDate(0, -len(merchantNames)+i, 0),
			TotalClients: 0,
			TotalDebt:    decimal.Zero,
		}
		if err := s.merchants.Create(ctx, m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *Seeder) seedUsers(ctx context.Context, merchantID uuid.UUID) error {
	accounts := []struct {
		email, plain, name string
		role               user.Role
		merchantID         *uuid.UUID
	}{
		{"admin@sistema.com", "admin123", "Administrador", user.RoleSuperAdmin, nil},
		{"comerciante@loja.com", "comerciante123", "João Silva", user.RoleMerchant, &merchantID},
		{"caixa@loja.com", "caixa123", "Maria Santos", user.RoleCashier, &merchantID},
	}

	for _, a := range accounts {
		hash, err := password.Hash(a.plain)
		if err != nil {
			return err
		}
		u := &user.User{
			ID:           uuid.New(),
			Email:        a.email,
			PasswordHash: hash,
			Name:         a.name,
			Role:         a.role,
			MerchantID:   a.merchantID,
			CreatedAt:    s.now,
		}
		if err := s.users.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

var clientFirstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela",
	"Hugo", "Isabela", "Jorge", "Larissa", "Marcos", "Natália",
	"Otávio", "Paula", "Rafael", "Sofia", "Thiago", "Vera", "Wagner",
	"Beatriz", "Caio", "Daniela", "Eduardo", "Fernanda",
}

var clientLastNames = []string{
	"Almeida", "Barbosa", "Cardoso", "Dias", "Ferreira",
	"Gomes", "Lima", "Martins", "Nunes", "Oliveira",
}

func (s *Seeder) seedClients(ctx context.Context, m *merchant.Merchant) error {
	const clientCount = 25

	totalDebt := decimal.Zero
	for i := 0; i < clientCount; i++ {
		// limit between 500.00 and 5000.00, debt between 0 and min(limit, 2000.00)
		limitCents := int64(50000 + s.rng.Intn(450001))
		maxDebtCents := limitCents
		if maxDebtCents > 200000 {
			maxDebtCents = 200000
		}
		debtCents := s.rng.Int63n(maxDebtCents + 1)
		if i%5 == 0 {
			debtCents = 0
		}

		limit := decimal.New(limitCents, -2)
		debt := decimal.New(debtCents, -2)

		status := client.StatusDueSoon
		if debt.IsZero() {
			status = client.StatusCurrent
		}

		name := fmt.Sprintf("%s %s",
			clientFirstNames[i%len(clientFirstNames)],
			clientLastNames[s.rng.Intn(len(clientLastNames))])

		c := &client.Client{
			ID:            uuid.New(),
			Name:          name,
			CPF:           s.randomCPF(),
			Email:         fmt.Sprintf("cliente%d@email.com", i+1),
			Phone:         fmt.Sprintf("(11) 9%04d-%04d", s.rng.Intn(10000), s.rng.Intn(10000)),
			Address:       fmt.Sprintf("Av. Brasil, %d", 10+i*13),
			CreditLimit:   limit,
			CurrentDebt:   debt,
			PaymentStatus: status,
			LastPayment:   s.now.AddDate(0, 0, -s.rng.Intn(60)),
			CreatedAt:     s.now.AddDate(0, 0, -30-s.rng.Intn(300)),
			MerchantID:    m.ID,
		}
		if err := s.clients.Upsert(ctx, c); err != nil {
			return err
		}

		if err := s.seedRecords(ctx, c); err != nil {
			return err
		}
		totalDebt = totalDebt.Add(debt)
	}

	m.TotalClients = clientCount
	m.TotalDebt = totalDebt
	return s.merchants.Update(ctx, m)
}

// seedRecords splits the client's debt into pending credit records so the
// ledger reconciles with the balance. Some due dates land in the past to
// give the overdue sweep something to flip.
func (s *Seeder) seedRecords(ctx context.Context, c *client.Client) error {
	if !c.HasDebt() {
		return nil
	}

	descriptions := []string{
		"Compra no crediário",
		"Parcelamento de mercadorias",
		"Compra fiado",
		"Venda a prazo",
	}

	remaining := c.CurrentDebt
	parts := 1 + s.rng.Intn(2)
	for p := 0; p < parts; p++ {
		amount := remaining
		if p < parts-1 {
			half := remaining.Div(decimal.NewFromInt(2)).Round(2)
			if half.IsZero() {
				break
			}
			amount = half
		}
		remaining = remaining.Sub(amount)

		granted := s.now.AddDate(0, 0, -s.rng.Intn(45))
		rec := &ledger.CreditRecord{
			ID:          uuid.New(),
			ClientID:    c.ID,
			Amount:      amount,
			Description: descriptions[s.rng.Intn(len(descriptions))],
			DueDate:     granted.AddDate(0, 0, ledger.DefaultTermDays),
			Status:      ledger.RecordPending,
			CreatedAt:   granted,
		}
		if err := s.records.Append(ctx, rec); err != nil {
			return err
		}
		if remaining.IsZero() {
			break
		}
	}
	return nil
}

// randomCPF produces an 11-digit string. These are synthetic and not
// checksum-valid CPFs.
func (s *Seeder) randomCPF() string {
	digits := make([]byte, 11)
	for i := range digits {
		digits[i] = byte('0' + s.rng.Intn(10))
	}
	return string(digits)
}
