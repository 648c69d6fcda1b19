package merchant

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRequest for POST /merchants
type CreateRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Address string `json:"address" validate:"required,max=300"`
	Status  string `json:"status" validate:"omitempty,merchant_status"`
}

// UpdateRequest for PUT /merchants/{id}
type UpdateRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=200"`
	Email        string          `json:"email" validate:"required,email,max=255"`
	Phone        string          `json:"phone" validate:"required,max=30"`
	Address      string          `json:"address" validate:"required,max=300"`
	Status       string          `json:"status" validate:"required,merchant_status"`
	TotalClients int             `json:"total_clients" validate:"gte=0"`
	TotalDebt    decimal.Decimal `json:"total_debt"`
}

// MerchantResponse represents a merchant in API responses
type MerchantResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	TotalClients int             `json:"total_clients"`
	TotalDebt    decimal.Decimal `json:"total_debt"`
}

// NewMerchantResponse maps the entity to its API shape
func NewMerchantResponse(m *Merchant) MerchantResponse {
	return MerchantResponse{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
		TotalClients: m.TotalClients,
		TotalDebt:    m.TotalDebt,
	}
}

// NewMerchantListResponse maps a merchant slice to API shape
func NewMerchantListResponse(merchants []Merchant) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(merchants))
	for i := range merchants {
		out = append(out, NewMerchantResponse(&merchants[i]))
	}
	return out
}
