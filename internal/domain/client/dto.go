package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertRequest for POST /clients and PUT /clients/{id}
type UpsertRequest struct {
	Name          string          `json:"name" validate:"required,min=2,max=200"`
	CPF           string          `json:"cpf" validate:"required,min=11,max=14"`
	Email         string          `json:"email" validate:"required,email,max=255"`
	Phone         string          `json:"phone" validate:"required,max=30"`
	Address       string          `json:"address" validate:"required,max=300"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	CurrentDebt   decimal.Decimal `json:"current_debt"`
	PaymentStatus string          `json:"payment_status" validate:"omitempty,payment_status"`
}

// ReminderRequest for POST /clients/{id}/reminders
type ReminderRequest struct {
	Kind string `json:"kind" validate:"required,oneof=overdue upcoming promotion"`
}

// ReminderResponse carries the composed message back to the caller
type ReminderResponse struct {
	ClientID uuid.UUID `json:"client_id"`
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CPF             string          `json:"cpf"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CurrentDebt     decimal.Decimal `json:"current_debt"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	PaymentStatus   string          `json:"payment_status"`
	LastPayment     string          `json:"last_payment"`
	CreatedAt       string          `json:"created_at"`
	MerchantID      uuid.UUID       `json:"merchant_id"`
}

// NewClientResponse maps the entity to its API shape
func NewClientResponse(c *Client) ClientResponse {
	return ClientResponse{
		ID:              c.ID,
		Name:            c.Name,
		CPF:             c.CPF,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		CreditLimit:     c.CreditLimit,
		CurrentDebt:     c.CurrentDebt,
		AvailableCredit: c.AvailableCredit(),
		PaymentStatus:   string(c.PaymentStatus),
		LastPayment:     c.LastPayment.Format(time.RFC3339),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		MerchantID:      c.MerchantID,
	}
}

// NewClientListResponse maps a client slice to API shape
func NewClientListResponse(clients []Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, NewClientResponse(&clients[i]))
	}
	return out
}
