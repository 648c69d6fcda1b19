package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type CreditRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=255"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
}

type RecordResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"due_date"`
	Status      RecordStatus    `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}

func NewRecordResponse(rec *CreditRecord) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		ClientID:    rec.ClientID,
		Amount:      rec.Amount,
		Description: rec.Description,
		DueDate:     rec.DueDate,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt,
		PaidAt:      rec.PaidAt,
	}
}

func NewRecordListResponse(recs []CreditRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(recs))
	for i := range recs {
		out = append(out, NewRecordResponse(&recs[i]))
	}
	return out
}
