package ledger

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/pkg/memdb"
)

// Repository defines credit record storage operations
type Repository interface {
	Append(ctx context.Context, rec *CreditRecord) error
	// ByClient returns the client's records in grant order.
	ByClient(ctx context.Context, clientID uuid.UUID) []CreditRecord
	// UnpaidByClient returns the client's unsettled records, oldest due
	// date first — the settlement order.
	UnpaidByClient(ctx context.Context, clientID uuid.UUID) []CreditRecord
	// Settle applies fn to the record with the given id.
	Settle(ctx context.Context, id uuid.UUID, fn func(*CreditRecord) error) error
	// SweepOverdue flips every pending record matching pastDue to overdue
	// and returns the ids of affected clients.
	SweepOverdue(ctx context.Context, pastDue func(rec *CreditRecord) bool) []uuid.UUID
	All(ctx context.Context) []CreditRecord
}

type repository struct {
	records *memdb.Collection[CreditRecord]
}

// NewRepository creates an in-memory credit record repository
func NewRepository() Repository {
	return &repository{records: memdb.NewCollection[CreditRecord]()}
}

func (r *repository) Append(_ context.Context, rec *CreditRecord) error {
	r.records.Append(*rec)
	return nil
}

func (r *repository) ByClient(_ context.Context, clientID uuid.UUID) []CreditRecord {
	return r.records.Filter(func(rec CreditRecord) bool { return rec.ClientID == clientID })
}

func (r *repository) UnpaidByClient(_ context.Context, clientID uuid.UUID) []CreditRecord {
	unpaid := r.records.Filter(func(rec CreditRecord) bool {
		return rec.ClientID == clientID && !rec.IsSettled()
	})
	sort.SliceStable(unpaid, func(i, j int) bool {
		return unpaid[i].DueDate.Before(unpaid[j].DueDate)
	})
	return unpaid
}

func (r *repository) Settle(_ context.Context, id uuid.UUID, fn func(*CreditRecord) error) error {
	_, err := r.records.Update(func(rec CreditRecord) bool { return rec.ID == id }, fn)
	return err
}

func (r *repository) SweepOverdue(_ context.Context, pastDue func(rec *CreditRecord) bool) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var affected []uuid.UUID

	r.records.UpdateAll(func(rec *CreditRecord) bool {
		if rec.Status != RecordPending || !pastDue(rec) {
			return false
		}
		rec.Status = RecordOverdue
		if !seen[rec.ClientID] {
			seen[rec.ClientID] = true
			affected = append(affected, rec.ClientID)
		}
		return true
	})

	return affected
}

func (r *repository) All(_ context.Context) []CreditRecord {
	return r.records.All()
}
