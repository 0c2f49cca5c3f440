package billing

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository is the persistence gateway for the payments
// collection. Implementations return shared.ErrNotFound when a lookup,
// replace or delete matches no record.
type PaymentRepository interface {
	// FindByID returns the payment with the given identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByPayeeName returns up to limit payments whose payee first or
	// last name contains the search term (case-insensitive substring;
	// empty term matches everything). Results come back in insertion
	// order; no other ordering is guaranteed.
	FindByPayeeName(ctx context.Context, search string, limit int) ([]Payment, error)

	// CountByPayeeName counts all payments matching the search term.
	CountByPayeeName(ctx context.Context, search string) (int64, error)

	// Insert persists a new payment.
	Insert(ctx context.Context, payment *Payment) error

	// InsertMany persists a batch of payments in one call.
	InsertMany(ctx context.Context, payments []Payment) error

	// Replace overwrites the full document for the payment's ID.
	Replace(ctx context.Context, payment *Payment) error

	// SetEvidenceID updates only the evidence reference on a payment.
	SetEvidenceID(ctx context.Context, paymentID uuid.UUID, evidenceID *uuid.UUID) error

	// Delete removes the payment, reporting shared.ErrNotFound when
	// nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EvidenceRepository is the persistence gateway for the files
// collection.
type EvidenceRepository interface {
	// FindByID returns the evidence record with the given identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Evidence, error)

	// Insert persists a new evidence record.
	Insert(ctx context.Context, evidence *Evidence) error

	// Delete removes the evidence record. Deleting a missing record is
	// not an error; cascade deletes are best-effort.
	Delete(ctx context.Context, id uuid.UUID) error
}
