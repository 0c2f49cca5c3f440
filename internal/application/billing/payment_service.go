package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/payrec/backend/internal/domain/billing"
	"github.com/payrec/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PaymentService handles payment CRUD and listing
type PaymentService struct {
	paymentRepo  billing.PaymentRepository
	evidenceRepo billing.EvidenceRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	evidenceRepo billing.EvidenceRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		evidenceRepo: evidenceRepo,
	}
}

// List returns one page of payments matching the search term. The
// aggregate total multiplies the match count by the total due of the
// last fetched row; clients depend on this figure as-is.
func (s *PaymentService) List(ctx context.Context, filter ListFilter) (*PaymentListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	payments, err := s.paymentRepo.FindByPayeeName(ctx, filter.Search, limit*page)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	lastTotal := decimal.Zero
	items := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		lastTotal = p.TotalDueAmount()
		items = append(items, ToPaymentListItem(p, today))
	}

	count, err := s.paymentRepo.CountByPayeeName(ctx, filter.Search)
	if err != nil {
		return nil, err
	}
	total := lastTotal.Mul(decimal.NewFromInt(count)).Round(2)

	start := (page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := page * limit
	if end > len(items) {
		end = len(items)
	}

	return &PaymentListResponse{Data: items[start:end], Total: total}, nil
}

// GetByID fetches a single payment
func (s *PaymentService) GetByID(ctx context.Context, id string) (*PaymentResponse, error) {
	paymentID, err := shared.ParseID(id)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Payment not found")
		}
		return nil, err
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// Create persists a new payment. The status must be pending; a supplied
// evidence reference must resolve to an existing file.
func (s *PaymentService) Create(ctx context.Context, req PaymentRequest) (string, error) {
	if req.PayeePaymentStatus != string(billing.PaymentStatusPending) {
		return "", shared.NewDomainError("INVALID_STATE",
			"payee_payment_status must be 'pending' when creating a payment")
	}

	payment := billing.NewPayment()
	payment.AddedDateUTC = payment.CreatedAt
	if err := req.apply(payment); err != nil {
		return "", err
	}
	payment.Status = billing.PaymentStatusPending

	if req.EvidenceID != nil && *req.EvidenceID != "" {
		evidenceID, err := s.resolveEvidence(ctx, *req.EvidenceID)
		if err != nil {
			return "", err
		}
		payment.EvidenceID = &evidenceID
	}

	if err := s.paymentRepo.Insert(ctx, payment); err != nil {
		return "", err
	}
	return shared.FormatID(payment.ID), nil
}

// Update replaces the full payment document. When the stored record
// carries an evidence reference the update must supply one; when it
// carries none the incoming reference is dropped.
func (s *PaymentService) Update(ctx context.Context, id string, req PaymentRequest) error {
	status := billing.PaymentStatus(req.PayeePaymentStatus)
	if !status.AllowedOnUpdate() {
		return shared.NewDomainError("INVALID_STATE",
			"Invalid payment status. Allowed values are 'pending', 'due_now', 'completed'.")
	}

	paymentID, err := shared.ParseID(id)
	if err != nil {
		return err
	}

	existing, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Payment not found")
		}
		return err
	}

	payment := &billing.Payment{BaseEntity: existing.BaseEntity}
	if err := req.apply(payment); err != nil {
		return err
	}
	payment.Status = status
	payment.TotalDue = existing.TotalDue

	if existing.EvidenceID != nil {
		if req.EvidenceID == nil || *req.EvidenceID == "" {
			return shared.NewDomainError("INVALID_STATE",
				"Evidence ID is required as it already exists in the payment.")
		}
		evidenceID, err := s.resolveEvidence(ctx, *req.EvidenceID)
		if err != nil {
			return err
		}
		payment.EvidenceID = &evidenceID
	} else {
		payment.EvidenceID = nil
	}

	return s.paymentRepo.Replace(ctx, payment)
}

// Delete removes a payment along with its linked evidence file. The
// evidence delete runs first and tolerates a missing record.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	paymentID, err := shared.ParseID(id)
	if err != nil {
		return err
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Payment not found")
		}
		return err
	}

	if payment.EvidenceID != nil {
		if err := s.evidenceRepo.Delete(ctx, *payment.EvidenceID); err != nil {
			return err
		}
	}

	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Payment not found")
		}
		return err
	}
	return nil
}

// resolveEvidence parses an external evidence reference and verifies the
// file exists.
func (s *PaymentService) resolveEvidence(ctx context.Context, raw string) (uuid.UUID, error) {
	evidenceID, err := shared.ParseID(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := s.evidenceRepo.FindByID(ctx, evidenceID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.NewDomainError("NOT_FOUND", "Evidence file not found for the given ID")
		}
		return uuid.Nil, err
	}
	return evidenceID, nil
}
