package billing

import (
	"context"
	"errors"
	"time"

	"github.com/payrec/backend/internal/domain/billing"
	"github.com/payrec/backend/internal/domain/shared"
)

// AllowedEvidenceContentTypes is the whitelist of accepted upload types
var AllowedEvidenceContentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// EvidenceService handles evidence upload, download and metadata lookup
type EvidenceService struct {
	paymentRepo  billing.PaymentRepository
	evidenceRepo billing.EvidenceRepository
}

// NewEvidenceService creates a new EvidenceService
func NewEvidenceService(
	paymentRepo billing.PaymentRepository,
	evidenceRepo billing.EvidenceRepository,
) *EvidenceService {
	return &EvidenceService{
		paymentRepo:  paymentRepo,
		evidenceRepo: evidenceRepo,
	}
}

// Upload stores an evidence file and links it to the payment. The insert
// and the link are two separate writes; a crash in between leaves an
// unreferenced file behind.
func (s *EvidenceService) Upload(ctx context.Context, rawPaymentID, fileName, contentType string, content []byte) (string, error) {
	paymentID, err := shared.ParseID(rawPaymentID)
	if err != nil {
		return "", err
	}

	if !AllowedEvidenceContentTypes[contentType] {
		return "", shared.NewDomainError("INVALID_INPUT", "Invalid file type")
	}

	if _, err := s.paymentRepo.FindByID(ctx, paymentID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.NewDomainError("NOT_FOUND", "Payment not found")
		}
		return "", err
	}

	evidence, err := billing.NewEvidence(paymentID, fileName, content)
	if err != nil {
		return "", err
	}

	if err := s.evidenceRepo.Insert(ctx, evidence); err != nil {
		return "", err
	}
	if err := s.paymentRepo.SetEvidenceID(ctx, paymentID, &evidence.ID); err != nil {
		return "", err
	}

	return shared.FormatID(evidence.ID), nil
}

// DownloadByPayment returns the evidence bytes linked to a payment
func (s *EvidenceService) DownloadByPayment(ctx context.Context, rawPaymentID string) (*EvidenceDownload, error) {
	paymentID, err := shared.ParseID(rawPaymentID)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if payment == nil || payment.EvidenceID == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "No evidence linked to this payment")
	}

	evidence, err := s.evidenceRepo.FindByID(ctx, *payment.EvidenceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Evidence file not found")
		}
		return nil, err
	}

	return &EvidenceDownload{FileName: evidence.FileName, Content: evidence.Content}, nil
}

// GetMetadataByID returns the evidence metadata document with all
// identifier fields stringified.
func (s *EvidenceService) GetMetadataByID(ctx context.Context, rawFileID string) (map[string]any, error) {
	fileID, err := shared.ParseID(rawFileID)
	if err != nil {
		return nil, err
	}

	evidence, err := s.evidenceRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "File not found")
		}
		return nil, err
	}

	doc := map[string]any{
		"file_id":    evidence.ID,
		"payment_id": evidence.PaymentID,
		"filename":   evidence.FileName,
	}
	if evidence.UpdatedOn.IsZero() {
		doc["updated_on"] = nil
	} else {
		doc["updated_on"] = evidence.UpdatedOn.UTC().Format(time.RFC3339)
	}
	return shared.SanitizeDocument(doc), nil
}
