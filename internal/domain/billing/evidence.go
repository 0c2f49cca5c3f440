package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/payrec/backend/internal/domain/shared"
)

// Evidence represents one uploaded binary document attached to a payment
// as proof. Evidence records are immutable once written; they are only
// ever created and deleted.
type Evidence struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	FileName  string
	Content   []byte
	UpdatedOn time.Time
}

// NewEvidence creates an evidence record for the given payment with the
// upload timestamp set to now.
func NewEvidence(paymentID uuid.UUID, fileName string, content []byte) (*Evidence, error) {
	if paymentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment ID cannot be empty")
	}
	if fileName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "File name cannot be empty")
	}
	return &Evidence{
		ID:        uuid.New(),
		PaymentID: paymentID,
		FileName:  fileName,
		Content:   content,
		UpdatedOn: time.Now().UTC(),
	}, nil
}
