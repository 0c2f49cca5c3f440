package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/payrec/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusDueNow    PaymentStatus = "due_now"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusDueNow, PaymentStatusOverdue, PaymentStatusCompleted:
		return true
	default:
		return false
	}
}

// AllowedOnUpdate reports whether the status may be supplied on a full
// update. Overdue is derived from the due date and never accepted from
// the client.
func (s PaymentStatus) AllowedOnUpdate() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusDueNow, PaymentStatusCompleted:
		return true
	default:
		return false
	}
}

// Payment represents one billable obligation owed by a payee
type Payment struct {
	shared.BaseEntity
	PayeeFirstName  string
	PayeeLastName   string
	Status          PaymentStatus
	AddedDateUTC    time.Time
	DueDate         time.Time // date only, stored at midnight UTC
	AddressLine1    string
	AddressLine2    string
	City            string
	Country         string
	ProvinceOrState string
	PostalCode      string
	PhoneNumber     string
	Email           string
	Currency        string
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
	DueAmount       decimal.Decimal
	TotalDue        decimal.Decimal // persisted by CSV import only; read paths recompute
	EvidenceID      *uuid.UUID
}

// NewPayment creates a payment with a generated identifier and the added
// timestamp set to now. The due date is normalized to midnight UTC.
func NewPayment() *Payment {
	base := shared.NewBaseEntity()
	return &Payment{
		BaseEntity:   base,
		Status:       PaymentStatusPending,
		AddedDateUTC: base.CreatedAt,
	}
}

// NormalizeDueDate strips the time-of-day component, keeping the
// calendar date at midnight UTC.
func NormalizeDueDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TotalDue computes the amount due after discount and tax adjustments:
// due * (1 - discount/100) * (1 + tax/100), rounded to 2 decimal places.
// Rounding is decimal.Round (half away from zero).
func TotalDue(dueAmount, discountPercent, taxPercent decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	discounted := decimal.NewFromInt(1).Sub(discountPercent.Div(hundred))
	taxed := decimal.NewFromInt(1).Add(taxPercent.Div(hundred))
	return dueAmount.Mul(discounted).Mul(taxed).Round(2)
}

// TotalDueAmount computes the payment's own total due.
func (p *Payment) TotalDueAmount() decimal.Decimal {
	return TotalDue(p.DueAmount, p.DiscountPercent, p.TaxPercent)
}

// DeriveStatus returns the status a payment should display given its due
// date: overdue when the due date has passed, due_now when it is today,
// otherwise the stored status unchanged. Only the calendar dates are
// compared.
func DeriveStatus(dueDate time.Time, current PaymentStatus, today time.Time) PaymentStatus {
	due := NormalizeDueDate(dueDate)
	now := NormalizeDueDate(today)
	switch {
	case due.Before(now):
		return PaymentStatusOverdue
	case due.Equal(now):
		return PaymentStatusDueNow
	default:
		return current
	}
}
