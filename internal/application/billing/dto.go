package billing

import (
	"time"

	"github.com/payrec/backend/internal/domain/billing"
	"github.com/payrec/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// External date layouts. Due dates travel as a bare date on input and on
// detail reads; list reads widen them to a midnight datetime.
const (
	DueDateLayout     = "2006-01-02"
	DueDateTimeLayout = time.RFC3339
)

// ============================================================================
// Request DTOs
// ============================================================================

// PaymentRequest is the full payment document accepted on create and update
type PaymentRequest struct {
	PayeeFirstName       string          `json:"payee_first_name" binding:"required"`
	PayeeLastName        string          `json:"payee_last_name" binding:"required"`
	PayeePaymentStatus   string          `json:"payee_payment_status" binding:"required"`
	PayeeAddedDateUTC    time.Time       `json:"payee_added_date_utc" binding:"required"`
	PayeeDueDate         string          `json:"payee_due_date" binding:"required"`
	PayeeAddressLine1    string          `json:"payee_address_line_1" binding:"required"`
	PayeeAddressLine2    string          `json:"payee_address_line_2"`
	PayeeCity            string          `json:"payee_city" binding:"required"`
	PayeeCountry         string          `json:"payee_country" binding:"required"`
	PayeeProvinceOrState string          `json:"payee_province_or_state"`
	PayeePostalCode      string          `json:"payee_postal_code" binding:"required"`
	PayeePhoneNumber     string          `json:"payee_phone_number" binding:"required"`
	PayeeEmail           string          `json:"payee_email" binding:"required,email"`
	Currency             string          `json:"currency" binding:"required"`
	DiscountPercent      decimal.Decimal `json:"discount_percent"`
	TaxPercent           decimal.Decimal `json:"tax_percent"`
	DueAmount            decimal.Decimal `json:"due_amount"`
	EvidenceID           *string         `json:"evidence_id"`
}

// apply copies the request fields onto a payment. The identifier, stored
// status and evidence reference are left untouched; the caller decides
// those.
func (r *PaymentRequest) apply(p *billing.Payment) error {
	dueDate, err := time.Parse(DueDateLayout, r.PayeeDueDate)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", "payee_due_date must be a date in YYYY-MM-DD format")
	}
	if r.DueAmount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "due_amount must not be negative")
	}

	p.PayeeFirstName = r.PayeeFirstName
	p.PayeeLastName = r.PayeeLastName
	p.AddedDateUTC = r.PayeeAddedDateUTC.UTC()
	p.DueDate = billing.NormalizeDueDate(dueDate)
	p.AddressLine1 = r.PayeeAddressLine1
	p.AddressLine2 = r.PayeeAddressLine2
	p.City = r.PayeeCity
	p.Country = r.PayeeCountry
	p.ProvinceOrState = r.PayeeProvinceOrState
	p.PostalCode = r.PayeePostalCode
	p.PhoneNumber = r.PayeePhoneNumber
	p.Email = r.PayeeEmail
	p.Currency = r.Currency
	p.DiscountPercent = r.DiscountPercent
	p.TaxPercent = r.TaxPercent
	p.DueAmount = r.DueAmount
	return nil
}

// ListFilter carries the list query parameters
type ListFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// PaymentResponse is the external shape of a payment document
type PaymentResponse struct {
	ID                   string          `json:"id"`
	PayeeFirstName       string          `json:"payee_first_name"`
	PayeeLastName        string          `json:"payee_last_name"`
	PayeePaymentStatus   string          `json:"payee_payment_status"`
	PayeeAddedDateUTC    time.Time       `json:"payee_added_date_utc"`
	PayeeDueDate         string          `json:"payee_due_date"`
	PayeeAddressLine1    string          `json:"payee_address_line_1"`
	PayeeAddressLine2    string          `json:"payee_address_line_2"`
	PayeeCity            string          `json:"payee_city"`
	PayeeCountry         string          `json:"payee_country"`
	PayeeProvinceOrState string          `json:"payee_province_or_state"`
	PayeePostalCode      string          `json:"payee_postal_code"`
	PayeePhoneNumber     string          `json:"payee_phone_number"`
	PayeeEmail           string          `json:"payee_email"`
	Currency             string          `json:"currency"`
	DiscountPercent      decimal.Decimal `json:"discount_percent"`
	TaxPercent           decimal.Decimal `json:"tax_percent"`
	DueAmount            decimal.Decimal `json:"due_amount"`
	TotalDue             decimal.Decimal `json:"total_due"`
	EvidenceID           *string         `json:"evidence_id"`
}

// PaymentListResponse is the list payload: a page of payments plus the
// aggregate total figure.
type PaymentListResponse struct {
	Data  []PaymentResponse `json:"data"`
	Total decimal.Decimal   `json:"total"`
}

// EvidenceDownload carries the raw bytes of an evidence file for serving
type EvidenceDownload struct {
	FileName string
	Content  []byte
}

// ============================================================================
// Conversion Functions
// ============================================================================

// ToPaymentResponse converts a payment to its detail form: the due date
// is a bare date string and the stored status is returned as-is.
func ToPaymentResponse(p *billing.Payment) PaymentResponse {
	resp := basePaymentResponse(p)
	resp.PayeePaymentStatus = string(p.Status)
	resp.PayeeDueDate = p.DueDate.Format(DueDateLayout)
	return resp
}

// ToPaymentListItem converts a payment to its list form: the displayed
// status is re-derived from the due date and the due date widens to a
// midnight datetime.
func ToPaymentListItem(p *billing.Payment, today time.Time) PaymentResponse {
	resp := basePaymentResponse(p)
	resp.PayeePaymentStatus = string(billing.DeriveStatus(p.DueDate, p.Status, today))
	resp.PayeeDueDate = p.DueDate.Format(DueDateTimeLayout)
	return resp
}

func basePaymentResponse(p *billing.Payment) PaymentResponse {
	var evidenceID *string
	if p.EvidenceID != nil {
		s := shared.FormatID(*p.EvidenceID)
		evidenceID = &s
	}
	return PaymentResponse{
		ID:                   shared.FormatID(p.ID),
		PayeeFirstName:       p.PayeeFirstName,
		PayeeLastName:        p.PayeeLastName,
		PayeeAddedDateUTC:    p.AddedDateUTC,
		PayeeAddressLine1:    p.AddressLine1,
		PayeeAddressLine2:    p.AddressLine2,
		PayeeCity:            p.City,
		PayeeCountry:         p.Country,
		PayeeProvinceOrState: p.ProvinceOrState,
		PayeePostalCode:      p.PostalCode,
		PayeePhoneNumber:     p.PhoneNumber,
		PayeeEmail:           p.Email,
		Currency:             p.Currency,
		DiscountPercent:      p.DiscountPercent,
		TaxPercent:           p.TaxPercent,
		DueAmount:            p.DueAmount,
		TotalDue:             p.TotalDue,
		EvidenceID:           evidenceID,
	}
}
