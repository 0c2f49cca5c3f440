package billing

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/payrec/backend/internal/domain/billing"
	csvimport "github.com/payrec/backend/internal/infrastructure/import"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// timestampLayouts are the accepted forms for payee_added_date_utc in
// import files.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PaymentImportService loads payment records from a CSV file in bulk
type PaymentImportService struct {
	paymentRepo billing.PaymentRepository
	logger      *zap.Logger
}

// NewPaymentImportService creates a new PaymentImportService
func NewPaymentImportService(paymentRepo billing.PaymentRepository, logger *zap.Logger) *PaymentImportService {
	return &PaymentImportService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// ImportFile parses the CSV at path, normalizes every row and inserts
// the whole batch in one call. Any malformed row fails the entire
// import.
func (s *PaymentImportService) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	parser, err := csvimport.NewCSVParser(f)
	if err != nil {
		return 0, err
	}
	if err := parser.ParseHeader(); err != nil {
		return 0, err
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, csvimport.ErrNoDataRows
	}

	today := time.Now().UTC()
	payments := make([]billing.Payment, 0, len(rows))
	for _, row := range rows {
		payment, err := s.buildPayment(row, today)
		if err != nil {
			return 0, err
		}
		payments = append(payments, *payment)
	}

	if err := s.paymentRepo.InsertMany(ctx, payments); err != nil {
		return 0, fmt.Errorf("failed to insert imported payments: %w", err)
	}

	s.logger.Info("payment import completed",
		zap.String("file", path),
		zap.Int("rows", len(payments)))
	return len(payments), nil
}

// buildPayment normalizes one CSV row: missing discount and tax default
// to 0, the total due is computed and persisted, and the status is
// re-derived from the row's own due date.
func (s *PaymentImportService) buildPayment(row *csvimport.Row, today time.Time) (*billing.Payment, error) {
	payment := billing.NewPayment()
	payment.PayeeFirstName = row.Get("payee_first_name")
	payment.PayeeLastName = row.Get("payee_last_name")
	payment.AddressLine1 = row.Get("payee_address_line_1")
	payment.AddressLine2 = row.Get("payee_address_line_2")
	payment.City = row.Get("payee_city")
	payment.Country = row.Get("payee_country")
	payment.ProvinceOrState = row.Get("payee_province_or_state")
	payment.PostalCode = row.Get("payee_postal_code")
	payment.PhoneNumber = row.Get("payee_phone_number")
	payment.Email = row.Get("payee_email")
	payment.Currency = row.Get("currency")

	status := billing.PaymentStatus(row.Get("payee_payment_status"))
	if !status.IsValid() {
		return nil, csvimport.NewRowError(row.LineNumber, "payee_payment_status", "invalid payment status")
	}

	addedDate, err := parseTimestamp(row.Get("payee_added_date_utc"))
	if err != nil {
		return nil, csvimport.NewRowError(row.LineNumber, "payee_added_date_utc", "invalid timestamp")
	}
	payment.AddedDateUTC = addedDate

	dueDate, err := parseTimestamp(row.Get("payee_due_date"))
	if err != nil {
		return nil, csvimport.NewRowError(row.LineNumber, "payee_due_date", "invalid date")
	}
	payment.DueDate = billing.NormalizeDueDate(dueDate)

	payment.DiscountPercent, err = decimal.NewFromString(row.GetOrDefault("discount_percent", "0"))
	if err != nil {
		return nil, csvimport.NewRowError(row.LineNumber, "discount_percent", "invalid decimal value")
	}
	payment.TaxPercent, err = decimal.NewFromString(row.GetOrDefault("tax_percent", "0"))
	if err != nil {
		return nil, csvimport.NewRowError(row.LineNumber, "tax_percent", "invalid decimal value")
	}
	payment.DueAmount, err = decimal.NewFromString(row.Get("due_amount"))
	if err != nil {
		return nil, csvimport.NewRowError(row.LineNumber, "due_amount", "invalid decimal value")
	}
	if payment.DueAmount.IsNegative() {
		return nil, csvimport.NewRowError(row.LineNumber, "due_amount", "must not be negative")
	}

	payment.TotalDue = payment.TotalDueAmount()
	payment.Status = billing.DeriveStatus(payment.DueDate, status, today)
	return payment, nil
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
