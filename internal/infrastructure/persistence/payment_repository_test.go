package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/payrec/backend/internal/domain/billing"
	"github.com/payrec/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockPaymentRepository creates a GormPaymentRepository with a mocked SQL connection
func newMockPaymentRepository(t *testing.T) (*GormPaymentRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPaymentRepository(gormDB), mock, mockDB
}

var paymentColumns = []string{
	"id", "created_at", "updated_at", "payee_first_name", "payee_last_name",
	"status", "added_date_utc", "due_date", "address_line_1", "address_line_2",
	"city", "country", "province_or_state", "postal_code", "phone_number",
	"email", "currency", "discount_percent", "tax_percent", "due_amount",
	"total_due", "evidence_id",
}

// paymentRow builds a full payments result row for the given identifiers
func paymentRow(rows *sqlmock.Rows, id uuid.UUID, firstName, lastName string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, now, now, firstName, lastName,
		"pending", now, now, "10 Main St", "",
		"Toronto", "Canada", "ON", "M5V 2T6", "+1-416-555-0100",
		"payee@example.com", "CAD", "5", "13", "100",
		"107.35", nil,
	)
}

func TestNewGormPaymentRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormPaymentRepository_FindByID(t *testing.T) {
	t.Run("finds existing payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		now := time.Now()

		rows := paymentRow(sqlmock.NewRows(paymentColumns), paymentID, "John", "Doe", now)

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, 1).
			WillReturnRows(rows)

		payment, err := repo.FindByID(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		assert.Equal(t, paymentID, payment.ID)
		assert.Equal(t, "John", payment.PayeeFirstName)
		assert.Equal(t, billing.PaymentStatusPending, payment.Status)
		assert.True(t, payment.DueAmount.Equal(decimal.NewFromInt(100)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		payment, err := repo.FindByID(context.Background(), paymentID)

		assert.Error(t, err)
		assert.Nil(t, payment)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_FindByPayeeName(t *testing.T) {
	t.Run("finds all payments in insertion order without search term", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		id1 := uuid.New()
		id2 := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(paymentColumns)
		paymentRow(rows, id1, "John", "Doe", now)
		paymentRow(rows, id2, "Jane", "Smith", now)

		mock.ExpectQuery(`SELECT \* FROM "payments" ORDER BY created_at ASC LIMIT .*`).
			WithArgs(10).
			WillReturnRows(rows)

		payments, err := repo.FindByPayeeName(context.Background(), "", 10)

		assert.NoError(t, err)
		assert.Len(t, payments, 2)
		assert.Equal(t, id1, payments[0].ID)
		assert.Equal(t, id2, payments[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matches search term against first and last name", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		id1 := uuid.New()
		now := time.Now()

		rows := paymentRow(sqlmock.NewRows(paymentColumns), id1, "John", "Doe", now)

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE \(payee_first_name ILIKE \$1 OR payee_last_name ILIKE \$2\) ORDER BY created_at ASC LIMIT .*`).
			WithArgs("%doe%", "%doe%", 5).
			WillReturnRows(rows)

		payments, err := repo.FindByPayeeName(context.Background(), "doe", 5)

		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		assert.Equal(t, "Doe", payments[0].PayeeLastName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE \(payee_first_name ILIKE \$1 OR payee_last_name ILIKE \$2\) ORDER BY created_at ASC LIMIT .*`).
			WithArgs("%nobody%", "%nobody%", 10).
			WillReturnRows(sqlmock.NewRows(paymentColumns))

		payments, err := repo.FindByPayeeName(context.Background(), "nobody", 10)

		assert.NoError(t, err)
		assert.Empty(t, payments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_CountByPayeeName(t *testing.T) {
	t.Run("counts all payments without search term", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountByPayeeName(context.Background(), "")

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts payments matching search term", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "payments" WHERE \(payee_first_name ILIKE \$1 OR payee_last_name ILIKE \$2\)`).
			WithArgs("%smith%", "%smith%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountByPayeeName(context.Background(), "smith")

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_Insert(t *testing.T) {
	t.Run("inserts payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		payment := billing.NewPayment()
		payment.PayeeFirstName = "John"
		payment.PayeeLastName = "Doe"
		payment.DueDate = billing.NormalizeDueDate(time.Now())
		payment.DueAmount = decimal.NewFromInt(100)

		mock.ExpectExec(`INSERT INTO "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Insert(context.Background(), payment)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_InsertMany(t *testing.T) {
	t.Run("returns nil for empty batch", func(t *testing.T) {
		repo, _, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		err := repo.InsertMany(context.Background(), []billing.Payment{})

		assert.NoError(t, err)
	})

	t.Run("inserts batch in one statement", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		first := billing.NewPayment()
		first.PayeeFirstName = "John"
		second := billing.NewPayment()
		second.PayeeFirstName = "Jane"

		mock.ExpectExec(`INSERT INTO "payments"`).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.InsertMany(context.Background(), []billing.Payment{*first, *second})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_Replace(t *testing.T) {
	t.Run("replaces existing payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		payment := billing.NewPayment()
		payment.PayeeFirstName = "John"
		payment.Status = billing.PaymentStatusCompleted

		mock.ExpectExec(`UPDATE "payments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Replace(context.Background(), payment)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		payment := billing.NewPayment()

		mock.ExpectExec(`UPDATE "payments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Replace(context.Background(), payment)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_SetEvidenceID(t *testing.T) {
	t.Run("links evidence to payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		evidenceID := uuid.New()

		mock.ExpectExec(`UPDATE "payments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetEvidenceID(context.Background(), paymentID, &evidenceID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clears evidence reference", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectExec(`UPDATE "payments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetEvidenceID(context.Background(), paymentID, nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		evidenceID := uuid.New()

		mock.ExpectExec(`UPDATE "payments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetEvidenceID(context.Background(), paymentID, &evidenceID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_Delete(t *testing.T) {
	t.Run("deletes existing payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectExec(`DELETE FROM "payments" WHERE id = \$1`).
			WithArgs(paymentID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectExec(`DELETE FROM "payments" WHERE id = \$1`).
			WithArgs(paymentID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), paymentID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements PaymentRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		var _ billing.PaymentRepository = repo
	})
}
