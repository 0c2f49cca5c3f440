package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/payrec/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment domain entity
type PaymentModel struct {
	BaseModel
	PayeeFirstName  string                `gorm:"column:payee_first_name;type:varchar(100);not null;index"`
	PayeeLastName   string                `gorm:"column:payee_last_name;type:varchar(100);not null;index"`
	Status          billing.PaymentStatus `gorm:"type:varchar(20);not null"`
	AddedDateUTC    time.Time             `gorm:"column:added_date_utc;not null"`
	DueDate         time.Time             `gorm:"column:due_date;not null"`
	AddressLine1    string                `gorm:"column:address_line_1;type:varchar(200);not null"`
	AddressLine2    string                `gorm:"column:address_line_2;type:varchar(200)"`
	City            string                `gorm:"type:varchar(100);not null"`
	Country         string                `gorm:"type:varchar(100);not null"`
	ProvinceOrState string                `gorm:"column:province_or_state;type:varchar(100)"`
	PostalCode      string                `gorm:"column:postal_code;type:varchar(20);not null"`
	PhoneNumber     string                `gorm:"column:phone_number;type:varchar(30);not null"`
	Email           string                `gorm:"type:varchar(200);not null"`
	Currency        string                `gorm:"type:varchar(10);not null"`
	DiscountPercent decimal.Decimal       `gorm:"column:discount_percent;type:decimal(18,4);not null"`
	TaxPercent      decimal.Decimal       `gorm:"column:tax_percent;type:decimal(18,4);not null"`
	DueAmount       decimal.Decimal       `gorm:"column:due_amount;type:decimal(18,4);not null"`
	TotalDue        decimal.Decimal       `gorm:"column:total_due;type:decimal(18,4);not null"`
	EvidenceID      *uuid.UUID            `gorm:"column:evidence_id;type:uuid"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity
func (m *PaymentModel) ToDomain() *billing.Payment {
	return &billing.Payment{
		BaseEntity:      m.BaseModel.ToDomain(),
		PayeeFirstName:  m.PayeeFirstName,
		PayeeLastName:   m.PayeeLastName,
		Status:          m.Status,
		AddedDateUTC:    m.AddedDateUTC,
		DueDate:         m.DueDate,
		AddressLine1:    m.AddressLine1,
		AddressLine2:    m.AddressLine2,
		City:            m.City,
		Country:         m.Country,
		ProvinceOrState: m.ProvinceOrState,
		PostalCode:      m.PostalCode,
		PhoneNumber:     m.PhoneNumber,
		Email:           m.Email,
		Currency:        m.Currency,
		DiscountPercent: m.DiscountPercent,
		TaxPercent:      m.TaxPercent,
		DueAmount:       m.DueAmount,
		TotalDue:        m.TotalDue,
		EvidenceID:      m.EvidenceID,
	}
}

// FromDomain populates the persistence model from a domain Payment entity
func (m *PaymentModel) FromDomain(p *billing.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.PayeeFirstName = p.PayeeFirstName
	m.PayeeLastName = p.PayeeLastName
	m.Status = p.Status
	m.AddedDateUTC = p.AddedDateUTC
	m.DueDate = p.DueDate
	m.AddressLine1 = p.AddressLine1
	m.AddressLine2 = p.AddressLine2
	m.City = p.City
	m.Country = p.Country
	m.ProvinceOrState = p.ProvinceOrState
	m.PostalCode = p.PostalCode
	m.PhoneNumber = p.PhoneNumber
	m.Email = p.Email
	m.Currency = p.Currency
	m.DiscountPercent = p.DiscountPercent
	m.TaxPercent = p.TaxPercent
	m.DueAmount = p.DueAmount
	m.TotalDue = p.TotalDue
	m.EvidenceID = p.EvidenceID
}

// EvidenceModel is the persistence model for the Evidence domain entity.
// The table keeps the external name "files".
type EvidenceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;not null;index"`
	FileName  string    `gorm:"column:file_name;type:varchar(255);not null"`
	Content   []byte    `gorm:"type:bytea;not null"`
	UpdatedOn time.Time `gorm:"column:updated_on"`
}

// TableName returns the table name for GORM
func (EvidenceModel) TableName() string {
	return "files"
}

// ToDomain converts the persistence model to a domain Evidence entity
func (m *EvidenceModel) ToDomain() *billing.Evidence {
	return &billing.Evidence{
		ID:        m.ID,
		PaymentID: m.PaymentID,
		FileName:  m.FileName,
		Content:   m.Content,
		UpdatedOn: m.UpdatedOn,
	}
}

// FromDomain populates the persistence model from a domain Evidence entity
func (m *EvidenceModel) FromDomain(e *billing.Evidence) {
	m.ID = e.ID
	m.PaymentID = e.PaymentID
	m.FileName = e.FileName
	m.Content = e.Content
	m.UpdatedOn = e.UpdatedOn
}
