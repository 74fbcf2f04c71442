package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice status enum constants
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

// Invoice is the core entity consumed by the analytics engine. TotalAmount is
// always non-negative; ingestion coerces source values to absolute value.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoiceNumber"`
	InvoiceDate   time.Time       `gorm:"not null;index" json:"invoiceDate"`
	DueDate       *time.Time      `gorm:"index" json:"dueDate"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"totalAmount"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // pending, partial, paid
	Category      *string         `gorm:"type:varchar(100);index" json:"category"`
	DocumentURL   *string         `gorm:"type:text" json:"documentUrl"`
	VendorID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendorId"`
	Vendor        *Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index" json:"customerId"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	LineItems     []LineItem      `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lineItems,omitempty"`
	Payments      []Payment       `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// LineItem is a single billed position on an invoice.
type LineItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoiceId"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Quantity    float64         `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"unitPrice"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amount"`
	Category    *string         `gorm:"type:varchar(100)" json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Payment records money paid against an invoice.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoiceId"`
	PaymentDate   time.Time       `gorm:"not null" json:"paymentDate"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"paymentMethod"`
	Reference     string          `gorm:"type:varchar(100)" json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
