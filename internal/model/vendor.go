package model

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is the issuing party of an invoice. Every invoice belongs to exactly
// one vendor.
type Vendor struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Address   *string   `gorm:"type:text" json:"address"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone"`
	Invoices  []Invoice `gorm:"foreignKey:VendorID" json:"invoices,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
