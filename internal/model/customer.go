package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the billed party of an invoice (optional relationship).
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   *string   `gorm:"type:text" json:"address"`
	Email     *string   `gorm:"type:varchar(255)" json:"email"`
	Phone     *string   `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
