package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a finalized sale transaction. It is created atomically at
// checkout and never mutated afterwards; deleting a sale restores the stock
// that was consumed by it.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TicketNo      string          `gorm:"size:100;unique;not null" json:"ticket_no"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Status        enum.SaleStatus `gorm:"default:0" json:"status"`
	SubTotal      int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64           `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod string          `gorm:"size:50" json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"subtotal"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
		Discount float64 `json:"discount"`
	}{
		Alias:    Alias(s),
		SubTotal: float64(s.SubTotal) / 100,
		Tax:      float64(s.Tax) / 100,
		Total:    float64(s.Total) / 100,
		Discount: float64(s.Discount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetTotalDecimal returns the total as a decimal
func (s *Sale) GetTotalDecimal() float64 {
	return float64(s.Total) / 100
}

// SaleItem is a frozen snapshot of one cart line at checkout time
type SaleItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName   string         `gorm:"size:255" json:"product_name"`
	Quantity      int            `gorm:"not null" json:"quantity"`
	UnitPrice     int64          `gorm:"not null" json:"-"` // Charged price in cents
	OriginalPrice int64          `gorm:"not null" json:"-"` // Undiscounted list price in cents
	Total         int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice     float64 `json:"unit_price"`
		OriginalPrice float64 `json:"original_price"`
		Total         float64 `json:"total"`
	}{
		Alias:         Alias(si),
		UnitPrice:     float64(si.UnitPrice) / 100,
		OriginalPrice: float64(si.OriginalPrice) / 100,
		Total:         float64(si.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
