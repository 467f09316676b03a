package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Purchase represents a supplier purchase order
type Purchase struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Supplier  string              `gorm:"size:255;not null" json:"supplier"`
	Status    enum.PurchaseStatus `gorm:"default:0" json:"status"`
	Total     int64               `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Items []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(p),
		Total: float64(p.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem represents a line item in a purchase
type PurchaseItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitCost    int64          `gorm:"not null" json:"-"` // Stored in cents
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (pi PurchaseItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseItem
	return json.Marshal(&struct {
		Alias
		UnitCost float64 `json:"unit_cost"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(pi),
		UnitCost: float64(pi.UnitCost) / 100,
		Total:    float64(pi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase item
func (pi *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
