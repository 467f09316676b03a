package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the catalog
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Barcode       string         `gorm:"size:100;index" json:"barcode"`
	InternalCode  string         `gorm:"size:100;unique;not null" json:"internal_code"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Category      string         `gorm:"size:100;index" json:"category"`
	Unit          string         `gorm:"size:50" json:"unit"`
	PurchasePrice int64          `gorm:"default:0" json:"-"` // Stored in cents
	SellingPrice  int64          `gorm:"default:0" json:"-"` // Stored in cents
	Margin        float64        `gorm:"default:0" json:"margin"`
	CurrentStock  int            `gorm:"default:0" json:"current_stock"` // May go negative under the allow-negative policy
	MinStock      int            `gorm:"default:0" json:"min_stock"`
	ImageURL      *string        `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPurchasePriceDecimal returns the purchase price as a decimal (for display)
func (p *Product) GetPurchasePriceDecimal() float64 {
	return float64(p.PurchasePrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetPurchasePriceFromDecimal sets the purchase price from a decimal value
func (p *Product) SetPurchasePriceFromDecimal(price float64) {
	p.PurchasePrice = int64(math.Round(price * 100))
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(math.Round(price * 100))
}

// RecalculateMargin recomputes the profit margin from the current prices.
// Margin is (selling-purchase)/selling*100 rounded to 2 decimals, and 0 when
// either price is not positive.
func (p *Product) RecalculateMargin() {
	p.Margin = CalculateMargin(p.PurchasePrice, p.SellingPrice)
}

// CalculateMargin computes the profit margin percentage for a pair of prices in cents.
func CalculateMargin(purchasePrice, sellingPrice int64) float64 {
	if purchasePrice <= 0 || sellingPrice <= 0 {
		return 0
	}
	margin := float64(sellingPrice-purchasePrice) / float64(sellingPrice) * 100
	return math.Round(margin*100) / 100
}

// IsLowStock reports whether the product is at or below its minimum stock level.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID            uuid.UUID `json:"id"`
	Barcode       string    `json:"barcode"`
	InternalCode  string    `json:"internal_code"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Unit          string    `json:"unit"`
	PurchasePrice float64   `json:"purchase_price"` // Decimal value for JSON
	SellingPrice  float64   `json:"selling_price"`  // Decimal value for JSON
	Margin        float64   `json:"margin"`
	CurrentStock  int       `json:"current_stock"`
	MinStock      int       `json:"min_stock"`
	ImageURL      *string   `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:            p.ID,
		Barcode:       p.Barcode,
		InternalCode:  p.InternalCode,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Unit:          p.Unit,
		PurchasePrice: p.GetPurchasePriceDecimal(),
		SellingPrice:  p.GetSellingPriceDecimal(),
		Margin:        p.Margin,
		CurrentStock:  p.CurrentStock,
		MinStock:      p.MinStock,
		ImageURL:      p.ImageURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	})
}
