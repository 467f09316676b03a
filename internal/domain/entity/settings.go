package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StoreSettings holds the per-user store configuration: business info printed
// on receipts, receipt layout, tax and wholesale pricing rules, and
// notification thresholds.
type StoreSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Business info
	BusinessName    string `gorm:"size:255;default:'Mi Tienda'" json:"business_name"`
	BusinessAddress string `gorm:"type:text" json:"business_address"`
	BusinessPhone   string `gorm:"size:50" json:"business_phone"`
	BusinessEmail   string `gorm:"size:255" json:"business_email"`
	BusinessTaxID   string `gorm:"size:50;column:business_tax_id" json:"business_tax_id"`
	BusinessLogoURL string `gorm:"size:255" json:"business_logo_url"`

	// Receipt layout
	ReceiptShowLogo      bool   `gorm:"default:true" json:"receipt_show_logo"`
	ReceiptFooterMessage string `gorm:"size:255;default:'¡Gracias por su compra!'" json:"receipt_footer_message"`
	ReceiptPaperWidth    int    `gorm:"default:80" json:"receipt_paper_width"` // mm
	ReceiptFontSize      int    `gorm:"default:10" json:"receipt_font_size"`
	ReceiptPrintHeader   bool   `gorm:"default:true" json:"receipt_print_header"`
	ReceiptPrintFooter   bool   `gorm:"default:true" json:"receipt_print_footer"`
	ReceiptPrintQR       bool   `gorm:"default:true" json:"receipt_print_qr"`
	ReceiptCopies        int    `gorm:"default:1" json:"receipt_copies"`
	EnableTax            bool   `gorm:"default:false" json:"enable_tax"`

	// Tax settings (display only; checkout applies the fixed VAT rate when EnableTax is set)
	TaxRate            float64 `gorm:"default:16" json:"tax_rate"`
	TaxIncludedInPrice bool    `gorm:"default:false" json:"tax_included_in_price"`

	// Wholesale pricing
	WholesaleEnabled         bool                 `gorm:"default:false" json:"wholesale_enabled"`
	WholesaleMinQuantityType enum.MinQuantityType `gorm:"size:20;default:'perItem'" json:"wholesale_min_quantity_type"`
	WholesaleMinQuantity     int                  `gorm:"default:10" json:"wholesale_min_quantity"`
	WholesaleDiscountPercent float64              `gorm:"default:10" json:"wholesale_discount_percentage"`

	// Notifications
	LowStockThreshold int `gorm:"default:5" json:"low_stock_threshold"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}

// WholesaleRules is the read-only slice of settings the cart engine consumes.
type WholesaleRules struct {
	Enabled         bool
	MinQuantityType enum.MinQuantityType
	MinQuantity     int
	DiscountPercent float64
}

// Wholesale returns the wholesale pricing rules.
func (s *StoreSettings) Wholesale() WholesaleRules {
	return WholesaleRules{
		Enabled:         s.WholesaleEnabled,
		MinQuantityType: s.WholesaleMinQuantityType,
		MinQuantity:     s.WholesaleMinQuantity,
		DiscountPercent: s.WholesaleDiscountPercent,
	}
}
