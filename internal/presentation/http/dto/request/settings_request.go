package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	BusinessName    string `json:"business_name" binding:"required,min=1,max=255"`
	BusinessAddress string `json:"business_address"`
	BusinessPhone   string `json:"business_phone" binding:"omitempty,max=50"`
	BusinessEmail   string `json:"business_email" binding:"omitempty,email"`
	BusinessTaxID   string `json:"business_tax_id" binding:"omitempty,max=50"`
	BusinessLogoURL string `json:"business_logo_url" binding:"omitempty,max=255"`

	ReceiptShowLogo      bool   `json:"receipt_show_logo"`
	ReceiptFooterMessage string `json:"receipt_footer_message" binding:"omitempty,max=255"`
	ReceiptPaperWidth    int    `json:"receipt_paper_width" binding:"omitempty,oneof=58 80"`
	ReceiptFontSize      int    `json:"receipt_font_size" binding:"omitempty,min=6,max=24"`
	ReceiptPrintHeader   bool   `json:"receipt_print_header"`
	ReceiptPrintFooter   bool   `json:"receipt_print_footer"`
	ReceiptPrintQR       bool   `json:"receipt_print_qr"`
	ReceiptCopies        int    `json:"receipt_copies" binding:"omitempty,min=1,max=5"`
	EnableTax            bool   `json:"enable_tax"`

	TaxRate            float64 `json:"tax_rate" binding:"min=0,max=100"`
	TaxIncludedInPrice bool    `json:"tax_included_in_price"`

	WholesaleEnabled         bool    `json:"wholesale_enabled"`
	WholesaleMinQuantityType string  `json:"wholesale_min_quantity_type" binding:"omitempty,oneof=perItem total"`
	WholesaleMinQuantity     int     `json:"wholesale_min_quantity" binding:"omitempty,min=1"`
	WholesaleDiscountPercent float64 `json:"wholesale_discount_percentage" binding:"min=0,max=100"`

	LowStockThreshold int `json:"low_stock_threshold" binding:"min=0"`
}
