package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	TaxID        string  `json:"tax_id" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=20"`
	Address      *string `json:"address"`
	TaxRegime    *string `json:"tax_regime" binding:"omitempty,max=255"`
	InvoiceUsage *string `json:"invoice_usage" binding:"omitempty,max=255"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=255"`
	TaxID        *string `json:"tax_id" binding:"omitempty,max=50"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	PostalCode   *string `json:"postal_code" binding:"omitempty,max=20"`
	Address      *string `json:"address"`
	TaxRegime    *string `json:"tax_regime" binding:"omitempty,max=255"`
	InvoiceUsage *string `json:"invoice_usage" binding:"omitempty,max=255"`
}
