package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Barcode       string  `json:"barcode" binding:"omitempty,max=100"`
	InternalCode  string  `json:"internal_code" binding:"omitempty,max=100"`
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"omitempty,max=100"`
	Unit          string  `json:"unit" binding:"omitempty,max=50"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	CurrentStock  int     `json:"current_stock"`
	MinStock      int     `json:"min_stock" binding:"min=0"`
	ImageURL      *string `json:"image_url"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Barcode       *string  `json:"barcode" binding:"omitempty,max=100"`
	InternalCode  *string  `json:"internal_code" binding:"omitempty,min=1,max=100"`
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category" binding:"omitempty,max=100"`
	Unit          *string  `json:"unit" binding:"omitempty,max=50"`
	PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,min=0"`
	SellingPrice  *float64 `json:"selling_price" binding:"omitempty,min=0"`
	CurrentStock  *int     `json:"current_stock"`
	MinStock      *int     `json:"min_stock" binding:"omitempty,min=0"`
	ImageURL      *string  `json:"image_url"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// AdjustStockRequest represents a manual stock correction
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
