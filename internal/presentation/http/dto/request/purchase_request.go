package request

// PurchaseItemRequest is one line of a purchase order
type PurchaseItemRequest struct {
	ProductID string  `json:"product_id" binding:"required,uuid"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitCost  float64 `json:"unit_cost" binding:"min=0"`
}

// CreatePurchaseRequest represents a purchase creation request
type CreatePurchaseRequest struct {
	Supplier string                `json:"supplier" binding:"required,min=2,max=255"`
	Items    []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseFilterRequest represents purchase filter parameters
type PurchaseFilterRequest struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
