package request

// AddCartItemRequest adds a product to the open cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest sets the quantity of a cart line. Zero removes it.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// OverridePriceRequest sets a manual unit price on a cart line
type OverridePriceRequest struct {
	Price float64 `json:"price" binding:"min=0"`
}

// SetCartCustomerRequest attaches a customer to the cart. A null ID
// detaches the current customer.
type SetCartCustomerRequest struct {
	CustomerID *string `json:"customer_id" binding:"omitempty,uuid"`
}

// CheckoutRequest finalizes the cart into a sale
type CheckoutRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash card transfer"`
	CashReceived  float64 `json:"cash_received" binding:"omitempty,min=0"`
}
