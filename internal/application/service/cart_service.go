package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/apperror"
	"github.com/mitienda/pos-api/pkg/utils"
)

// VATRate is the fixed VAT applied at checkout when the store enables tax.
// The display rate in settings is informational only.
const VATRate = 0.16

// CartItem is a mutable line in an open cart. UnitPrice is the charged
// price; OriginalPrice keeps the undiscounted list price so wholesale
// discounts can be re-derived and reversed.
type CartItem struct {
	ProductID        uuid.UUID `json:"product_id"`
	ProductName      string    `json:"product_name"`
	Quantity         int       `json:"quantity"`
	UnitPrice        int64     `json:"-"`
	OriginalPrice    int64     `json:"-"`
	WholesaleApplied bool      `json:"wholesale_applied"`
}

// Cart is one cashier's open ticket. Stock for every line is already
// reserved: the on-hand counters were decremented when the line was added.
type Cart struct {
	Items      []CartItem `json:"items"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TotalQuantity returns the summed quantity across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// CartView is the API representation of a cart with computed totals in
// decimal currency.
type CartView struct {
	Items      []CartItemView `json:"items"`
	CustomerID *uuid.UUID     `json:"customer_id,omitempty"`
	SubTotal   float64        `json:"subtotal"`
	Tax        float64        `json:"tax"`
	Discount   float64        `json:"discount"`
	Total      float64        `json:"total"`
	ItemCount  int            `json:"item_count"`
}

// CartItemView is the API representation of a cart line.
type CartItemView struct {
	ProductID        uuid.UUID `json:"product_id"`
	ProductName      string    `json:"product_name"`
	Quantity         int       `json:"quantity"`
	UnitPrice        float64   `json:"unit_price"`
	OriginalPrice    float64   `json:"original_price"`
	Total            float64   `json:"total"`
	WholesaleApplied bool      `json:"wholesale_applied"`
}

// CheckoutInput carries the payment details for finalizing a cart.
type CheckoutInput struct {
	PaymentMethod string
	CashReceived  float64
}

// CartService manages one open cart per cashier. Carts are held in memory;
// stock reservations are the only persistent side effect before checkout.
type CartService struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart

	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository

	// allowNegativeStock controls whether reservations may push on-hand
	// counters below zero. When false, adding beyond available stock fails.
	allowNegativeStock bool
}

// NewCartService creates a new cart service
func NewCartService(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	allowNegativeStock bool,
) *CartService {
	return &CartService{
		carts:              make(map[uuid.UUID]*Cart),
		productRepo:        productRepo,
		settingsRepo:       settingsRepo,
		saleRepo:           saleRepo,
		customerRepo:       customerRepo,
		allowNegativeStock: allowNegativeStock,
	}
}

// wholesalePrice applies the discount percentage to a list price in cents.
func wholesalePrice(original int64, discountPercent float64) int64 {
	return int64(math.Round(float64(original) * (1 - discountPercent/100)))
}

// evaluateLine re-prices a single cart line against the wholesale rules.
// Only the mutated line is re-priced; sibling lines keep the price they
// were given by their own last mutation, even in total mode.
func evaluateLine(item *CartItem, rules entity.WholesaleRules, cartTotalQuantity int) {
	if !rules.Enabled || rules.DiscountPercent <= 0 {
		item.UnitPrice = item.OriginalPrice
		item.WholesaleApplied = false
		return
	}

	qualifies := false
	switch rules.MinQuantityType {
	case enum.MinQuantityTypeTotal:
		qualifies = cartTotalQuantity >= rules.MinQuantity
	default:
		qualifies = item.Quantity >= rules.MinQuantity
	}

	if qualifies {
		item.UnitPrice = wholesalePrice(item.OriginalPrice, rules.DiscountPercent)
		item.WholesaleApplied = true
	} else {
		item.UnitPrice = item.OriginalPrice
		item.WholesaleApplied = false
	}
}

// reserve decrements stock for a pending cart line. Under the
// allow-negative policy the decrement is unconditional; otherwise it only
// succeeds when enough stock is on hand.
func (s *CartService) reserve(ctx context.Context, product *entity.Product, quantity int) error {
	if s.allowNegativeStock {
		return s.productRepo.AdjustStock(ctx, product.ID, -quantity)
	}

	ok, err := s.productRepo.AtomicDecrementStock(ctx, product.ID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for %s", product.Name))
	}
	return nil
}

// release returns previously reserved stock.
func (s *CartService) release(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	return s.productRepo.AdjustStock(ctx, productID, quantity)
}

func (s *CartService) wholesaleRules(ctx context.Context, userID uuid.UUID) (entity.WholesaleRules, bool, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return entity.WholesaleRules{}, false, err
	}
	if settings == nil {
		// No saved settings yet: wholesale off, tax off.
		return entity.WholesaleRules{}, false, nil
	}
	return settings.Wholesale(), settings.EnableTax, nil
}

func (s *CartService) cartFor(userID uuid.UUID) *Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &Cart{}
		s.carts[userID] = cart
	}
	return cart
}

// AddItem reserves stock and adds the product to the cashier's cart. When
// the product is already in the cart the quantities merge. The mutated
// line is re-priced against the wholesale rules; other lines are left as
// they are.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	rules, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.reserve(ctx, product, quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(userID)

	var line *CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			line = &cart.Items[i]
			break
		}
	}

	if line != nil {
		line.Quantity += quantity
		// Every add re-reads the list price, so a catalog price change
		// mid-cart takes effect on the next merge.
		line.OriginalPrice = product.SellingPrice
	} else {
		cart.Items = append(cart.Items, CartItem{
			ProductID:     productID,
			ProductName:   product.Name,
			Quantity:      quantity,
			UnitPrice:     product.SellingPrice,
			OriginalPrice: product.SellingPrice,
		})
		line = &cart.Items[len(cart.Items)-1]
	}

	evaluateLine(line, rules, cart.TotalQuantity())
	cart.UpdatedAt = time.Now()

	return s.viewLocked(cart, enableTax), nil
}

// UpdateQuantity sets the quantity of an existing cart line, adjusting the
// stock reservation by the difference. A quantity of zero or less removes
// the line and releases its reservation. A product that is not in the cart
// is a no-op, not an error.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error) {
	rules, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return s.viewLocked(&Cart{}, enableTax), nil
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s.viewLocked(cart, enableTax), nil
	}

	line := &cart.Items[idx]

	if quantity <= 0 {
		if err := s.release(ctx, productID, line.Quantity); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		cart.UpdatedAt = time.Now()
		return s.viewLocked(cart, enableTax), nil
	}

	delta := quantity - line.Quantity
	if delta > 0 {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		if err := s.reserve(ctx, product, delta); err != nil {
			return nil, err
		}
	} else if delta < 0 {
		if err := s.release(ctx, productID, -delta); err != nil {
			return nil, err
		}
	}

	line.Quantity = quantity
	evaluateLine(line, rules, cart.TotalQuantity())
	cart.UpdatedAt = time.Now()

	return s.viewLocked(cart, enableTax), nil
}

// OverridePrice sets a manual unit price on a cart line. Manual prices are
// taken as-is and are not subject to wholesale evaluation until the line's
// quantity changes again. An absent line is a no-op.
func (s *CartService) OverridePrice(ctx context.Context, userID, productID uuid.UUID, price float64) (*CartView, error) {
	if price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	_, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return s.viewLocked(&Cart{}, enableTax), nil
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].UnitPrice = int64(math.Round(price * 100))
			cart.Items[i].WholesaleApplied = false
			cart.UpdatedAt = time.Now()
			break
		}
	}

	return s.viewLocked(cart, enableTax), nil
}

// RemoveItem removes a line from the cart and releases its reservation.
// A product that is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartView, error) {
	_, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return s.viewLocked(&Cart{}, enableTax), nil
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			if err := s.release(ctx, productID, cart.Items[i].Quantity); err != nil {
				return nil, err
			}
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			break
		}
	}

	return s.viewLocked(cart, enableTax), nil
}

// SetCustomer attaches a customer to the open cart.
func (s *CartService) SetCustomer(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*CartView, error) {
	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	_, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(userID)
	cart.CustomerID = customerID
	cart.UpdatedAt = time.Now()

	return s.viewLocked(cart, enableTax), nil
}

// Clear empties the cart and returns every reserved unit to stock.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok || len(cart.Items) == 0 {
		delete(s.carts, userID)
		return nil
	}

	increments := make(map[uuid.UUID]int, len(cart.Items))
	for _, item := range cart.Items {
		increments[item.ProductID] += item.Quantity
	}

	if err := s.productRepo.AtomicIncrementBatch(ctx, increments); err != nil {
		return err
	}

	delete(s.carts, userID)
	return nil
}

// GetCart returns the current cart with computed totals.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	_, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = &Cart{}
	}
	return s.viewLocked(cart, enableTax), nil
}

// Checkout freezes the cart into an immutable completed sale. Stock was
// already reserved line by line, so checkout only persists the ticket and
// drops the in-memory cart.
func (s *CartService) Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Sale, error) {
	_, enableTax, err := s.wholesaleRules(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok || len(cart.Items) == 0 {
		return nil, apperror.NewInvalidOperationError("Cart is empty")
	}

	var subTotal, discount int64
	items := make([]entity.SaleItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		lineTotal := line.UnitPrice * int64(line.Quantity)
		subTotal += lineTotal
		discount += (line.OriginalPrice - line.UnitPrice) * int64(line.Quantity)

		items = append(items, entity.SaleItem{
			ProductID:     line.ProductID,
			ProductName:   line.ProductName,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			OriginalPrice: line.OriginalPrice,
			Total:         lineTotal,
		})
	}

	var tax int64
	if enableTax {
		tax = int64(math.Round(float64(subTotal) * VATRate))
	}

	sale := &entity.Sale{
		TicketNo:      utils.GenerateTicketNo(),
		CustomerID:    cart.CustomerID,
		Status:        enum.SaleStatusCompleted,
		SubTotal:      subTotal,
		Tax:           tax,
		Total:         subTotal + tax,
		Discount:      discount,
		PaymentMethod: input.PaymentMethod,
		Items:         items,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Cart and reservations stay intact so the cashier can retry.
		return nil, err
	}

	delete(s.carts, userID)

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// viewLocked builds the API view. Callers must hold s.mu.
func (s *CartService) viewLocked(cart *Cart, enableTax bool) *CartView {
	view := &CartView{
		Items:      make([]CartItemView, 0, len(cart.Items)),
		CustomerID: cart.CustomerID,
	}

	var subTotal, discount int64
	for _, line := range cart.Items {
		lineTotal := line.UnitPrice * int64(line.Quantity)
		subTotal += lineTotal
		discount += (line.OriginalPrice - line.UnitPrice) * int64(line.Quantity)
		view.ItemCount += line.Quantity

		view.Items = append(view.Items, CartItemView{
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			Quantity:         line.Quantity,
			UnitPrice:        float64(line.UnitPrice) / 100,
			OriginalPrice:    float64(line.OriginalPrice) / 100,
			Total:            float64(lineTotal) / 100,
			WholesaleApplied: line.WholesaleApplied,
		})
	}

	var tax int64
	if enableTax {
		tax = int64(math.Round(float64(subTotal) * VATRate))
	}

	view.SubTotal = float64(subTotal) / 100
	view.Tax = float64(tax) / 100
	view.Discount = float64(discount) / 100
	view.Total = float64(subTotal+tax) / 100

	return view
}
