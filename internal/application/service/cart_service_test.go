package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, priceCents int64, stock int) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		InternalCode: "PROD-" + name,
		Name:         name,
		SellingPrice: priceCents,
		CurrentStock: stock,
	}
}

func testSettings(userID uuid.UUID, wholesaleOn bool, minType enum.MinQuantityType, minQty int, discount float64, enableTax bool) *entity.StoreSettings {
	return &entity.StoreSettings{
		ID:                       uuid.New(),
		UserID:                   userID,
		WholesaleEnabled:         wholesaleOn,
		WholesaleMinQuantityType: minType,
		WholesaleMinQuantity:     minQty,
		WholesaleDiscountPercent: discount,
		EnableTax:                enableTax,
	}
}

func TestAddItemReservesStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Refresco", 1000, 50)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	view, err := svc.AddItem(ctx, userID, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 47, productRepo.stock(product.ID))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 10.0, view.Items[0].UnitPrice)
	assert.Equal(t, 30.0, view.SubTotal)
	assert.Equal(t, 30.0, view.Total)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Refresco", 1000, 50)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	view, err := svc.AddItem(ctx, userID, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, 45, productRepo.stock(product.ID))
}

func TestAddItemMergeRefreshesListPrice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Refresco", 1000, 50)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 2)
	require.NoError(t, err)

	// The catalog price changes while the line sits in the cart. The next
	// merge re-reads it.
	product.SellingPrice = 1200
	view, err := svc.AddItem(ctx, userID, product.ID, 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 12.0, view.Items[0].OriginalPrice)
	assert.Equal(t, 12.0, view.Items[0].UnitPrice)
	assert.Equal(t, 36.0, view.SubTotal)
}

func TestAddItemInsufficientStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Refresco", 1000, 2)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), false)

	_, err := svc.AddItem(ctx, userID, product.ID, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
	assert.Equal(t, 2, productRepo.stock(product.ID))

	view, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestAddItemAllowsNegativeStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Refresco", 1000, 2)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, -3, productRepo.stock(product.ID))
}

func TestWholesalePerItemThreshold(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Jabon", 1000, 100)
	productRepo := newFakeProductRepo(product)
	settingsRepo := newFakeSettingsRepo(testSettings(userID, true, enum.MinQuantityTypePerItem, 10, 10, false))
	svc := NewCartService(productRepo, settingsRepo, newFakeSaleRepo(), newFakeCustomerRepo(), true)

	view, err := svc.AddItem(ctx, userID, product.ID, 9)
	require.NoError(t, err)
	assert.False(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 10.0, view.Items[0].UnitPrice)

	view, err = svc.UpdateQuantity(ctx, userID, product.ID, 10)
	require.NoError(t, err)
	assert.True(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 9.0, view.Items[0].UnitPrice)
	assert.Equal(t, 10.0, view.Items[0].OriginalPrice)
	assert.Equal(t, 90.0, view.SubTotal)
	assert.Equal(t, 10.0, view.Discount)

	// Dropping below the threshold reverts to the list price
	view, err = svc.UpdateQuantity(ctx, userID, product.ID, 4)
	require.NoError(t, err)
	assert.False(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 10.0, view.Items[0].UnitPrice)
}

func TestWholesaleTotalModeRepricesOnlyMutatedLine(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productA := testProduct("Arroz", 1000, 100)
	productB := testProduct("Frijol", 500, 100)
	productRepo := newFakeProductRepo(productA, productB)
	settingsRepo := newFakeSettingsRepo(testSettings(userID, true, enum.MinQuantityTypeTotal, 10, 10, false))
	svc := NewCartService(productRepo, settingsRepo, newFakeSaleRepo(), newFakeCustomerRepo(), true)

	// 6 units total: below the threshold, no discount
	view, err := svc.AddItem(ctx, userID, productA.ID, 6)
	require.NoError(t, err)
	assert.False(t, view.Items[0].WholesaleApplied)

	// Adding 5 more pushes the cart total to 11. Only the mutated line is
	// re-priced; the first line keeps the price from its own last mutation.
	view, err = svc.AddItem(ctx, userID, productB.ID, 5)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.False(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 10.0, view.Items[0].UnitPrice)
	assert.True(t, view.Items[1].WholesaleApplied)
	assert.Equal(t, 4.5, view.Items[1].UnitPrice)

	// Touching the first line picks up the discount
	view, err = svc.UpdateQuantity(ctx, userID, productA.ID, 6)
	require.NoError(t, err)
	assert.True(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 9.0, view.Items[0].UnitPrice)
}

func TestOverridePriceBypassesWholesale(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Cafe", 1000, 100)
	productRepo := newFakeProductRepo(product)
	settingsRepo := newFakeSettingsRepo(testSettings(userID, true, enum.MinQuantityTypePerItem, 10, 10, false))
	svc := NewCartService(productRepo, settingsRepo, newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 10)
	require.NoError(t, err)

	view, err := svc.OverridePrice(ctx, userID, product.ID, 7.77)
	require.NoError(t, err)
	assert.False(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 7.77, view.Items[0].UnitPrice)

	// The next quantity change re-evaluates the line and the manual price is
	// replaced by the wholesale price.
	view, err = svc.UpdateQuantity(ctx, userID, product.ID, 12)
	require.NoError(t, err)
	assert.True(t, view.Items[0].WholesaleApplied)
	assert.Equal(t, 9.0, view.Items[0].UnitPrice)
}

func TestUpdateQuantityAdjustsReservation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Leche", 1000, 50)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 45, productRepo.stock(product.ID))

	_, err = svc.UpdateQuantity(ctx, userID, product.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, 42, productRepo.stock(product.ID))

	_, err = svc.UpdateQuantity(ctx, userID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 48, productRepo.stock(product.ID))

	// Zero removes the line and releases the rest
	view, err := svc.UpdateQuantity(ctx, userID, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 50, productRepo.stock(product.ID))
}

func TestRemoveItemReleasesReservation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Pan", 1000, 20)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 4)
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, userID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 20, productRepo.stock(product.ID))
}

func TestClearReturnsAllReservedStock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productA := testProduct("Arroz", 1000, 30)
	productB := testProduct("Frijol", 500, 30)
	productRepo := newFakeProductRepo(productA, productB)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, productA.ID, 7)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, userID, productB.ID, 3)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, userID))

	assert.Equal(t, 30, productRepo.stock(productA.ID))
	assert.Equal(t, 30, productRepo.stock(productB.ID))

	view, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestMutationsOnAbsentLineAreNoOps(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	inCart := testProduct("Arroz", 1000, 30)
	other := testProduct("Frijol", 500, 30)
	productRepo := newFakeProductRepo(inCart, other)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, inCart.ID, 2)
	require.NoError(t, err)

	// Each mutation targets a product that was never added. The cart and
	// the stock counters come back untouched.
	view, err := svc.UpdateQuantity(ctx, userID, other.ID, 5)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)

	view, err = svc.RemoveItem(ctx, userID, other.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	view, err = svc.OverridePrice(ctx, userID, other.ID, 3.50)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 10.0, view.Items[0].UnitPrice)
	assert.Equal(t, 20.0, view.SubTotal)

	assert.Equal(t, 28, productRepo.stock(inCart.ID))
	assert.Equal(t, 30, productRepo.stock(other.ID))
}

func TestMutationsWithoutOpenCartAreNoOps(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Pan", 1000, 20)
	productRepo := newFakeProductRepo(product)
	svc := NewCartService(productRepo, newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	view, err := svc.UpdateQuantity(ctx, userID, product.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	view, err = svc.RemoveItem(ctx, userID, product.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	view, err = svc.OverridePrice(ctx, userID, product.ID, 1.00)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	assert.Equal(t, 20, productRepo.stock(product.ID))
}

func TestSetCustomer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), Name: "Cliente General"}
	svc := NewCartService(newFakeProductRepo(), newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(customer), true)

	view, err := svc.SetCustomer(ctx, userID, &customer.ID)
	require.NoError(t, err)
	require.NotNil(t, view.CustomerID)
	assert.Equal(t, customer.ID, *view.CustomerID)

	view, err = svc.SetCustomer(ctx, userID, nil)
	require.NoError(t, err)
	assert.Nil(t, view.CustomerID)
}

func TestSetCustomerUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeProductRepo(), newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	unknown := uuid.New()
	_, err := svc.SetCustomer(ctx, uuid.New(), &unknown)
	require.Error(t, err)
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeProductRepo(), newFakeSettingsRepo(), newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.Checkout(ctx, uuid.New(), &CheckoutInput{PaymentMethod: "cash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cart is empty")
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCheckoutWithTax(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Aceite", 850, 100)
	productRepo := newFakeProductRepo(product)
	settingsRepo := newFakeSettingsRepo(testSettings(userID, false, enum.MinQuantityTypePerItem, 10, 0, true))
	saleRepo := newFakeSaleRepo()
	svc := NewCartService(productRepo, settingsRepo, saleRepo, newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 10)
	require.NoError(t, err)

	sale, err := svc.Checkout(ctx, userID, &CheckoutInput{PaymentMethod: "cash", CashReceived: 100})
	require.NoError(t, err)

	assert.Equal(t, int64(8500), sale.SubTotal)
	assert.Equal(t, int64(1360), sale.Tax)
	assert.Equal(t, int64(9860), sale.Total)
	assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
	assert.NotEmpty(t, sale.TicketNo)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, product.ID, sale.Items[0].ProductID)

	// Checkout does not touch stock again; it was reserved at add time
	assert.Equal(t, 90, productRepo.stock(product.ID))

	// Cart is gone
	view, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCheckoutWithoutTax(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Aceite", 850, 100)
	productRepo := newFakeProductRepo(product)
	settingsRepo := newFakeSettingsRepo(testSettings(userID, false, enum.MinQuantityTypePerItem, 10, 0, false))
	svc := NewCartService(productRepo, settingsRepo, newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 10)
	require.NoError(t, err)

	sale, err := svc.Checkout(ctx, userID, &CheckoutInput{PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), sale.Tax)
	assert.Equal(t, int64(8500), sale.Total)
}

func TestCheckoutRecordsWholesaleDiscount(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Azucar", 1000, 100)
	productRepo := newFakeProductRepo(product)
	settingsRepo := newFakeSettingsRepo(testSettings(userID, true, enum.MinQuantityTypePerItem, 10, 10, false))
	svc := NewCartService(productRepo, settingsRepo, newFakeSaleRepo(), newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 10)
	require.NoError(t, err)

	sale, err := svc.Checkout(ctx, userID, &CheckoutInput{PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, int64(9000), sale.SubTotal)
	assert.Equal(t, int64(1000), sale.Discount)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, int64(900), sale.Items[0].UnitPrice)
	assert.Equal(t, int64(1000), sale.Items[0].OriginalPrice)
}

func TestCheckoutFailureKeepsCartAndReservations(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Sal", 1000, 50)
	productRepo := newFakeProductRepo(product)
	saleRepo := newFakeSaleRepo()
	saleRepo.createErr = assert.AnError
	svc := NewCartService(productRepo, newFakeSettingsRepo(), saleRepo, newFakeCustomerRepo(), true)

	_, err := svc.AddItem(ctx, userID, product.ID, 5)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, userID, &CheckoutInput{PaymentMethod: "cash"})
	require.Error(t, err)

	// Cart survives for a retry, reservations stay applied
	view, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 45, productRepo.stock(product.ID))

	saleRepo.createErr = nil
	sale, err := svc.Checkout(ctx, userID, &CheckoutInput{PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), sale.Total)
}
