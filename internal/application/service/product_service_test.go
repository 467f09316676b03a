package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDerivesMargin(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newFakeProductRepo())

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:          "Refresco 600ml",
		PurchasePrice: 7.50,
		SellingPrice:  10.00,
		CurrentStock:  24,
		MinStock:      6,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(750), product.PurchasePrice)
	assert.Equal(t, int64(1000), product.SellingPrice)
	assert.Equal(t, 25.0, product.Margin)
	assert.NotEmpty(t, product.InternalCode)
}

func TestCreateProductZeroPriceHasZeroMargin(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newFakeProductRepo())

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:         "Bolsa",
		SellingPrice: 1.00,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Margin)
}

func TestCreateProductDuplicateInternalCode(t *testing.T) {
	ctx := context.Background()
	existing := testProduct("Jabon", 1000, 10)
	existing.InternalCode = "PROD-ABC123"
	svc := NewProductService(newFakeProductRepo(existing))

	_, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:         "Otro Jabon",
		InternalCode: "PROD-ABC123",
		SellingPrice: 5.00,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal code already exists")
}

func TestUpdateProductRecomputesMarginOnPriceChange(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Cafe", 1000, 10)
	product.PurchasePrice = 800
	product.RecalculateMargin()
	svc := NewProductService(newFakeProductRepo(product))

	newPrice := 16.00
	updated, err := svc.UpdateProduct(ctx, &UpdateProductInput{
		ProductID:    product.ID,
		SellingPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1600), updated.SellingPrice)
	assert.Equal(t, 50.0, updated.Margin)
}

func TestUpdateProductIgnoresUnsetFields(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Cafe", 1000, 10)
	product.Barcode = "7501000000001"
	svc := NewProductService(newFakeProductRepo(product))

	name := "Cafe Molido"
	updated, err := svc.UpdateProduct(ctx, &UpdateProductInput{
		ProductID: product.ID,
		Name:      &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cafe Molido", updated.Name)
	assert.Equal(t, "7501000000001", updated.Barcode)
	assert.Equal(t, int64(1000), updated.SellingPrice)
}

func TestGetProductByBarcodeNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	_, err := svc.GetProductByBarcode(context.Background(), "0000000000000")
	require.Error(t, err)
}

func TestAdjustStockManualCorrection(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Leche", 1000, 10)
	svc := NewProductService(newFakeProductRepo(product))

	updated, err := svc.AdjustStock(ctx, product.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.CurrentStock)

	updated, err = svc.AdjustStock(ctx, product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 16, updated.CurrentStock)
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	_, err := svc.AdjustStock(context.Background(), uuid.New(), 1)
	require.Error(t, err)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Pan", 500, 5)
	repo := newFakeProductRepo(product)
	svc := NewProductService(repo)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	var got *entity.Product
	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
