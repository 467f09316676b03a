package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePurchaseComputesTotal(t *testing.T) {
	ctx := context.Background()
	productA := testProduct("Arroz", 1000, 10)
	productB := testProduct("Frijol", 500, 10)
	productRepo := newFakeProductRepo(productA, productB)
	svc := NewPurchaseService(newFakePurchaseRepo(), productRepo)

	purchase, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		Supplier: "Distribuidora Norte",
		Items: []PurchaseItemInput{
			{ProductID: productA.ID, Quantity: 10, UnitCost: 7.25},
			{ProductID: productB.ID, Quantity: 20, UnitCost: 3.10},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.PurchaseStatusPending, purchase.Status)
	assert.Equal(t, int64(7250+6200), purchase.Total)
	require.Len(t, purchase.Items, 2)
	assert.Equal(t, "Arroz", purchase.Items[0].ProductName)
	assert.Equal(t, int64(725), purchase.Items[0].UnitCost)

	// Pending purchases never touch stock
	assert.Equal(t, 10, productRepo.stock(productA.ID))
	assert.Equal(t, 10, productRepo.stock(productB.ID))
}

func TestCreatePurchaseRejectsEmptyAndUnknown(t *testing.T) {
	ctx := context.Background()
	svc := NewPurchaseService(newFakePurchaseRepo(), newFakeProductRepo())

	_, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{Supplier: "X"})
	require.Error(t, err)

	_, err = svc.CreatePurchase(ctx, &CreatePurchaseInput{
		Supplier: "X",
		Items:    []PurchaseItemInput{{ProductID: uuid.New(), Quantity: 1, UnitCost: 1}},
	})
	require.Error(t, err)
}

func TestCompletePurchaseAddsStock(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Azucar", 1000, 5)
	productRepo := newFakeProductRepo(product)
	purchaseRepo := newFakePurchaseRepo()
	svc := NewPurchaseService(purchaseRepo, productRepo)

	purchase, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		Supplier: "Distribuidora Norte",
		Items:    []PurchaseItemInput{{ProductID: product.ID, Quantity: 30, UnitCost: 6.00}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.CompletePurchase(ctx, purchase.ID))
	assert.Equal(t, 35, productRepo.stock(product.ID))

	stored, err := purchaseRepo.GetByID(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusCompleted, stored.Status)

	// Completing twice would double-count stock
	err = svc.CompletePurchase(ctx, purchase.ID)
	require.Error(t, err)
	assert.Equal(t, 35, productRepo.stock(product.ID))
}

func TestCancelPurchase(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Azucar", 1000, 5)
	productRepo := newFakeProductRepo(product)
	svc := NewPurchaseService(newFakePurchaseRepo(), productRepo)

	purchase, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		Supplier: "Distribuidora Norte",
		Items:    []PurchaseItemInput{{ProductID: product.ID, Quantity: 30, UnitCost: 6.00}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelPurchase(ctx, purchase.ID))
	assert.Equal(t, 5, productRepo.stock(product.ID))

	// A cancelled purchase can no longer be received
	err = svc.CompletePurchase(ctx, purchase.ID)
	require.Error(t, err)
}

func TestDeletePurchaseRejectsCompleted(t *testing.T) {
	ctx := context.Background()
	product := testProduct("Azucar", 1000, 5)
	svc := NewPurchaseService(newFakePurchaseRepo(), newFakeProductRepo(product))

	purchase, err := svc.CreatePurchase(ctx, &CreatePurchaseInput{
		Supplier: "Distribuidora Norte",
		Items:    []PurchaseItemInput{{ProductID: product.ID, Quantity: 2, UnitCost: 6.00}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.CompletePurchase(ctx, purchase.ID))
	err = svc.DeletePurchase(ctx, purchase.ID)
	require.Error(t, err)
}
