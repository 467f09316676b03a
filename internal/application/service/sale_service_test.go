package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSaleRestoresStock(t *testing.T) {
	ctx := context.Background()
	productA := testProduct("Arroz", 1000, 40)
	productB := testProduct("Frijol", 500, 40)
	productRepo := newFakeProductRepo(productA, productB)
	saleRepo := newFakeSaleRepo()

	sale := &entity.Sale{
		TicketNo: "TKT-TEST0001",
		Status:   enum.SaleStatusCompleted,
		Total:    3500,
		Items: []entity.SaleItem{
			{ProductID: productA.ID, ProductName: productA.Name, Quantity: 3, UnitPrice: 1000, OriginalPrice: 1000, Total: 3000},
			{ProductID: productB.ID, ProductName: productB.Name, Quantity: 1, UnitPrice: 500, OriginalPrice: 500, Total: 500},
		},
	}
	require.NoError(t, saleRepo.Create(ctx, sale))

	svc := NewSaleService(saleRepo, productRepo)
	require.NoError(t, svc.DeleteSale(ctx, sale.ID))

	assert.Equal(t, 43, productRepo.stock(productA.ID))
	assert.Equal(t, 41, productRepo.stock(productB.ID))

	deleted, err := saleRepo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestDeleteSaleNotFound(t *testing.T) {
	svc := NewSaleService(newFakeSaleRepo(), newFakeProductRepo())
	err := svc.DeleteSale(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestDeleteSaleIsCheckoutInverse(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := testProduct("Cafe", 1200, 25)
	productRepo := newFakeProductRepo(product)
	saleRepo := newFakeSaleRepo()
	cartSvc := NewCartService(productRepo, newFakeSettingsRepo(), saleRepo, newFakeCustomerRepo(), true)
	saleSvc := NewSaleService(saleRepo, productRepo)

	_, err := cartSvc.AddItem(ctx, userID, product.ID, 6)
	require.NoError(t, err)
	sale, err := cartSvc.Checkout(ctx, userID, &CheckoutInput{PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 19, productRepo.stock(product.ID))

	require.NoError(t, saleSvc.DeleteSale(ctx, sale.ID))
	assert.Equal(t, 25, productRepo.stock(product.ID))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	now := time.Date(2026, 8, 28, 17, 45, 12, 0, loc)
	got := startOfDay(now)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, loc), got)
}

func TestStartOfWeekIsSunday(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)

	// Friday 2026-08-28 belongs to the week starting Sunday 2026-08-23
	friday := time.Date(2026, 8, 28, 10, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, loc), startOfWeek(friday))

	// A Sunday is its own week start
	sunday := time.Date(2026, 8, 23, 23, 59, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, loc), startOfWeek(sunday))
}

func TestStartOfMonth(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, loc), startOfMonth(now))
}

func TestPeriodReportsCountOnlyCompletedSales(t *testing.T) {
	ctx := context.Background()
	saleRepo := newFakeSaleRepo()

	completed := &entity.Sale{TicketNo: "TKT-A", Status: enum.SaleStatusCompleted, Total: 15000}
	cancelled := &entity.Sale{TicketNo: "TKT-B", Status: enum.SaleStatusCancelled, Total: 99900}
	require.NoError(t, saleRepo.Create(ctx, completed))
	require.NoError(t, saleRepo.Create(ctx, cancelled))

	svc := NewSaleService(saleRepo, newFakeProductRepo())

	daily, err := svc.GetDailySales(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "daily", daily.Period)
	assert.Equal(t, 150.0, daily.Total)

	weekly, err := svc.GetWeeklySales(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "weekly", weekly.Period)
	assert.Equal(t, 150.0, weekly.Total)

	monthly, err := svc.GetMonthlySales(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "monthly", monthly.Period)
	assert.Equal(t, 150.0, monthly.Total)
}
