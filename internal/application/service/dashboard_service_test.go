package service

import (
	"context"
	"testing"
	"time"

	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	ctx := context.Background()

	lowStock := testProduct("Sal", 500, 1)
	lowStock.MinStock = 5
	productRepo := newFakeProductRepo(testProduct("Arroz", 1000, 50), lowStock)

	customerRepo := newFakeCustomerRepo(
		&entity.Customer{Name: "Cliente General"},
		&entity.Customer{Name: "Juan Perez"},
	)

	saleRepo := newFakeSaleRepo()
	require.NoError(t, saleRepo.Create(ctx, &entity.Sale{Status: enum.SaleStatusCompleted, Total: 5000}))
	require.NoError(t, saleRepo.Create(ctx, &entity.Sale{Status: enum.SaleStatusCompleted, Total: 3000}))
	require.NoError(t, saleRepo.Create(ctx, &entity.Sale{Status: enum.SaleStatusCancelled, Total: 99900}))

	purchaseRepo := newFakePurchaseRepo()
	require.NoError(t, purchaseRepo.Create(ctx, &entity.Purchase{Supplier: "A", Status: enum.PurchaseStatusPending}))
	require.NoError(t, purchaseRepo.Create(ctx, &entity.Purchase{Supplier: "B", Status: enum.PurchaseStatusCompleted}))

	analyticsRepo := &fakeAnalyticsRepo{
		totalRevenue: 80.0,
		topProducts: []repository.TopProductResult{
			{ProductName: "Arroz", QuantitySold: 12, Revenue: 120},
		},
		categorySales: []repository.CategorySalesResult{
			{Category: "Abarrotes", TotalSales: 80},
		},
		dailySales: []repository.DailySalesResult{
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Revenue: 80},
		},
	}

	svc := NewDashboardService(saleRepo, purchaseRepo, productRepo, customerRepo, analyticsRepo)

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(2), stats.TotalSales)
	assert.Equal(t, int64(2), stats.TotalPurchases)
	assert.Equal(t, int64(1), stats.PendingPurchases)
	assert.Equal(t, 80.0, stats.TotalRevenue)
	assert.Equal(t, 80.0, stats.TodayRevenue)
	assert.Equal(t, 80.0, stats.WeeklyRevenue)
	assert.Equal(t, 80.0, stats.MonthlyRevenue)

	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, "Arroz", stats.TopProducts[0].ProductName)
	require.Len(t, stats.CategorySalesData, 1)
	assert.Equal(t, "Abarrotes", stats.CategorySalesData[0].Category)
	require.Len(t, stats.DailySalesData, 1)
	assert.Equal(t, "Aug 28", stats.DailySalesData[0].Date)
}
