package service

import (
	"context"
	"time"

	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/pagination"
)

// DashboardService provides the store overview statistics
type DashboardService struct {
	saleRepo      repository.SaleRepository
	purchaseRepo  repository.PurchaseRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	analyticsRepo repository.AnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		saleRepo:      saleRepo,
		purchaseRepo:  purchaseRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
		analyticsRepo: analyticsRepo,
	}
}

// DashboardStats represents the store overview
type DashboardStats struct {
	TotalCustomers    int64                `json:"total_customers"`
	TotalProducts     int64                `json:"total_products"`
	TotalSales        int64                `json:"total_sales"`
	TotalPurchases    int64                `json:"total_purchases"`
	TotalRevenue      float64              `json:"total_revenue"`
	TodayRevenue      float64              `json:"today_revenue"`
	WeeklyRevenue     float64              `json:"weekly_revenue"`
	MonthlyRevenue    float64              `json:"monthly_revenue"`
	LowStockCount     int64                `json:"low_stock_count"`
	PendingPurchases  int64                `json:"pending_purchases"`
	DailySalesData    []DailySalesPoint    `json:"daily_sales_data"`
	CategorySalesData []CategorySalesPoint `json:"category_sales_data"`
	TopProducts       []TopProductPoint    `json:"top_products"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// CategorySalesPoint represents sales by category
type CategorySalesPoint struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TopProductPoint represents a top selling product
type TopProductPoint struct {
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// Counts only, so a single-row page is enough
	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1

	_, customerCount, err := s.customerRepo.List(ctx, countParams, "")
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	_, productCount, err := s.productRepo.List(ctx, &repository.ProductFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = productCount

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))

	completedSales, err := s.saleRepo.CountByStatus(ctx, enum.SaleStatusCompleted)
	if err != nil {
		return nil, err
	}
	stats.TotalSales = completedSales

	_, purchaseCount, err := s.purchaseRepo.List(ctx, &repository.PurchaseFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalPurchases = purchaseCount

	pendingStatus := enum.PurchaseStatusPending
	_, pendingPurchases, err := s.purchaseRepo.List(ctx, &repository.PurchaseFilterParams{
		Pagination: countParams,
		Status:     &pendingStatus,
	})
	if err != nil {
		return nil, err
	}
	stats.PendingPurchases = pendingPurchases

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = totalRevenue

	now := time.Now()

	todayCents, err := s.saleRepo.SumCompletedSince(ctx, startOfDay(now))
	if err != nil {
		return nil, err
	}
	stats.TodayRevenue = float64(todayCents) / 100

	weekCents, err := s.saleRepo.SumCompletedSince(ctx, startOfWeek(now))
	if err != nil {
		return nil, err
	}
	stats.WeeklyRevenue = float64(weekCents) / 100

	monthCents, err := s.saleRepo.SumCompletedSince(ctx, startOfMonth(now))
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = float64(monthCents) / 100

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySalesData = make([]DailySalesPoint, 0, len(dailySales))
	for _, point := range dailySales {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:    point.Date.Format("Jan 02"),
			Revenue: point.Revenue,
		})
	}

	categorySales, err := s.analyticsRepo.GetSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.CategorySalesData = make([]CategorySalesPoint, 0, len(categorySales))
	for _, point := range categorySales {
		stats.CategorySalesData = append(stats.CategorySalesData, CategorySalesPoint{
			Category: point.Category,
			Amount:   point.TotalSales,
		})
	}

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = make([]TopProductPoint, 0, len(topProducts))
	for _, point := range topProducts {
		stats.TopProducts = append(stats.TopProducts, TopProductPoint{
			ProductName:  point.ProductName,
			QuantitySold: point.QuantitySold,
			Revenue:      point.Revenue,
		})
	}

	return stats, nil
}
