package repository

import (
	"context"

	domainRepo "github.com/mitienda/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// GetTopProducts returns top selling products by revenue from completed sales
func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			si.product_id,
			si.product_name,
			SUM(si.quantity) AS quantity_sold,
			SUM(si.total) / 100.0 AS revenue
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 0
			AND s.deleted_at IS NULL
			AND si.deleted_at IS NULL
		GROUP BY si.product_id, si.product_name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	return results, err
}

// GetSalesByCategory returns completed sales aggregated by product category
func (r *analyticsRepository) GetSalesByCategory(ctx context.Context) ([]domainRepo.CategorySalesResult, error) {
	var results []domainRepo.CategorySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(NULLIF(p.category, ''), 'Sin categoría') AS category,
			SUM(si.total) / 100.0 AS total_sales,
			COUNT(DISTINCT s.id) AS sale_count
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.status = 0
			AND s.deleted_at IS NULL
			AND si.deleted_at IS NULL
		GROUP BY COALESCE(NULLIF(p.category, ''), 'Sin categoría')
		ORDER BY total_sales DESC
	`).Scan(&results).Error

	return results, err
}

// GetDailySales returns daily revenue for the last N days
func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	var results []domainRepo.DailySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE_TRUNC('day', s.created_at) AS date,
			SUM(s.total) / 100.0 AS revenue
		FROM sales s
		WHERE s.status = 0
			AND s.deleted_at IS NULL
			AND s.created_at >= NOW() - (? * INTERVAL '1 day')
		GROUP BY DATE_TRUNC('day', s.created_at)
		ORDER BY date ASC
	`, days).Scan(&results).Error

	return results, err
}

// GetTotalRevenue returns total revenue from completed sales
func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(s.total), 0) / 100.0
		FROM sales s
		WHERE s.status = 0
			AND s.deleted_at IS NULL
	`).Scan(&revenue).Error

	return revenue, err
}
