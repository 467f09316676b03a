package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/apperror"
	"github.com/mitienda/pos-api/pkg/pagination"
)

// SaleService handles the sale ledger: completed tickets, deletions with
// stock restoration, and the period revenue reports.
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetSaleByTicketNo retrieves a sale by its ticket number
func (s *SaleService) GetSaleByTicketNo(ctx context.Context, ticketNo string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByTicketNo(ctx, ticketNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListSalesWithCursor lists sales with cursor-based pagination
func (s *SaleService) ListSalesWithCursor(ctx context.Context, params *repository.SaleCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Sale], error) {
	sales, err := s.saleRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(sales, params.Cursor.Limit,
		func(sale entity.Sale) string { return sale.ID.String() },
		func(sale entity.Sale) time.Time { return sale.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// DeleteSale removes a sale and returns every unit it consumed back to
// stock. This is the inverse of checkout.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	increments := make(map[uuid.UUID]int, len(sale.Items))
	for _, item := range sale.Items {
		increments[item.ProductID] += item.Quantity
	}

	if err := s.productRepo.AtomicIncrementBatch(ctx, increments); err != nil {
		return err
	}

	return s.saleRepo.Delete(ctx, id)
}

// SalesSummary is a revenue report over a calendar period.
type SalesSummary struct {
	Period string    `json:"period"`
	From   time.Time `json:"from"`
	Total  float64   `json:"total"`
}

// startOfDay returns local midnight of the given instant.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns local midnight of the most recent Sunday.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// startOfMonth returns local midnight of the first day of the month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (s *SaleService) summarize(ctx context.Context, period string, from time.Time) (*SalesSummary, error) {
	total, err := s.saleRepo.SumCompletedSince(ctx, from)
	if err != nil {
		return nil, err
	}
	return &SalesSummary{
		Period: period,
		From:   from,
		Total:  float64(total) / 100,
	}, nil
}

// GetDailySales returns completed revenue since local midnight.
func (s *SaleService) GetDailySales(ctx context.Context, now time.Time) (*SalesSummary, error) {
	return s.summarize(ctx, "daily", startOfDay(now))
}

// GetWeeklySales returns completed revenue since the start of the week
// (Sunday).
func (s *SaleService) GetWeeklySales(ctx context.Context, now time.Time) (*SalesSummary, error) {
	return s.summarize(ctx, "weekly", startOfWeek(now))
}

// GetMonthlySales returns completed revenue since the first of the month.
func (s *SaleService) GetMonthlySales(ctx context.Context, now time.Time) (*SalesSummary, error) {
	return s.summarize(ctx, "monthly", startOfMonth(now))
}
