package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/apperror"
	"github.com/mitienda/pos-api/pkg/pagination"
)

// PurchaseService handles supplier purchase operations
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
	}
}

// PurchaseItemInput represents an item in a purchase
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  float64
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	Supplier string
	Items    []PurchaseItemInput
}

// CreatePurchase records a pending purchase order. Stock is only updated
// when the purchase is marked completed.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase must have at least one item")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var total int64
	items := make([]entity.PurchaseItem, 0, len(input.Items))

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}

		unitCostCents := int64(math.Round(item.UnitCost * 100))
		itemTotal := unitCostCents * int64(item.Quantity)
		total += itemTotal

		items = append(items, entity.PurchaseItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitCost:    unitCostCents,
			Total:       itemTotal,
		})
	}

	purchase := &entity.Purchase{
		Supplier: input.Supplier,
		Status:   enum.PurchaseStatusPending,
		Total:    total,
		Items:    items,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetWithItems(ctx, purchase.ID)
}

// GetPurchase retrieves a purchase by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases with filtering
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// CompletePurchase marks a pending purchase as completed and adds the
// purchased quantities to stock.
func (s *PurchaseService) CompletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}

	if purchase.Status == enum.PurchaseStatusCompleted {
		return apperror.NewBadRequestError("Purchase is already completed")
	}
	if purchase.Status == enum.PurchaseStatusCancelled {
		return apperror.NewBadRequestError("Purchase is cancelled")
	}

	stockIncrements := make(map[uuid.UUID]int, len(purchase.Items))
	for _, item := range purchase.Items {
		stockIncrements[item.ProductID] += item.Quantity
	}

	if err := s.productRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	return s.purchaseRepo.UpdateStatus(ctx, id, enum.PurchaseStatusCompleted)
}

// CancelPurchase cancels a pending purchase
func (s *PurchaseService) CancelPurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}

	if purchase.Status == enum.PurchaseStatusCompleted {
		return apperror.NewBadRequestError("Cannot cancel a completed purchase")
	}

	return s.purchaseRepo.UpdateStatus(ctx, id, enum.PurchaseStatusCancelled)
}

// DeletePurchase deletes a purchase that never touched stock
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase")
	}

	if purchase.Status == enum.PurchaseStatusCompleted {
		return apperror.NewBadRequestError("Cannot delete a completed purchase")
	}

	return s.purchaseRepo.Delete(ctx, id)
}
