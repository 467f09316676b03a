package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/apperror"
	"github.com/mitienda/pos-api/pkg/pagination"
	"github.com/mitienda/pos-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Barcode       string
	InternalCode  string
	Name          string
	Description   string
	Category      string
	Unit          string
	PurchasePrice float64
	SellingPrice  float64
	CurrentStock  int
	MinStock      int
	ImageURL      *string
}

// CreateProduct creates a new product. The margin is always derived from
// the prices, never taken from the client.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	// Auto-generate internal code if not provided
	code := input.InternalCode
	if code == "" {
		code = utils.GenerateInternalCode()
	}

	existing, err := s.productRepo.GetByInternalCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Internal code already exists")
	}

	product := &entity.Product{
		Barcode:      input.Barcode,
		InternalCode: code,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Unit:         input.Unit,
		CurrentStock: input.CurrentStock,
		MinStock:     input.MinStock,
		ImageURL:     input.ImageURL,
	}
	product.SetPurchasePriceFromDecimal(input.PurchasePrice)
	product.SetSellingPriceFromDecimal(input.SellingPrice)
	product.RecalculateMargin()

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByBarcode retrieves a product by barcode (scanner lookups)
func (s *ProductService) GetProductByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ProductID     uuid.UUID
	Barcode       *string
	InternalCode  *string
	Name          *string
	Description   *string
	Category      *string
	Unit          *string
	PurchasePrice *float64
	SellingPrice  *float64
	CurrentStock  *int
	MinStock      *int
	ImageURL      *string
}

// UpdateProduct updates a product and recomputes the margin whenever a
// price changed.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	// Check if new internal code is unique
	if input.InternalCode != nil && *input.InternalCode != product.InternalCode {
		existing, err := s.productRepo.GetByInternalCode(ctx, *input.InternalCode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, apperror.NewConflictError("Internal code already exists")
		}
		product.InternalCode = *input.InternalCode
	}

	if input.Barcode != nil {
		product.Barcode = *input.Barcode
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.PurchasePrice != nil {
		product.SetPurchasePriceFromDecimal(*input.PurchasePrice)
	}
	if input.SellingPrice != nil {
		product.SetSellingPriceFromDecimal(*input.SellingPrice)
	}
	if input.PurchasePrice != nil || input.SellingPrice != nil {
		product.RecalculateMargin()
	}
	if input.CurrentStock != nil {
		product.CurrentStock = *input.CurrentStock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.ImageURL != nil {
		product.ImageURL = input.ImageURL
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns products at or below their minimum stock
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// AdjustStock applies a manual stock correction
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.AdjustStock(ctx, id, delta); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, id)
}
