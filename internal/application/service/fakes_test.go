package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/pagination"
)

// In-memory repository fakes shared by the service tests.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByInternalCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.InternalCode == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.New("product not found")
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.CurrentStock += delta
	return nil
}

func (r *fakeProductRepo) AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error) {
	p, ok := r.products[id]
	if !ok {
		return false, errors.New("product not found")
	}
	if p.CurrentStock < amount {
		return false, nil
	}
	p.CurrentStock -= amount
	return true, nil
}

func (r *fakeProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, amount := range increments {
		p, ok := r.products[id]
		if !ok {
			return errors.New("product not found")
		}
		p.CurrentStock += amount
	}
	return nil
}

func (r *fakeProductRepo) stock(id uuid.UUID) int {
	return r.products[id].CurrentStock
}

type fakeSettingsRepo struct {
	settings map[uuid.UUID]*entity.StoreSettings
}

func newFakeSettingsRepo(settings ...*entity.StoreSettings) *fakeSettingsRepo {
	repo := &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.StoreSettings)}
	for _, s := range settings {
		repo.settings[s.UserID] = s
	}
	return repo
}

func (r *fakeSettingsRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.StoreSettings, error) {
	return r.settings[userID], nil
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *entity.StoreSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	r.settings[settings.UserID] = settings
	return nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.StoreSettings) error {
	r.settings[settings.UserID] = settings
	return nil
}

type fakeSaleRepo struct {
	sales     map[uuid.UUID]*entity.Sale
	createErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = time.Now()
	for i := range sale.Items {
		if sale.Items[i].ID == uuid.Nil {
			sale.Items[i].ID = uuid.New()
		}
		sale.Items[i].SaleID = sale.ID
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) GetByTicketNo(ctx context.Context, ticketNo string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.TicketNo == ticketNo {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListWithCursor(ctx context.Context, params *repository.SaleCursorFilterParams) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSaleRepo) SumCompletedSince(ctx context.Context, since time.Time) (int64, error) {
	var sum int64
	for _, s := range r.sales {
		if s.Status == enum.SaleStatusCompleted && !s.CreatedAt.Before(since) {
			sum += s.Total
		}
	}
	return sum, nil
}

func (r *fakeSaleRepo) CountByStatus(ctx context.Context, status enum.SaleStatus) (int64, error) {
	var count int64
	for _, s := range r.sales {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		repo.customers[c.ID] = c
	}
	return repo
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]*entity.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[uuid.UUID]*entity.Purchase)}
}

func (r *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	for i := range purchase.Items {
		if purchase.Items[i].ID == uuid.Nil {
			purchase.Items[i].ID = uuid.New()
		}
		purchase.Items[i].PurchaseID = purchase.ID
	}
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}

func (r *fakePurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range r.purchases {
		if params != nil && params.Status != nil && p.Status != *params.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus) error {
	p, ok := r.purchases[id]
	if !ok {
		return errors.New("purchase not found")
	}
	p.Status = status
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeAnalyticsRepo struct {
	topProducts   []repository.TopProductResult
	categorySales []repository.CategorySalesResult
	dailySales    []repository.DailySalesResult
	totalRevenue  float64
}

func (r *fakeAnalyticsRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	if limit < len(r.topProducts) {
		return r.topProducts[:limit], nil
	}
	return r.topProducts, nil
}

func (r *fakeAnalyticsRepo) GetSalesByCategory(ctx context.Context) ([]repository.CategorySalesResult, error) {
	return r.categorySales, nil
}

func (r *fakeAnalyticsRepo) GetDailySales(ctx context.Context, days int) ([]repository.DailySalesResult, error) {
	return r.dailySales, nil
}

func (r *fakeAnalyticsRepo) GetTotalRevenue(ctx context.Context) (float64, error) {
	return r.totalRevenue, nil
}
