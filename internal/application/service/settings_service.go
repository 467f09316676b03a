package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
)

// SettingsService handles store settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// defaultSettings returns a fresh settings row for a user that has never
// saved any.
func defaultSettings(userID uuid.UUID) *entity.StoreSettings {
	return &entity.StoreSettings{
		UserID:                   userID,
		BusinessName:             "Mi Tienda",
		ReceiptShowLogo:          true,
		ReceiptFooterMessage:     "¡Gracias por su compra!",
		ReceiptPaperWidth:        80,
		ReceiptFontSize:          10,
		ReceiptPrintHeader:       true,
		ReceiptPrintFooter:       true,
		ReceiptPrintQR:           true,
		ReceiptCopies:            1,
		EnableTax:                false,
		TaxRate:                  16,
		TaxIncludedInPrice:       false,
		WholesaleEnabled:         false,
		WholesaleMinQuantityType: enum.MinQuantityTypePerItem,
		WholesaleMinQuantity:     10,
		WholesaleDiscountPercent: 10,
		LowStockThreshold:        5,
	}
}

// GetSettings retrieves store settings, creating defaults on first access
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = defaultSettings(userID)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating store settings
type UpdateSettingsInput struct {
	UserID uuid.UUID

	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessEmail   string
	BusinessTaxID   string
	BusinessLogoURL string

	ReceiptShowLogo      bool
	ReceiptFooterMessage string
	ReceiptPaperWidth    int
	ReceiptFontSize      int
	ReceiptPrintHeader   bool
	ReceiptPrintFooter   bool
	ReceiptPrintQR       bool
	ReceiptCopies        int
	EnableTax            bool

	TaxRate            float64
	TaxIncludedInPrice bool

	WholesaleEnabled         bool
	WholesaleMinQuantityType enum.MinQuantityType
	WholesaleMinQuantity     int
	WholesaleDiscountPercent float64

	LowStockThreshold int
}

// UpdateSettings replaces the store settings with the given values
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.StoreSettings{
			UserID: input.UserID,
		}
	}

	settings.BusinessName = input.BusinessName
	settings.BusinessAddress = input.BusinessAddress
	settings.BusinessPhone = input.BusinessPhone
	settings.BusinessEmail = input.BusinessEmail
	settings.BusinessTaxID = input.BusinessTaxID
	settings.BusinessLogoURL = input.BusinessLogoURL
	settings.ReceiptShowLogo = input.ReceiptShowLogo
	settings.ReceiptFooterMessage = input.ReceiptFooterMessage
	settings.ReceiptPaperWidth = input.ReceiptPaperWidth
	settings.ReceiptFontSize = input.ReceiptFontSize
	settings.ReceiptPrintHeader = input.ReceiptPrintHeader
	settings.ReceiptPrintFooter = input.ReceiptPrintFooter
	settings.ReceiptPrintQR = input.ReceiptPrintQR
	settings.ReceiptCopies = input.ReceiptCopies
	settings.EnableTax = input.EnableTax
	settings.TaxRate = input.TaxRate
	settings.TaxIncludedInPrice = input.TaxIncludedInPrice
	settings.WholesaleEnabled = input.WholesaleEnabled
	settings.WholesaleMinQuantityType = input.WholesaleMinQuantityType
	settings.WholesaleMinQuantity = input.WholesaleMinQuantity
	settings.WholesaleDiscountPercent = input.WholesaleDiscountPercent
	settings.LowStockThreshold = input.LowStockThreshold

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
