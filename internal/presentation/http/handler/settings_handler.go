package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mitienda/pos-api/internal/application/service"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/presentation/http/dto/request"
	"github.com/mitienda/pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the store settings, creating defaults on first access
func (h *SettingsHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update replaces the store settings
func (h *SettingsHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	minQuantityType := enum.MinQuantityTypePerItem
	if req.WholesaleMinQuantityType == string(enum.MinQuantityTypeTotal) {
		minQuantityType = enum.MinQuantityTypeTotal
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID: *userID,

		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		BusinessPhone:   req.BusinessPhone,
		BusinessEmail:   req.BusinessEmail,
		BusinessTaxID:   req.BusinessTaxID,
		BusinessLogoURL: req.BusinessLogoURL,

		ReceiptShowLogo:      req.ReceiptShowLogo,
		ReceiptFooterMessage: req.ReceiptFooterMessage,
		ReceiptPaperWidth:    req.ReceiptPaperWidth,
		ReceiptFontSize:      req.ReceiptFontSize,
		ReceiptPrintHeader:   req.ReceiptPrintHeader,
		ReceiptPrintFooter:   req.ReceiptPrintFooter,
		ReceiptPrintQR:       req.ReceiptPrintQR,
		ReceiptCopies:        req.ReceiptCopies,
		EnableTax:            req.EnableTax,

		TaxRate:            req.TaxRate,
		TaxIncludedInPrice: req.TaxIncludedInPrice,

		WholesaleEnabled:         req.WholesaleEnabled,
		WholesaleMinQuantityType: minQuantityType,
		WholesaleMinQuantity:     req.WholesaleMinQuantity,
		WholesaleDiscountPercent: req.WholesaleDiscountPercent,

		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
