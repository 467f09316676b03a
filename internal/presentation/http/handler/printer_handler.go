package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mitienda/pos-api/internal/application/service"
	"github.com/mitienda/pos-api/internal/presentation/http/dto/request"
	"github.com/mitienda/pos-api/internal/presentation/http/dto/response"
	"github.com/mitienda/pos-api/pkg/utils"
)

// PrinterHandler handles receipt printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
	authService    *service.AuthService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService, authService *service.AuthService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService, authService: authService}
}

// Status returns the configured printer's connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint prints a short test receipt
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test receipt printed successfully", receipt)
}

// PrintReceipt prints the receipt for an existing sale
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	saleID, err := utils.ParseUUID(req.SaleID)
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	cashierName := ""
	if user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID); err == nil && user != nil {
		cashierName = user.FullName
	}

	receipt, err := h.printerService.PrintSaleReceipt(c.Request.Context(), &service.PrintSaleInput{
		SaleID:       saleID,
		UserID:       *userID,
		CashierName:  cashierName,
		CashReceived: req.CashReceived,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}
