package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/application/service"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/internal/presentation/http/dto/response"
	"github.com/mitienda/pos-api/pkg/pagination"
	"github.com/mitienda/pos-api/pkg/utils"
)

var (
	errInvalidStatus     = errors.New("Invalid status filter")
	errInvalidCustomerID = errors.New("Invalid customer ID filter")
	errInvalidDate       = errors.New("Invalid date filter, expected YYYY-MM-DD")
)

// SaleHandler handles sale ledger HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales (supports both page-based and cursor-based pagination)
func (h *SaleHandler) List(c *gin.Context) {
	if c.Query("cursor") != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := &repository.SaleFilterParams{
		Pagination: &params,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if err := h.bindSaleFilters(c, &filter.Status, &filter.CustomerID, &filter.StartDate, &filter.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.saleService.ListSales(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

func (h *SaleHandler) listWithCursor(c *gin.Context) {
	var cursor pagination.CursorParams
	if err := c.ShouldBindQuery(&cursor); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if cursor.Direction == "" {
		cursor.Direction = pagination.CursorDirectionNext
	}

	filter := &repository.SaleCursorFilterParams{Cursor: &cursor}
	if err := h.bindSaleFilters(c, &filter.Status, &filter.CustomerID, &filter.StartDate, &filter.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.saleService.ListSalesWithCursor(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Sales retrieved successfully", result)
}

// bindSaleFilters parses the shared status, customer and date range query
// parameters into the given destinations.
func (h *SaleHandler) bindSaleFilters(c *gin.Context, status **enum.SaleStatus, customerID **uuid.UUID, startDate, endDate **time.Time) error {
	if str := c.Query("status"); str != "" {
		s, ok := enum.ParseSaleStatus(str)
		if !ok {
			return errInvalidStatus
		}
		*status = &s
	}
	if str := c.Query("customer_id"); str != "" {
		id, err := utils.ParseUUID(str)
		if err != nil {
			return errInvalidCustomerID
		}
		*customerID = &id
	}
	if str := c.Query("start_date"); str != "" {
		t, err := time.Parse("2006-01-02", str)
		if err != nil {
			return errInvalidDate
		}
		*startDate = &t
	}
	if str := c.Query("end_date"); str != "" {
		t, err := time.Parse("2006-01-02", str)
		if err != nil {
			return errInvalidDate
		}
		// Make the end date inclusive
		t = t.AddDate(0, 0, 1)
		*endDate = &t
	}
	return nil
}

// Get handles getting a single sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// GetByTicket handles looking up a sale by its ticket number
func (h *SaleHandler) GetByTicket(c *gin.Context) {
	ticketNo := c.Param("ticketNo")
	if ticketNo == "" {
		response.BadRequest(c, "Ticket number is required")
		return
	}

	sale, err := h.saleService.GetSaleByTicketNo(c.Request.Context(), ticketNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Delete handles deleting a sale and restoring the sold stock
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DailyReport returns the completed sales total since local midnight
func (h *SaleHandler) DailyReport(c *gin.Context) {
	summary, err := h.saleService.GetDailySales(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", summary)
}

// WeeklyReport returns the completed sales total since Sunday midnight
func (h *SaleHandler) WeeklyReport(c *gin.Context) {
	summary, err := h.saleService.GetWeeklySales(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Weekly sales retrieved successfully", summary)
}

// MonthlyReport returns the completed sales total since the first of the month
func (h *SaleHandler) MonthlyReport(c *gin.Context) {
	summary, err := h.saleService.GetMonthlySales(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly sales retrieved successfully", summary)
}
