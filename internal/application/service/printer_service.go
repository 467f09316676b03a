package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/repository"
	"github.com/mitienda/pos-api/pkg/apperror"
	"github.com/mitienda/pos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer      printer.Printer
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRUEBA DE IMPRESORA",
			Address:   "Direccion de prueba",
			Phone:     "000 000 0000",
		},
		TicketNo: "TEST-001",
		Date:     "Test Date",
		Cashier:  "Sistema",
		Items: []entity.ReceiptItem{
			{Name: "Articulo 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Articulo 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal:      20.00,
		Total:         20.00,
		FooterMessage: "¡Gracias por su compra!",
	}

	data := FormatReceipt(receipt, nil)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintSaleInput carries the payment details shown on the printed ticket.
type PrintSaleInput struct {
	SaleID       uuid.UUID
	UserID       uuid.UUID
	CashierName  string
	CashReceived float64
}

// PrintSaleReceipt fetches a sale (with items) and prints its receipt using
// the store's receipt settings.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, input *PrintSaleInput) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	receipt := buildSaleReceipt(sale, settings, input.CashierName, input.CashReceived)

	data := FormatReceipt(receipt, settings)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", input.SaleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// buildSaleReceipt composes the printable receipt from a sale and the store
// settings.
func buildSaleReceipt(sale *entity.Sale, settings *entity.StoreSettings, cashierName string, cashReceived float64) *entity.Receipt {
	receipt := &entity.Receipt{
		TicketNo:      sale.TicketNo,
		Date:          sale.CreatedAt.Format("2006-01-02 15:04"),
		Cashier:       cashierName,
		PaymentMethod: sale.PaymentMethod,
		SubTotal:      float64(sale.SubTotal) / 100,
		Tax:           float64(sale.Tax) / 100,
		Discount:      float64(sale.Discount) / 100,
		Total:         float64(sale.Total) / 100,
	}

	if settings != nil {
		receipt.Header = entity.ReceiptHeader{
			StoreName: settings.BusinessName,
			Address:   settings.BusinessAddress,
			Phone:     settings.BusinessPhone,
			TaxID:     settings.BusinessTaxID,
		}
		receipt.FooterMessage = settings.ReceiptFooterMessage
	} else {
		receipt.Header = entity.ReceiptHeader{StoreName: "Mi Tienda"}
		receipt.FooterMessage = "¡Gracias por su compra!"
	}

	if sale.Customer != nil {
		receipt.Customer = sale.Customer.Name
	}

	if cashReceived > 0 {
		receipt.CashReceived = cashReceived
		receipt.Change = cashReceived - receipt.Total
	}

	for _, item := range sale.Items {
		name := item.ProductName
		if name == "" {
			name = "Producto"
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.Total) / 100,
		})
	}

	return receipt
}

// receiptWidth maps the configured paper width in millimeters to a column
// count. 80mm thermal paper fits 48 characters, 58mm fits 32.
func receiptWidth(settings *entity.StoreSettings) int {
	if settings != nil && settings.ReceiptPaperWidth >= 80 {
		return 48
	}
	return 32
}

// FormatReceipt converts a Receipt into ESC/POS bytes honoring the store's
// receipt layout settings. A nil settings prints everything at 58mm width.
func FormatReceipt(r *entity.Receipt, settings *entity.StoreSettings) []byte {
	doc := printer.NewDocument(receiptWidth(settings))
	doc.SetCodePage(printer.CodePageLatin)

	printHeader := settings == nil || settings.ReceiptPrintHeader
	printFooter := settings == nil || settings.ReceiptPrintFooter

	if printHeader {
		doc.SetAlign(printer.AlignCenter).
			SetBold(true).
			SetFontSize(printer.FontDouble).
			Text(r.Header.StoreName).
			SetFontSize(printer.FontNormal).
			SetBold(false)

		if r.Header.Address != "" {
			doc.Text(r.Header.Address)
		}
		if r.Header.Phone != "" {
			doc.Text(r.Header.Phone)
		}
		if r.Header.TaxID != "" {
			doc.TextF("RFC: %s", r.Header.TaxID)
		}

		doc.SetAlign(printer.AlignLeft).
			Separator('-')
	}

	// Ticket info
	doc.KeyValue("Ticket:", r.TicketNo).
		KeyValue("Fecha:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cajero:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Cliente:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Pago:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f c/u", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Descuento:", fmt.Sprintf("-%.2f", r.Discount))
	}
	if r.Tax > 0 {
		doc.KeyValue("IVA:", fmt.Sprintf("%.2f", r.Tax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.CashReceived > 0 {
		doc.KeyValue("Efectivo:", fmt.Sprintf("%.2f", r.CashReceived)).
			KeyValue("Cambio:", fmt.Sprintf("%.2f", r.Change))
	}

	if printFooter && r.FooterMessage != "" {
		doc.Separator('-').
			SetAlign(printer.AlignCenter).
			LineFeed().
			Text(r.FooterMessage).
			LineFeed().
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).
		PartialCut()

	if r.PaymentMethod == "cash" {
		doc.OpenDrawer()
	}

	return doc.Bytes()
}
