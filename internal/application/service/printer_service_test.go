package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mitienda/pos-api/internal/domain/entity"
	"github.com/mitienda/pos-api/internal/domain/enum"
	"github.com/mitienda/pos-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:            uuid.New(),
		TicketNo:      "TKT-ABCD1234",
		Status:        enum.SaleStatusCompleted,
		SubTotal:      8500,
		Tax:           1360,
		Total:         9860,
		PaymentMethod: "cash",
		CreatedAt:     time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{ProductName: "Aceite 1L", Quantity: 10, UnitPrice: 850, OriginalPrice: 850, Total: 8500},
		},
	}
}

func TestBuildSaleReceipt(t *testing.T) {
	sale := sampleSale()
	sale.Customer = &entity.Customer{Name: "Cliente General"}
	settings := &entity.StoreSettings{
		BusinessName:         "Abarrotes Lupita",
		BusinessAddress:      "Av. Juarez 123",
		BusinessTaxID:        "XAXX010101000",
		ReceiptFooterMessage: "¡Gracias por su compra!",
	}

	receipt := buildSaleReceipt(sale, settings, "Maria", 100.00)

	assert.Equal(t, "TKT-ABCD1234", receipt.TicketNo)
	assert.Equal(t, "Abarrotes Lupita", receipt.Header.StoreName)
	assert.Equal(t, "Maria", receipt.Cashier)
	assert.Equal(t, "Cliente General", receipt.Customer)
	assert.Equal(t, 85.0, receipt.SubTotal)
	assert.Equal(t, 13.6, receipt.Tax)
	assert.Equal(t, 98.6, receipt.Total)
	assert.Equal(t, 100.0, receipt.CashReceived)
	assert.InDelta(t, 1.4, receipt.Change, 0.001)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Aceite 1L", receipt.Items[0].Name)
}

func TestBuildSaleReceiptWithoutSettings(t *testing.T) {
	receipt := buildSaleReceipt(sampleSale(), nil, "", 0)
	assert.Equal(t, "Mi Tienda", receipt.Header.StoreName)
	assert.Equal(t, "¡Gracias por su compra!", receipt.FooterMessage)
	assert.Equal(t, 0.0, receipt.CashReceived)
}

func TestReceiptWidth(t *testing.T) {
	assert.Equal(t, 32, receiptWidth(nil))
	assert.Equal(t, 32, receiptWidth(&entity.StoreSettings{ReceiptPaperWidth: 58}))
	assert.Equal(t, 48, receiptWidth(&entity.StoreSettings{ReceiptPaperWidth: 80}))
}

func TestFormatReceiptContent(t *testing.T) {
	receipt := buildSaleReceipt(sampleSale(), nil, "Maria", 100.00)
	out := string(FormatReceipt(receipt, nil))

	assert.Contains(t, out, "Ticket:")
	assert.Contains(t, out, "TKT-ABCD1234")
	assert.Contains(t, out, "Cajero:")
	assert.Contains(t, out, "Subtotal:")
	assert.Contains(t, out, "IVA:")
	assert.Contains(t, out, "TOTAL:")
	assert.Contains(t, out, "Efectivo:")
	assert.Contains(t, out, "Cambio:")
	assert.Contains(t, out, "@ 8.50 c/u")
}

func TestFormatReceiptHonorsHeaderFooterToggles(t *testing.T) {
	settings := &entity.StoreSettings{
		BusinessName:         "Abarrotes Lupita",
		ReceiptFooterMessage: "Vuelva pronto",
		ReceiptPrintHeader:   false,
		ReceiptPrintFooter:   false,
	}
	receipt := buildSaleReceipt(sampleSale(), settings, "", 0)
	out := string(FormatReceipt(receipt, settings))

	assert.NotContains(t, out, "Abarrotes Lupita")
	assert.NotContains(t, out, "Vuelva pronto")
	assert.Contains(t, out, "TKT-ABCD1234")
}

func TestFormatReceiptSkipsZeroTaxAndDiscount(t *testing.T) {
	sale := sampleSale()
	sale.Tax = 0
	sale.Total = sale.SubTotal
	receipt := buildSaleReceipt(sale, nil, "", 0)
	out := string(FormatReceipt(receipt, nil))

	assert.NotContains(t, out, "IVA:")
	assert.NotContains(t, out, "Descuento:")
}

func TestPrintSaleReceiptWithNullPrinter(t *testing.T) {
	ctx := context.Background()
	saleRepo := newFakeSaleRepo()
	sale := sampleSale()
	require.NoError(t, saleRepo.Create(ctx, sale))

	svc := NewPrinterService(printer.NewNullPrinter(), saleRepo, newFakeSettingsRepo(), "none")

	receipt, err := svc.PrintSaleReceipt(ctx, &PrintSaleInput{
		SaleID:      sale.ID,
		UserID:      uuid.New(),
		CashierName: "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t, sale.TicketNo, receipt.TicketNo)

	status := svc.GetStatus()
	assert.False(t, status.Configured)
	assert.Equal(t, "none", status.Type)
}

func TestPrintSaleReceiptUnknownSale(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), newFakeSaleRepo(), newFakeSettingsRepo(), "none")
	_, err := svc.PrintSaleReceipt(context.Background(), &PrintSaleInput{SaleID: uuid.New(), UserID: uuid.New()})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Sale") || strings.Contains(err.Error(), "not found"))
}
