package printing

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/domain/tax"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() entities.PrintableReceipt {
	items := []entities.SaleItem{
		{ID: 1, Description: "Ensalada fresca", Quantity: 2, Price: 3.00},
		{ID: 2, Description: "Lomo Saltado", Quantity: 1, Price: 8.00},
		{ID: 3, Description: "Inca Kola", Quantity: 1, Price: 5.00},
	}
	return entities.PrintableReceipt{
		Receipt: entities.Receipt{
			ID:            "r-1",
			Type:          entities.ReceiptTypeBoleta,
			Number:        "0001",
			Items:         items,
			PaymentMethod: entities.PaymentMethodEfectivo,
			Cashier:       "Caja 1",
		},
		Business: entities.DefaultBusinessInfo(),
		Totals:   tax.Compute(items),
		IssuedAt: time.Date(2026, 9, 1, 13, 45, 0, 0, time.UTC),
	}
}

func TestTextPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	p := NewTextPrinter(&buf)

	require.NoError(t, p.Print(context.Background(), sampleDoc()))
	out := buf.String()

	assert.Contains(t, out, "GRUPO ORGANICO PERU S.A.C - SAN MARTIN")
	assert.Contains(t, out, "RUC 20123456789")
	assert.Contains(t, out, "BOLETA  N° 0001")
	assert.Contains(t, out, "Fecha: 01/09/2026 13:45")
	assert.Contains(t, out, "2 x Ensalada fresca")
	assert.Contains(t, out, "16.10")
	assert.Contains(t, out, "2.90")
	assert.Contains(t, out, "19.00")
	assert.Contains(t, out, "Pago: Efectivo")
	assert.Contains(t, out, "Caja: Caja 1")
	assert.NotContains(t, out, "Cliente:")
}

func TestTextPrinter_PrintWithCustomer(t *testing.T) {
	var buf bytes.Buffer
	p := NewTextPrinter(&buf)

	doc := sampleDoc()
	doc.Customer = &entities.Customer{ID: 7, Name: "Juan Quispe", Doc: "45678912"}
	require.NoError(t, p.Print(context.Background(), doc))

	assert.Contains(t, buf.String(), "Cliente: Juan Quispe")
	assert.Contains(t, buf.String(), "Doc: 45678912")
}

func TestTextPrinter_PrintDeliveryOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewTextPrinter(&buf)

	doc := sampleDoc()
	doc.Receipt.DeliveryPerson = "Pedro"
	require.NoError(t, p.Print(context.Background(), doc))

	assert.Contains(t, buf.String(), "Delivery - Repartidor: Pedro")
}

func TestTextPrinter_LinesFitTicketWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewTextPrinter(&buf)

	doc := sampleDoc()
	doc.Receipt.Items = append(doc.Receipt.Items, entities.SaleItem{
		ID: 4, Description: strings.Repeat("Descripción larguísima ", 4), Quantity: 1, Price: 2,
	})
	require.NoError(t, p.Print(context.Background(), doc))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), ticketWidth, "line %q", line)
	}
}
