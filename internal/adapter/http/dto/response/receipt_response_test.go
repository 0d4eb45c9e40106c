package response

import (
	"testing"
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/domain/tax"
)

func TestFromSaleItem(t *testing.T) {
	it := entities.SaleItem{ID: 3, Description: "Ensalada fresca", Quantity: 0.5, Price: 3.34}

	res := FromSaleItem(it)
	if res.ID != 3 || res.Description != "Ensalada fresca" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Quantity != 0.5 || res.Price != 3.34 {
		t.Fatalf("quantity and price must pass through unrounded: %+v", res)
	}
	if res.Amount != 1.67 {
		t.Fatalf("expected rounded amount 1.67, got %v", res.Amount)
	}
}

func TestFromTotals(t *testing.T) {
	breakdown := tax.Compute([]entities.SaleItem{
		{Quantity: 2, Price: 3},
		{Quantity: 1, Price: 8},
		{Quantity: 1, Price: 5},
	})

	res := FromTotals(breakdown)
	if res.Total != 19.00 || res.Subtotal != 16.10 || res.Tax != 2.90 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromReceipt(t *testing.T) {
	customerID := 3
	r := entities.Receipt{
		ID:             "c1a2",
		Type:           entities.ReceiptTypeFactura,
		Number:         "0001",
		Items:          []entities.SaleItem{{ID: 1, Description: "Menu del día", Quantity: 1, Price: 11.8}},
		CustomerID:     &customerID,
		PaymentMethod:  entities.PaymentMethodTarjeta,
		Cashier:        "Caja 2",
		DeliveryPerson: "Pedro",
	}

	res := FromReceipt(r, tax.Compute(r.Items), map[int]float64{5: 2})
	if res.ID != "c1a2" || res.Type != "FACTURA" || res.Number != "0001" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.CustomerID == nil || *res.CustomerID != 3 {
		t.Fatalf("unexpected customer id: %+v", res.CustomerID)
	}
	if res.PaymentMethod != "Tarjeta" || res.Cashier != "Caja 2" || res.DeliveryPerson != "Pedro" {
		t.Fatalf("unexpected metadata: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Amount != 11.80 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Pending[5] != 2 {
		t.Fatalf("unexpected pending counters: %+v", res.Pending)
	}
}

func TestFromPrintableReceipt(t *testing.T) {
	issued := time.Date(2026, 9, 1, 13, 45, 0, 0, time.UTC)
	doc := entities.PrintableReceipt{
		Receipt: entities.Receipt{
			ID:     "c1a2",
			Type:   entities.ReceiptTypeBoleta,
			Number: "0001",
			Items:  []entities.SaleItem{{ID: 1, Description: "Menu del día", Quantity: 1, Price: 11.8}},
		},
		Business: entities.DefaultBusinessInfo(),
		Customer: &entities.Customer{ID: 3, Name: "Maria Quispe", Doc: "45678912"},
		Totals:   tax.Compute([]entities.SaleItem{{Quantity: 1, Price: 11.8}}),
		IssuedAt: issued,
	}

	res := FromPrintableReceipt(doc)
	if res.Receipt.Number != "0001" || res.Receipt.Totals.Total != 11.80 {
		t.Fatalf("unexpected receipt block: %+v", res.Receipt)
	}
	if res.Business.RUC != entities.DefaultBusinessInfo().RUC {
		t.Fatalf("unexpected business block: %+v", res.Business)
	}
	if res.Customer == nil || res.Customer.Name != "Maria Quispe" {
		t.Fatalf("unexpected customer block: %+v", res.Customer)
	}
	if !res.IssuedAt.Equal(issued) {
		t.Fatalf("unexpected issue time: %v", res.IssuedAt)
	}

	doc.Customer = nil
	if res := FromPrintableReceipt(doc); res.Customer != nil {
		t.Fatalf("expected nil customer block, got %+v", res.Customer)
	}
}
