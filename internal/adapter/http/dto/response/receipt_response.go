package response

import (
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/domain/tax"
)

type SaleItemResponse struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// TotalsResponse carries the IGV breakdown rounded to 2 decimals. This is
// the only place amounts are rounded; the builder keeps full precision.
type TotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type ReceiptResponse struct {
	ID             string             `json:"id"`
	Type           string             `json:"type"`
	Number         string             `json:"number"`
	Items          []SaleItemResponse `json:"items"`
	CustomerID     *int               `json:"customer_id,omitempty"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	Cashier        string             `json:"cashier,omitempty"`
	DeliveryPerson string             `json:"delivery_person,omitempty"`
	Totals         TotalsResponse     `json:"totals"`
	Pending        map[int]float64    `json:"pending_quantities,omitempty"`
}

type PrintedReceiptResponse struct {
	Receipt  ReceiptResponse      `json:"receipt"`
	Business BusinessInfoResponse `json:"business"`
	Customer *CustomerResponse    `json:"customer,omitempty"`
	IssuedAt time.Time            `json:"issued_at"`
}

func FromSaleItem(it entities.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:          it.ID,
		Description: it.Description,
		Quantity:    it.Quantity,
		Price:       it.Price,
		Amount:      tax.Round2(it.Quantity * it.Price),
	}
}

func FromTotals(t entities.TaxBreakdown) TotalsResponse {
	return TotalsResponse{
		Subtotal: tax.Round2(t.Subtotal),
		Tax:      tax.Round2(t.Tax),
		Total:    tax.Round2(t.Total),
	}
}

func FromReceipt(r entities.Receipt, totals entities.TaxBreakdown, pending map[int]float64) ReceiptResponse {
	items := make([]SaleItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, FromSaleItem(it))
	}
	return ReceiptResponse{
		ID:             r.ID,
		Type:           string(r.Type),
		Number:         r.Number,
		Items:          items,
		CustomerID:     r.CustomerID,
		PaymentMethod:  string(r.PaymentMethod),
		Cashier:        r.Cashier,
		DeliveryPerson: r.DeliveryPerson,
		Totals:         FromTotals(totals),
		Pending:        pending,
	}
}

func FromPrintableReceipt(doc entities.PrintableReceipt) PrintedReceiptResponse {
	out := PrintedReceiptResponse{
		Receipt:  FromReceipt(doc.Receipt, doc.Totals, nil),
		Business: FromBusinessInfo(doc.Business),
		IssuedAt: doc.IssuedAt,
	}
	if doc.Customer != nil {
		c := FromCustomer(*doc.Customer)
		out.Customer = &c
	}
	return out
}
