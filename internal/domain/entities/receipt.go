package entities

import "time"

// ReceiptType distinguishes the two Peruvian retail document series:
// BOLETA (simplified receipt) and FACTURA (formal invoice).

type ReceiptType string

const (
	ReceiptTypeBoleta  ReceiptType = "BOLETA"
	ReceiptTypeFactura ReceiptType = "FACTURA"
)

func (t ReceiptType) Valid() bool {
	return t == ReceiptTypeBoleta || t == ReceiptTypeFactura
}

// PaymentMethod is a label recorded on the receipt. No charge is processed.

type PaymentMethod string

const (
	PaymentMethodEfectivo PaymentMethod = "Efectivo"
	PaymentMethodYape     PaymentMethod = "Yape"
	PaymentMethodTarjeta  PaymentMethod = "Tarjeta"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodEfectivo || m == PaymentMethodYape || m == PaymentMethodTarjeta
}

// SaleItem is one line of an in-progress receipt. It copies name and price
// from the menu at selection time; later catalog edits never change it.
// SaleItems are never persisted.
type SaleItem struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// TaxBreakdown is the IGV decomposition of a tax-inclusive total.
type TaxBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Receipt is the transient working set of the receipt builder: line items
// plus document metadata. One instance exists per session; it is discarded
// on reset, never persisted.
type Receipt struct {
	ID            string        `json:"id"`
	Type          ReceiptType   `json:"type"`
	Number        string        `json:"number"`
	Items         []SaleItem    `json:"items"`
	CustomerID    *int          `json:"customer_id,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Cashier       string        `json:"cashier,omitempty"`
	// DeliveryPerson is set for delivery orders, empty for dine-in.
	DeliveryPerson string `json:"delivery_person,omitempty"`
}

// PrintableReceipt is the document handed to the print collaborator:
// the receipt, the resolved header data and the computed totals.
type PrintableReceipt struct {
	Receipt  Receipt      `json:"receipt"`
	Business BusinessInfo `json:"business"`
	Customer *Customer    `json:"customer,omitempty"`
	Totals   TaxBreakdown `json:"totals"`
	IssuedAt time.Time    `json:"issued_at"`
}
