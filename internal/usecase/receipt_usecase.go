package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/domain/tax"
	"resto_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidSaleDescription = errors.New("invalid sale item description")
	ErrInvalidSaleQuantity    = errors.New("invalid sale item quantity")
	ErrInvalidSalePrice       = errors.New("invalid sale item price")
	ErrInvalidReceiptType     = errors.New("invalid receipt type")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrEmptyReceipt           = errors.New("receipt has no items")
)

// ReceiptSnapshot is the builder's current state plus derived data for
// display: computed totals and the per-menu-item pending quantity counters.
type ReceiptSnapshot struct {
	Receipt entities.Receipt
	Totals  entities.TaxBreakdown
	Pending map[int]float64
}

// IReceiptUseCase is the transient receipt builder. One working receipt
// exists per service instance (the POS is a single logical session); its
// line items are never persisted and are discarded on Reset.
//
// Print does not reset the builder: the caller resets explicitly, which is
// what allows reprinting a receipt.
type IReceiptUseCase interface {
	Current(ctx context.Context) (ReceiptSnapshot, error)
	AdjustPendingQuantity(ctx context.Context, menuItemID int, delta float64) float64
	SelectFromCatalog(ctx context.Context, menuItemID int) (entities.SaleItem, bool)
	AddManualItem(ctx context.Context, description string, quantity, price float64) (entities.SaleItem, error)
	RemoveItem(ctx context.Context, saleItemID int) bool
	AttachCustomer(ctx context.Context, customerID int)
	DetachCustomer(ctx context.Context)
	SetReceiptType(ctx context.Context, t entities.ReceiptType) error
	SetPaymentMethod(ctx context.Context, m entities.PaymentMethod) error
	SetCashier(ctx context.Context, cashier string)
	SetDeliveryPerson(ctx context.Context, deliveryPerson string)
	Print(ctx context.Context) (entities.PrintableReceipt, error)
	Reset(ctx context.Context)
}

type ReceiptUseCase struct {
	catalog   ICatalogUseCase
	customers ICustomerUseCase
	business  IBusinessConfigUseCase
	printer   interfaces.IReceiptPrinter
	numbering interfaces.IDocumentNumbering
	now       func() time.Time

	mu         sync.Mutex
	receipt    entities.Receipt
	pending    map[int]float64
	nextItemID int
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(
	catalog ICatalogUseCase,
	customers ICustomerUseCase,
	business IBusinessConfigUseCase,
	printer interfaces.IReceiptPrinter,
	numbering interfaces.IDocumentNumbering,
) *ReceiptUseCase {
	u := &ReceiptUseCase{
		catalog:   catalog,
		customers: customers,
		business:  business,
		printer:   printer,
		numbering: numbering,
		now:       time.Now,
	}
	u.resetLocked()
	return u
}

func (u *ReceiptUseCase) Current(ctx context.Context) (ReceiptSnapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	number, err := u.numbering.NextNumber(ctx, u.receipt.Type)
	if err != nil {
		return ReceiptSnapshot{}, err
	}

	r := u.receipt
	r.Number = number
	r.Items = make([]entities.SaleItem, len(u.receipt.Items))
	copy(r.Items, u.receipt.Items)

	pending := make(map[int]float64, len(u.pending))
	for id, qty := range u.pending {
		pending[id] = qty
	}

	return ReceiptSnapshot{
		Receipt: r,
		Totals:  tax.Compute(r.Items),
		Pending: pending,
	}, nil
}

// AdjustPendingQuantity moves the pending counter for a menu item by delta,
// clamped at zero, and returns the new value. The counter only stages a
// quantity; nothing is added to the receipt until SelectFromCatalog.
func (u *ReceiptUseCase) AdjustPendingQuantity(_ context.Context, menuItemID int, delta float64) float64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	qty := u.pending[menuItemID] + delta
	if qty < 0 {
		qty = 0
	}
	u.pending[menuItemID] = qty
	return qty
}

// SelectFromCatalog appends a line for the given menu item, copying its name
// and price at this moment; later catalog edits never change the line. The
// staged pending quantity is consumed (an unset or zero counter means 1) and
// reset. An unknown menu item id is a silent no-op.
func (u *ReceiptUseCase) SelectFromCatalog(ctx context.Context, menuItemID int) (entities.SaleItem, bool) {
	item, found := u.catalog.GetByID(ctx, menuItemID)
	if !found {
		return entities.SaleItem{}, false
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	qty := u.pending[menuItemID]
	if qty <= 0 {
		qty = 1
	}
	line := u.appendLineLocked(item.Name, qty, item.Price)
	u.pending[menuItemID] = 0
	return line, true
}

func (u *ReceiptUseCase) AddManualItem(_ context.Context, description string, quantity, price float64) (entities.SaleItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.SaleItem{}, ErrInvalidSaleDescription
	}
	if quantity <= 0 {
		return entities.SaleItem{}, ErrInvalidSaleQuantity
	}
	if price < 0 {
		return entities.SaleItem{}, ErrInvalidSalePrice
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.appendLineLocked(description, quantity, price), nil
}

func (u *ReceiptUseCase) RemoveItem(_ context.Context, saleItemID int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.receipt.Items {
		if u.receipt.Items[i].ID == saleItemID {
			u.receipt.Items = append(u.receipt.Items[:i], u.receipt.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (u *ReceiptUseCase) AttachCustomer(_ context.Context, customerID int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.receipt.CustomerID = &customerID
}

func (u *ReceiptUseCase) DetachCustomer(_ context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.receipt.CustomerID = nil
}

func (u *ReceiptUseCase) SetReceiptType(_ context.Context, t entities.ReceiptType) error {
	if !t.Valid() {
		return ErrInvalidReceiptType
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.receipt.Type = t
	return nil
}

func (u *ReceiptUseCase) SetPaymentMethod(_ context.Context, m entities.PaymentMethod) error {
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.receipt.PaymentMethod = m
	return nil
}

func (u *ReceiptUseCase) SetCashier(_ context.Context, cashier string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.receipt.Cashier = strings.TrimSpace(cashier)
}

// SetDeliveryPerson records who delivers the order. An empty value clears it
// (the order is dine-in again).
func (u *ReceiptUseCase) SetDeliveryPerson(_ context.Context, deliveryPerson string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.receipt.DeliveryPerson = strings.TrimSpace(deliveryPerson)
}

// Print assembles the document and hands it to the print collaborator. An
// empty receipt fails validation before any external call. The builder keeps
// its state afterwards; use Reset to start the next receipt.
func (u *ReceiptUseCase) Print(ctx context.Context) (entities.PrintableReceipt, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.receipt.Items) == 0 {
		return entities.PrintableReceipt{}, ErrEmptyReceipt
	}

	number, err := u.numbering.NextNumber(ctx, u.receipt.Type)
	if err != nil {
		return entities.PrintableReceipt{}, err
	}

	r := u.receipt
	r.Number = number
	r.Items = make([]entities.SaleItem, len(u.receipt.Items))
	copy(r.Items, u.receipt.Items)

	doc := entities.PrintableReceipt{
		Receipt:  r,
		Business: u.business.Get(ctx),
		Totals:   tax.Compute(r.Items),
		IssuedAt: u.now(),
	}
	if r.CustomerID != nil {
		if c, found := u.customers.GetByID(ctx, *r.CustomerID); found {
			doc.Customer = &c
		}
	}

	if err := u.printer.Print(ctx, doc); err != nil {
		return entities.PrintableReceipt{}, err
	}

	logrus.WithFields(logrus.Fields{
		"receipt_id": r.ID,
		"type":       r.Type,
		"lines":      len(r.Items),
		"total":      tax.Round2(doc.Totals.Total),
	}).Info("receipt printed")
	return doc, nil
}

func (u *ReceiptUseCase) Reset(_ context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resetLocked()
}

func (u *ReceiptUseCase) resetLocked() {
	u.receipt = entities.Receipt{
		ID:   uuid.NewString(),
		Type: entities.ReceiptTypeBoleta,
	}
	u.pending = map[int]float64{}
	u.nextItemID = 1
}

func (u *ReceiptUseCase) appendLineLocked(description string, quantity, price float64) entities.SaleItem {
	// Line ids only need to be unique within this receipt.
	line := entities.SaleItem{
		ID:          u.nextItemID,
		Description: description,
		Quantity:    quantity,
		Price:       price,
	}
	u.nextItemID++
	u.receipt.Items = append(u.receipt.Items, line)
	return line
}
