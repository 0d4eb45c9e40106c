package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/domain/tax"
	mock_interfaces "resto_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type receiptFixture struct {
	uc      *ReceiptUseCase
	printer *mock_interfaces.MockIReceiptPrinter
}

// newReceiptFixture wires the builder against real stores loaded from a mock
// snapshot gateway and the shipped fixed numbering.
func newReceiptFixture(t *testing.T, ctrl *gomock.Controller, menu []entities.MenuItem, customers []entities.Customer) receiptFixture {
	t.Helper()
	ctx := context.Background()

	snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
	snapshots.EXPECT().LoadMenuItems(gomock.Any()).Return(menu, true, nil)
	snapshots.EXPECT().LoadCustomers(gomock.Any()).Return(customers, true, nil)
	snapshots.EXPECT().LoadBusinessInfo(gomock.Any()).Return(entities.DefaultBusinessInfo(), true, nil)

	catalog, err := NewCatalogUseCase(ctx, snapshots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	registry, err := NewCustomerUseCase(ctx, snapshots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	business, err := NewBusinessConfigUseCase(ctx, snapshots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	printer := mock_interfaces.NewMockIReceiptPrinter(ctrl)
	uc := NewReceiptUseCase(catalog, registry, business, printer, NewStaticDocumentNumbering())
	return receiptFixture{uc: uc, printer: printer}
}

var testMenu = []entities.MenuItem{
	{ID: 1, Name: "Ensalada fresca", Category: "Entradas", Price: 3.00},
	{ID: 5, Name: "Lomo Saltado", Category: "Platos de Fondo", Price: 8.00},
	{ID: 11, Name: "Inca Kola", Category: "Bebidas", Price: 5.00},
}

func TestReceiptUseCase_StartsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReceiptFixture(t, ctrl, testMenu, nil)

	snap, err := f.uc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Receipt.Items) != 0 {
		t.Fatalf("expected empty receipt, got %+v", snap.Receipt.Items)
	}
	if snap.Receipt.Type != entities.ReceiptTypeBoleta {
		t.Fatalf("expected default BOLETA, got %s", snap.Receipt.Type)
	}
	if snap.Receipt.Number != "0001" {
		t.Fatalf("expected fixed number 0001, got %s", snap.Receipt.Number)
	}
	if snap.Receipt.ID == "" {
		t.Fatalf("expected generated receipt id")
	}
	if snap.Totals.Total != 0 || snap.Totals.Subtotal != 0 || snap.Totals.Tax != 0 {
		t.Fatalf("expected zero totals, got %+v", snap.Totals)
	}
}

func TestReceiptUseCase_AdjustPendingQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReceiptFixture(t, ctrl, testMenu, nil)
	ctx := context.Background()

	if qty := f.uc.AdjustPendingQuantity(ctx, 1, 2); qty != 2 {
		t.Fatalf("expected 2, got %v", qty)
	}
	if qty := f.uc.AdjustPendingQuantity(ctx, 1, -1); qty != 1 {
		t.Fatalf("expected 1, got %v", qty)
	}
	// Clamped at zero.
	if qty := f.uc.AdjustPendingQuantity(ctx, 1, -5); qty != 0 {
		t.Fatalf("expected clamp at 0, got %v", qty)
	}
}

func TestReceiptUseCase_SelectFromCatalog(t *testing.T) {
	t.Run("copies name and price, consumes pending quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReceiptFixture(t, ctrl, testMenu, nil)
		ctx := context.Background()

		f.uc.AdjustPendingQuantity(ctx, 1, 2)
		line, found := f.uc.SelectFromCatalog(ctx, 1)
		if !found {
			t.Fatalf("expected catalog hit")
		}
		if line.Description != "Ensalada fresca" || line.Price != 3.00 || line.Quantity != 2 {
			t.Fatalf("unexpected line: %+v", line)
		}

		snap, _ := f.uc.Current(ctx)
		if snap.Pending[1] != 0 {
			t.Fatalf("expected pending reset to 0, got %v", snap.Pending[1])
		}
	})

	t.Run("unset pending quantity means 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReceiptFixture(t, ctrl, testMenu, nil)

		line, found := f.uc.SelectFromCatalog(context.Background(), 5)
		if !found || line.Quantity != 1 {
			t.Fatalf("expected quantity 1, got found=%v line=%+v", found, line)
		}
	})

	t.Run("unknown menu item is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReceiptFixture(t, ctrl, testMenu, nil)
		ctx := context.Background()

		if _, found := f.uc.SelectFromCatalog(ctx, 99); found {
			t.Fatalf("expected miss")
		}
		snap, _ := f.uc.Current(ctx)
		if len(snap.Receipt.Items) != 0 {
			t.Fatalf("receipt changed on miss: %+v", snap.Receipt.Items)
		}
	})

	t.Run("line keeps copied values after catalog edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
		snapshots.EXPECT().LoadMenuItems(gomock.Any()).Return(append([]entities.MenuItem(nil), testMenu...), true, nil)
		snapshots.EXPECT().LoadCustomers(gomock.Any()).Return(nil, false, nil)
		snapshots.EXPECT().LoadBusinessInfo(gomock.Any()).Return(entities.DefaultBusinessInfo(), true, nil)
		ctx := context.Background()

		catalog, _ := NewCatalogUseCase(ctx, snapshots)
		registry, _ := NewCustomerUseCase(ctx, snapshots)
		business, _ := NewBusinessConfigUseCase(ctx, snapshots)
		printer := mock_interfaces.NewMockIReceiptPrinter(ctrl)
		uc := NewReceiptUseCase(catalog, registry, business, printer, NewStaticDocumentNumbering())

		line, _ := uc.SelectFromCatalog(ctx, 11)

		snapshots.EXPECT().SaveMenuItems(gomock.Any(), gomock.Any()).Return(nil)
		if _, _, err := catalog.Update(ctx, entities.MenuItem{ID: 11, Name: "Inca Kola", Category: "Bebidas", Price: 6.50}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap, _ := uc.Current(ctx)
		if snap.Receipt.Items[0].Price != line.Price || snap.Receipt.Items[0].Price != 5.00 {
			t.Fatalf("catalog edit leaked into receipt line: %+v", snap.Receipt.Items[0])
		}
	})
}

func TestReceiptUseCase_AddManualItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReceiptFixture(t, ctrl, testMenu, nil)
	ctx := context.Background()

	t.Run("validation failures leave state unchanged", func(t *testing.T) {
		if _, err := f.uc.AddManualItem(ctx, "", 1, 5); !errors.Is(err, ErrInvalidSaleDescription) {
			t.Fatalf("expected ErrInvalidSaleDescription, got %v", err)
		}
		if _, err := f.uc.AddManualItem(ctx, "Menu del día", 0, 5); !errors.Is(err, ErrInvalidSaleQuantity) {
			t.Fatalf("expected ErrInvalidSaleQuantity, got %v", err)
		}
		if _, err := f.uc.AddManualItem(ctx, "Menu del día", 1, -0.5); !errors.Is(err, ErrInvalidSalePrice) {
			t.Fatalf("expected ErrInvalidSalePrice, got %v", err)
		}

		snap, _ := f.uc.Current(ctx)
		if len(snap.Receipt.Items) != 0 {
			t.Fatalf("expected still empty, got %+v", snap.Receipt.Items)
		}
	})

	t.Run("appends with per-receipt unique ids", func(t *testing.T) {
		first, err := f.uc.AddManualItem(ctx, "Menu del día", 2, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := f.uc.AddManualItem(ctx, "Propina", 1, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("line ids must be unique within the receipt")
		}

		snap, _ := f.uc.Current(ctx)
		if len(snap.Receipt.Items) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(snap.Receipt.Items))
		}
	})
}

func TestReceiptUseCase_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReceiptFixture(t, ctrl, testMenu, nil)
	ctx := context.Background()

	line, _ := f.uc.AddManualItem(ctx, "Menu del día", 1, 10)
	if removed := f.uc.RemoveItem(ctx, line.ID); !removed {
		t.Fatalf("expected removal")
	}
	if removed := f.uc.RemoveItem(ctx, line.ID); removed {
		t.Fatalf("expected silent no-op on second removal")
	}

	snap, _ := f.uc.Current(ctx)
	if len(snap.Receipt.Items) != 0 {
		t.Fatalf("expected empty receipt, got %+v", snap.Receipt.Items)
	}
}

func TestReceiptUseCase_Metadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReceiptFixture(t, ctrl, testMenu, nil)
	ctx := context.Background()

	if err := f.uc.SetReceiptType(ctx, "NOTA"); !errors.Is(err, ErrInvalidReceiptType) {
		t.Fatalf("expected ErrInvalidReceiptType, got %v", err)
	}
	if err := f.uc.SetReceiptType(ctx, entities.ReceiptTypeFactura); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.uc.SetPaymentMethod(ctx, "Cheque"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
	if err := f.uc.SetPaymentMethod(ctx, entities.PaymentMethodYape); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.uc.SetCashier(ctx, "  Caja 2  ")
	f.uc.SetDeliveryPerson(ctx, "  Pedro  ")
	f.uc.AttachCustomer(ctx, 7)

	snap, _ := f.uc.Current(ctx)
	if snap.Receipt.Type != entities.ReceiptTypeFactura {
		t.Fatalf("expected FACTURA, got %s", snap.Receipt.Type)
	}
	if snap.Receipt.PaymentMethod != entities.PaymentMethodYape {
		t.Fatalf("expected Yape, got %s", snap.Receipt.PaymentMethod)
	}
	if snap.Receipt.Cashier != "Caja 2" {
		t.Fatalf("expected trimmed cashier, got %q", snap.Receipt.Cashier)
	}
	if snap.Receipt.DeliveryPerson != "Pedro" {
		t.Fatalf("expected trimmed delivery person, got %q", snap.Receipt.DeliveryPerson)
	}
	if snap.Receipt.CustomerID == nil || *snap.Receipt.CustomerID != 7 {
		t.Fatalf("expected attached customer 7, got %v", snap.Receipt.CustomerID)
	}

	f.uc.DetachCustomer(ctx)
	snap, _ = f.uc.Current(ctx)
	if snap.Receipt.CustomerID != nil {
		t.Fatalf("expected detached customer, got %v", snap.Receipt.CustomerID)
	}
}

func TestReceiptUseCase_Print(t *testing.T) {
	t.Run("empty receipt fails before the printer is called", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReceiptFixture(t, ctrl, testMenu, nil)

		if _, err := f.uc.Print(context.Background()); !errors.Is(err, ErrEmptyReceipt) {
			t.Fatalf("expected ErrEmptyReceipt, got %v", err)
		}
	})

	t.Run("assembles document and keeps state for reprint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := []entities.Customer{
			{ID: 3, Name: "Maria Quispe", Doc: "45678912", Phone: "987654321"},
		}
		f := newReceiptFixture(t, ctrl, testMenu, customers)
		ctx := context.Background()

		f.uc.AdjustPendingQuantity(ctx, 1, 2)
		f.uc.SelectFromCatalog(ctx, 1)
		f.uc.SelectFromCatalog(ctx, 5)
		f.uc.SelectFromCatalog(ctx, 11)
		f.uc.AttachCustomer(ctx, 3)
		issued := time.Date(2026, 9, 1, 13, 45, 0, 0, time.UTC)
		f.uc.now = func() time.Time { return issued }

		var printed entities.PrintableReceipt
		f.printer.EXPECT().
			Print(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, doc entities.PrintableReceipt) error {
				printed = doc
				return nil
			}).
			Times(2)

		doc, err := f.uc.Print(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Receipt.Number != "0001" {
			t.Fatalf("expected number 0001, got %s", doc.Receipt.Number)
		}
		if doc.Business.RUC != entities.DefaultBusinessInfo().RUC {
			t.Fatalf("expected seeded business record, got %+v", doc.Business)
		}
		if doc.Customer == nil || doc.Customer.Name != "Maria Quispe" {
			t.Fatalf("expected resolved customer, got %+v", doc.Customer)
		}
		if !doc.IssuedAt.Equal(issued) {
			t.Fatalf("expected issue time %v, got %v", issued, doc.IssuedAt)
		}
		if tax.Round2(doc.Totals.Total) != 19.00 ||
			tax.Round2(doc.Totals.Subtotal) != 16.10 ||
			tax.Round2(doc.Totals.Tax) != 2.90 {
			t.Fatalf("unexpected totals: %+v", doc.Totals)
		}
		if printed.Receipt.ID != doc.Receipt.ID {
			t.Fatalf("printer received a different document")
		}

		// Printing keeps the working receipt so it can be printed again.
		if _, err := f.uc.Print(ctx); err != nil {
			t.Fatalf("unexpected error on reprint: %v", err)
		}
	})

	t.Run("printer failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReceiptFixture(t, ctrl, testMenu, nil)
		ctx := context.Background()

		f.uc.AddManualItem(ctx, "Menu del día", 1, 10)
		f.printer.EXPECT().
			Print(gomock.Any(), gomock.Any()).
			Return(errors.New("printer offline"))

		if _, err := f.uc.Print(ctx); err == nil {
			t.Fatalf("expected printer error")
		}
	})

	t.Run("unknown attached customer prints without one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReceiptFixture(t, ctrl, testMenu, nil)
		ctx := context.Background()

		f.uc.AddManualItem(ctx, "Menu del día", 1, 10)
		f.uc.AttachCustomer(ctx, 99)
		f.printer.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil)

		doc, err := f.uc.Print(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Customer != nil {
			t.Fatalf("expected no customer on the document, got %+v", doc.Customer)
		}
	})
}

func TestReceiptUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newReceiptFixture(t, ctrl, testMenu, nil)
	ctx := context.Background()

	f.uc.AddManualItem(ctx, "Menu del día", 1, 10)
	f.uc.AdjustPendingQuantity(ctx, 1, 3)
	f.uc.AttachCustomer(ctx, 3)
	f.uc.SetCashier(ctx, "Caja 2")
	f.uc.SetDeliveryPerson(ctx, "Pedro")
	before, _ := f.uc.Current(ctx)

	f.uc.Reset(ctx)

	snap, _ := f.uc.Current(ctx)
	if snap.Receipt.ID == before.Receipt.ID {
		t.Fatalf("expected a fresh receipt id after reset")
	}
	if len(snap.Receipt.Items) != 0 || len(snap.Pending) != 0 {
		t.Fatalf("expected cleared state, got %+v", snap)
	}
	if snap.Receipt.Type != entities.ReceiptTypeBoleta {
		t.Fatalf("expected BOLETA after reset, got %s", snap.Receipt.Type)
	}
	if snap.Receipt.CustomerID != nil || snap.Receipt.Cashier != "" || snap.Receipt.DeliveryPerson != "" {
		t.Fatalf("expected cleared metadata, got %+v", snap.Receipt)
	}
}
