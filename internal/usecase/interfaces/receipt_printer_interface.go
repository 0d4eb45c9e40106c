package interfaces

import (
	"context"

	"resto_pos/internal/domain/entities"
)

// IReceiptPrinter abstracts the platform print facility. The builder hands it
// a fully assembled document; output formatting is entirely the printer's
// concern.
type IReceiptPrinter interface {
	Print(ctx context.Context, doc entities.PrintableReceipt) error
}
