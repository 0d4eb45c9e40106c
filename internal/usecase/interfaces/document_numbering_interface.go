package interfaces

import (
	"context"

	"resto_pos/internal/domain/entities"
)

// IDocumentNumbering yields the next document number for a receipt series
// (BOLETA or FACTURA).
//
// The shipped implementation is fixed at the first number and never
// increments; a real per-series persisted counter is future work behind this
// same port.
type IDocumentNumbering interface {
	NextNumber(ctx context.Context, series entities.ReceiptType) (string, error)
}
