package usecase

import (
	"context"
	"errors"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase/interfaces"
)

var ErrInvalidReceiptSeries = errors.New("invalid receipt series")

// firstDocumentNumber matches the number the reference deployment shows for
// every document. Sequencing was never implemented there, so none is invented
// here; a per-series persisted counter belongs behind the same port.
const firstDocumentNumber = "0001"

// StaticDocumentNumbering always yields the first number of a series.
type StaticDocumentNumbering struct{}

var _ interfaces.IDocumentNumbering = (*StaticDocumentNumbering)(nil)

func NewStaticDocumentNumbering() *StaticDocumentNumbering {
	return &StaticDocumentNumbering{}
}

func (n *StaticDocumentNumbering) NextNumber(_ context.Context, series entities.ReceiptType) (string, error) {
	if !series.Valid() {
		return "", ErrInvalidReceiptSeries
	}
	return firstDocumentNumber, nil
}
