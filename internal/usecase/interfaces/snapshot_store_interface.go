package interfaces

import (
	"context"

	"resto_pos/internal/domain/entities"
)

// ISnapshotStore abstracts the persistence gateway: each store keeps its full
// state in one named slot of a key-value storage and overwrites it wholesale
// on every change. There are no deltas and no versioning.
//
// Load reports found=false when the slot is absent, so the caller adopts its
// seeded default. A corrupt stored payload must also report found=false (with
// a logged warning) rather than fail the caller.
type ISnapshotStore interface {
	LoadMenuItems(ctx context.Context) (items []entities.MenuItem, found bool, err error)
	SaveMenuItems(ctx context.Context, items []entities.MenuItem) error

	LoadCustomers(ctx context.Context) (customers []entities.Customer, found bool, err error)
	SaveCustomers(ctx context.Context, customers []entities.Customer) error

	LoadBusinessInfo(ctx context.Context) (info entities.BusinessInfo, found bool, err error)
	SaveBusinessInfo(ctx context.Context, info entities.BusinessInfo) error
}
