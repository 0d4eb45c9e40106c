package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase/interfaces"
)

// ICustomerUseCase exposes the customer registry store.
//
// Required-field validation (name, doc) belongs to the creating collaborator:
// the HTTP payload binding rejects empty values before Create is reached, and
// the store does not re-validate. Callers that bypass that check own the
// resulting data-integrity risk.
type ICustomerUseCase interface {
	Create(ctx context.Context, name, doc, phone, address, notes string) (entities.Customer, error)
	Update(ctx context.Context, customer entities.Customer) (entities.Customer, bool, error)
	Remove(ctx context.Context, id int) (bool, error)
	List(ctx context.Context) []entities.Customer
	GetByID(ctx context.Context, id int) (entities.Customer, bool)
}

type CustomerUseCase struct {
	snapshots interfaces.ISnapshotStore
	now       func() time.Time

	mu        sync.Mutex
	customers []entities.Customer
	nextID    int
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

// NewCustomerUseCase loads the customers slot; an absent slot means an empty
// registry, there is no seed data.
func NewCustomerUseCase(ctx context.Context, snapshots interfaces.ISnapshotStore) (*CustomerUseCase, error) {
	customers, _, err := snapshots.LoadCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &CustomerUseCase{
		snapshots: snapshots,
		now:       time.Now,
		customers: customers,
		nextID:    maxCustomerID(customers) + 1,
	}, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, name, doc, phone, address, notes string) (entities.Customer, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	c := entities.Customer{
		ID:        u.nextID,
		Name:      strings.TrimSpace(name),
		Doc:       strings.TrimSpace(doc),
		Phone:     strings.TrimSpace(phone),
		Address:   strings.TrimSpace(address),
		Notes:     strings.TrimSpace(notes),
		CreatedAt: u.now().UTC().Format(time.RFC3339),
	}
	u.nextID++
	u.customers = append(u.customers, c)

	if err := u.snapshots.SaveCustomers(ctx, u.customers); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

// Update replaces the matching entry in place; CreatedAt is kept from the
// stored record (it is set once at creation). Unknown id is a silent no-op.
func (u *CustomerUseCase) Update(ctx context.Context, customer entities.Customer) (entities.Customer, bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.customers {
		if u.customers[i].ID == customer.ID {
			customer.CreatedAt = u.customers[i].CreatedAt
			u.customers[i] = customer
			if err := u.snapshots.SaveCustomers(ctx, u.customers); err != nil {
				return entities.Customer{}, false, err
			}
			return customer, true, nil
		}
	}
	return entities.Customer{}, false, nil
}

func (u *CustomerUseCase) Remove(ctx context.Context, id int) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.customers {
		if u.customers[i].ID == id {
			u.customers = append(u.customers[:i], u.customers[i+1:]...)
			if err := u.snapshots.SaveCustomers(ctx, u.customers); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (u *CustomerUseCase) List(_ context.Context) []entities.Customer {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.Customer, len(u.customers))
	copy(out, u.customers)
	return out
}

func (u *CustomerUseCase) GetByID(_ context.Context, id int) (entities.Customer, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, c := range u.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Customer{}, false
}

func maxCustomerID(customers []entities.Customer) int {
	max := 0
	for _, c := range customers {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}
