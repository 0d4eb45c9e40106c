package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidMenuItemName     = errors.New("invalid menu item name")
	ErrInvalidMenuItemCategory = errors.New("invalid menu item category")
	ErrInvalidMenuItemPrice    = errors.New("invalid menu item price")
)

// ICatalogUseCase exposes the menu catalog store.
//
// The catalog owns an ordered in-memory list, loaded once at startup from its
// storage slot and persisted wholesale after every successful mutation.
type ICatalogUseCase interface {
	Create(ctx context.Context, name, category string, price float64, description string) (entities.MenuItem, error)
	Update(ctx context.Context, item entities.MenuItem) (entities.MenuItem, bool, error)
	Remove(ctx context.Context, id int) (bool, error)
	List(ctx context.Context) []entities.MenuItem
	ListByCategory(ctx context.Context) []entities.MenuCategory
	GetByID(ctx context.Context, id int) (entities.MenuItem, bool)
}

type CatalogUseCase struct {
	snapshots interfaces.ISnapshotStore

	mu     sync.Mutex
	items  []entities.MenuItem
	nextID int
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase loads the menu slot, seeding the default menu when the
// slot is absent (or unreadable, which the snapshot store reports as absent).
func NewCatalogUseCase(ctx context.Context, snapshots interfaces.ISnapshotStore) (*CatalogUseCase, error) {
	items, found, err := snapshots.LoadMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		items = entities.DefaultMenuItems()
		logrus.WithField("items", len(items)).Info("catalog: seeding default menu")
	}
	return &CatalogUseCase{
		snapshots: snapshots,
		items:     items,
		nextID:    maxMenuItemID(items) + 1,
	}, nil
}

func (u *CatalogUseCase) Create(ctx context.Context, name, category string, price float64, description string) (entities.MenuItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return entities.MenuItem{}, ErrInvalidMenuItemName
	}
	if category == "" {
		return entities.MenuItem{}, ErrInvalidMenuItemCategory
	}
	if price < 0 {
		return entities.MenuItem{}, ErrInvalidMenuItemPrice
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// IDs come from a store-owned counter so two rapid creations can never
	// collide the way wall-clock ids could.
	item := entities.MenuItem{
		ID:          u.nextID,
		Name:        name,
		Category:    category,
		Price:       price,
		Description: strings.TrimSpace(description),
	}
	u.nextID++
	u.items = append(u.items, item)

	if err := u.snapshots.SaveMenuItems(ctx, u.items); err != nil {
		return entities.MenuItem{}, err
	}
	return item, nil
}

// Update replaces the entry matching item.ID in place, preserving its
// position. An unknown id is a silent no-op, not an error.
func (u *CatalogUseCase) Update(ctx context.Context, item entities.MenuItem) (entities.MenuItem, bool, error) {
	if strings.TrimSpace(item.Name) == "" {
		return entities.MenuItem{}, false, ErrInvalidMenuItemName
	}
	if strings.TrimSpace(item.Category) == "" {
		return entities.MenuItem{}, false, ErrInvalidMenuItemCategory
	}
	if item.Price < 0 {
		return entities.MenuItem{}, false, ErrInvalidMenuItemPrice
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.items {
		if u.items[i].ID == item.ID {
			u.items[i] = item
			if err := u.snapshots.SaveMenuItems(ctx, u.items); err != nil {
				return entities.MenuItem{}, false, err
			}
			return item, true, nil
		}
	}
	return entities.MenuItem{}, false, nil
}

// Remove deletes the entry with the given id. An unknown id is a silent
// no-op.
func (u *CatalogUseCase) Remove(ctx context.Context, id int) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.items {
		if u.items[i].ID == id {
			u.items = append(u.items[:i], u.items[i+1:]...)
			if err := u.snapshots.SaveMenuItems(ctx, u.items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (u *CatalogUseCase) List(_ context.Context) []entities.MenuItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.MenuItem, len(u.items))
	copy(out, u.items)
	return out
}

// ListByCategory groups items by exact category string, categories in
// first-seen order, items in insertion order within each group.
func (u *CatalogUseCase) ListByCategory(_ context.Context) []entities.MenuCategory {
	u.mu.Lock()
	defer u.mu.Unlock()

	var groups []entities.MenuCategory
	index := map[string]int{}
	for _, item := range u.items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, entities.MenuCategory{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

func (u *CatalogUseCase) GetByID(_ context.Context, id int) (entities.MenuItem, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, item := range u.items {
		if item.ID == id {
			return item, true
		}
	}
	return entities.MenuItem{}, false
}

func maxMenuItemID(items []entities.MenuItem) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}
