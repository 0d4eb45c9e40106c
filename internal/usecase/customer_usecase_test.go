package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"resto_pos/internal/domain/entities"
	mock_interfaces "resto_pos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRegistryWithCustomers(t *testing.T, snapshots *mock_interfaces.MockISnapshotStore, customers []entities.Customer) *CustomerUseCase {
	t.Helper()
	snapshots.EXPECT().LoadCustomers(gomock.Any()).Return(customers, len(customers) > 0, nil)
	uc, err := NewCustomerUseCase(context.Background(), snapshots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return uc
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("assigns id and createdAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
		uc := newRegistryWithCustomers(t, snapshots, nil)
		fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		snapshots.EXPECT().SaveCustomers(gomock.Any(), gomock.Len(1)).Return(nil)
		c, err := uc.Create(context.Background(), " Juan Quispe ", "45678912", "999888777", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 1 || c.Name != "Juan Quispe" || c.Doc != "45678912" {
			t.Fatalf("unexpected customer: %+v", c)
		}
		if c.CreatedAt != fixed.Format(time.RFC3339) {
			t.Fatalf("unexpected createdAt: %s", c.CreatedAt)
		}
	})

	t.Run("persist failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
		uc := newRegistryWithCustomers(t, snapshots, nil)

		snapshots.EXPECT().SaveCustomers(gomock.Any(), gomock.Any()).Return(errors.New("db"))
		if _, err := uc.Create(context.Background(), "Juan", "123", "", "", ""); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	initial := []entities.Customer{
		{ID: 1, Name: "Juan", Doc: "111", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: 2, Name: "Rosa", Doc: "222", CreatedAt: "2025-02-01T00:00:00Z"},
	}

	t.Run("keeps createdAt from stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
		uc := newRegistryWithCustomers(t, snapshots, initial)
		snapshots.EXPECT().SaveCustomers(gomock.Any(), gomock.Any()).Return(nil)

		updated, matched, err := uc.Update(context.Background(), entities.Customer{ID: 2, Name: "Rosa Flores", Doc: "222", CreatedAt: "ignored"})
		if err != nil || !matched {
			t.Fatalf("expected match, got matched=%v err=%v", matched, err)
		}
		if updated.CreatedAt != "2025-02-01T00:00:00Z" {
			t.Fatalf("createdAt must be immutable, got %s", updated.CreatedAt)
		}

		got := uc.List(context.Background())
		if got[1].Name != "Rosa Flores" || got[0] != initial[0] {
			t.Fatalf("unexpected list after update: %+v", got)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
		uc := newRegistryWithCustomers(t, snapshots, initial)

		_, matched, err := uc.Update(context.Background(), entities.Customer{ID: 99, Name: "X", Doc: "1"})
		if err != nil || matched {
			t.Fatalf("expected silent no-op, got matched=%v err=%v", matched, err)
		}
		if got := uc.List(context.Background()); !reflect.DeepEqual(got, initial) {
			t.Fatalf("store changed on no-op update: %+v", got)
		}
	})
}

func TestCustomerUseCase_AddThenRemoveRestoresList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
	initial := []entities.Customer{{ID: 1, Name: "Juan", Doc: "111", CreatedAt: "2025-01-01T00:00:00Z"}}
	uc := newRegistryWithCustomers(t, snapshots, initial)
	snapshots.EXPECT().SaveCustomers(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	created, err := uc.Create(context.Background(), "Rosa", "222", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Remove(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := uc.List(context.Background()); !reflect.DeepEqual(got, initial) {
		t.Fatalf("expected original list restored, got %+v", got)
	}
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	snapshots := mock_interfaces.NewMockISnapshotStore(ctrl)
	uc := newRegistryWithCustomers(t, snapshots, []entities.Customer{{ID: 7, Name: "Juan", Doc: "111"}})

	if c, found := uc.GetByID(context.Background(), 7); !found || c.Name != "Juan" {
		t.Fatalf("expected lookup hit, got found=%v customer=%+v", found, c)
	}
	if _, found := uc.GetByID(context.Background(), 8); found {
		t.Fatalf("expected lookup miss")
	}
}
