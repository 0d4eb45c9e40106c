package usecase

import (
	"context"
	"sync"

	"resto_pos/internal/domain/entities"
	"resto_pos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// IBusinessConfigUseCase exposes the singleton business configuration.
// Set replaces the whole record; callers needing a partial change must
// read-modify-write.
type IBusinessConfigUseCase interface {
	Get(ctx context.Context) entities.BusinessInfo
	Set(ctx context.Context, info entities.BusinessInfo) error
}

type BusinessConfigUseCase struct {
	snapshots interfaces.ISnapshotStore

	mu   sync.Mutex
	info entities.BusinessInfo
}

var _ IBusinessConfigUseCase = (*BusinessConfigUseCase)(nil)

func NewBusinessConfigUseCase(ctx context.Context, snapshots interfaces.ISnapshotStore) (*BusinessConfigUseCase, error) {
	info, found, err := snapshots.LoadBusinessInfo(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		info = entities.DefaultBusinessInfo()
		logrus.Info("business config: seeding default record")
	}
	return &BusinessConfigUseCase{snapshots: snapshots, info: info}, nil
}

func (u *BusinessConfigUseCase) Get(_ context.Context) entities.BusinessInfo {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.info
}

func (u *BusinessConfigUseCase) Set(ctx context.Context, info entities.BusinessInfo) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.info = info
	return u.snapshots.SaveBusinessInfo(ctx, info)
}
