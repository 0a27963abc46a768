package mocks

import (
	"context"

	"menubyte/internal/domain"
	"menubyte/internal/service"

	"github.com/stretchr/testify/mock"
)

// PassthroughTx runs the unit-of-work function directly against the wrapped
// store, so service tests exercise the same code path without a database.
type PassthroughTx struct {
	Store service.Store
}

func (t *PassthroughTx) InTx(ctx context.Context, fn func(service.Store) error) error {
	return fn(t.Store)
}

// MenuCache is a testify mock for service.MenuCache.
type MenuCache struct {
	mock.Mock
}

func (m *MenuCache) MenuKey(businessID int64) string {
	return m.Called(businessID).String(0)
}

func (m *MenuCache) GetMenu(ctx context.Context, key string) (*domain.MenuView, error) {
	args := m.Called(ctx, key)
	var r0 *domain.MenuView
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuView)
	}
	return r0, args.Error(1)
}

func (m *MenuCache) SetMenu(ctx context.Context, key string, view *domain.MenuView) error {
	return m.Called(ctx, key, view).Error(0)
}

func (m *MenuCache) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// CatalogPublisher is a testify mock for service.CatalogPublisher.
type CatalogPublisher struct {
	mock.Mock
}

func (m *CatalogPublisher) PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error {
	return m.Called(ctx, event).Error(0)
}

// QRGenerator is a testify mock for service.QRGenerator.
type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(businessID int64) ([]byte, error) {
	args := m.Called(businessID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}
