package tests

import (
	"context"
	"testing"

	"menubyte/internal/domain"
	"menubyte/internal/mocks"
	"menubyte/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMasterCatalogService_CreateMasterCategory_Dedupes(t *testing.T) {
	mockStore := new(mocks.Store)
	existing := &domain.MasterCategory{ID: 5, CategoryDescription: "Starters"}

	mockStore.On("FindMasterCategoryByDescription", "Starters").Return(existing, nil).Once()
	svc := service.NewMasterCatalogService(mockStore, &mocks.PassthroughTx{Store: mockStore})

	created, err := svc.CreateMasterCategory(context.Background(), &domain.MasterCategory{
		CategoryDescription: "  Starters ",
	})

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, created.ID)
	mockStore.AssertNotCalled(t, "InsertMasterCategory", mock.Anything)
	mockStore.AssertExpectations(t)
}

func TestMasterCatalogService_CreateMasterItem(t *testing.T) {
	categoryID := int64(5)

	tests := []struct {
		name         string
		item         *domain.MasterItem
		prepareMocks func(*mocks.Store)
		wantErr      error
	}{
		{
			name: "valid item under a category",
			item: &domain.MasterItem{MasterCategoryID: &categoryID, ItemName: "Masala Chai"},
			prepareMocks: func(m *mocks.Store) {
				m.On("GetMasterCategory", int64(5)).
					Return(&domain.MasterCategory{ID: 5}, nil).Once()
				m.On("InsertMasterItem", mock.AnythingOfType("*domain.MasterItem")).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.MasterItem).ID = 50
					}).Return(nil).Once()
			},
		},
		{
			name:         "blank name",
			item:         &domain.MasterItem{ItemName: "  "},
			prepareMocks: func(m *mocks.Store) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name: "unknown category",
			item: &domain.MasterItem{MasterCategoryID: &categoryID, ItemName: "Masala Chai"},
			prepareMocks: func(m *mocks.Store) {
				m.On("GetMasterCategory", int64(5)).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := new(mocks.Store)
			testCase.prepareMocks(mockStore)
			svc := service.NewMasterCatalogService(mockStore, &mocks.PassthroughTx{Store: mockStore})

			created, err := svc.CreateMasterItem(context.Background(), testCase.item)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(50), created.ID)
			}
			mockStore.AssertExpectations(t)
		})
	}
}

func TestMasterCatalogService_DeleteMasterItem(t *testing.T) {
	mockStore := new(mocks.Store)
	mockStore.On("GetMasterItem", int64(50)).Return(&domain.MasterItem{ID: 50}, nil).Once()
	mockStore.On("DeleteMasterItem", int64(50)).Return(int64(1), nil).Once()
	svc := service.NewMasterCatalogService(mockStore, &mocks.PassthroughTx{Store: mockStore})

	err := svc.DeleteMasterItem(context.Background(), 50)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}
