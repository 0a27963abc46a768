package mocks

import (
	"context"

	"menubyte/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ItemService is a testify mock for service.ItemServiceInterface.
type ItemService struct {
	mock.Mock
}

func (m *ItemService) CreateItemForBusiness(ctx context.Context, businessID int64, spec domain.ItemCreationSpec) (*domain.Item, error) {
	args := m.Called(ctx, businessID, spec)
	var r0 *domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Item)
	}
	return r0, args.Error(1)
}

func (m *ItemService) CreateBulkItems(ctx context.Context, businessID int64, specs []domain.ItemCreationSpec) ([]domain.Item, error) {
	args := m.Called(ctx, businessID, specs)
	var r0 []domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Item)
	}
	return r0, args.Error(1)
}

func (m *ItemService) DeleteBulkItems(ctx context.Context, businessID int64, itemIDs []int64) error {
	return m.Called(ctx, businessID, itemIDs).Error(0)
}

func (m *ItemService) UpdateItem(ctx context.Context, itemID int64, spec domain.ItemUpdateSpec) (*domain.Item, error) {
	args := m.Called(ctx, itemID, spec)
	var r0 *domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Item)
	}
	return r0, args.Error(1)
}

func (m *ItemService) DeleteItem(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *ItemService) GetItemByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	var r0 *domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Item)
	}
	return r0, args.Error(1)
}

func (m *ItemService) GetItemsForBusiness(ctx context.Context, businessID int64) ([]domain.Item, error) {
	args := m.Called(ctx, businessID)
	var r0 []domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Item)
	}
	return r0, args.Error(1)
}

// UserService is a testify mock for service.UserServiceInterface.
type UserService struct {
	mock.Mock
}

func (m *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, id, user)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// BusinessService is a testify mock for service.BusinessServiceInterface.
type BusinessService struct {
	mock.Mock
}

func (m *BusinessService) CreateBusiness(ctx context.Context, userID int64, business *domain.Business) (*domain.Business, error) {
	args := m.Called(ctx, userID, business)
	var r0 *domain.Business
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Business)
	}
	return r0, args.Error(1)
}

func (m *BusinessService) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	args := m.Called(ctx, id)
	var r0 *domain.Business
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Business)
	}
	return r0, args.Error(1)
}

func (m *BusinessService) ListBusinessesByUser(ctx context.Context, userID int64) ([]domain.Business, error) {
	args := m.Called(ctx, userID)
	var r0 []domain.Business
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Business)
	}
	return r0, args.Error(1)
}

func (m *BusinessService) UpdateBusiness(ctx context.Context, id int64, business *domain.Business) (*domain.Business, error) {
	args := m.Called(ctx, id, business)
	var r0 *domain.Business
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Business)
	}
	return r0, args.Error(1)
}

func (m *BusinessService) DeleteBusiness(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MenuService is a testify mock for service.MenuServiceInterface.
type MenuService struct {
	mock.Mock
}

func (m *MenuService) GetMenuForUserBusiness(ctx context.Context, businessID, userID int64) (*domain.MenuView, error) {
	args := m.Called(ctx, businessID, userID)
	var r0 *domain.MenuView
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuView)
	}
	return r0, args.Error(1)
}

func (m *MenuService) MenuQRCode(ctx context.Context, businessID int64) ([]byte, error) {
	args := m.Called(ctx, businessID)
	var r0 []byte
	if args.Get(0) != nil {
		r0 = args.Get(0).([]byte)
	}
	return r0, args.Error(1)
}

// CatalogService is a testify mock for service.CatalogServiceInterface.
type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ResolveOrCreateCategory(ctx context.Context, menuID int64, spec domain.CategorySpec) (*domain.Category, error) {
	args := m.Called(ctx, menuID, spec)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CatalogService) ListCategoriesForMenu(ctx context.Context, menuID int64) ([]domain.Category, error) {
	args := m.Called(ctx, menuID)
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CatalogService) UpdateCategory(ctx context.Context, categoryID int64, description string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, description)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *CatalogService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return m.Called(ctx, categoryID).Error(0)
}

// MasterCatalogService is a testify mock for service.MasterCatalogServiceInterface.
type MasterCatalogService struct {
	mock.Mock
}

func (m *MasterCatalogService) CreateMasterCategory(ctx context.Context, mc *domain.MasterCategory) (*domain.MasterCategory, error) {
	args := m.Called(ctx, mc)
	var r0 *domain.MasterCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MasterCategory)
	}
	return r0, args.Error(1)
}

func (m *MasterCatalogService) ListMasterCategories(ctx context.Context) ([]domain.MasterCategory, error) {
	args := m.Called(ctx)
	var r0 []domain.MasterCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MasterCategory)
	}
	return r0, args.Error(1)
}

func (m *MasterCatalogService) CreateMasterItem(ctx context.Context, mi *domain.MasterItem) (*domain.MasterItem, error) {
	args := m.Called(ctx, mi)
	var r0 *domain.MasterItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MasterItem)
	}
	return r0, args.Error(1)
}

func (m *MasterCatalogService) ListMasterItems(ctx context.Context) ([]domain.MasterItem, error) {
	args := m.Called(ctx)
	var r0 []domain.MasterItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MasterItem)
	}
	return r0, args.Error(1)
}

func (m *MasterCatalogService) UpdateMasterItem(ctx context.Context, id int64, mi *domain.MasterItem) (*domain.MasterItem, error) {
	args := m.Called(ctx, id, mi)
	var r0 *domain.MasterItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MasterItem)
	}
	return r0, args.Error(1)
}

func (m *MasterCatalogService) DeleteMasterItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// SubscriptionService is a testify mock for service.SubscriptionServiceInterface.
type SubscriptionService struct {
	mock.Mock
}

func (m *SubscriptionService) CheckBusinessCreationAllowed(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *SubscriptionService) RegisterDefaultSubscription(ctx context.Context, businessID, userID int64) (*domain.BusinessMaster, error) {
	args := m.Called(ctx, businessID, userID)
	var r0 *domain.BusinessMaster
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.BusinessMaster)
	}
	return r0, args.Error(1)
}

func (m *SubscriptionService) ApplySubscriptionUpdate(ctx context.Context, businessID int64, req domain.SubscriptionUpdateRequest) (*domain.BusinessMaster, error) {
	args := m.Called(ctx, businessID, req)
	var r0 *domain.BusinessMaster
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.BusinessMaster)
	}
	return r0, args.Error(1)
}

func (m *SubscriptionService) ListUserSubscriptions(ctx context.Context, userID int64) ([]domain.BusinessMaster, error) {
	args := m.Called(ctx, userID)
	var r0 []domain.BusinessMaster
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.BusinessMaster)
	}
	return r0, args.Error(1)
}
