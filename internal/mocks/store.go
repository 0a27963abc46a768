package mocks

import (
	"menubyte/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Store is a testify mock for service.Store.
type Store struct {
	mock.Mock
}

func (m *Store) GetUser(id int64) (*domain.User, error) {
	args := m.Called(id)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *Store) FindUserByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *Store) FindUserByMobileNumber(mobileNumber string) (*domain.User, error) {
	args := m.Called(mobileNumber)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *Store) UpdateUser(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *Store) DeleteUser(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) GetBusiness(id int64) (*domain.Business, error) {
	args := m.Called(id)
	var r0 *domain.Business
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Business)
	}
	return r0, args.Error(1)
}

func (m *Store) ListBusinessesByUser(userID int64) ([]domain.Business, error) {
	args := m.Called(userID)
	var r0 []domain.Business
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Business)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertBusiness(b *domain.Business) error {
	return m.Called(b).Error(0)
}

func (m *Store) UpdateBusiness(b *domain.Business) error {
	return m.Called(b).Error(0)
}

func (m *Store) DeleteBusiness(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) GetMenu(id int64) (*domain.Menu, error) {
	args := m.Called(id)
	var r0 *domain.Menu
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Menu)
	}
	return r0, args.Error(1)
}

func (m *Store) GetMenuByBusiness(businessID int64) (*domain.Menu, error) {
	args := m.Called(businessID)
	var r0 *domain.Menu
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Menu)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertMenu(menu *domain.Menu) error {
	return m.Called(menu).Error(0)
}

func (m *Store) GetCategory(id int64) (*domain.Category, error) {
	args := m.Called(id)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *Store) FindCategoryByMenuAndDescription(menuID int64, description string) (*domain.Category, error) {
	args := m.Called(menuID, description)
	var r0 *domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Category)
	}
	return r0, args.Error(1)
}

func (m *Store) ListCategoriesByMenu(menuID int64) ([]domain.Category, error) {
	args := m.Called(menuID)
	var r0 []domain.Category
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Category)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *Store) UpdateCategory(c *domain.Category) error {
	return m.Called(c).Error(0)
}

func (m *Store) DeleteCategory(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) GetMasterCategory(id int64) (*domain.MasterCategory, error) {
	args := m.Called(id)
	var r0 *domain.MasterCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MasterCategory)
	}
	return r0, args.Error(1)
}

func (m *Store) FindMasterCategoryByDescription(description string) (*domain.MasterCategory, error) {
	args := m.Called(description)
	var r0 *domain.MasterCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MasterCategory)
	}
	return r0, args.Error(1)
}

func (m *Store) ListMasterCategories() ([]domain.MasterCategory, error) {
	args := m.Called()
	var r0 []domain.MasterCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MasterCategory)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertMasterCategory(mc *domain.MasterCategory) error {
	return m.Called(mc).Error(0)
}

func (m *Store) GetMasterItem(id int64) (*domain.MasterItem, error) {
	args := m.Called(id)
	var r0 *domain.MasterItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MasterItem)
	}
	return r0, args.Error(1)
}

func (m *Store) ListMasterItems() ([]domain.MasterItem, error) {
	args := m.Called()
	var r0 []domain.MasterItem
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.MasterItem)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertMasterItem(mi *domain.MasterItem) error {
	return m.Called(mi).Error(0)
}

func (m *Store) UpdateMasterItem(mi *domain.MasterItem) error {
	return m.Called(mi).Error(0)
}

func (m *Store) DeleteMasterItem(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) GetItem(id int64) (*domain.Item, error) {
	args := m.Called(id)
	var r0 *domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Item)
	}
	return r0, args.Error(1)
}

func (m *Store) ListItemsByMenu(menuID int64) ([]domain.Item, error) {
	args := m.Called(menuID)
	var r0 []domain.Item
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Item)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertItem(i *domain.Item) error {
	return m.Called(i).Error(0)
}

func (m *Store) UpdateItem(i *domain.Item) error {
	return m.Called(i).Error(0)
}

func (m *Store) DeleteItem(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) ListVariantsByItem(itemID int64) ([]domain.ItemVariant, error) {
	args := m.Called(itemID)
	var r0 []domain.ItemVariant
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.ItemVariant)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertVariant(v *domain.ItemVariant) error {
	return m.Called(v).Error(0)
}

func (m *Store) DeleteVariantsByItem(itemID int64) (int64, error) {
	args := m.Called(itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) GetSubscriptionByBusiness(businessID int64) (*domain.BusinessMaster, error) {
	args := m.Called(businessID)
	var r0 *domain.BusinessMaster
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.BusinessMaster)
	}
	return r0, args.Error(1)
}

func (m *Store) ListSubscriptionsByUser(userID int64) ([]domain.BusinessMaster, error) {
	args := m.Called(userID)
	var r0 []domain.BusinessMaster
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.BusinessMaster)
	}
	return r0, args.Error(1)
}

func (m *Store) InsertSubscription(bm *domain.BusinessMaster) error {
	return m.Called(bm).Error(0)
}

func (m *Store) UpdateSubscription(bm *domain.BusinessMaster) error {
	return m.Called(bm).Error(0)
}
