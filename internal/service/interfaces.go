package service

import (
	"context"

	"menubyte/internal/domain"
)

// Store is the persistence surface consumed by the catalog resolver, the item
// lifecycle manager and the subscription gate. Implementations bind either a
// plain connection or an open transaction; multi-step mutations always go
// through TxRunner so the whole sequence is all-or-nothing.
type Store interface {
	GetUser(id int64) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByMobileNumber(mobileNumber string) (*domain.User, error)
	InsertUser(u *domain.User) error
	UpdateUser(u *domain.User) error
	DeleteUser(id int64) (int64, error)

	GetBusiness(id int64) (*domain.Business, error)
	ListBusinessesByUser(userID int64) ([]domain.Business, error)
	InsertBusiness(b *domain.Business) error
	UpdateBusiness(b *domain.Business) error
	DeleteBusiness(id int64) (int64, error)

	GetMenu(id int64) (*domain.Menu, error)
	GetMenuByBusiness(businessID int64) (*domain.Menu, error)
	InsertMenu(m *domain.Menu) error

	GetCategory(id int64) (*domain.Category, error)
	FindCategoryByMenuAndDescription(menuID int64, description string) (*domain.Category, error)
	ListCategoriesByMenu(menuID int64) ([]domain.Category, error)
	InsertCategory(c *domain.Category) error
	UpdateCategory(c *domain.Category) error
	DeleteCategory(id int64) (int64, error)

	GetMasterCategory(id int64) (*domain.MasterCategory, error)
	FindMasterCategoryByDescription(description string) (*domain.MasterCategory, error)
	ListMasterCategories() ([]domain.MasterCategory, error)
	InsertMasterCategory(mc *domain.MasterCategory) error

	GetMasterItem(id int64) (*domain.MasterItem, error)
	ListMasterItems() ([]domain.MasterItem, error)
	InsertMasterItem(mi *domain.MasterItem) error
	UpdateMasterItem(mi *domain.MasterItem) error
	DeleteMasterItem(id int64) (int64, error)

	GetItem(id int64) (*domain.Item, error)
	ListItemsByMenu(menuID int64) ([]domain.Item, error)
	InsertItem(i *domain.Item) error
	UpdateItem(i *domain.Item) error
	DeleteItem(id int64) (int64, error)

	ListVariantsByItem(itemID int64) ([]domain.ItemVariant, error)
	InsertVariant(v *domain.ItemVariant) error
	DeleteVariantsByItem(itemID int64) (int64, error)

	GetSubscriptionByBusiness(businessID int64) (*domain.BusinessMaster, error)
	ListSubscriptionsByUser(userID int64) ([]domain.BusinessMaster, error)
	InsertSubscription(bm *domain.BusinessMaster) error
	UpdateSubscription(bm *domain.BusinessMaster) error
}

// TxRunner is the explicit unit of work. fn runs against a transaction-bound
// Store; an error rolls the whole unit back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(Store) error) error
}

// MenuCache holds assembled menus. A nil-tolerant collaborator: services skip
// it when unset and ignore its failures.
type MenuCache interface {
	MenuKey(businessID int64) string
	GetMenu(ctx context.Context, key string) (*domain.MenuView, error)
	SetMenu(ctx context.Context, key string, view *domain.MenuView) error
	Invalidate(ctx context.Context, key string) error
}

// CatalogPublisher emits catalog-change events for downstream consumers
// (analytics, search indexing). Best-effort, never part of a transaction.
type CatalogPublisher interface {
	PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error
}

type ItemServiceInterface interface {
	CreateItemForBusiness(ctx context.Context, businessID int64, spec domain.ItemCreationSpec) (*domain.Item, error)
	CreateBulkItems(ctx context.Context, businessID int64, specs []domain.ItemCreationSpec) ([]domain.Item, error)
	DeleteBulkItems(ctx context.Context, businessID int64, itemIDs []int64) error
	UpdateItem(ctx context.Context, itemID int64, spec domain.ItemUpdateSpec) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID int64) error
	GetItemByID(ctx context.Context, itemID int64) (*domain.Item, error)
	GetItemsForBusiness(ctx context.Context, businessID int64) ([]domain.Item, error)
}

type CatalogServiceInterface interface {
	ResolveOrCreateCategory(ctx context.Context, menuID int64, spec domain.CategorySpec) (*domain.Category, error)
	ListCategoriesForMenu(ctx context.Context, menuID int64) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, description string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

type UserServiceInterface interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type BusinessServiceInterface interface {
	CreateBusiness(ctx context.Context, userID int64, business *domain.Business) (*domain.Business, error)
	GetBusiness(ctx context.Context, id int64) (*domain.Business, error)
	ListBusinessesByUser(ctx context.Context, userID int64) ([]domain.Business, error)
	UpdateBusiness(ctx context.Context, id int64, business *domain.Business) (*domain.Business, error)
	DeleteBusiness(ctx context.Context, id int64) error
}

type MenuServiceInterface interface {
	GetMenuForUserBusiness(ctx context.Context, businessID, userID int64) (*domain.MenuView, error)
	MenuQRCode(ctx context.Context, businessID int64) ([]byte, error)
}

type SubscriptionServiceInterface interface {
	CheckBusinessCreationAllowed(ctx context.Context, userID int64) (bool, error)
	RegisterDefaultSubscription(ctx context.Context, businessID, userID int64) (*domain.BusinessMaster, error)
	ApplySubscriptionUpdate(ctx context.Context, businessID int64, req domain.SubscriptionUpdateRequest) (*domain.BusinessMaster, error)
	ListUserSubscriptions(ctx context.Context, userID int64) ([]domain.BusinessMaster, error)
}

type MasterCatalogServiceInterface interface {
	CreateMasterCategory(ctx context.Context, mc *domain.MasterCategory) (*domain.MasterCategory, error)
	ListMasterCategories(ctx context.Context) ([]domain.MasterCategory, error)
	CreateMasterItem(ctx context.Context, mi *domain.MasterItem) (*domain.MasterItem, error)
	ListMasterItems(ctx context.Context) ([]domain.MasterItem, error)
	UpdateMasterItem(ctx context.Context, id int64, mi *domain.MasterItem) (*domain.MasterItem, error)
	DeleteMasterItem(ctx context.Context, id int64) error
}
