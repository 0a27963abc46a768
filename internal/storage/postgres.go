package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"menubyte/internal/domain"
	"menubyte/internal/service"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the same store code
// serves plain reads and transaction-bound units of work.
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type PostgresStore struct {
	DB *sql.DB
	q  querier
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db, q: db}
}

var _ service.Store = (*PostgresStore)(nil)
var _ service.TxRunner = (*PostgresStore)(nil)

// InTx runs fn against a transaction-bound store. Any error from fn rolls the
// whole unit of work back.
func (s *PostgresStore) InTx(ctx context.Context, fn func(service.Store) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&PostgresStore{DB: s.DB, q: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

// translateError maps pq unique violations onto the domain sentinel so
// services can react to lost races without importing driver details.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s: %w", pqErr.Constraint, domain.ErrUniqueViolation)
	}
	return err
}

func (s *PostgresStore) GetUser(id int64) (*domain.User, error) {
	var u domain.User
	err := s.q.QueryRow(`
		SELECT id, username, email, COALESCE(mobile_number, ''), created_at
		FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.MobileNumber, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) FindUserByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := s.q.QueryRow(`
		SELECT id, username, email, COALESCE(mobile_number, ''), created_at
		FROM users WHERE lower(email) = lower($1)`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.MobileNumber, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) FindUserByMobileNumber(mobileNumber string) (*domain.User, error) {
	var u domain.User
	err := s.q.QueryRow(`
		SELECT id, username, email, COALESCE(mobile_number, ''), created_at
		FROM users WHERE mobile_number = $1`, mobileNumber).
		Scan(&u.ID, &u.Username, &u.Email, &u.MobileNumber, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user with mobile %q: %w", mobileNumber, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) InsertUser(u *domain.User) error {
	err := s.q.QueryRow(`
		INSERT INTO users (username, email, mobile_number)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		u.Username, u.Email, u.MobileNumber).
		Scan(&u.ID, &u.CreatedAt)
	return translateError(err)
}

func (s *PostgresStore) UpdateUser(u *domain.User) error {
	err := s.q.QueryRow(`
		UPDATE users SET username = $1, email = $2, mobile_number = $3
		WHERE id = $4
		RETURNING created_at`,
		u.Username, u.Email, u.MobileNumber, u.ID).
		Scan(&u.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("user %d: %w", u.ID, domain.ErrNotFound)
	}
	return translateError(err)
}

func (s *PostgresStore) DeleteUser(id int64) (int64, error) {
	result, err := s.q.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) GetBusiness(id int64) (*domain.Business, error) {
	var b domain.Business
	err := s.q.QueryRow(`
		SELECT id, user_id, business_name, COALESCE(business_logo, ''), COALESCE(tagline, ''), business_type, created_at
		FROM businesses WHERE id = $1`, id).
		Scan(&b.ID, &b.UserID, &b.BusinessName, &b.BusinessLogo, &b.Tagline, &b.BusinessType, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("business %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *PostgresStore) ListBusinessesByUser(userID int64) ([]domain.Business, error) {
	rows, err := s.q.Query(`
		SELECT id, user_id, business_name, COALESCE(business_logo, ''), COALESCE(tagline, ''), business_type, created_at
		FROM businesses WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []domain.Business
	for rows.Next() {
		var b domain.Business
		if err := rows.Scan(&b.ID, &b.UserID, &b.BusinessName, &b.BusinessLogo, &b.Tagline, &b.BusinessType, &b.CreatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

func (s *PostgresStore) InsertBusiness(b *domain.Business) error {
	err := s.q.QueryRow(`
		INSERT INTO businesses (user_id, business_name, business_logo, tagline, business_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		b.UserID, b.BusinessName, b.BusinessLogo, b.Tagline, b.BusinessType).
		Scan(&b.ID, &b.CreatedAt)
	return translateError(err)
}

func (s *PostgresStore) UpdateBusiness(b *domain.Business) error {
	err := s.q.QueryRow(`
		UPDATE businesses SET business_name = $1, business_logo = $2, tagline = $3
		WHERE id = $4
		RETURNING user_id, business_type, created_at`,
		b.BusinessName, b.BusinessLogo, b.Tagline, b.ID).
		Scan(&b.UserID, &b.BusinessType, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("business %d: %w", b.ID, domain.ErrNotFound)
	}
	return err
}

func (s *PostgresStore) DeleteBusiness(id int64) (int64, error) {
	result, err := s.q.Exec(`DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) GetMenu(id int64) (*domain.Menu, error) {
	var m domain.Menu
	err := s.q.QueryRow(`
		SELECT id, business_id, menu_name, created_at FROM menus WHERE id = $1`, id).
		Scan(&m.ID, &m.BusinessID, &m.MenuName, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *PostgresStore) GetMenuByBusiness(businessID int64) (*domain.Menu, error) {
	var m domain.Menu
	err := s.q.QueryRow(`
		SELECT id, business_id, menu_name, created_at FROM menus WHERE business_id = $1`, businessID).
		Scan(&m.ID, &m.BusinessID, &m.MenuName, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu for business %d: %w", businessID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InsertMenu uses ON CONFLICT DO NOTHING so a concurrent lazy-provisioning
// call never aborts the surrounding transaction; the loser sees
// ErrUniqueViolation and re-reads.
func (s *PostgresStore) InsertMenu(m *domain.Menu) error {
	err := s.q.QueryRow(`
		INSERT INTO menus (business_id, menu_name)
		VALUES ($1, $2)
		ON CONFLICT (business_id) DO NOTHING
		RETURNING id, created_at`,
		m.BusinessID, m.MenuName).
		Scan(&m.ID, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("menu for business %d: %w", m.BusinessID, domain.ErrUniqueViolation)
	}
	return err
}

func (s *PostgresStore) GetCategory(id int64) (*domain.Category, error) {
	var c domain.Category
	err := s.q.QueryRow(`
		SELECT id, menu_id, master_category_id, category_description, created_at
		FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.MenuID, &c.MasterCategoryID, &c.CategoryDescription, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) FindCategoryByMenuAndDescription(menuID int64, description string) (*domain.Category, error) {
	var c domain.Category
	err := s.q.QueryRow(`
		SELECT id, menu_id, master_category_id, category_description, created_at
		FROM categories WHERE menu_id = $1 AND lower(category_description) = $2`,
		menuID, domain.CanonicalDescription(description)).
		Scan(&c.ID, &c.MenuID, &c.MasterCategoryID, &c.CategoryDescription, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %q on menu %d: %w", description, menuID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) ListCategoriesByMenu(menuID int64) ([]domain.Category, error) {
	rows, err := s.q.Query(`
		SELECT id, menu_id, master_category_id, category_description, created_at
		FROM categories WHERE menu_id = $1 ORDER BY id`, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.MenuID, &c.MasterCategoryID, &c.CategoryDescription, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// InsertCategory tolerates the create-category race: a concurrent winner makes
// the insert a no-op and the caller gets ErrUniqueViolation to fall back on a
// lookup, all without poisoning the open transaction.
func (s *PostgresStore) InsertCategory(c *domain.Category) error {
	err := s.q.QueryRow(`
		INSERT INTO categories (menu_id, master_category_id, category_description)
		VALUES ($1, $2, $3)
		ON CONFLICT (menu_id, lower(category_description)) DO NOTHING
		RETURNING id, created_at`,
		c.MenuID, c.MasterCategoryID, c.CategoryDescription).
		Scan(&c.ID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("category %q on menu %d: %w", c.CategoryDescription, c.MenuID, domain.ErrUniqueViolation)
	}
	return err
}

func (s *PostgresStore) UpdateCategory(c *domain.Category) error {
	_, err := s.q.Exec(`
		UPDATE categories SET category_description = $1 WHERE id = $2`,
		c.CategoryDescription, c.ID)
	return translateError(err)
}

func (s *PostgresStore) DeleteCategory(id int64) (int64, error) {
	result, err := s.q.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) GetMasterCategory(id int64) (*domain.MasterCategory, error) {
	var mc domain.MasterCategory
	err := s.q.QueryRow(`
		SELECT id, category_description, COALESCE(business_type, ''), created_at
		FROM master_categories WHERE id = $1`, id).
		Scan(&mc.ID, &mc.CategoryDescription, &mc.BusinessType, &mc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("master category %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &mc, nil
}

func (s *PostgresStore) FindMasterCategoryByDescription(description string) (*domain.MasterCategory, error) {
	var mc domain.MasterCategory
	err := s.q.QueryRow(`
		SELECT id, category_description, COALESCE(business_type, ''), created_at
		FROM master_categories WHERE lower(category_description) = $1`,
		domain.CanonicalDescription(description)).
		Scan(&mc.ID, &mc.CategoryDescription, &mc.BusinessType, &mc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("master category %q: %w", description, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &mc, nil
}

func (s *PostgresStore) ListMasterCategories() ([]domain.MasterCategory, error) {
	rows, err := s.q.Query(`
		SELECT id, category_description, COALESCE(business_type, ''), created_at
		FROM master_categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var masterCategories []domain.MasterCategory
	for rows.Next() {
		var mc domain.MasterCategory
		if err := rows.Scan(&mc.ID, &mc.CategoryDescription, &mc.BusinessType, &mc.CreatedAt); err != nil {
			return nil, err
		}
		masterCategories = append(masterCategories, mc)
	}
	return masterCategories, rows.Err()
}

func (s *PostgresStore) InsertMasterCategory(mc *domain.MasterCategory) error {
	err := s.q.QueryRow(`
		INSERT INTO master_categories (category_description, business_type)
		VALUES ($1, $2)
		ON CONFLICT (lower(category_description)) DO NOTHING
		RETURNING id, created_at`,
		mc.CategoryDescription, mc.BusinessType).
		Scan(&mc.ID, &mc.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("master category %q: %w", mc.CategoryDescription, domain.ErrUniqueViolation)
	}
	return err
}

func (s *PostgresStore) GetMasterItem(id int64) (*domain.MasterItem, error) {
	var mi domain.MasterItem
	err := s.q.QueryRow(`
		SELECT id, master_category_id, item_name, COALESCE(item_description, ''), COALESCE(item_image, ''), created_at
		FROM master_items WHERE id = $1`, id).
		Scan(&mi.ID, &mi.MasterCategoryID, &mi.ItemName, &mi.ItemDescription, &mi.ItemImage, &mi.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("master item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &mi, nil
}

func (s *PostgresStore) ListMasterItems() ([]domain.MasterItem, error) {
	rows, err := s.q.Query(`
		SELECT id, master_category_id, item_name, COALESCE(item_description, ''), COALESCE(item_image, ''), created_at
		FROM master_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var masterItems []domain.MasterItem
	for rows.Next() {
		var mi domain.MasterItem
		if err := rows.Scan(&mi.ID, &mi.MasterCategoryID, &mi.ItemName, &mi.ItemDescription, &mi.ItemImage, &mi.CreatedAt); err != nil {
			return nil, err
		}
		masterItems = append(masterItems, mi)
	}
	return masterItems, rows.Err()
}

func (s *PostgresStore) InsertMasterItem(mi *domain.MasterItem) error {
	err := s.q.QueryRow(`
		INSERT INTO master_items (master_category_id, item_name, item_description, item_image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		mi.MasterCategoryID, mi.ItemName, mi.ItemDescription, mi.ItemImage).
		Scan(&mi.ID, &mi.CreatedAt)
	return translateError(err)
}

func (s *PostgresStore) UpdateMasterItem(mi *domain.MasterItem) error {
	err := s.q.QueryRow(`
		UPDATE master_items SET master_category_id = $1, item_name = $2, item_description = $3, item_image = $4
		WHERE id = $5
		RETURNING created_at`,
		mi.MasterCategoryID, mi.ItemName, mi.ItemDescription, mi.ItemImage, mi.ID).
		Scan(&mi.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("master item %d: %w", mi.ID, domain.ErrNotFound)
	}
	return err
}

func (s *PostgresStore) DeleteMasterItem(id int64) (int64, error) {
	result, err := s.q.Exec(`DELETE FROM master_items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) GetItem(id int64) (*domain.Item, error) {
	var i domain.Item
	err := s.q.QueryRow(`
		SELECT id, menu_id, category_id, master_item_id, item_name, COALESCE(item_description, ''),
		       item_discount, COALESCE(item_image, ''), veg_or_non_veg, item_availability,
		       bestseller, deal_of_day, created_at, updated_at
		FROM items WHERE id = $1`, id).
		Scan(&i.ID, &i.MenuID, &i.CategoryID, &i.MasterItemID, &i.ItemName, &i.ItemDescription,
			&i.ItemDiscount, &i.ItemImage, &i.VegOrNonVeg, &i.ItemAvailability,
			&i.Bestseller, &i.DealOfDay, &i.CreatedAt, &i.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *PostgresStore) ListItemsByMenu(menuID int64) ([]domain.Item, error) {
	rows, err := s.q.Query(`
		SELECT id, menu_id, category_id, master_item_id, item_name, COALESCE(item_description, ''),
		       item_discount, COALESCE(item_image, ''), veg_or_non_veg, item_availability,
		       bestseller, deal_of_day, created_at, updated_at
		FROM items WHERE menu_id = $1 ORDER BY id`, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		if err := rows.Scan(&i.ID, &i.MenuID, &i.CategoryID, &i.MasterItemID, &i.ItemName, &i.ItemDescription,
			&i.ItemDiscount, &i.ItemImage, &i.VegOrNonVeg, &i.ItemAvailability,
			&i.Bestseller, &i.DealOfDay, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (s *PostgresStore) InsertItem(i *domain.Item) error {
	err := s.q.QueryRow(`
		INSERT INTO items (menu_id, category_id, master_item_id, item_name, item_description,
		                   item_discount, item_image, veg_or_non_veg, item_availability, bestseller, deal_of_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		i.MenuID, i.CategoryID, i.MasterItemID, i.ItemName, i.ItemDescription,
		i.ItemDiscount, i.ItemImage, i.VegOrNonVeg, i.ItemAvailability, i.Bestseller, i.DealOfDay).
		Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	return translateError(err)
}

func (s *PostgresStore) UpdateItem(i *domain.Item) error {
	err := s.q.QueryRow(`
		UPDATE items SET category_id = $1, item_name = $2, item_description = $3, item_discount = $4,
		                 item_image = $5, veg_or_non_veg = $6, item_availability = $7,
		                 bestseller = $8, deal_of_day = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at`,
		i.CategoryID, i.ItemName, i.ItemDescription, i.ItemDiscount,
		i.ItemImage, i.VegOrNonVeg, i.ItemAvailability, i.Bestseller, i.DealOfDay, i.ID).
		Scan(&i.UpdatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("item %d: %w", i.ID, domain.ErrNotFound)
	}
	return translateError(err)
}

func (s *PostgresStore) DeleteItem(id int64) (int64, error) {
	result, err := s.q.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) ListVariantsByItem(itemID int64) ([]domain.ItemVariant, error) {
	rows, err := s.q.Query(`
		SELECT id, item_id, variant_name, price FROM item_variants WHERE item_id = $1 ORDER BY id`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []domain.ItemVariant
	for rows.Next() {
		var v domain.ItemVariant
		if err := rows.Scan(&v.ID, &v.ItemID, &v.VariantName, &v.Price); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (s *PostgresStore) InsertVariant(v *domain.ItemVariant) error {
	err := s.q.QueryRow(`
		INSERT INTO item_variants (item_id, variant_name, price)
		VALUES ($1, $2, $3)
		RETURNING id`,
		v.ItemID, v.VariantName, v.Price).
		Scan(&v.ID)
	return translateError(err)
}

func (s *PostgresStore) DeleteVariantsByItem(itemID int64) (int64, error) {
	result, err := s.q.Exec(`DELETE FROM item_variants WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) GetSubscriptionByBusiness(businessID int64) (*domain.BusinessMaster, error) {
	var bm domain.BusinessMaster
	err := s.q.QueryRow(`
		SELECT id, user_id, business_id, subscription_type, subscription_status, register_date, end_date, amount_paid
		FROM business_masters WHERE business_id = $1`, businessID).
		Scan(&bm.ID, &bm.UserID, &bm.BusinessID, &bm.SubscriptionType, &bm.SubscriptionStatus,
			&bm.RegisterDate, &bm.EndDate, &bm.AmountPaid)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("subscription for business %d: %w", businessID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &bm, nil
}

func (s *PostgresStore) ListSubscriptionsByUser(userID int64) ([]domain.BusinessMaster, error) {
	rows, err := s.q.Query(`
		SELECT id, user_id, business_id, subscription_type, subscription_status, register_date, end_date, amount_paid
		FROM business_masters WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscriptions []domain.BusinessMaster
	for rows.Next() {
		var bm domain.BusinessMaster
		if err := rows.Scan(&bm.ID, &bm.UserID, &bm.BusinessID, &bm.SubscriptionType, &bm.SubscriptionStatus,
			&bm.RegisterDate, &bm.EndDate, &bm.AmountPaid); err != nil {
			return nil, err
		}
		subscriptions = append(subscriptions, bm)
	}
	return subscriptions, rows.Err()
}

// InsertSubscription relies on the partial unique index on
// (user_id) WHERE subscription_type = 'TRIAL': two concurrent trial
// registrations for one user cannot both commit.
func (s *PostgresStore) InsertSubscription(bm *domain.BusinessMaster) error {
	err := s.q.QueryRow(`
		INSERT INTO business_masters (user_id, business_id, subscription_type, subscription_status, register_date, end_date, amount_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		bm.UserID, bm.BusinessID, bm.SubscriptionType, bm.SubscriptionStatus, bm.RegisterDate, bm.EndDate, bm.AmountPaid).
		Scan(&bm.ID)
	return translateError(err)
}

func (s *PostgresStore) UpdateSubscription(bm *domain.BusinessMaster) error {
	err := s.q.QueryRow(`
		UPDATE business_masters SET subscription_type = $1, subscription_status = $2, end_date = $3, amount_paid = $4
		WHERE id = $5
		RETURNING register_date`,
		bm.SubscriptionType, bm.SubscriptionStatus, bm.EndDate, bm.AmountPaid, bm.ID).
		Scan(&bm.RegisterDate)
	if err == sql.ErrNoRows {
		return fmt.Errorf("subscription %d: %w", bm.ID, domain.ErrNotFound)
	}
	return err
}
