package storage

import "fmt"

// EnsureSchema bootstraps the catalog tables. The constraints here back the
// invariants the services depend on: category descriptions unique per menu,
// master categories globally unique, variant names unique per item, cascading
// deletes down the ownership chain, and at most one TRIAL subscription per user.
func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			mobile_number TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_mobile_number_idx
			ON users (mobile_number) WHERE mobile_number <> ''`,
		`CREATE TABLE IF NOT EXISTS businesses (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			business_name TEXT NOT NULL,
			business_logo TEXT NOT NULL DEFAULT '',
			tagline TEXT NOT NULL DEFAULT '',
			business_type TEXT NOT NULL DEFAULT 'RESTAURANT',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS menus (
			id BIGSERIAL PRIMARY KEY,
			business_id BIGINT NOT NULL UNIQUE REFERENCES businesses(id) ON DELETE CASCADE,
			menu_name TEXT NOT NULL DEFAULT 'Default',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS master_categories (
			id BIGSERIAL PRIMARY KEY,
			category_description TEXT NOT NULL,
			business_type TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS master_categories_description_idx
			ON master_categories (lower(category_description))`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			menu_id BIGINT NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			master_category_id BIGINT NOT NULL REFERENCES master_categories(id),
			category_description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS categories_menu_description_idx
			ON categories (menu_id, lower(category_description))`,
		`CREATE TABLE IF NOT EXISTS master_items (
			id BIGSERIAL PRIMARY KEY,
			master_category_id BIGINT REFERENCES master_categories(id) ON DELETE CASCADE,
			item_name TEXT NOT NULL,
			item_description TEXT NOT NULL DEFAULT '',
			item_image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id BIGSERIAL PRIMARY KEY,
			menu_id BIGINT NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			master_item_id BIGINT REFERENCES master_items(id) ON DELETE SET NULL,
			item_name TEXT NOT NULL,
			item_description TEXT NOT NULL DEFAULT '',
			item_discount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (item_discount >= 0),
			item_image TEXT NOT NULL DEFAULT '',
			veg_or_non_veg TEXT NOT NULL DEFAULT 'VEG',
			item_availability BOOLEAN NOT NULL DEFAULT TRUE,
			bestseller BOOLEAN NOT NULL DEFAULT FALSE,
			deal_of_day BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS item_variants (
			id BIGSERIAL PRIMARY KEY,
			item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
			variant_name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			UNIQUE (item_id, variant_name)
		)`,
		`CREATE TABLE IF NOT EXISTS business_masters (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			business_id BIGINT NOT NULL UNIQUE REFERENCES businesses(id) ON DELETE CASCADE,
			subscription_type TEXT NOT NULL,
			subscription_status TEXT NOT NULL,
			register_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS business_masters_trial_user_idx
			ON business_masters (user_id) WHERE subscription_type = 'TRIAL'`,
	}

	for _, stmt := range statements {
		if _, err := s.q.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
