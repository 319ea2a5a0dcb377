package migrations

func init() {
	Register(Migration{
		Timestamp:   "20250901-000000",
		Description: "initial schema: categories, products, click events, site settings",
		Up: []string{
			`CREATE TABLE IF NOT EXISTS categories (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				slug TEXT NOT NULL UNIQUE,
				sort_order INTEGER NOT NULL DEFAULT 0,
				parent_id TEXT REFERENCES categories(id),
				created_at TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS products (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				slug TEXT NOT NULL UNIQUE,
				description TEXT NOT NULL DEFAULT '',
				product_type TEXT NOT NULL DEFAULT 'software',
				category_id TEXT REFERENCES categories(id),
				original_price REAL NOT NULL DEFAULT 0,
				discounted_price REAL NOT NULL DEFAULT 0,
				purchase_price REAL NOT NULL DEFAULT 0,
				revenue_type TEXT NOT NULL DEFAULT 'free',
				affiliate_url TEXT NOT NULL DEFAULT '',
				is_deleted INTEGER NOT NULL DEFAULT 0,
				deleted_at TEXT,
				created_at TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				CHECK ((is_deleted = 0 AND deleted_at IS NULL) OR (is_deleted = 1 AND deleted_at IS NOT NULL))
			)`,
			`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
			`CREATE INDEX IF NOT EXISTS idx_products_trash ON products(is_deleted, deleted_at)`,
			`CREATE TABLE IF NOT EXISTS click_events (
				id TEXT PRIMARY KEY,
				product_id TEXT NOT NULL,
				product_name TEXT NOT NULL DEFAULT '',
				click_type TEXT NOT NULL,
				created_at TEXT NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_click_events_created ON click_events(created_at)`,
			`CREATE INDEX IF NOT EXISTS idx_click_events_product ON click_events(product_id)`,
			`CREATE TABLE IF NOT EXISTS site_settings (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at TEXT NOT NULL
			)`,
		},
	})
}
