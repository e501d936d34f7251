package database

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (table_id, status, total)
		VALUES ($1, $2, 0)
		RETURNING id, created_at`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, item_id, quantity, price)
		VALUES ($1, $2, $3, $4)`

	UpdateOrderTotalSQL = `
		UPDATE orders SET total = $1 WHERE id = $2`

	SelectOrderStatusForUpdateSQL = `
		SELECT status FROM orders WHERE id = $1 FOR UPDATE`

	UpdateOrderStatusSQL = `
		UPDATE orders SET status = $1 WHERE id = $2`

	OrderViewSQL = `
		SELECT o.id, o.table_id, o.status, o.total, o.created_at,
		       t.table_number, COALESCE(l.name, ''), COALESCE(l.address, '')
		FROM orders o
		JOIN cafe_tables t ON o.table_id = t.id
		LEFT JOIN locations l ON t.location_id = l.id
		WHERE o.id = $1`

	OpenOrdersSQL = `
		SELECT o.id, o.table_id, o.status, o.total, o.created_at,
		       t.table_number, COALESCE(l.name, ''), COALESCE(l.address, '')
		FROM orders o
		JOIN cafe_tables t ON o.table_id = t.id
		LEFT JOIN locations l ON t.location_id = l.id
		WHERE o.status NOT IN ('paid', 'cancelled')
		ORDER BY o.created_at DESC`

	OrdersByTableSQL = `
		SELECT o.id, o.table_id, o.status, o.total, o.created_at,
		       t.table_number, COALESCE(l.name, ''), COALESCE(l.address, '')
		FROM orders o
		JOIN cafe_tables t ON o.table_id = t.id
		LEFT JOIN locations l ON t.location_id = l.id
		WHERE o.table_id = $1
		ORDER BY o.created_at DESC`

	OrderItemsSQL = `
		SELECT oi.id, oi.order_id, oi.item_id, COALESCE(i.name, ''), oi.quantity, oi.price
		FROM order_items oi
		LEFT JOIN items i ON oi.item_id = i.id
		WHERE oi.order_id = $1
		ORDER BY i.name`
)

// Table queries
const (
	TableExistsSQL = `
		SELECT EXISTS (SELECT 1 FROM cafe_tables WHERE id = $1)`

	MarkTableOccupiedSQL = `
		UPDATE cafe_tables SET status = 'occupied'
		WHERE id = $1 AND status = 'available'`

	UpdateTableStatusSQL = `
		UPDATE cafe_tables SET status = $1 WHERE id = $2`

	ListLocationsSQL = `
		SELECT id, code, name, address FROM locations ORDER BY id`

	ListTablesSQL = `
		SELECT id, location_id, table_number, status
		FROM cafe_tables
		WHERE ($1::int IS NULL OR location_id = $1)
		ORDER BY location_id, table_number`
)

// Payment queries
const (
	SelectOrderForPaymentSQL = `
		SELECT o.id, o.total, o.status, t.table_number
		FROM orders o
		JOIN cafe_tables t ON o.table_id = t.id
		WHERE o.id = $1
		FOR UPDATE OF o`

	InsertPaymentSQL = `
		INSERT INTO payments (order_id, amount, method, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	PaymentHistorySQL = `
		SELECT p.id, p.amount, p.method, p.status, p.created_at,
		       o.id, o.total, t.table_number
		FROM payments p
		JOIN orders o ON p.order_id = o.id
		JOIN cafe_tables t ON o.table_id = t.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`
)

// Catalog and menu queries
const (
	ItemPriceSQL = `
		SELECT price FROM items WHERE id = $1`

	ListCategoriesSQL = `
		SELECT id, name FROM categories ORDER BY name`

	InsertCategorySQL = `
		INSERT INTO categories (name) VALUES ($1) RETURNING id`

	UpdateCategorySQL = `
		UPDATE categories SET name = $1 WHERE id = $2`

	CategoryItemCountSQL = `
		SELECT COUNT(*) FROM items WHERE category_id = $1`

	DeleteCategorySQL = `
		DELETE FROM categories WHERE id = $1`

	ListMenuItemsSQL = `
		SELECT id, category_id, name, price, available
		FROM items
		ORDER BY name`

	GetMenuItemSQL = `
		SELECT id, category_id, name, price, available
		FROM items WHERE id = $1`

	InsertMenuItemSQL = `
		INSERT INTO items (category_id, name, price, available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	UpdateMenuItemSQL = `
		UPDATE items SET category_id = $1, name = $2, price = $3, available = $4
		WHERE id = $5`

	DeleteMenuItemSQL = `
		DELETE FROM items WHERE id = $1`
)

// User queries
const (
	InsertUserSQL = `
		INSERT INTO users (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	GetUserByEmailSQL = `
		SELECT id, full_name, email, password_hash, role, created_at
		FROM users WHERE email = $1`
)
