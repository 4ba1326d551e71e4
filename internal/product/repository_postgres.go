package product

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createSequenceQuery = `CREATE SEQUENCE IF NOT EXISTS product_id_seq START 100`
	createTableQuery    = `
		CREATE TABLE IF NOT EXISTS product (
			id TEXT PRIMARY KEY,
			ord SERIAL,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL,
			original_price DOUBLE PRECISION,
			image TEXT NOT NULL DEFAULT '',
			sizes TEXT[] NOT NULL DEFAULT '{}',
			colors TEXT[] NOT NULL DEFAULT '{}',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			is_new BOOLEAN NOT NULL DEFAULT FALSE,
			is_on_sale BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	countProductsQuery = `SELECT COUNT(*) FROM product`
	listProductsQuery  = `
		SELECT id, name, brand, category, description, price, original_price, image, sizes, colors, rating, review_count, is_new, is_on_sale
		FROM product
		ORDER BY ord
	`
	getProductByIDQuery = `
		SELECT id, name, brand, category, description, price, original_price, image, sizes, colors, rating, review_count, is_new, is_on_sale
		FROM product
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO product (id, name, brand, category, description, price, original_price, image, sizes, colors, rating, review_count, is_new, is_on_sale)
		VALUES (COALESCE(NULLIF($1, ''), nextval('product_id_seq')::text), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE product
		SET name = $1,
			brand = $2,
			category = $3,
			description = $4,
			price = $5,
			original_price = $6,
			image = $7,
			sizes = $8,
			colors = $9,
			rating = $10,
			review_count = $11,
			is_new = $12,
			is_on_sale = $13
		WHERE id = $14
	`
	deleteProductQuery = `DELETE FROM product WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the product table when missing and seeds it with the
// given products when it is empty.
func (r *PostgresRepository) EnsureSchema(seed []Product) error {
	if _, err := r.db.Exec(createSequenceQuery); err != nil {
		return err
	}
	if _, err := r.db.Exec(createTableQuery); err != nil {
		return err
	}
	var count int
	if err := r.db.QueryRow(countProductsQuery).Scan(&count); err != nil {
		return err
	}
	if count > 0 || len(seed) == 0 {
		return nil
	}
	return r.Reset(seed)
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id string
	if err := r.db.QueryRow(insertProductQuery, insertArgs(p)...).Scan(&id); err != nil {
		return Product{}, err
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	result, err := r.db.Exec(
		updateProductQuery,
		p.Name,
		p.Brand,
		p.Category,
		p.Description,
		p.Price,
		nullFloat(p.OriginalPrice),
		p.Image,
		pq.Array(p.Sizes),
		pq.Array(p.Colors),
		p.Rating,
		p.ReviewCount,
		p.IsNew,
		p.IsOnSale,
		id,
	)
	if err != nil {
		return Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset deletes all products and inserts the provided list in a single
// transaction, keeping the given order.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM product`); err != nil {
		return err
	}
	for _, p := range products {
		var id string
		if err := tx.QueryRow(insertProductQuery, insertArgs(p)...).Scan(&id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertArgs(p Product) []any {
	return []any{
		p.ID,
		p.Name,
		p.Brand,
		p.Category,
		p.Description,
		p.Price,
		nullFloat(p.OriginalPrice),
		p.Image,
		pq.Array(p.Sizes),
		pq.Array(p.Colors),
		p.Rating,
		p.ReviewCount,
		p.IsNew,
		p.IsOnSale,
	}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var original sql.NullFloat64
	var sizes, colors pq.StringArray

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Brand,
		&p.Category,
		&p.Description,
		&p.Price,
		&original,
		&p.Image,
		&sizes,
		&colors,
		&p.Rating,
		&p.ReviewCount,
		&p.IsNew,
		&p.IsOnSale,
	); err != nil {
		return Product{}, err
	}

	if original.Valid {
		v := original.Float64
		p.OriginalPrice = &v
	}
	p.Sizes = []string(sizes)
	p.Colors = []string(colors)
	return p, nil
}
