package dal

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"

	"github.com/doitintl/product-catalog/productcatalog/domain"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
)`

// ConnectPostgres opens a pooled connection to dsn and checks it is reachable.
func ConnectPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

type ProductsPostgres struct {
	db *sql.DB
}

func NewProductsPostgres(db *sql.DB) *ProductsPostgres {
	return &ProductsPostgres{db: db}
}

// EnsureSchema creates the products table when it is missing.
func (d *ProductsPostgres) EnsureSchema(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, createProductsTable)
	return err
}

func (d *ProductsPostgres) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `SELECT id, name FROM products ORDER BY id`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product

	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (d *ProductsPostgres) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const query = `SELECT id, name FROM products WHERE id = $1`

	var p domain.Product

	err := d.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}

		return nil, err
	}

	return &p, nil
}

func (d *ProductsPostgres) PutProduct(ctx context.Context, product domain.Product) error {
	const query = `
INSERT INTO products (id, name) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

	_, err := d.db.ExecContext(ctx, query, product.ID, product.Name)

	return err
}
