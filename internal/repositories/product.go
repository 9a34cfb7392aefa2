package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/product-catalog/internal/logger"
	"github.com/sbilibin2017/product-catalog/internal/models"
)

// ProductReadRepository handles product read operations.
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// List returns all products, newest first.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	const query = `
		SELECT product_id, name, price, description, created_at, updated_at
		FROM products
		ORDER BY created_at DESC
	`

	products := make([]models.ProductDB, 0)
	err := r.db.SelectContext(ctx, &products, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(products),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetByID returns the product with the given id, or (nil, nil) if absent.
func (r *ProductReadRepository) GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	const query = `
		SELECT product_id, name, price, description, created_at, updated_at
		FROM products
		WHERE product_id = $1
	`

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, productID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// ProductWriteRepository handles product write operations.
// When a transaction is present in the context it is used as the executor.
type ProductWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProductWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProductWriteRepository {
	return &ProductWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProductWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new product with a server-assigned id and creation timestamp
// and returns the created record.
func (r *ProductWriteRepository) Save(ctx context.Context, name string, price float64, description string) (*models.ProductDB, error) {
	const query = `
		INSERT INTO products (product_id, name, price, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING product_id, name, price, description, created_at, updated_at
	`
	args := []any{uuid.New(), name, price, description}

	var product models.ProductDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &product, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &product, nil
}

// Update replaces the mutable fields of an existing product and returns the
// updated record, or (nil, nil) if the product does not exist. created_at is
// never touched.
func (r *ProductWriteRepository) Update(ctx context.Context, productID uuid.UUID, name string, price float64, description string) (*models.ProductDB, error) {
	const query = `
		UPDATE products
		SET name = $2, price = $3, description = $4, updated_at = NOW()
		WHERE product_id = $1
		RETURNING product_id, name, price, description, created_at, updated_at
	`
	args := []any{productID, name, price, description}

	var product models.ProductDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &product, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// Delete removes the product with the given id. Returns sql.ErrNoRows when
// nothing was deleted.
func (r *ProductWriteRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	const query = `DELETE FROM products WHERE product_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, productID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{productID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
