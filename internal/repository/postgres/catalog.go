package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/repository"
	"github.com/fashionhive/storefront/pkg/errors"
)

// catalogRepository stores every brand collection as its own table inside
// one schema, so listing the schema's tables lists the brands.
type catalogRepository struct {
	db     *sql.DB
	schema string
	logger *zap.Logger
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB, schema string, logger *zap.Logger) *catalogRepository {
	return &catalogRepository{
		db:     db,
		schema: schema,
		logger: logger,
	}
}

const productColumns = `id, name, price, image_urls, category, brand, product_url, details, created_at, updated_at`

func (r *catalogRepository) table(collection string) string {
	return pq.QuoteIdentifier(r.schema) + "." + pq.QuoteIdentifier(collection)
}

func (r *catalogRepository) ListCollections(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := r.db.QueryContext(ctx, query, r.schema)
	if err != nil {
		r.logger.Error("Failed to list brand collections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// buildProductFilter renders the WHERE clause for a product lookup.
func buildProductFilter(filter repository.ProductFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("lower(category) = lower($%d)", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		if filter.SearchBrand {
			clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR brand ILIKE $%d)", n, n))
		} else {
			clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", n))
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *catalogRepository) FindProducts(ctx context.Context, collection string, filter repository.ProductFilter) ([]*domain.Product, error) {
	where, args := buildProductFilter(filter)
	query := `SELECT ` + productColumns + ` FROM ` + r.table(collection) + where + ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query products", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *catalogRepository) FindProductByID(ctx context.Context, collection, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + r.table(collection) + ` WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "product", ID: id}
	}
	if err != nil {
		r.logger.Error("Failed to get product by ID", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *catalogRepository) CountProducts(ctx context.Context, collection string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM `+r.table(collection)).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count products", zap.String("collection", collection), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *catalogRepository) DistinctCategories(ctx context.Context, collection string) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM ` + r.table(collection) + `
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query categories", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *catalogRepository) FirstProduct(ctx context.Context, collection string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + r.table(collection) + ` ORDER BY created_at, id LIMIT 1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "product", ID: collection}
	}
	if err != nil {
		r.logger.Error("Failed to get first product", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *catalogRepository) SampleProducts(ctx context.Context, collection string, n int) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM ` + r.table(collection) + ` ORDER BY random() LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		r.logger.Error("Failed to sample products", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *catalogRepository) ResetCollection(ctx context.Context, collection string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statements := []string{
		`CREATE SCHEMA IF NOT EXISTS ` + pq.QuoteIdentifier(r.schema),
		`CREATE TABLE IF NOT EXISTS ` + r.table(collection) + ` (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			price JSONB,
			image_urls TEXT[] NOT NULL DEFAULT '{}',
			category TEXT,
			brand TEXT,
			product_url TEXT,
			details TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`DELETE FROM ` + r.table(collection),
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			r.logger.Error("Failed to reset collection", zap.String("collection", collection), zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *catalogRepository) InsertProducts(ctx context.Context, collection string, products []*domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO `+r.table(collection)+` (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = now
		}

		price, err := json.Marshal(p.Price)
		if err != nil {
			return fmt.Errorf("failed to encode price of %s: %w", p.ID, err)
		}

		_, err = stmt.ExecContext(ctx,
			p.ID,
			p.Name,
			price,
			pq.Array(p.Images()),
			nullString(p.Category),
			nullString(p.Brand),
			nullString(p.ProductURL),
			nullString(p.Details),
			p.CreatedAt,
			p.UpdatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to insert product", zap.String("collection", collection), zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var price []byte
	var category, brand, productURL, details sql.NullString

	err := row.Scan(
		&p.ID,
		&p.Name,
		&price,
		pq.Array(&p.ImageURLs),
		&category,
		&brand,
		&productURL,
		&details,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(price) > 0 {
		if err := json.Unmarshal(price, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to decode price of %s: %w", p.ID, err)
		}
	}
	p.Category = category.String
	p.Brand = brand.String
	p.ProductURL = productURL.String
	p.Details = details.String

	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
