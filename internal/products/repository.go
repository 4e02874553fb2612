package products

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// Repository defines the interface for product storage.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, req *CreateProductRequest) (*Product, error)
	Update(ctx context.Context, id string, req *UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores products in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("products: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db db) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `id, name, description, long_description, icon, image, images, link, technologies, featured, position, active, created_at, updated_at`

// List returns products ordered by display position.
func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products: list failed: %w", err)
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("products: scan failed: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products: list failed: %w", err)
	}
	return products, nil
}

// GetByID fetches a single product.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("products: select failed: %w", err)
	}
	return p, nil
}

// Create inserts a new product.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}
	technologies := req.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	query := `
		INSERT INTO products (id, name, description, long_description, icon, image, images, link, technologies, featured, position, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + productColumns
	p, err := scanProduct(r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Name,
		req.Description,
		req.LongDescription,
		req.Icon,
		req.Image,
		images,
		req.Link,
		technologies,
		req.Featured,
		req.Position,
		active,
	))
	if err != nil {
		return nil, fmt.Errorf("products: insert failed: %w", err)
	}
	return p, nil
}

// Update applies the non-nil fields of req.
func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateProductRequest) (*Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.LongDescription != nil {
		set("long_description", *req.LongDescription)
	}
	if req.Icon != nil {
		set("icon", *req.Icon)
	}
	if req.Image != nil {
		set("image", *req.Image)
	}
	if req.Images != nil {
		set("images", *req.Images)
	}
	if req.Link != nil {
		set("link", *req.Link)
	}
	if req.Technologies != nil {
		set("technologies", *req.Technologies)
	}
	if req.Featured != nil {
		set("featured", *req.Featured)
	}
	if req.Position != nil {
		set("position", *req.Position)
	}
	if req.Active != nil {
		set("active", *req.Active)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := "UPDATE products SET " + joinSets(sets) + ", updated_at = now() WHERE id = $" +
		strconv.Itoa(len(args)) + " RETURNING " + productColumns
	p, err := scanProduct(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("products: update failed: %w", err)
	}
	return p, nil
}

// Delete removes one product permanently.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func joinSets(sets []string) string {
	out := sets[0]
	for _, s := range sets[1:] {
		out += ", " + s
	}
	return out
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.LongDescription,
		&p.Icon,
		&p.Image,
		&p.Images,
		&p.Link,
		&p.Technologies,
		&p.Featured,
		&p.Position,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
