package clients

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

var ErrClientNotFound = errors.New("client not found")

// Repository defines the interface for client storage.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]*Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, req *CreateClientRequest) (*Client, error)
	Update(ctx context.Context, id string, req *UpdateClientRequest) (*Client, error)
	Delete(ctx context.Context, id string) error
}

type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db db
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("clients: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func NewPostgresRepositoryWithDB(db db) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const clientColumns = `id, name, logo, site, position, active, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("clients: list failed: %w", err)
	}
	defer rows.Close()

	clients := []*Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("clients: scan failed: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("clients: list failed: %w", err)
	}
	return clients, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("clients: select failed: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, req *CreateClientRequest) (*Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO clients (id, name, logo, site, position, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + clientColumns
	c, err := scanClient(r.db.QueryRow(ctx, query, uuid.New(), req.Name, req.Logo, req.Site, req.Position, active))
	if err != nil {
		return nil, fmt.Errorf("clients: insert failed: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateClientRequest) (*Client, error) {
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
	if req.Logo != nil {
		set("logo", *req.Logo)
	}
	if req.Site != nil {
		set("site", *req.Site)
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
	query := "UPDATE clients SET " + joinSets(sets) + ", updated_at = now() WHERE id = $" +
		strconv.Itoa(len(args)) + " RETURNING " + clientColumns
	c, err := scanClient(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("clients: update failed: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("clients: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
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

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.Name, &c.Logo, &c.Site, &c.Position, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
