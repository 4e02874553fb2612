package leads

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// db is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	db db
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db db) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const leadColumns = `id, name, email, phone, message, origin, status, notes, created_at, updated_at`

// Create inserts a new row. The status and timestamps come back from
// the database defaults so the returned record matches what was stored.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var email *string
	if req.Email != "" {
		email = &req.Email
	}

	query := `
		INSERT INTO leads (id, name, email, phone, message, origin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leadColumns
	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Name,
		email,
		req.Phone,
		req.Message,
		req.Origin,
	)
	lead, err := scanLead(row)
	if err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}
	return lead, nil
}

// GetByID fetches a single lead.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	lead, err := scanLead(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("leads: select failed: %w", err)
	}
	return lead, nil
}

// List returns leads newest-first. The status filter is an exact match
// and search is a case-insensitive substring over name, email and
// message; both combine with AND.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	var args []any
	var where []string

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := strconv.Itoa(len(args))
		where = append(where, "(name ILIKE $"+n+" OR email ILIKE $"+n+" OR message ILIKE $"+n+")")
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()

	leads := []*Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	return leads, nil
}

// Update applies a status and/or notes change. Anything else on the
// row is immutable after creation.
func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sets := ""
	var args []any
	if req.Status != nil {
		args = append(args, string(*req.Status))
		sets = "status = $" + strconv.Itoa(len(args))
	}
	if req.Notes != nil {
		args = append(args, *req.Notes)
		if sets != "" {
			sets += ", "
		}
		sets += "notes = $" + strconv.Itoa(len(args))
	}
	args = append(args, id)

	query := "UPDATE leads SET " + sets + ", updated_at = now() WHERE id = $" +
		strconv.Itoa(len(args)) + " RETURNING " + leadColumns
	lead, err := scanLead(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("leads: update failed: %w", err)
	}
	return lead, nil
}

// Delete removes one lead permanently.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("leads: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// Stats counts leads per status over the full unfiltered table.
func (r *PostgresRepository) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByStatus: make(map[Status]int64, len(Statuses))}
	for _, s := range Statuses {
		stats.ByStatus[s] = 0
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("leads: stats failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("leads: stats scan failed: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: stats failed: %w", err)
	}
	return stats, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally instead of as a pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanLead(row pgx.Row) (*Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Message,
		&lead.Origin,
		&lead.Status,
		&lead.Notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
