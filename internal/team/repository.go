package team

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

var ErrMemberNotFound = errors.New("team member not found")

// Repository defines the interface for team member storage.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, req *CreateMemberRequest) (*Member, error)
	Update(ctx context.Context, id string, req *UpdateMemberRequest) (*Member, error)
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
		panic("team: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func NewPostgresRepositoryWithDB(db db) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const memberColumns = `id, name, role, bio, photo, email, linkedin, github, position, active, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("team: list failed: %w", err)
	}
	defer rows.Close()

	members := []*Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("team: scan failed: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("team: list failed: %w", err)
	}
	return members, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`
	m, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("team: select failed: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO team_members (id, name, role, bio, photo, email, linkedin, github, position, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + memberColumns
	m, err := scanMember(r.db.QueryRow(ctx, query,
		uuid.New(), req.Name, req.Role, req.Bio, req.Photo, req.Email, req.LinkedIn, req.GitHub, req.Position, active))
	if err != nil {
		return nil, fmt.Errorf("team: insert failed: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateMemberRequest) (*Member, error) {
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
	if req.Role != nil {
		set("role", *req.Role)
	}
	if req.Bio != nil {
		set("bio", *req.Bio)
	}
	if req.Photo != nil {
		set("photo", *req.Photo)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.LinkedIn != nil {
		set("linkedin", *req.LinkedIn)
	}
	if req.GitHub != nil {
		set("github", *req.GitHub)
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
	query := "UPDATE team_members SET " + joinSets(sets) + ", updated_at = now() WHERE id = $" +
		strconv.Itoa(len(args)) + " RETURNING " + memberColumns
	m, err := scanMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("team: update failed: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("team: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
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

func scanMember(row pgx.Row) (*Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo, &m.Email, &m.LinkedIn,
		&m.GitHub, &m.Position, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
