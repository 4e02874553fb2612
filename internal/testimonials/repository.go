package testimonials

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

var ErrTestimonialNotFound = errors.New("testimonial not found")

// Repository defines the interface for testimonial storage.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]*Testimonial, error)
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	Create(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error)
	Update(ctx context.Context, id string, req *UpdateTestimonialRequest) (*Testimonial, error)
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
		panic("testimonials: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

func NewPostgresRepositoryWithDB(db db) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const testimonialColumns = `id, name, role, company, text, avatar, rating, position, active, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("testimonials: list failed: %w", err)
	}
	defer rows.Close()

	testimonials := []*Testimonial{}
	for rows.Next() {
		tm, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("testimonials: scan failed: %w", err)
		}
		testimonials = append(testimonials, tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("testimonials: list failed: %w", err)
	}
	return testimonials, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	tm, err := scanTestimonial(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("testimonials: select failed: %w", err)
	}
	return tm, nil
}

func (r *PostgresRepository) Create(ctx context.Context, req *CreateTestimonialRequest) (*Testimonial, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}

	query := `
		INSERT INTO testimonials (id, name, role, company, text, avatar, rating, position, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + testimonialColumns
	tm, err := scanTestimonial(r.db.QueryRow(ctx, query,
		uuid.New(), req.Name, req.Role, req.Company, req.Text, req.Avatar, rating, req.Position, active))
	if err != nil {
		return nil, fmt.Errorf("testimonials: insert failed: %w", err)
	}
	return tm, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateTestimonialRequest) (*Testimonial, error) {
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
	if req.Company != nil {
		set("company", *req.Company)
	}
	if req.Text != nil {
		set("text", *req.Text)
	}
	if req.Avatar != nil {
		set("avatar", *req.Avatar)
	}
	if req.Rating != nil {
		set("rating", *req.Rating)
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
	query := "UPDATE testimonials SET " + joinSets(sets) + ", updated_at = now() WHERE id = $" +
		strconv.Itoa(len(args)) + " RETURNING " + testimonialColumns
	tm, err := scanTestimonial(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("testimonials: update failed: %w", err)
	}
	return tm, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("testimonials: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTestimonialNotFound
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

func scanTestimonial(row pgx.Row) (*Testimonial, error) {
	var tm Testimonial
	err := row.Scan(&tm.ID, &tm.Name, &tm.Role, &tm.Company, &tm.Text, &tm.Avatar,
		&tm.Rating, &tm.Position, &tm.Active, &tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}
