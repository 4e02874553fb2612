package products

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func productRows(products ...*Product) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "name", "description", "long_description", "icon", "image", "images",
		"link", "technologies", "featured", "position", "active", "created_at", "updated_at",
	})
	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.Description, p.LongDescription, p.Icon, p.Image, p.Images,
			p.Link, p.Technologies, p.Featured, p.Position, p.Active, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func sampleProduct() *Product {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Product{
		ID:           "0f6d2a1e-44bb-4a0b-8a6b-2f7f5b8e9c01",
		Name:         "Sistema de Gestao",
		Description:  "ERP sob medida",
		Images:       []string{},
		Technologies: []string{"go", "postgres"},
		Position:     1,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgresListActiveOnly(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)
	want := sampleProduct()

	mock.ExpectQuery(`SELECT .+ FROM products WHERE active ORDER BY position ASC`).
		WillReturnRows(productRows(want))

	got, err := repo.List(context.Background(), true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != want.Name {
		t.Fatalf("unexpected products: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateDefaultsActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)
	want := sampleProduct()

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(pgxmock.AnyArg(), "Sistema de Gestao", "ERP sob medida", (*string)(nil), (*string)(nil), (*string)(nil),
			[]string{}, (*string)(nil), []string{"go", "postgres"}, false, 1, true).
		WillReturnRows(productRows(want))

	got, err := repo.Create(context.Background(), &CreateProductRequest{
		Name:         "Sistema de Gestao",
		Description:  "ERP sob medida",
		Technologies: []string{"go", "postgres"},
		Position:     1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !got.Active {
		t.Fatal("expected active default")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)
	name := "renamed"

	mock.ExpectQuery("UPDATE products SET").
		WithArgs("renamed", "missing").
		WillReturnRows(productRows())

	_, err = repo.Update(context.Background(), "missing", &UpdateProductRequest{Name: &name})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestPostgresDeleteMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepositoryWithDB(mock)

	mock.ExpectExec("DELETE FROM products").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
