// postgres_integration_test.go
//go:build integration
// +build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Requires ARTICLES_TEST_DATABASE_URL pointing at a database with schema.sql applied.
func newTestPostgres(t *testing.T) *Postgres {
	t.Helper()

	dsn := os.Getenv("ARTICLES_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("ARTICLES_TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(context.Background(), `TRUNCATE articles`); err != nil {
		t.Fatal(err)
	}

	return NewPostgres(pool)
}

func TestPostgresLifecycle(t *testing.T) {
	ctx := context.Background()
	p := newTestPostgres(t)

	a, err := p.InsertArticle(ctx, model.NewArticle{Title: "T", Content: "C", Style: model.StyleNews})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == 0 || a.DatePublished.IsZero() {
		t.Fatalf("insert did not populate generated columns: %+v", a)
	}

	title := "X"
	n, err := p.UpdateArticle(ctx, a.ID, model.ArticlePatch{Title: &title})
	if err != nil || n != 1 {
		t.Fatalf("UpdateArticle = %d, %v", n, err)
	}

	got, err := p.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "X" || got.Content != "C" || got.Style != model.StyleNews {
		t.Errorf("partial update touched other columns: %+v", got)
	}

	if err := p.DeleteArticle(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if got, err := p.GetByID(ctx, a.ID); err != nil || got != nil {
		t.Fatalf("after delete GetByID = %v, %v", got, err)
	}

	all, err := p.GetAllArticles(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("GetAllArticles = %v, %v", all, err)
	}
}
