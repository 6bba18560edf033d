package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

const articleColumns = `id, title, content, style, date_published`

// Postgres reads and writes the articles table through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// GetAllArticles retrieves all articles in table order.
func (p *Postgres) GetAllArticles(ctx context.Context) ([]model.Article, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles`)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	return articles, nil
}

// GetByID retrieves an article by its ID.
func (p *Postgres) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	var a model.Article
	err := scanArticle(p.pool.QueryRow(ctx, query, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}

	return &a, nil
}

// InsertArticle inserts a new article and returns the stored row.
func (p *Postgres) InsertArticle(ctx context.Context, fields model.NewArticle) (*model.Article, error) {
	query := `
		INSERT INTO articles (title, content, style)
		VALUES ($1, $2, $3)
		RETURNING ` + articleColumns

	var a model.Article
	err := scanArticle(p.pool.QueryRow(ctx, query, fields.Title, fields.Content, fields.Style), &a)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return &a, nil
}

// UpdateArticle sets the supplied columns; NULL parameters keep the
// current value.
func (p *Postgres) UpdateArticle(ctx context.Context, id int64, patch model.ArticlePatch) (int64, error) {
	query := `
		UPDATE articles
		SET title = COALESCE($2, title),
		    content = COALESCE($3, content),
		    style = COALESCE($4, style)
		WHERE id = $1
	`

	tag, err := p.pool.Exec(ctx, query, id,
		nonBlank(patch.Title),
		nonBlank(patch.Content),
		nonBlank(patch.Style),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update article %d: %w", id, err)
	}

	return tag.RowsAffected(), nil
}

func (p *Postgres) DeleteArticle(ctx context.Context, id int64) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}

	return nil
}

func scanArticle(row pgx.Row, a *model.Article) error {
	return row.Scan(&a.ID, &a.Title, &a.Content, &a.Style, &a.DatePublished)
}
