// Package store holds the persistence accessors for articles. Every
// operation is a single call against the backing store; nothing is retried
// and store failures are returned to the caller wrapped but unchanged.
package store

import (
	"context"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Articles is the data access surface the HTTP layer depends on.
type Articles interface {
	// GetAllArticles returns every article in store order. The slice is
	// empty, not nil, when there are none.
	GetAllArticles(ctx context.Context) ([]model.Article, error)

	// GetByID returns nil and no error when id does not exist.
	GetByID(ctx context.Context, id int64) (*model.Article, error)

	InsertArticle(ctx context.Context, fields model.NewArticle) (*model.Article, error)

	// UpdateArticle changes only the supplied fields and returns the number
	// of rows affected, 0 when id does not exist.
	UpdateArticle(ctx context.Context, id int64, patch model.ArticlePatch) (int64, error)

	// DeleteArticle is a no-op for an id that does not exist.
	DeleteArticle(ctx context.Context, id int64) error
}

var (
	_ Articles = (*Memory)(nil)
	_ Articles = (*Postgres)(nil)
)

// nonBlank maps an empty field to nil so it is treated as not supplied.
func nonBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
