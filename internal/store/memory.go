package store

import (
	"context"
	"sync"
	"time"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// Memory is an in-process article table. Ids come from a counter and are
// never handed out twice, even after a delete.
type Memory struct {
	mu       sync.RWMutex
	articles []model.Article
	lastID   int64
	now      func() time.Time
}

// NewMemory returns a store seeded with fixtures, inserted in order.
func NewMemory(fixtures ...model.NewArticle) *Memory {
	m := &Memory{now: time.Now}
	for _, f := range fixtures {
		m.insert(f)
	}

	return m
}

func (m *Memory) GetAllArticles(ctx context.Context) ([]model.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Article, len(m.articles))
	copy(out, m.articles)

	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.index(id); i >= 0 {
		a := m.articles[i]

		return &a, nil
	}

	return nil, nil
}

func (m *Memory) InsertArticle(ctx context.Context, fields model.NewArticle) (*model.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a := m.insert(fields)

	return &a, nil
}

func (m *Memory) UpdateArticle(ctx context.Context, id int64, patch model.ArticlePatch) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return 0, nil
	}
	patch.Apply(&m.articles[i])

	return 1, nil
}

func (m *Memory) DeleteArticle(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(id); i >= 0 {
		m.articles = append(m.articles[:i], m.articles[i+1:]...)
	}

	return nil
}

// insert must be called with mu held for writing.
func (m *Memory) insert(fields model.NewArticle) model.Article {
	m.lastID++
	a := model.Article{
		ID:            m.lastID,
		Title:         fields.Title,
		Content:       fields.Content,
		Style:         fields.Style,
		DatePublished: m.now().UTC(),
	}
	m.articles = append(m.articles, a)

	return a
}

func (m *Memory) index(id int64) int {
	for i, a := range m.articles {
		if a.ID == id {
			return i
		}
	}

	return -1
}
