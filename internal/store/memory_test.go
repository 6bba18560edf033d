package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2019, 7, 3, 12, 0, 0, 0, time.UTC)
}

func newTestMemory(fixtures ...model.NewArticle) *Memory {
	m := NewMemory()
	m.now = fixedClock
	for _, f := range fixtures {
		m.insert(f)
	}

	return m
}

func TestMemoryGetAllArticles(t *testing.T) {
	ctx := context.Background()

	empty, err := newTestMemory().GetAllArticles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", empty)
	}

	m := newTestMemory(
		model.NewArticle{Title: "First", Content: "one", Style: model.StyleNews},
		model.NewArticle{Title: "Second", Content: "two", Style: model.StyleStory},
	)
	got, err := m.GetAllArticles(ctx)
	if err != nil {
		t.Fatal(err)
	}

	want := []model.Article{
		{ID: 1, Title: "First", Content: "one", Style: model.StyleNews, DatePublished: fixedClock()},
		{ID: 2, Title: "Second", Content: "two", Style: model.StyleStory, DatePublished: fixedClock()},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetAllArticles mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryGetByIDMissing(t *testing.T) {
	a, err := newTestMemory().GetByID(context.Background(), 42)
	if err != nil || a != nil {
		t.Fatalf("GetByID(42) = %v, %v; want nil, nil", a, err)
	}
}

func TestMemoryUpdateArticle(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(model.NewArticle{Title: "T", Content: "C", Style: model.StyleHowTo})

	title := "X"
	n, err := m.UpdateArticle(ctx, 1, model.ArticlePatch{Title: &title})
	if err != nil || n != 1 {
		t.Fatalf("UpdateArticle = %d, %v", n, err)
	}

	a, _ := m.GetByID(ctx, 1)
	want := &model.Article{ID: 1, Title: "X", Content: "C", Style: model.StyleHowTo, DatePublished: fixedClock()}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("after update (-want +got):\n%s", diff)
	}

	n, err = m.UpdateArticle(ctx, 99, model.ArticlePatch{Title: &title})
	if err != nil || n != 0 {
		t.Fatalf("UpdateArticle(missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestMemoryDeleteNeverReusesIDs(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(model.NewArticle{Title: "a", Content: "a", Style: model.StyleNews})

	if err := m.DeleteArticle(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := m.DeleteArticle(ctx, 1); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	a, err := m.InsertArticle(ctx, model.NewArticle{Title: "b", Content: "b", Style: model.StyleNews})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != 2 {
		t.Errorf("new id = %d, want 2", a.ID)
	}
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestMemory().GetAllArticles(ctx); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
