package model

import "time"

// Article data model. Rows live in the "articles" table, see schema.sql.
type Article struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Style         string    `json:"style"`
	DatePublished time.Time `json:"date_published"`
}

// NewArticle holds the fields a client supplies on insert. The store
// assigns ID and DatePublished.
type NewArticle struct {
	Title   string
	Content string
	Style   string
}

// ArticlePatch is a partial update. A nil field is left untouched.
type ArticlePatch struct {
	Title   *string
	Content *string
	Style   *string
}

// Empty reports whether the patch carries no non-empty field.
func (p ArticlePatch) Empty() bool {
	return blank(p.Title) && blank(p.Content) && blank(p.Style)
}

// Apply copies the supplied fields of p onto a.
func (p ArticlePatch) Apply(a *Article) {
	if !blank(p.Title) {
		a.Title = *p.Title
	}
	if !blank(p.Content) {
		a.Content = *p.Content
	}
	if !blank(p.Style) {
		a.Style = *p.Style
	}
}

func blank(s *string) bool {
	return s == nil || *s == ""
}
