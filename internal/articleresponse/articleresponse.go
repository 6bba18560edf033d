// Package articleresponse shapes articles for the wire. Free text written
// by clients is sanitized here, on the way out, so every route that echoes
// an article gets the same treatment.
package articleresponse

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/microcosm-cc/bluemonday"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

var (
	// policy decides which tags survive and filters their attributes.
	// bluemonday policies are safe for concurrent use once built.
	policy = bluemonday.UGCPolicy()

	tagPattern     = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

	tagEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")
)

// ArticleResponse is the response payload for the Article data model.
type ArticleResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Style         string    `json:"style"`
	Content       string    `json:"content"`
	DatePublished time.Time `json:"date_published"`
}

func NewArticleListResponse(articles []model.Article) []render.Renderer {
	list := []render.Renderer{}
	for i := range articles {
		list = append(list, NewArticleResponse(&articles[i]))
	}

	return list
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:            article.ID,
		Title:         article.Title,
		Style:         article.Style,
		Content:       article.Content,
		DatePublished: article.DatePublished,
	}
}

// Render sanitizes the free-text fields before the payload is marshalled.
func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	rd.Title = Sanitize(rd.Title)
	rd.Content = Sanitize(rd.Content)

	return nil
}

// Sanitize neutralizes markup in s and leaves the text around it
// untouched. Tags the policy allows are kept with their attributes
// filtered, any other tag is escaped and HTML comments are dropped.
func Sanitize(s string) string {
	s = commentPattern.ReplaceAllString(s, "")

	return tagPattern.ReplaceAllStringFunc(s, sanitizeTag)
}

func sanitizeTag(tag string) string {
	if clean := policy.Sanitize(tag); clean != "" {
		return clean
	}

	return tagEscaper.Replace(tag)
}
