// Package articlerequest holds the request payloads for the articles api.
// Payloads check themselves in Bind, which render.Bind calls after decoding.
package articlerequest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

var validate = validator.New()

// ArticleRequest is the POST /articles payload. Pointers tell an absent or
// null field apart from one that was sent.
type ArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Style   *string `json:"style"`

	ProtectedID interface{} `json:"id"` // accepted and ignored, the store assigns ids
}

func (a *ArticleRequest) Bind(r *http.Request) error {
	required := []struct {
		name  string
		value *string
	}{
		{"title", a.Title},
		{"content", a.Content},
		{"style", a.Style},
	}
	for _, f := range required {
		if f.value == nil || *f.value == "" {
			return errresponse.ErrMissingField(f.name)
		}
	}

	a.ProtectedID = nil

	return checkStyle(*a.Style)
}

// Article returns the fields to insert. Only valid after Bind succeeded.
func (a *ArticleRequest) Article() model.NewArticle {
	return model.NewArticle{
		Title:   *a.Title,
		Content: *a.Content,
		Style:   *a.Style,
	}
}

// ArticlePatchRequest is the PATCH /articles/{id} payload.
type ArticlePatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Style   *string `json:"style"`
}

func (p *ArticlePatchRequest) Bind(r *http.Request) error {
	if p.Patch().Empty() {
		return errresponse.ErrEmptyPatch
	}

	if p.Style != nil && *p.Style != "" {
		return checkStyle(*p.Style)
	}

	return nil
}

func (p *ArticlePatchRequest) Patch() model.ArticlePatch {
	return model.ArticlePatch{Title: p.Title, Content: p.Content, Style: p.Style}
}

// Bind decodes the request body into v and runs its Bind. An empty body is
// treated as an empty JSON object so the payload reports what is missing.
// Decoding failures come back as 400 responses.
func Bind(r *http.Request, v render.Binder) error {
	err := render.Bind(r, v)
	if errors.Is(err, io.EOF) {
		err = v.Bind(r)
	}
	if err == nil {
		return nil
	}

	var errResp *errresponse.ErrResponse
	if errors.As(err, &errResp) {
		return errResp
	}

	return errresponse.ErrInvalidRequest(err)
}

func checkStyle(style string) error {
	if err := validate.Var(style, "oneof="+strings.Join(model.Styles(), " ")); err != nil {
		return errresponse.ErrInvalidRequest(
			fmt.Errorf("'style' must be one of: %s", strings.Join(model.Styles(), ", ")),
		)
	}

	return nil
}
