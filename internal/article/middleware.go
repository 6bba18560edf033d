package article

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/model"
)

type ctxKey int8

const ctxKeyArticle ctxKey = iota

// ArticleCtx middleware is used to load an Article object from
// the URL parameters passed through as the request. In case
// the Article could not be found, we stop here and return a 404.
func (h *Handler) ArticleCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "articleID"), 10, 64)
		if err != nil {
			h.Fail(w, r, errresponse.ErrNotFound)

			return
		}

		article, err := h.store.GetByID(r.Context(), id)
		if err != nil {
			h.Fail(w, r, err)

			return
		}
		if article == nil {
			h.Fail(w, r, errresponse.ErrNotFound)

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticle, article)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the article stored by ArticleCtx. Handlers mounted
// under ArticleCtx can rely on it being present.
func FromContext(ctx context.Context) *model.Article {
	article, _ := ctx.Value(ctxKeyArticle).(*model.Article)

	return article
}

// Recoverer turns a panic in a later handler into a 500 through Fail. A
// handler that already started its response is only logged.
func (h *Handler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			err := fmt.Errorf("panic: %v", rvr)
			if ww.Status() != 0 {
				h.logger.Error("panic after response started",
					zap.Error(err),
					zap.Int("status", ww.Status()),
					zap.String("path", r.URL.Path),
				)

				return
			}

			h.Fail(ww, r, err)
		}()

		next.ServeHTTP(ww, r)
	})
}
