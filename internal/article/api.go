// Package article serves the RESTy routes for the "articles" resource.
package article

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/articlerequest"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// Handler maps article routes onto the store. It keeps no state between
// requests.
type Handler struct {
	store      store.Articles
	logger     *zap.Logger
	production bool
}

// NewHandler builds a Handler. In production mode 500 responses carry a
// fixed message instead of the underlying error.
func NewHandler(s store.Articles, logger *zap.Logger, production bool) *Handler {
	return &Handler{
		store:      s,
		logger:     logger.Named("article"),
		production: production,
	}
}

// handlerFunc is an http.HandlerFunc that reports failure instead of
// writing it.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// Routes returns the router to mount at /articles.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.handle(h.ListArticles))   // GET /articles
	r.Post("/", h.handle(h.CreateArticle)) // POST /articles

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(h.ArticleCtx)                      // Load the article on the request context
		r.Get("/", h.handle(h.GetArticle))       // GET /articles/123
		r.Delete("/", h.handle(h.DeleteArticle)) // DELETE /articles/123
		r.Patch("/", h.handle(h.UpdateArticle))  // PATCH /articles/123
	})

	return r
}

func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Fail(w, r, err)
		}
	}
}

// Fail is the single place where errors become responses. Client errors
// render as they are; everything else is logged and answered with a 500.
func (h *Handler) Fail(w http.ResponseWriter, r *http.Request, err error) {
	var errResp *errresponse.ErrResponse
	if !errors.As(err, &errResp) || errResp.HTTPStatusCode >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		errResp = errresponse.ErrServer(err, h.production)
	}

	if rerr := render.Render(w, r, errResp); rerr != nil {
		h.logger.Error("failed to render error response", zap.Error(rerr))
	}
}

// ListArticles returns every article, sanitized.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) error {
	articles, err := h.store.GetAllArticles(r.Context())
	if err != nil {
		return err
	}

	return render.RenderList(w, r, articleresponse.NewArticleListResponse(articles))
}

// CreateArticle persists the posted Article and returns it
// back to the client as an acknowledgement.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) error {
	data := &articlerequest.ArticleRequest{}
	if err := articlerequest.Bind(r, data); err != nil {
		return err
	}

	article, err := h.store.InsertArticle(r.Context(), data.Article())
	if err != nil {
		return err
	}

	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(article.ID, 10)))
	render.Status(r, http.StatusCreated)

	return render.Render(w, r, articleresponse.NewArticleResponse(article))
}

// GetArticle returns the article ArticleCtx loaded.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) error {
	article := FromContext(r.Context())

	return render.Render(w, r, articleresponse.NewArticleResponse(article))
}

// UpdateArticle applies a partial update. Only the supplied fields change.
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) error {
	article := FromContext(r.Context())

	data := &articlerequest.ArticlePatchRequest{}
	if err := articlerequest.Bind(r, data); err != nil {
		return err
	}

	n, err := h.store.UpdateArticle(r.Context(), article.ID, data.Patch())
	if err != nil {
		return err
	}
	// Deleted between lookup and update.
	if n == 0 {
		return errresponse.ErrNotFound
	}

	render.NoContent(w, r)

	return nil
}

// DeleteArticle removes an existing Article from our persistent store.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) error {
	article := FromContext(r.Context())

	if err := h.store.DeleteArticle(r.Context(), article.ID); err != nil {
		return err
	}

	render.NoContent(w, r)

	return nil
}
