// Package client is a small Go client for the articles REST service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

type Client struct {
	http.Client
	Addr string
}

type Article struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Style         string    `json:"style"`
	Content       string    `json:"content"`
	DatePublished time.Time `json:"date_published"`
}

// ArticleFields is the body of create and update calls. Nil fields are
// left out of the request.
type ArticleFields struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Style   *string `json:"style,omitempty"`
}

// Error is a non-2xx answer from the service.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("articles: %d %s", e.StatusCode, e.Message)
}

// String is a helper for filling ArticleFields.
func String(s string) *string {
	return &s
}

func (c *Client) Hello(ctx context.Context) (string, error) {
	return c.text(ctx, "/")
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	return c.text(ctx, "/ping")
}

func (c *Client) List(ctx context.Context) ([]Article, error) {
	var articles []Article
	if _, err := c.do(ctx, http.MethodGet, "/articles", nil, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*Article, error) {
	var a Article
	if _, err := c.do(ctx, http.MethodGet, articlePath(id), nil, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

// Create posts a new article and returns it with the Location the server
// assigned.
func (c *Client) Create(ctx context.Context, fields ArticleFields) (*Article, string, error) {
	var a Article
	resp, err := c.do(ctx, http.MethodPost, "/articles", fields, &a)
	if err != nil {
		return nil, "", err
	}

	return &a, resp.Header.Get("Location"), nil
}

func (c *Client) Update(ctx context.Context, id int64, fields ArticleFields) error {
	_, err := c.do(ctx, http.MethodPatch, articlePath(id), fields, nil)

	return err
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, articlePath(id), nil, nil)

	return err
}

func articlePath(id int64) string {
	return "/articles/" + strconv.FormatInt(id, 10)
}

func (c *Client) text(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Addr+path, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)

		return resp, &Error{StatusCode: resp.StatusCode, Message: e.Error.Message}
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}

	return resp, nil
}
