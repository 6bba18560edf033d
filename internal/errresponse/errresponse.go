// Package errresponse holds the error payloads of the REST api. Every
// client-facing error has the shape {"error":{"message":"..."}}.
package errresponse

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// ServerErrorMessage replaces the real cause of a 500 in production.
const ServerErrorMessage = "server error"

// ErrResponse renderer type for handling all sorts of errors. It is also an
// error, so handlers can return it directly.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Detail string    `json:"message,omitempty"` // raw error text, development only
	Body   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

func (e *ErrResponse) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Body.Message
}

func (e *ErrResponse) Unwrap() error {
	return e.Err
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

func ErrInvalidRequest(err error) *ErrResponse {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Body:           ErrorBody{Message: err.Error()},
	}
}

// ErrMissingField reports the first required field absent from a body.
func ErrMissingField(field string) *ErrResponse {
	return ErrInvalidRequest(fmt.Errorf("Missing '%s' in request body", field))
}

// ErrEmptyPatch is returned for a PATCH that names no updatable field.
var ErrEmptyPatch = ErrInvalidRequest(
	errors.New("Request body must contain either 'title', 'style', or 'content'"),
)

var ErrNotFound = &ErrResponse{
	HTTPStatusCode: http.StatusNotFound,
	Body:           ErrorBody{Message: "Article doesn't exist"},
}

// ErrServer wraps an unexpected failure as a 500. Outside production the
// raw message is exposed to help debugging.
func ErrServer(err error, production bool) *ErrResponse {
	resp := &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Body:           ErrorBody{Message: ServerErrorMessage},
	}

	if !production {
		resp.Detail = err.Error()
		resp.Body.Message = err.Error()
	}

	return resp
}
