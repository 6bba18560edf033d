// client_integration_test.go
//go:build integration
// +build integration

package client

import (
	"context"
	"net/http"
	"testing"
)

var c = Client{
	Addr:   "http://localhost:8000",
	Client: http.Client{},
}

func TestPing(t *testing.T) {
	if s, err := c.Ping(context.Background()); err != nil || s != "pong" {
		t.Fail()
	}
}

func TestHello(t *testing.T) {
	if s, err := c.Hello(context.Background()); err != nil || s != "Hello, world!" {
		t.Fail()
	}
}
