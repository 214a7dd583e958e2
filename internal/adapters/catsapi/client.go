package catsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cats-form/internal/domain/cats"
	"cats-form/internal/platform/httpclient"
)

const catsPath = "/cats"

var (
	ErrNotConfigured = errors.New("catsapi: client not configured")
	ErrMissingID     = errors.New("catsapi: created cat has no id")
)

// Client implementa cats.Source contra GET/POST /cats.
type Client struct {
	http *httpclient.Client
}

var _ cats.Source = (*Client)(nil)

func New(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) List(ctx context.Context) ([]cats.Cat, error) {
	if c == nil || c.http == nil {
		return nil, ErrNotConfigured
	}

	var out []cats.Cat
	if err := c.http.DoJSON(ctx, http.MethodGet, catsPath, nil, &out); err != nil {
		return nil, fmt.Errorf("catsapi: list: %w", err)
	}
	if out == nil {
		out = []cats.Cat{}
	}
	return out, nil
}

// Create confía en la forma de la respuesta; solo exige un id.
func (c *Client) Create(ctx context.Context, in cats.CreateInput) (cats.Cat, error) {
	if c == nil || c.http == nil {
		return cats.Cat{}, ErrNotConfigured
	}

	var out cats.Cat
	if err := c.http.DoJSON(ctx, http.MethodPost, catsPath, in, &out); err != nil {
		return cats.Cat{}, fmt.Errorf("catsapi: create: %w", err)
	}
	if out.ID.IsZero() {
		return cats.Cat{}, ErrMissingID
	}
	return out, nil
}
