package catsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cats-form/internal/domain/cats"
	"cats-form/internal/platform/httpclient"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc, err := httpclient.NewWithBaseURL(ts.URL, time.Second)
	if err != nil {
		t.Fatalf("httpclient: %v", err)
	}
	return New(hc)
}

func TestList(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/cats" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Tom","breed":"Siamese","age":2}]`))
	})

	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Tom" || got[0].ID.String() != "1" || got[0].Age != 2 {
		t.Fatalf("unexpected list %+v", got)
	}
}

func TestList_NullBodyIsEmpty(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	got, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestCreate_SendsNumericAge(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cats" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content-type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"Kit","breed":"Tabby","age":3}` {
			t.Errorf("unexpected body %s", string(body))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 2, "name": "Kit", "breed": "Tabby", "age": 3})
	})

	got, err := c.Create(context.Background(), cats.CreateInput{Name: "Kit", Breed: "Tabby", Age: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID.String() != "2" || got.Name != "Kit" {
		t.Fatalf("unexpected cat %+v", got)
	}
}

func TestCreate_Errors(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"bad"}`, http.StatusUnprocessableEntity)
	})
	_, err := c.Create(context.Background(), cats.CreateInput{Name: "Kit"})
	var he *httpclient.HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}

	c = newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Kit"}`))
	})
	if _, err := c.Create(context.Background(), cats.CreateInput{Name: "Kit"}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}

	var nilClient *Client
	if _, err := nilClient.List(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
