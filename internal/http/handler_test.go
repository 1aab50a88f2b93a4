package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/fjod/go_storefront/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

type testServer struct {
	server  *httptest.Server
	client  *http.Client
	catalog *catalog.MemoryCatalog
	kv      *storage.MemoryKV
	manager *Manager
}

// newTestServer wires the routes the way cmd/server does, backed by the
// seeded in-memory catalog, and returns a client with a cookie jar so the
// session cookie flows across requests.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.NewMemoryCatalog(catalog.SeedProducts())
	kv := storage.NewMemoryKV()

	verifier, err := session.NewStaticVerifier("user@example.com", "password123")
	require.NoError(t, err)

	manager := NewManager(func() *Scope {
		return &Scope{
			Cart:    cart.NewStore(cat, logger),
			Session: session.NewStore(verifier, kv, logger),
		}
	}, 30*time.Minute, logger)
	t.Cleanup(manager.Stop)

	productHandler := NewProductHandler(cat, testTimeout)
	cartHandler := NewCartHandler(cat, testTimeout)
	authHandler := NewAuthHandler(testTimeout)
	reportingHandler := NewReportingHandler()

	r := chi.NewRouter()
	r.Use(SessionMiddleware(manager))
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
			r.Delete("/remembered", authHandler.ForgetRemembered)
		})
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth)
			r.Get("/orders", reportingHandler.Orders)
			r.Get("/dashboard/sales", reportingHandler.MonthlySales)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		server:  srv,
		client:  &http.Client{Jar: jar},
		catalog: cat,
		kv:      kv,
		manager: manager,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
