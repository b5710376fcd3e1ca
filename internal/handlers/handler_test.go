// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Everything runs against in-memory stores and a scripted media store,
// no network, no database.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"radhakart/internal/catalog"
	"radhakart/internal/cloudinary"
	"radhakart/internal/models"
	"radhakart/internal/store"
)

const testDemoUser = "demo-user"

// fakeAssetStore scripts media store responses, keyed by expression and
// cursor. A nil entry means an empty result.
type fakeAssetStore struct {
	folders    []cloudinary.Folder
	foldersErr error
	results    map[string]*cloudinary.SearchResult
	searchErr  error
}

func (f *fakeAssetStore) SubFolders(ctx context.Context, path string) ([]cloudinary.Folder, error) {
	return f.folders, f.foldersErr
}

func (f *fakeAssetStore) Search(ctx context.Context, req cloudinary.SearchRequest) (*cloudinary.SearchResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if result, ok := f.results[req.Expression+"|"+req.NextCursor]; ok {
		return result, nil
	}
	return &cloudinary.SearchResult{}, nil
}

// testEnv bundles the handler groups and their backing fakes.
type testEnv struct {
	assets *fakeAssetStore
	users  store.UserStore
	orders store.OrderStore
	cld    *cloudinary.Client
	router chi.Router
}

// newTestEnv wires the full handler surface over in-memory dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	assets := &fakeAssetStore{results: make(map[string]*cloudinary.SearchResult)}
	users := store.NewMemoryUserStore()
	orders := store.NewMemoryOrderStore()
	cld := cloudinary.New(cloudinary.Config{
		CloudName: "demo-cloud",
		APIKey:    "key123",
		APISecret: "testsecret",
	})

	svc := catalog.New(assets, "Radha")

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		c := NewCatalog(svc)
		u := NewUpload(cld)
		a := NewAuth(users)
		o := NewOrders(orders, testDemoUser)

		r.Get("/getImages", c.GetImages)
		r.Get("/getCloudImages", c.GetCloudImages)
		r.Get("/signature", u.Signature)
		r.Post("/signup", a.Signup)
		r.Post("/login", a.Login)
		r.Post("/placeOrder", o.Place)
		r.Get("/orders", o.List)
		r.Get("/getOrders/{userId}", o.ListForUser)
	})

	return &testEnv{assets: assets, users: users, orders: orders, cld: cld, router: r}
}

// do runs one request through the router and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
}

// placeTestOrder appends an order directly to the backing ledger.
func (e *testEnv) placeTestOrder(t *testing.T, userID string) *models.Order {
	t.Helper()
	created, err := e.orders.Append(context.Background(), &models.Order{
		UserID: userID,
		Items:  []models.OrderItem{{Name: "Idol", Price: 4500, Quantity: 1}},
		Total:  4500,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return created
}
