// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"radhakart/internal/catalog"
	"radhakart/internal/cloudinary"
	"radhakart/internal/handlers"
	"radhakart/internal/store"
)

// emptyAssetStore satisfies catalog.Store with empty results, enough to
// verify that routes resolve and respond.
type emptyAssetStore struct{}

func (emptyAssetStore) SubFolders(ctx context.Context, path string) ([]cloudinary.Folder, error) {
	return nil, nil
}

func (emptyAssetStore) Search(ctx context.Context, req cloudinary.SearchRequest) (*cloudinary.SearchResult, error) {
	return &cloudinary.SearchResult{}, nil
}

func testRouter() http.Handler {
	cld := cloudinary.New(cloudinary.Config{CloudName: "demo-cloud", APIKey: "k", APISecret: "s"})
	svc := catalog.New(emptyAssetStore{}, "Radha")

	return New(
		handlers.NewCatalog(svc),
		handlers.NewUpload(cld),
		handlers.NewAuth(store.NewMemoryUserStore()),
		handlers.NewOrders(store.NewMemoryOrderStore(), "demo-user"),
	)
}

func TestRoutes_Resolve(t *testing.T) {
	r := testRouter()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/getImages", "", http.StatusOK},
		{http.MethodGet, "/api/getCloudImages", "", http.StatusOK},
		{http.MethodGet, "/api/signature", "", http.StatusOK},
		{http.MethodPost, "/api/placeOrder", "", http.StatusBadRequest},
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodGet, "/api/getOrders/alice", "", http.StatusOK},
		{http.MethodGet, "/api/nothing-here", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

func TestRoutes_GlobalMiddlewareApplied(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header missing on routed response, got %q", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("security header missing on routed response, got %q", got)
	}
}
