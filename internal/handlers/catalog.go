// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"radhakart/internal/catalog"
)

// Catalog serves the aggregated image catalog endpoints.
type Catalog struct {
	svc *catalog.Service
}

// NewCatalog creates the catalog handler group.
func NewCatalog(svc *catalog.Service) *Catalog {
	return &Catalog{svc: svc}
}

// GetImages returns the category-keyed catalog, rebuilt from the media
// store on every call. Any upstream failure is a 500; the operation is
// idempotent, so the client retries.
func (h *Catalog) GetImages(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.FetchCatalog(r.Context())
	if err != nil {
		slog.Error("fetch catalog failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch images")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// GetCloudImages returns the flat recursive asset feed.
func (h *Catalog) GetCloudImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.FetchAllImages(r.Context())
	if err != nil {
		slog.Error("fetch image feed failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch images")
		return
	}
	writeJSON(w, http.StatusOK, images)
}
