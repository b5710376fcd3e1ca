// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog aggregates the media store's folders and search results
// into the category-keyed structure the storefront renders. Nothing here is
// cached: every call reflects the store's state at fetch time.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"radhakart/internal/cloudinary"
	"radhakart/internal/models"
)

// Store is the slice of the media store API the aggregator needs. It is
// satisfied by *cloudinary.Client and by fakes in tests.
type Store interface {
	Search(ctx context.Context, req cloudinary.SearchRequest) (*cloudinary.SearchResult, error)
	SubFolders(ctx context.Context, path string) ([]cloudinary.Folder, error)
}

const (
	// categoryPageSize bounds a per-folder search. The taxonomy is shallow
	// and small, so a single page covers any category.
	categoryPageSize = 500

	// feedPageSize is the page size of the flat recursive scan.
	feedPageSize = 100

	// maxFolderFetches bounds the fan-out over per-folder searches. The
	// queries are independent and read-only, so they run concurrently, but
	// results for each category keep the store's ascending order.
	maxFolderFetches = 4
)

// Service aggregates the contents of one root folder.
type Service struct {
	store Store
	root  string
}

// New creates a catalog service over the given media store and root folder.
func New(store Store, root string) *Service {
	return &Service{store: store, root: root}
}

// FetchCatalog lists the root's immediate subfolders and searches each one,
// plus the root itself, assembling a category-keyed catalog. Subfolder
// results are keyed by the folder path relative to the root; assets sitting
// directly in the root are keyed under the root's own name with the "All"
// sentinel category. Any single upstream failure fails the whole call; the
// operation is read-only and idempotent, so the client just retries.
func (s *Service) FetchCatalog(ctx context.Context) (models.Catalog, error) {
	folders, err := s.store.SubFolders(ctx, s.root)
	if err != nil {
		return nil, fmt.Errorf("list subfolders of %s: %w", s.root, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFolderFetches)

	// Results are collected by index so concurrent completion order cannot
	// reshuffle categories.
	perFolder := make([][]models.Image, len(folders))
	for i, folder := range folders {
		i, folder := i, folder
		g.Go(func() error {
			images, err := s.searchFolder(gctx, folder.Path)
			if err != nil {
				return err
			}
			perFolder[i] = images
			return nil
		})
	}

	var rootImages []models.Image
	g.Go(func() error {
		images, err := s.searchRoot(gctx)
		if err != nil {
			return err
		}
		rootImages = images
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := make(models.Catalog, len(folders)+1)
	for i, folder := range folders {
		key := strings.TrimPrefix(folder.Path, s.root+"/")
		catalog[key] = perFolder[i]
	}
	if len(rootImages) > 0 {
		catalog[s.root] = rootImages
	}
	return catalog, nil
}

// FetchAllImages walks the store's search pagination cursor to completion
// and returns every asset under the root as a flat feed. The scan is
// sequential because each page's request needs the previous page's cursor.
func (s *Service) FetchAllImages(ctx context.Context) ([]models.Image, error) {
	pager := NewPager(s.store, s.root+"/*", feedPageSize)

	images := []models.Image{}
	for {
		resources, more, err := pager.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.root, err)
		}
		for _, r := range resources {
			// The prefix wildcard can match sibling folders that merely
			// share the root's name as a prefix; drop them.
			if !strings.HasPrefix(r.PublicID, s.root+"/") {
				continue
			}
			images = append(images, s.toImage(r))
		}
		if !more {
			return images, nil
		}
	}
}

// searchFolder returns the images of one subfolder, ascending by public id.
func (s *Service) searchFolder(ctx context.Context, path string) ([]models.Image, error) {
	result, err := s.store.Search(ctx, cloudinary.SearchRequest{
		Expression: fmt.Sprintf("folder:%q", path),
		MaxResults: categoryPageSize,
		SortBy:     []map[string]string{{"public_id": "asc"}},
		WithField:  []string{"context"},
	})
	if err != nil {
		return nil, fmt.Errorf("search folder %s: %w", path, err)
	}
	return s.toImages(result.Resources), nil
}

// searchRoot returns the assets placed directly in the root folder,
// excluding everything under its subfolders.
func (s *Service) searchRoot(ctx context.Context) ([]models.Image, error) {
	result, err := s.store.Search(ctx, cloudinary.SearchRequest{
		Expression: fmt.Sprintf("folder:%q AND NOT folder:%q", s.root, s.root+"/*"),
		MaxResults: categoryPageSize,
		SortBy:     []map[string]string{{"public_id": "asc"}},
		WithField:  []string{"context"},
	})
	if err != nil {
		return nil, fmt.Errorf("search root %s: %w", s.root, err)
	}
	return s.toImages(result.Resources), nil
}

func (s *Service) toImages(resources []cloudinary.Resource) []models.Image {
	images := make([]models.Image, 0, len(resources))
	for _, r := range resources {
		images = append(images, s.toImage(r))
	}
	return images
}

// toImage maps a store resource to its storefront view. The category is the
// public id's path between the root and the leaf name, or "All" when the
// asset sits directly in the root.
func (s *Service) toImage(r cloudinary.Resource) models.Image {
	rel := strings.TrimPrefix(r.PublicID, s.root+"/")

	category := models.CategoryAll
	name := rel
	if idx := strings.LastIndex(rel, "/"); idx != -1 {
		category = rel[:idx]
		name = rel[idx+1:]
	}

	return models.Image{
		PublicID:    r.PublicID,
		Name:        name,
		Category:    category,
		URL:         r.SecureURL,
		Description: r.Context["description"],
		Price:       r.Context["price"],
		Width:       r.Width,
		Height:      r.Height,
		CreatedAt:   r.CreatedAt,
	}
}
