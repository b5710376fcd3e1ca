// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"

	"radhakart/internal/cloudinary"
)

// Pager is a pull-based iterator over the store's paginated search. Each
// Next call fetches one page and remembers the continuation cursor; the
// scan is exhausted when the store stops returning a cursor. There is no
// snapshot isolation: items mutated in the store mid-scan can be skipped
// or duplicated, which is acceptable for catalog browsing.
type Pager struct {
	store      Store
	expression string
	pageSize   int

	cursor string
	done   bool
}

// NewPager creates a pager for the given search expression, sorted
// ascending by public id so iteration is deterministic.
func NewPager(store Store, expression string, pageSize int) *Pager {
	return &Pager{store: store, expression: expression, pageSize: pageSize}
}

// Next fetches the next page. The second return value reports whether more
// pages remain; once it is false, further calls return an empty page.
func (p *Pager) Next(ctx context.Context) ([]cloudinary.Resource, bool, error) {
	if p.done {
		return nil, false, nil
	}

	result, err := p.store.Search(ctx, cloudinary.SearchRequest{
		Expression: p.expression,
		MaxResults: p.pageSize,
		NextCursor: p.cursor,
		SortBy:     []map[string]string{{"public_id": "asc"}},
		WithField:  []string{"context"},
	})
	if err != nil {
		return nil, false, err
	}

	p.cursor = result.NextCursor
	if p.cursor == "" {
		p.done = true
	}
	return result.Resources, !p.done, nil
}

// Reset rewinds the pager so the scan can be restarted from the first page.
func (p *Pager) Reset() {
	p.cursor = ""
	p.done = false
}
