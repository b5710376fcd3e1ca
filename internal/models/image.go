// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the JSON view types exchanged with the storefront
// frontend and the shapes persisted by the stores.
package models

import "time"

// CategoryAll is the sentinel category assigned to images that live directly
// in the root folder, outside any subfolder.
const CategoryAll = "All"

// Image is the storefront view of a single asset in the media store.
// Description and Price come from the asset's context metadata and may be
// empty when the uploader attached none.
type Image struct {
	PublicID    string    `json:"publicId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	URL         string    `json:"cloudinaryUrl"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Catalog maps a category name to the ordered images it contains. It is
// rebuilt from the media store on every request and never cached.
type Catalog map[string][]Image
