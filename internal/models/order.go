// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// OrderItem is a single line in an order, captured at purchase time so the
// order survives later catalog changes.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// Order is a recorded purchase. IDs are time-based and assigned by the
// order store on append.
type Order struct {
	ID            string      `json:"orderId"`
	UserID        string      `json:"userId"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	State         string      `json:"state"`
	Pincode       string      `json:"pincode"`
	Phone         string      `json:"phone"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
	CashCollected bool        `json:"cashCollected"`
	Images        []string    `json:"images,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
}
