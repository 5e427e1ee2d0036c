package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlotID uniquely identifies a plot.
type PlotID uuid.UUID

func (id PlotID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id PlotID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *PlotID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// PlotStatus is the sale state of a plot.
//
//	available -> pending_payment   (order created)
//	pending_payment -> sold        (order completed)
//	pending_payment -> available   (order cancelled)
//	available -> locked            (cart hold or administrative hold)
type PlotStatus string

const (
	PlotStatusAvailable      PlotStatus = "available"
	PlotStatusLocked         PlotStatus = "locked"
	PlotStatusPendingPayment PlotStatus = "pending_payment"
	PlotStatusSold           PlotStatus = "sold"
)

// Valid reports whether s is one of the declared plot statuses.
func (s PlotStatus) Valid() bool {
	switch s {
	case PlotStatusAvailable, PlotStatusLocked, PlotStatusPendingPayment, PlotStatusSold:
		return true
	}

	return false
}

// DefaultUsageType is assigned to plots created without a usage type.
const DefaultUsageType = "Residential"

// Plot is a parcel of land listed for sale.
type Plot struct {
	ID          PlotID          `json:"id"`
	PlotNumber  string          `json:"plot_number,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	AreaSqm     decimal.Decimal `json:"area_sqm"`
	Price       decimal.Decimal `json:"price"`
	ImageURLs   []string        `json:"image_urls"`
	UsageType   string          `json:"usage_type"`
	Status      PlotStatus      `json:"status"`
	CouncilID   *int64          `json:"council_id,omitempty"`
	// Boundary is an optional GeoJSON polygon.
	Boundary     json.RawMessage `json:"boundary,omitempty"`
	UploadedByID *UserID         `json:"uploaded_by_id,omitempty"`
	// LockedByID and LockedUntil are set while the plot is held in a cart.
	// An administrative lock has neither.
	LockedByID  *UserID    `json:"locked_by_id,omitempty"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Council is only populated by reads that explicitly load the location chain.
	Council *Council `json:"council,omitempty"`
}
