// Package models defines the asset entity persisted by the server and the
// inputs accepted to create and update it.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of an asset.
type AssetStatus string

const (
	StatusActive      AssetStatus = "active"
	StatusInactive    AssetStatus = "inactive"
	StatusMaintenance AssetStatus = "maintenance"
	StatusDisposed    AssetStatus = "disposed"
)

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []AssetStatus {
	return []AssetStatus{StatusActive, StatusInactive, StatusMaintenance, StatusDisposed}
}

// Valid reports whether s is one of the declared statuses.
func (s AssetStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance, StatusDisposed:
		return true
	}
	return false
}

// Asset is a physical item tracked by the organisation.
type Asset struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Category      *string         `json:"category"`
	SerialNumber  string          `json:"serial_number"`
	PurchaseDate  Date            `json:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Status        AssetStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
