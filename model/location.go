// api/model/location.go
package model

import (
	"time"
)

// Location status values as stored and as sent on the wire.
const (
	StatusInactive = 0
	StatusActive   = 1
)

type LocationEntity struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	CustomID    string    `gorm:"column:custom_id;size:64;uniqueIndex" json:"customId"`
	Name        string    `gorm:"size:255" json:"name"`
	Description string    `gorm:"size:512" json:"description"`
	Status      int       `json:"status"`
	IsDefault   bool      `gorm:"column:is_default" json:"isDefault"`
	CreatedBy   string    `gorm:"size:64" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (LocationEntity) TableName() string { return "locations" }

// LocationRequest is the create payload. Status defaults to active when the
// request does not specify one.
type LocationRequest struct {
	CustomID    string `json:"customId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      *int   `json:"status,omitempty"`
}

// UpdateLocationRequest carries only the mutable fields; a nil Status means
// no transition was requested.
type UpdateLocationRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      *int   `json:"status,omitempty"`
}

type LocationResponse struct {
	LocationID string `json:"locationId"`
	Message    string `json:"message"`
}

// LocationDetails is the read-side shape, including the custom ids of the
// studies running at sites attached to the location.
type LocationDetails struct {
	LocationID  string   `json:"locationId"`
	CustomID    string   `json:"customId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      int      `json:"status"`
	IsDefault   bool     `json:"isDefault"`
	Studies     []string `json:"studies"`
}

type LocationDetailsResponse struct {
	Locations []LocationDetails `json:"locations"`
}
