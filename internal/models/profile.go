package models

import (
	"github.com/google/uuid"
)

// LocationType categorizes a saved location.
type LocationType string

const (
	LocationHome  LocationType = "Home"
	LocationWork  LocationType = "Work"
	LocationOther LocationType = "Other"
)

// Bounds for the preferred search radius, in kilometers.
const (
	MinSearchRadiusKM     = 0.2
	MaxSearchRadiusKM     = 20.0
	DefaultSearchRadiusKM = 5.0
)

// Profile stores per-account location state and search preferences.
// Exactly one exists per account, created at registration.
type Profile struct {
	BaseModel
	AccountID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	CurrentLatitude   *float64  `json:"current_latitude"`
	CurrentLongitude  *float64  `json:"current_longitude"`
	CurrentAddress    string    `json:"current_address"`
	PreferredRadiusKM float64   `gorm:"not null;default:5.0" json:"preferred_radius_km"`

	SavedLocations []SavedLocation `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"saved_locations,omitempty"`
}

// SavedLocation is a labelled place under a profile. Labels are unique per
// profile.
type SavedLocation struct {
	BaseModel
	ProfileID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_profile_label" json:"profile_id"`
	Label        string       `gorm:"type:varchar(50);not null;uniqueIndex:idx_profile_label" json:"label"`
	LocationType LocationType `gorm:"type:varchar(10);not null;default:'Home'" json:"location_type"`
	Latitude     float64      `gorm:"not null" json:"latitude"`
	Longitude    float64      `gorm:"not null" json:"longitude"`
	Address      string       `gorm:"not null" json:"address"`
	IsDefault    bool         `gorm:"not null;default:false" json:"is_default"`
}

// ValidLocationType reports whether t is part of the controlled vocabulary.
func ValidLocationType(t LocationType) bool {
	switch t {
	case LocationHome, LocationWork, LocationOther:
		return true
	}
	return false
}
