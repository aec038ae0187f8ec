package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/repository"
	"github.com/example/gigwork/internal/utils"
)

// ProfileUpdateInput carries a partial profile update. Nil fields keep
// their prior values.
type ProfileUpdateInput struct {
	CurrentLatitude   *float64 `json:"current_latitude"`
	CurrentLongitude  *float64 `json:"current_longitude"`
	CurrentAddress    *string  `json:"current_address"`
	PreferredRadiusKM *float64 `json:"preferred_radius_km"`
}

// LocationInput carries a new saved location.
type LocationInput struct {
	Label        string              `json:"label" validate:"required,max=50"`
	LocationType models.LocationType `json:"location_type" validate:"required,oneof=Home Work Other"`
	Latitude     *float64            `json:"latitude" validate:"required"`
	Longitude    *float64            `json:"longitude" validate:"required"`
	Address      string              `json:"address" validate:"required"`
	IsDefault    bool                `json:"is_default"`
}

// ProfileService manages per-account profiles and saved locations.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService constructs a ProfileService.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the caller's profile.
func (s *ProfileService) Get(accountID uuid.UUID) (*models.Profile, error) {
	return s.profiles.GetByAccount(accountID)
}

// Update applies a partial update to the caller's profile.
func (s *ProfileService) Update(accountID uuid.UUID, in ProfileUpdateInput) (*models.Profile, error) {
	profile, err := s.profiles.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.CurrentLatitude != nil {
		updates["current_latitude"] = *in.CurrentLatitude
	}
	if in.CurrentLongitude != nil {
		updates["current_longitude"] = *in.CurrentLongitude
	}
	if in.CurrentAddress != nil {
		updates["current_address"] = *in.CurrentAddress
	}
	if in.PreferredRadiusKM != nil {
		radius := *in.PreferredRadiusKM
		if radius < models.MinSearchRadiusKM || radius > models.MaxSearchRadiusKM {
			return nil, apperrors.Validation("preferred_radius_km", "search radius must be between 0.2 and 20.0 km")
		}
		updates["preferred_radius_km"] = radius
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("", "no fields to update")
	}
	updates["updated_at"] = time.Now()

	if err := s.profiles.Update(profile.ID, updates); err != nil {
		return nil, err
	}
	return s.profiles.GetByAccount(accountID)
}

// AddLocation saves a labelled location under the caller's profile. Labels
// are unique per profile.
func (s *ProfileService) AddLocation(accountID uuid.UUID, in LocationInput) (*models.SavedLocation, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}

	loc := &models.SavedLocation{
		ProfileID:    profile.ID,
		Label:        in.Label,
		LocationType: in.LocationType,
		Latitude:     *in.Latitude,
		Longitude:    *in.Longitude,
		Address:      in.Address,
		IsDefault:    in.IsDefault,
	}
	if err := s.profiles.CreateLocation(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// ListLocations returns the caller's saved locations.
func (s *ProfileService) ListLocations(accountID uuid.UUID) ([]models.SavedLocation, error) {
	profile, err := s.profiles.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	return s.profiles.ListLocations(profile.ID)
}

// RemoveLocation deletes one of the caller's saved locations.
func (s *ProfileService) RemoveLocation(accountID, locationID uuid.UUID) error {
	profile, err := s.profiles.GetByAccount(accountID)
	if err != nil {
		return err
	}
	return s.profiles.DeleteLocation(profile.ID, locationID)
}
