package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/repository"
	"github.com/example/gigwork/internal/utils"
)

// BecomeWorkerInput carries the caller-supplied service attributes for the
// user-to-worker transition.
type BecomeWorkerInput struct {
	ServiceCategory  models.ServiceCategory `json:"service_category" validate:"required,oneof=Plumber Electrician Cleaner Carpenter"`
	Skills           string                 `json:"skills"`
	Bio              string                 `json:"bio" validate:"max=500"`
	HourlyRate       *float64               `json:"hourly_rate"`
	ServiceLatitude  *float64               `json:"service_latitude"`
	ServiceLongitude *float64               `json:"service_longitude"`
	ServiceRadiusKM  *float64               `json:"service_radius_km"`
}

// WorkerUpdateInput carries a partial worker record update. Rating and job
// counters are not writable through this path.
type WorkerUpdateInput struct {
	AvailabilityStatus *models.AvailabilityStatus `json:"availability_status"`
	ServiceCategory    *models.ServiceCategory    `json:"service_category"`
	Skills             *string                    `json:"skills"`
	Bio                *string                    `json:"bio"`
	HourlyRate         *float64                   `json:"hourly_rate"`
	ServiceLatitude    *float64                   `json:"service_latitude"`
	ServiceLongitude   *float64                   `json:"service_longitude"`
	ServiceRadiusKM    *float64                   `json:"service_radius_km"`
}

// WorkerService implements the user-to-worker onboarding transition and
// worker record access.
type WorkerService struct {
	accounts repository.AccountRepository
	workers  repository.WorkerRepository
	notifier Notifier
}

// NewWorkerService constructs a WorkerService. notifier may be nil.
func NewWorkerService(accounts repository.AccountRepository, workers repository.WorkerRepository, notifier Notifier) *WorkerService {
	return &WorkerService{accounts: accounts, workers: workers, notifier: notifier}
}

// BecomeWorker creates a worker record for the account and flips its role
// to Worker. Admins cannot become workers, and the transition happens at
// most once per account.
func (s *WorkerService) BecomeWorker(accountID uuid.UUID, in BecomeWorkerInput) (*models.WorkerRecord, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account.Role == models.RoleAdmin {
		return nil, apperrors.InvalidState("admin cannot become worker")
	}

	if _, err := s.workers.GetByAccount(accountID); err == nil {
		return nil, apperrors.InvalidState("worker profile already exists")
	} else if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, err
	}

	radius := models.DefaultServiceRadiusKM
	if in.ServiceRadiusKM != nil {
		radius = *in.ServiceRadiusKM
	}

	worker := &models.WorkerRecord{
		AccountID:          accountID,
		Verification:       models.Verification{Status: models.VerificationPending},
		AvailabilityStatus: models.AvailabilityInactive,
		ServiceCategory:    in.ServiceCategory,
		Skills:             in.Skills,
		Bio:                in.Bio,
		HourlyRate:         in.HourlyRate,
		ServiceLatitude:    in.ServiceLatitude,
		ServiceLongitude:   in.ServiceLongitude,
		ServiceRadiusKM:    radius,
	}
	if err := s.workers.CreateWithRole(worker); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.WorkerOnboarded(account.Email, string(in.ServiceCategory))
	}
	return worker, nil
}

// Get returns the worker record for an account.
func (s *WorkerService) Get(accountID uuid.UUID) (*models.WorkerRecord, error) {
	worker, err := s.workers.GetByAccount(accountID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.NotFound("worker profile not found, become a worker first")
		}
		return nil, err
	}
	return worker, nil
}

// Update applies a partial update to the caller's worker record.
func (s *WorkerService) Update(accountID uuid.UUID, in WorkerUpdateInput) (*models.WorkerRecord, error) {
	worker, err := s.Get(accountID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.AvailabilityStatus != nil {
		if !models.ValidAvailabilityStatus(*in.AvailabilityStatus) {
			return nil, apperrors.Validation("availability_status", "must be one of: Active Inactive Busy")
		}
		updates["availability_status"] = *in.AvailabilityStatus
	}
	if in.ServiceCategory != nil {
		if !models.ValidServiceCategory(*in.ServiceCategory) {
			return nil, apperrors.Validation("service_category", "must be one of: Plumber Electrician Cleaner Carpenter")
		}
		updates["service_category"] = *in.ServiceCategory
	}
	if in.Skills != nil {
		updates["skills"] = *in.Skills
	}
	if in.Bio != nil {
		if len(*in.Bio) > models.MaxBioLength {
			return nil, apperrors.Validation("bio", "must be at most 500 characters")
		}
		updates["bio"] = *in.Bio
	}
	if in.HourlyRate != nil {
		updates["hourly_rate"] = *in.HourlyRate
	}
	if in.ServiceLatitude != nil {
		updates["service_latitude"] = *in.ServiceLatitude
	}
	if in.ServiceLongitude != nil {
		updates["service_longitude"] = *in.ServiceLongitude
	}
	if in.ServiceRadiusKM != nil {
		updates["service_radius_km"] = *in.ServiceRadiusKM
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("", "no fields to update")
	}
	updates["updated_at"] = time.Now()

	if err := s.workers.Update(worker.ID, updates); err != nil {
		return nil, err
	}
	return s.workers.GetByID(worker.ID)
}

// ListByStatus returns worker records filtered by verification status, for
// the admin review queue. An empty status returns all.
func (s *WorkerService) ListByStatus(status models.VerificationStatus, pg utils.Pagination) ([]models.WorkerRecord, int64, error) {
	if status != "" {
		switch status {
		case models.VerificationPending, models.VerificationVerified, models.VerificationRejected:
		default:
			return nil, 0, apperrors.Validation("status", "must be one of: Pending Verified Rejected")
		}
	}
	return s.workers.ListByStatus(status, pg)
}
