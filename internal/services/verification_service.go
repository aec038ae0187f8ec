package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/repository"
)

// RecordKind selects which verifiable record a transition targets.
type RecordKind string

const (
	RecordWorker   RecordKind = "worker"
	RecordDocument RecordKind = "document"
)

// VerificationService applies the Pending/Verified/Rejected transitions to
// worker records and identity documents. Both kinds share one transition
// path; re-applying a transition or moving between terminal states is an
// allowed administrative override.
type VerificationService struct {
	admins        repository.AdminRepository
	verifications repository.VerificationRepository

	now func() time.Time
}

// NewVerificationService constructs a VerificationService.
func NewVerificationService(admins repository.AdminRepository, verifications repository.VerificationRepository) *VerificationService {
	return &VerificationService{
		admins:        admins,
		verifications: verifications,
		now:           time.Now,
	}
}

// Verify marks the record Verified, stamping the acting admin and clearing
// any previous rejection reason. The admin's verification counter is
// incremented in the same transaction as the status write.
func (s *VerificationService) Verify(kind RecordKind, recordID, adminAccountID uuid.UUID) error {
	if err := s.requireVerifier(adminAccountID); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"verification_status": models.VerificationVerified,
		"verified_at":         s.now(),
		"verified_by":         adminAccountID,
		"rejection_reason":    nil,
	}
	return s.apply(kind, recordID, updates, adminAccountID)
}

// Reject marks the record Rejected with the given non-empty reason.
func (s *VerificationService) Reject(kind RecordKind, recordID, adminAccountID uuid.UUID, reason string) error {
	if err := s.requireVerifier(adminAccountID); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperrors.Validation("rejection_reason", "a rejection reason is required")
	}

	updates := map[string]interface{}{
		"verification_status": models.VerificationRejected,
		"verified_at":         s.now(),
		"verified_by":         adminAccountID,
		"rejection_reason":    reason,
	}
	return s.apply(kind, recordID, updates, adminAccountID)
}

func (s *VerificationService) requireVerifier(adminAccountID uuid.UUID) error {
	admin, err := s.admins.GetByAccount(adminAccountID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return apperrors.Permission("an admin profile is required")
		}
		return err
	}
	if !admin.CanVerifyWorkers {
		return apperrors.Permission("missing can_verify_workers capability")
	}
	return nil
}

func (s *VerificationService) apply(kind RecordKind, recordID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error {
	switch kind {
	case RecordWorker:
		return s.verifications.ApplyToWorker(recordID, updates, adminAccountID)
	case RecordDocument:
		return s.verifications.ApplyToDocument(recordID, updates, adminAccountID)
	default:
		return apperrors.Validation("kind", "unknown record kind")
	}
}
