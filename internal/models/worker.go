package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus is the shared Pending/Verified/Rejected state used by
// worker records and identity documents.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationRejected VerificationStatus = "Rejected"
)

// AvailabilityStatus tracks whether a worker is taking jobs.
type AvailabilityStatus string

const (
	AvailabilityActive   AvailabilityStatus = "Active"
	AvailabilityInactive AvailabilityStatus = "Inactive"
	AvailabilityBusy     AvailabilityStatus = "Busy"
)

// ServiceCategory is the primary trade a worker offers.
type ServiceCategory string

const (
	CategoryPlumber     ServiceCategory = "Plumber"
	CategoryElectrician ServiceCategory = "Electrician"
	CategoryCleaner     ServiceCategory = "Cleaner"
	CategoryCarpenter   ServiceCategory = "Carpenter"
)

// DocumentType is the kind of identity document a worker can submit.
type DocumentType string

const (
	DocCitizenship   DocumentType = "Citizenship"
	DocDriverLicense DocumentType = "Driver's License"
	DocNationalID    DocumentType = "National ID Card"
)

// MaxBioLength caps the worker bio.
const MaxBioLength = 500

// DefaultServiceRadiusKM is applied when onboarding omits a radius.
const DefaultServiceRadiusKM = 10.0

// Verification is the embedded verification state shared by WorkerRecord and
// DocumentRecord. VerifiedAt and VerifiedBy are stamped together on both
// verify and reject; RejectionReason is only set on reject.
type Verification struct {
	Status          VerificationStatus `gorm:"column:verification_status;type:varchar(10);not null;default:'Pending'" json:"verification_status"`
	VerifiedAt      *time.Time         `json:"verified_at,omitempty"`
	VerifiedBy      *uuid.UUID         `gorm:"type:uuid" json:"verified_by,omitempty"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
}

// WorkerRecord is the per-worker service offering, created when an account
// takes the worker role.
type WorkerRecord struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`

	Verification `gorm:"embedded"`
	// Weak reference: removing the verifying admin clears verified_by
	// instead of blocking the delete.
	Verifier *Account `gorm:"foreignKey:VerifiedBy;constraint:OnDelete:SET NULL" json:"-"`

	AvailabilityStatus AvailabilityStatus `gorm:"type:varchar(10);not null;default:'Inactive'" json:"availability_status"`
	ServiceCategory    ServiceCategory    `gorm:"type:varchar(20);not null" json:"service_category"`
	Skills             string             `json:"skills"`
	Bio                string             `gorm:"type:varchar(500)" json:"bio"`
	HourlyRate         *float64           `json:"hourly_rate,omitempty"`
	ServiceLatitude    *float64           `json:"service_latitude,omitempty"`
	ServiceLongitude   *float64           `json:"service_longitude,omitempty"`
	ServiceRadiusKM    float64            `gorm:"not null;default:10.0" json:"service_radius_km"`

	AverageRating      float64 `gorm:"not null;default:0" json:"average_rating"`
	TotalReviews       uint    `gorm:"not null;default:0" json:"total_reviews"`
	TotalJobsCompleted uint    `gorm:"not null;default:0" json:"total_jobs_completed"`

	Documents []DocumentRecord `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

// DocumentRecord is one identity document submitted by a worker. A worker
// cannot submit the same document number twice under the same type.
type DocumentRecord struct {
	BaseModel
	WorkerID       uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_worker_document" json:"worker_id"`
	DocumentType   DocumentType `gorm:"type:varchar(20);not null;uniqueIndex:idx_worker_document" json:"document_type"`
	DocumentNumber string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_worker_document" json:"document_number"`
	FileRef        string       `gorm:"not null" json:"file_ref"`

	Verification `gorm:"embedded"`
	Verifier     *Account `gorm:"foreignKey:VerifiedBy;constraint:OnDelete:SET NULL" json:"-"`
}

// ValidServiceCategory reports whether c is part of the controlled vocabulary.
func ValidServiceCategory(c ServiceCategory) bool {
	switch c {
	case CategoryPlumber, CategoryElectrician, CategoryCleaner, CategoryCarpenter:
		return true
	}
	return false
}

// ValidAvailabilityStatus reports whether s is part of the controlled vocabulary.
func ValidAvailabilityStatus(s AvailabilityStatus) bool {
	switch s {
	case AvailabilityActive, AvailabilityInactive, AvailabilityBusy:
		return true
	}
	return false
}

// ValidDocumentType reports whether t is part of the controlled vocabulary.
func ValidDocumentType(t DocumentType) bool {
	switch t {
	case DocCitizenship, DocDriverLicense, DocNationalID:
		return true
	}
	return false
}
