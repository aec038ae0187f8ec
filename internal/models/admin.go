package models

import (
	"github.com/google/uuid"
)

// AdminRecord holds capability flags for an admin account and counts the
// verification actions attributed to it.
type AdminRecord struct {
	BaseModel
	AccountID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	CanVerifyWorkers   bool      `gorm:"not null;default:false" json:"can_verify_workers"`
	CanManageUsers     bool      `gorm:"not null;default:false" json:"can_manage_users"`
	TotalVerifications uint      `gorm:"not null;default:0" json:"total_verifications"`
}
