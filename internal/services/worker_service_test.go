package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
)

func userAccount(id uuid.UUID) *models.Account {
	return &models.Account{
		BaseModel: models.BaseModel{ID: id},
		Email:     "worker@example.com",
		Role:      models.RoleUser,
	}
}

func TestBecomeWorkerSuccess(t *testing.T) {
	accountID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	accounts.On("GetByID", accountID).Return(userAccount(accountID), nil)
	workers.On("GetByAccount", accountID).Return(nil, apperrors.NotFound("record not found"))
	workers.On("CreateWithRole", mock.AnythingOfType("*models.WorkerRecord")).Return(nil)

	svc := NewWorkerService(accounts, workers, nil)
	worker, err := svc.BecomeWorker(accountID, BecomeWorkerInput{
		ServiceCategory: models.CategoryPlumber,
		Skills:          "pipes, fittings",
		Bio:             "ten years on residential plumbing",
	})
	require.NoError(t, err)

	assert.Equal(t, models.VerificationPending, worker.Status)
	assert.Equal(t, models.AvailabilityInactive, worker.AvailabilityStatus)
	assert.Equal(t, models.DefaultServiceRadiusKM, worker.ServiceRadiusKM)
	assert.Equal(t, accountID, worker.AccountID)
	workers.AssertExpectations(t)
}

func TestBecomeWorkerAdminForbidden(t *testing.T) {
	accountID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	admin := userAccount(accountID)
	admin.Role = models.RoleAdmin
	accounts.On("GetByID", accountID).Return(admin, nil)

	svc := NewWorkerService(accounts, workers, nil)
	_, err := svc.BecomeWorker(accountID, BecomeWorkerInput{ServiceCategory: models.CategoryCleaner})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	workers.AssertNotCalled(t, "CreateWithRole", mock.Anything)
}

func TestBecomeWorkerTwice(t *testing.T) {
	accountID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	existing := userAccount(accountID)
	existing.Role = models.RoleWorker
	accounts.On("GetByID", accountID).Return(existing, nil)
	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{AccountID: accountID}, nil)

	svc := NewWorkerService(accounts, workers, nil)
	_, err := svc.BecomeWorker(accountID, BecomeWorkerInput{ServiceCategory: models.CategoryElectrician})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	workers.AssertNotCalled(t, "CreateWithRole", mock.Anything)
}

func TestBecomeWorkerInvalidCategory(t *testing.T) {
	svc := NewWorkerService(new(mockAccountRepo), new(mockWorkerRepo), nil)
	_, err := svc.BecomeWorker(uuid.New(), BecomeWorkerInput{ServiceCategory: "Blacksmith"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestBecomeWorkerKeepsSuppliedRadius(t *testing.T) {
	accountID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	accounts.On("GetByID", accountID).Return(userAccount(accountID), nil)
	workers.On("GetByAccount", accountID).Return(nil, apperrors.NotFound("record not found"))
	workers.On("CreateWithRole", mock.Anything).Return(nil)

	radius := 3.5
	svc := NewWorkerService(accounts, workers, nil)
	worker, err := svc.BecomeWorker(accountID, BecomeWorkerInput{
		ServiceCategory: models.CategoryCarpenter,
		ServiceRadiusKM: &radius,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, worker.ServiceRadiusKM)
}

func TestWorkerUpdatePartial(t *testing.T) {
	accountID := uuid.New()
	workerID := uuid.New()
	workers := new(mockWorkerRepo)
	record := &models.WorkerRecord{
		BaseModel:       models.BaseModel{ID: workerID},
		AccountID:       accountID,
		ServiceCategory: models.CategoryPlumber,
	}
	workers.On("GetByAccount", accountID).Return(record, nil)
	workers.On("Update", workerID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, hasSkills := updates["skills"]
		_, hasBio := updates["bio"]
		return hasSkills && !hasBio
	})).Return(nil)
	workers.On("GetByID", workerID).Return(record, nil)

	skills := "drain cleaning"
	svc := NewWorkerService(new(mockAccountRepo), workers, nil)
	_, err := svc.Update(accountID, WorkerUpdateInput{Skills: &skills})
	require.NoError(t, err)
	workers.AssertExpectations(t)
}

func TestWorkerUpdateRejectsBadAvailability(t *testing.T) {
	accountID := uuid.New()
	workers := new(mockWorkerRepo)
	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{AccountID: accountID}, nil)

	bad := models.AvailabilityStatus("Sleeping")
	svc := NewWorkerService(new(mockAccountRepo), workers, nil)
	_, err := svc.Update(accountID, WorkerUpdateInput{AvailabilityStatus: &bad})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	workers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListByStatusRejectsUnknown(t *testing.T) {
	svc := NewWorkerService(new(mockAccountRepo), new(mockWorkerRepo), nil)
	_, _, err := svc.ListByStatus("Unknown", utilsPagination())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
