package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
)

func workerAccount(id uuid.UUID) *models.Account {
	return &models.Account{
		BaseModel: models.BaseModel{ID: id},
		Email:     "worker@example.com",
		Role:      models.RoleWorker,
	}
}

func newDocumentService(accounts *mockAccountRepo, workers *mockWorkerRepo, documents *mockDocumentRepo, files *mockFileStore) *DocumentService {
	return NewDocumentService(accounts, workers, documents, files, nil)
}

func TestUploadDocumentSuccess(t *testing.T) {
	accountID := uuid.New()
	workerID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	documents := new(mockDocumentRepo)
	files := new(mockFileStore)

	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{BaseModel: models.BaseModel{ID: workerID}, AccountID: accountID}, nil)
	accounts.On("GetByID", accountID).Return(workerAccount(accountID), nil)
	documents.On("Exists", workerID, models.DocCitizenship, "CTZ-1001").Return(false, nil)
	files.On("Save", "citizenship.pdf", mock.Anything).Return("4f1c.pdf", nil)
	documents.On("Create", mock.AnythingOfType("*models.DocumentRecord")).Return(nil)

	svc := newDocumentService(accounts, workers, documents, files)
	doc, err := svc.Upload(accountID, DocumentInput{
		DocumentType:   models.DocCitizenship,
		DocumentNumber: "CTZ-1001",
	}, "citizenship.pdf", strings.NewReader("content"))
	require.NoError(t, err)

	assert.Equal(t, models.VerificationPending, doc.Status)
	assert.Equal(t, "4f1c.pdf", doc.FileRef)
	assert.Equal(t, workerID, doc.WorkerID)
	documents.AssertExpectations(t)
}

func TestUploadDocumentBeforeOnboarding(t *testing.T) {
	accountID := uuid.New()
	workers := new(mockWorkerRepo)
	workers.On("GetByAccount", accountID).Return(nil, apperrors.NotFound("record not found"))

	svc := newDocumentService(new(mockAccountRepo), workers, new(mockDocumentRepo), new(mockFileStore))
	_, err := svc.Upload(accountID, DocumentInput{
		DocumentType:   models.DocCitizenship,
		DocumentNumber: "CTZ-1001",
	}, "f.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestUploadDocumentNonWorkerRole(t *testing.T) {
	accountID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{AccountID: accountID}, nil)
	stale := workerAccount(accountID)
	stale.Role = models.RoleUser
	accounts.On("GetByID", accountID).Return(stale, nil)

	svc := newDocumentService(accounts, workers, new(mockDocumentRepo), new(mockFileStore))
	_, err := svc.Upload(accountID, DocumentInput{
		DocumentType:   models.DocNationalID,
		DocumentNumber: "N-42",
	}, "f.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestUploadDuplicateDocument(t *testing.T) {
	accountID := uuid.New()
	workerID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	documents := new(mockDocumentRepo)
	files := new(mockFileStore)

	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{BaseModel: models.BaseModel{ID: workerID}, AccountID: accountID}, nil)
	accounts.On("GetByID", accountID).Return(workerAccount(accountID), nil)
	documents.On("Exists", workerID, models.DocDriverLicense, "DL-77").Return(true, nil)

	svc := newDocumentService(accounts, workers, documents, files)
	_, err := svc.Upload(accountID, DocumentInput{
		DocumentType:   models.DocDriverLicense,
		DocumentNumber: "DL-77",
	}, "f.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUploadSameNumberDifferentType(t *testing.T) {
	accountID := uuid.New()
	workerID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	documents := new(mockDocumentRepo)
	files := new(mockFileStore)

	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{BaseModel: models.BaseModel{ID: workerID}, AccountID: accountID}, nil)
	accounts.On("GetByID", accountID).Return(workerAccount(accountID), nil)
	documents.On("Exists", workerID, models.DocNationalID, "DL-77").Return(false, nil)
	files.On("Save", "f.pdf", mock.Anything).Return("ref.pdf", nil)
	documents.On("Create", mock.Anything).Return(nil)

	svc := newDocumentService(accounts, workers, documents, files)
	doc, err := svc.Upload(accountID, DocumentInput{
		DocumentType:   models.DocNationalID,
		DocumentNumber: "DL-77",
	}, "f.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, models.DocNationalID, doc.DocumentType)
}

func TestUploadUnknownDocumentType(t *testing.T) {
	accountID := uuid.New()
	accounts := new(mockAccountRepo)
	workers := new(mockWorkerRepo)
	workers.On("GetByAccount", accountID).Return(&models.WorkerRecord{AccountID: accountID}, nil)
	accounts.On("GetByID", accountID).Return(workerAccount(accountID), nil)

	svc := newDocumentService(accounts, workers, new(mockDocumentRepo), new(mockFileStore))
	_, err := svc.Upload(accountID, DocumentInput{
		DocumentType:   "Passport Photocopy",
		DocumentNumber: "P-1",
	}, "f.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestListDocumentsWithoutWorkerRecord(t *testing.T) {
	accountID := uuid.New()
	workers := new(mockWorkerRepo)
	workers.On("GetByAccount", accountID).Return(nil, apperrors.NotFound("record not found"))

	svc := newDocumentService(new(mockAccountRepo), workers, new(mockDocumentRepo), new(mockFileStore))
	docs, err := svc.List(accountID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
