package services

import (
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/utils"
)

// --- repository mocks ---

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateWithProfile(account *models.Account, baseHandle string) error {
	args := m.Called(account, baseHandle)
	if args.Error(0) == nil {
		if account.ID == uuid.Nil {
			account.ID = uuid.New()
		}
		if account.Handle == "" {
			account.Handle = baseHandle
		}
		account.Profile = &models.Profile{
			AccountID:         account.ID,
			PreferredRadiusKM: models.DefaultSearchRadiusKM,
		}
	}
	return args.Error(0)
}

func (m *mockAccountRepo) GetByID(id uuid.UUID) (*models.Account, error) {
	args := m.Called(id)
	if a, _ := args.Get(0).(*models.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) GetByEmail(email string) (*models.Account, error) {
	args := m.Called(email)
	if a, _ := args.Get(0).(*models.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAccountRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) ExistsByPhone(phone string) (bool, error) {
	args := m.Called(phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepo) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) GetByAccount(accountID uuid.UUID) (*models.Profile, error) {
	args := m.Called(accountID)
	if p, _ := args.Get(0).(*models.Profile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) Update(profileID uuid.UUID, updates map[string]interface{}) error {
	return m.Called(profileID, updates).Error(0)
}

func (m *mockProfileRepo) CreateLocation(loc *models.SavedLocation) error {
	args := m.Called(loc)
	if args.Error(0) == nil && loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockProfileRepo) ListLocations(profileID uuid.UUID) ([]models.SavedLocation, error) {
	args := m.Called(profileID)
	if locs, _ := args.Get(0).([]models.SavedLocation); locs != nil {
		return locs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProfileRepo) DeleteLocation(profileID, locationID uuid.UUID) error {
	return m.Called(profileID, locationID).Error(0)
}

type mockWorkerRepo struct{ mock.Mock }

func (m *mockWorkerRepo) CreateWithRole(worker *models.WorkerRecord) error {
	args := m.Called(worker)
	if args.Error(0) == nil && worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockWorkerRepo) GetByAccount(accountID uuid.UUID) (*models.WorkerRecord, error) {
	args := m.Called(accountID)
	if w, _ := args.Get(0).(*models.WorkerRecord); w != nil {
		return w, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWorkerRepo) GetByID(id uuid.UUID) (*models.WorkerRecord, error) {
	args := m.Called(id)
	if w, _ := args.Get(0).(*models.WorkerRecord); w != nil {
		return w, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWorkerRepo) Update(workerID uuid.UUID, updates map[string]interface{}) error {
	return m.Called(workerID, updates).Error(0)
}

func (m *mockWorkerRepo) ListByStatus(status models.VerificationStatus, pg utils.Pagination) ([]models.WorkerRecord, int64, error) {
	args := m.Called(status, pg)
	workers, _ := args.Get(0).([]models.WorkerRecord)
	return workers, args.Get(1).(int64), args.Error(2)
}

type mockDocumentRepo struct{ mock.Mock }

func (m *mockDocumentRepo) Create(doc *models.DocumentRecord) error {
	args := m.Called(doc)
	if args.Error(0) == nil && doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockDocumentRepo) GetByID(id uuid.UUID) (*models.DocumentRecord, error) {
	args := m.Called(id)
	if d, _ := args.Get(0).(*models.DocumentRecord); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentRepo) ListByWorker(workerID uuid.UUID) ([]models.DocumentRecord, error) {
	args := m.Called(workerID)
	if docs, _ := args.Get(0).([]models.DocumentRecord); docs != nil {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocumentRepo) Exists(workerID uuid.UUID, docType models.DocumentType, number string) (bool, error) {
	args := m.Called(workerID, docType, number)
	return args.Bool(0), args.Error(1)
}

type mockAdminRepo struct{ mock.Mock }

func (m *mockAdminRepo) GetByAccount(accountID uuid.UUID) (*models.AdminRecord, error) {
	args := m.Called(accountID)
	if a, _ := args.Get(0).(*models.AdminRecord); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVerificationRepo struct{ mock.Mock }

func (m *mockVerificationRepo) ApplyToWorker(workerID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error {
	return m.Called(workerID, updates, adminAccountID).Error(0)
}

func (m *mockVerificationRepo) ApplyToDocument(documentID uuid.UUID, updates map[string]interface{}, adminAccountID uuid.UUID) error {
	return m.Called(documentID, updates, adminAccountID).Error(0)
}

func utilsPagination() utils.Pagination {
	return utils.Pagination{Page: 1, Limit: 20, Offset: 0}
}

// --- collaborator mocks ---

type mockFileStore struct{ mock.Mock }

func (m *mockFileStore) Save(name string, content io.Reader) (string, error) {
	args := m.Called(name, content)
	return args.String(0), args.Error(1)
}
