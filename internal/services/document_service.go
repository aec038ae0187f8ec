package services

import (
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/repository"
)

// FileStore is the file-content collaborator. Save consumes the content and
// returns an opaque reference the record keeps.
type FileStore interface {
	Save(name string, content io.Reader) (string, error)
}

// DocumentInput carries the metadata of an uploaded identity document.
type DocumentInput struct {
	DocumentType   models.DocumentType `json:"document_type"`
	DocumentNumber string              `json:"document_number"`
}

// DocumentService handles identity-document submission for workers.
type DocumentService struct {
	accounts  repository.AccountRepository
	workers   repository.WorkerRepository
	documents repository.DocumentRepository
	files     FileStore
	notifier  Notifier
}

// NewDocumentService constructs a DocumentService. notifier may be nil.
func NewDocumentService(
	accounts repository.AccountRepository,
	workers repository.WorkerRepository,
	documents repository.DocumentRepository,
	files FileStore,
	notifier Notifier,
) *DocumentService {
	return &DocumentService{
		accounts:  accounts,
		workers:   workers,
		documents: documents,
		files:     files,
		notifier:  notifier,
	}
}

// Upload stores the file content and records the document with status
// Pending. Only accounts that completed worker onboarding can submit, and
// the (worker, type, number) triple must be new.
func (s *DocumentService) Upload(accountID uuid.UUID, in DocumentInput, filename string, content io.Reader) (*models.DocumentRecord, error) {
	worker, err := s.workers.GetByAccount(accountID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.InvalidState("create worker profile first")
		}
		return nil, err
	}

	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account.Role != models.RoleWorker {
		return nil, apperrors.InvalidState("only workers can upload documents")
	}

	if !models.ValidDocumentType(in.DocumentType) {
		return nil, apperrors.Validation("document_type", "must be one of: Citizenship, Driver's License, National ID Card")
	}
	number := strings.TrimSpace(in.DocumentNumber)
	if number == "" {
		return nil, apperrors.Validation("document_number", "this field is required")
	}

	if exists, err := s.documents.Exists(worker.ID, in.DocumentType, number); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.Conflict("document_number", "this document has already been submitted")
	}

	ref, err := s.files.Save(filename, content)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	doc := &models.DocumentRecord{
		WorkerID:       worker.ID,
		DocumentType:   in.DocumentType,
		DocumentNumber: number,
		FileRef:        ref,
		Verification:   models.Verification{Status: models.VerificationPending},
	}
	if err := s.documents.Create(doc); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.DocumentSubmitted(account.Email, string(in.DocumentType))
	}
	return doc, nil
}

// List returns the documents of the caller's worker record. Accounts
// without one see an empty list.
func (s *DocumentService) List(accountID uuid.UUID) ([]models.DocumentRecord, error) {
	worker, err := s.workers.GetByAccount(accountID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return []models.DocumentRecord{}, nil
		}
		return nil, err
	}
	return s.documents.ListByWorker(worker.ID)
}
