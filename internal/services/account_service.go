package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/example/gigwork/internal/apperrors"
	"github.com/example/gigwork/internal/models"
	"github.com/example/gigwork/internal/repository"
	"github.com/example/gigwork/internal/utils"
)

// RegisterInput carries the registration request.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// AccountService implements registration, lookup and deletion of accounts.
type AccountService struct {
	accounts repository.AccountRepository
}

// NewAccountService constructs an AccountService.
func NewAccountService(accounts repository.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// Register creates an account with role User plus its empty profile. The
// handle is derived from the email local part; on collision a numeric
// suffix is searched inside the creation transaction.
func (s *AccountService) Register(in RegisterInput) (*models.Account, error) {
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}
	if err := utils.ValidatePasswordStrength(in.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	if exists, err := s.accounts.ExistsByEmail(email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.Validation("email", "an account with this email already exists")
	}
	if exists, err := s.accounts.ExistsByPhone(in.Phone); err != nil {
		return nil, err
	} else if exists {
		return nil, apperrors.Validation("phone", "an account with this phone number already exists")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	account := &models.Account{
		Email:        email,
		Phone:        in.Phone,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	baseHandle := email[:strings.Index(email, "@")]
	if err := s.accounts.CreateWithProfile(account, baseHandle); err != nil {
		return nil, err
	}
	return account, nil
}

// Get loads an account by ID.
func (s *AccountService) Get(id uuid.UUID) (*models.Account, error) {
	return s.accounts.GetByID(id)
}

// GetByEmail loads an account by email, case-insensitively.
func (s *AccountService) GetByEmail(email string) (*models.Account, error) {
	return s.accounts.GetByEmail(email)
}

// Delete removes the account and everything it owns.
func (s *AccountService) Delete(id uuid.UUID) error {
	return s.accounts.Delete(id)
}
