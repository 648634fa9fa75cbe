// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"resq/internal/domain/entity"
	domainerrors "resq/internal/domain/errors"
	"resq/internal/domain/repository"
	"resq/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// newAccountRow maps a variant to its fixed per-table model. Unknown variants never reach SQL.
func newAccountRow(variant entity.Variant) (model.AccountRow, error) {
	switch variant {
	case entity.VariantRescuer:
		return &model.RescuerModel{}, nil
	case entity.VariantAuthority:
		return &model.AuthorityModel{}, nil
	case entity.VariantOrganization:
		return &model.OrganizationModel{}, nil
	default:
		return nil, errors.Wrapf(entity.ErrInvalidVariant, "%q", variant)
	}
}

// ExistsByEmail reports whether an account of the variant already uses the email.
// Reads are pinned to the primary so a registration that just committed is visible.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, variant entity.Variant, email string) (bool, error) {
	row, err := newAccountRow(variant)
	if err != nil {
		return false, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(row).
		Where("email = ?", email).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check account email")
	}

	return count > 0, nil
}

// Create persists a new account into the table of its variant.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	row, err := newAccountRow(account.Variant)
	if err != nil {
		return err
	}
	fromAccountDomain(account, row.Columns())

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			if strings.HasSuffix(constraintName(err), "_pkey") {
				return domainerrors.ErrAccountAlreadyExists.
					WithMessage("Account id already registered").
					WrapMessage("account id already exists")
			}

			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing or invalid account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = row.Columns().CreatedAt

	return nil
}

// FindByEmail retrieves a single account of the variant by email.
func (repo *accountRepository) FindByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Account, error) {
	row, err := newAccountRow(variant)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return toAccountDomain(variant, row.Columns()), nil
}

// --- Mapper Functions ---

// toAccountDomain converts persisted account columns to a domain Account entity.
func toAccountDomain(variant entity.Variant, data *model.AccountColumns) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Variant:      variant,
		Name:         data.Name,
		Phone:        data.Phone,
		Email:        data.Email,
		PasswordHash: data.Password,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAccountDomain copies a domain Account entity into persistence columns.
func fromAccountDomain(data *entity.Account, dst *model.AccountColumns) {
	dst.ID = data.ID
	dst.Name = data.Name
	dst.Phone = data.Phone
	dst.Email = data.Email
	dst.Password = data.PasswordHash
	dst.City = data.City
	dst.State = data.State
	dst.Country = data.Country
}
