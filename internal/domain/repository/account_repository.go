// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"resq/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations for all three account variants.
// The variant selects a fixed table; it is never interpolated into a query.
type AccountRepository interface {
	// ExistsByEmail reports whether an account of the variant already uses the email.
	// It is an optimization only: Create still enforces uniqueness through the database.
	ExistsByEmail(ctx context.Context, variant entity.Variant, email string) (bool, error)

	// Create persists a new account. A unique constraint violation is reported as
	// domainerrors.ErrAccountAlreadyExists.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves an account of the variant by email, or ErrAccountNotFound.
	FindByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Account, error)
}
