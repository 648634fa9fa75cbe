// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"resq/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterRescuerInput defines the data required to register a new rescuer.
type RegisterRescuerInput struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	Password string
	City     string
	State    string
	Country  string
	Skills   []string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Variant  string
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountInfo is the outward view of an account. It never carries the password hash.
type AccountInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	Skills    []string  `json:"skills,omitempty"`
}

// RegisterOutput returns the newly created rescuer.
type RegisterOutput struct {
	Account *AccountInfo
}

// LoginOutput returns the issued session token and the account it belongs to.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Variant   entity.Variant
	Account   *AccountInfo
}

// SessionOutput describes a verified session.
type SessionOutput struct {
	Email     string         `json:"email"`
	Variant   entity.Variant `json:"type"`
	IssuedAt  time.Time      `json:"issued_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// AuthUsecase defines the credential-issuance operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	RegisterRescuer(ctx context.Context, input *RegisterRescuerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Session(ctx context.Context, token string) (*SessionOutput, error)
}

// NewAccountInfo projects an account onto its outward view.
func NewAccountInfo(account *entity.Account, skills []string) *AccountInfo {
	if account == nil {
		return nil
	}

	return &AccountInfo{
		ID:        account.ID,
		Name:      account.Name,
		Phone:     account.Phone,
		Email:     account.Email,
		City:      account.City,
		State:     account.State,
		Country:   account.Country,
		CreatedAt: account.CreatedAt,
		Skills:    skills,
	}
}
