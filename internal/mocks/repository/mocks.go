// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"resq/internal/domain/entity"
	"resq/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock that asserts its expectations on cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, variant entity.Variant, email string) (bool, error) {
	args := m.Called(ctx, variant, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, variant entity.Variant, email string) (*entity.Account, error) {
	args := m.Called(ctx, variant, email)
	account, _ := args.Get(0).(*entity.Account)

	return account, args.Error(1)
}

// MockSkillRepository is a mock of repository.SkillRepository.
type MockSkillRepository struct {
	mock.Mock
}

// NewMockSkillRepository creates a mock that asserts its expectations on cleanup.
func NewMockSkillRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSkillRepository {
	m := &MockSkillRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSkillRepository) LinkSkills(ctx context.Context, rescuerID string, names []string) error {
	return m.Called(ctx, rescuerID, names).Error(0)
}

func (m *MockSkillRepository) ListByRescuer(ctx context.Context, rescuerID string) ([]*entity.Skill, error) {
	args := m.Called(ctx, rescuerID)
	skills, _ := args.Get(0).([]*entity.Skill)

	return skills, args.Error(1)
}

// FakeTransactionManager runs the callback against fixed repositories and records the outcome.
// It stands in for a transaction: Committed is set only when the callback succeeds.
type FakeTransactionManager struct {
	Factory    repository.RepositoryFactory
	Calls      int
	Committed  bool
	RolledBack bool
	BeginErr   error
}

// Execute implements repository.TransactionManager.
func (f *FakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	f.Calls++
	if f.BeginErr != nil {
		return f.BeginErr
	}

	if err := fn(f.Factory); err != nil {
		f.RolledBack = true

		return err
	}
	f.Committed = true

	return nil
}

// StaticRepositoryFactory hands out the same repositories for every transaction.
type StaticRepositoryFactory struct {
	Accounts repository.AccountRepository
	Skills   repository.SkillRepository
}

// AccountRepo implements repository.RepositoryFactory.
func (f *StaticRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.Accounts
}

// SkillRepo implements repository.RepositoryFactory.
func (f *StaticRepositoryFactory) SkillRepo() repository.SkillRepository {
	return f.Skills
}
