// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"resq/internal/domain/entity"
	"resq/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations on cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockSessionTokenService is a mock of service.SessionTokenService.
type MockSessionTokenService struct {
	mock.Mock
}

// NewMockSessionTokenService creates a mock that asserts its expectations on cleanup.
func NewMockSessionTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionTokenService {
	m := &MockSessionTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionTokenService) Issue(email string, variant entity.Variant) (*service.IssuedSession, error) {
	args := m.Called(email, variant)
	issued, _ := args.Get(0).(*service.IssuedSession)

	return issued, args.Error(1)
}

func (m *MockSessionTokenService) Verify(token string) (*entity.SessionClaim, error) {
	args := m.Called(token)
	claim, _ := args.Get(0).(*entity.SessionClaim)

	return claim, args.Error(1)
}
