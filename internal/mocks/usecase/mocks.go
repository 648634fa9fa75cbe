// Package usecase provides testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"resq/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations on cleanup.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) RegisterRescuer(ctx context.Context, input *usecase.RegisterRescuerInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.RegisterOutput)

	return out, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.LoginOutput)

	return out, args.Error(1)
}

func (m *MockAuthUsecase) Session(ctx context.Context, token string) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, token)
	out, _ := args.Get(0).(*usecase.SessionOutput)

	return out, args.Error(1)
}
