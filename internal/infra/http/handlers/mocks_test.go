package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.StatusLead, atualizadoEm time.Time) (*entity.Lead, error) {
	args := m.Called(ctx, id, status, atualizadoEm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInteracaoRepository
type MockInteracaoRepository struct {
	mock.Mock
}

func (m *MockInteracaoRepository) Create(ctx context.Context, it *entity.Interacao, novoStatus entity.StatusLead) error {
	args := m.Called(ctx, it, novoStatus)
	return args.Error(0)
}

func (m *MockInteracaoRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.Interacao, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Interacao), args.Error(1)
}
