package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

func TestUpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", ctx, "nao-existe", entity.StatusGanho, mock.Anything).
		Return(nil, entity.ErrLeadNotFound)

	uc := NewUpdateStatusUseCase(mockRepo, nil)

	lead, err := uc.Execute(ctx, "nao-existe", UpdateStatusInput{Status: "ganho"})

	assert.Nil(t, lead)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeLeadNotFound, domainErr.Code)
}

func TestUpdateStatusRejectsUnknownLabel(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := NewUpdateStatusUseCase(mockRepo, nil)

	for _, label := range []string{"", "fechado", "NOVO", "won"} {
		lead, err := uc.Execute(ctx, "lead-1", UpdateStatusInput{Status: label})

		assert.Nil(t, lead)
		domainErr, ok := err.(*DomainError)
		assert.True(t, ok)
		assert.Equal(t, CodeValidation, domainErr.Code)
	}

	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Transição livre: qualquer um dos cinco valores é aceito, inclusive o
// status atual (no-op do funil).
func TestUpdateStatusAcceptsAllFunnelStages(t *testing.T) {
	ctx := context.Background()

	stages := []entity.StatusLead{
		entity.StatusNovo,
		entity.StatusEmAtendimento,
		entity.StatusProposta,
		entity.StatusGanho,
		entity.StatusPerdido,
	}

	for _, stage := range stages {
		mockRepo := new(MockLeadRepository)
		mockRepo.On("UpdateStatus", ctx, "lead-1", stage, mock.Anything).
			Return(&entity.Lead{ID: "lead-1", Status: stage}, nil)

		uc := NewUpdateStatusUseCase(mockRepo, nil)

		lead, err := uc.Execute(ctx, "lead-1", UpdateStatusInput{Status: string(stage)})

		assert.NoError(t, err)
		assert.Equal(t, stage, lead.Status)
		mockRepo.AssertExpectations(t)
	}
}

func TestUpdateStatusPublishesEvent(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateStatus", ctx, "lead-1", entity.StatusProposta, mock.Anything).
		Return(&entity.Lead{ID: "lead-1", Status: entity.StatusProposta}, nil)

	mockEvents := new(MockEventPublisher)
	mockEvents.On("PublishLeadEvent", ctx, mock.MatchedBy(func(e LeadEvent) bool {
		return e.Event == EventStatusChanged && e.Status == "proposta" && e.LeadID == "lead-1"
	})).Return(nil)

	uc := NewUpdateStatusUseCase(mockRepo, mockEvents)

	_, err := uc.Execute(ctx, "lead-1", UpdateStatusInput{Status: "proposta"})

	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}
