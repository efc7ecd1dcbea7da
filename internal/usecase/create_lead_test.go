package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

const defaultOrigem = "Landing Page Principal"

func validInput() CreateLeadInput {
	return CreateLeadInput{
		Nome:            "Maria Silva",
		EmailPrimario:   "maria@email.com",
		CelularPrimario: "11999999999",
	}
}

func TestCreateLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil, defaultOrigem)

	lead, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusNovo, lead.Status)
	assert.Equal(t, "Maria Silva", lead.Nome)
	assert.Equal(t, "maria@email.com", lead.EmailPrimario)
	assert.Equal(t, "11999999999", lead.CelularPrimario)
	assert.True(t, lead.PermiteContatoEmail)
	assert.True(t, lead.PermiteContatoLigacao)
	assert.True(t, lead.PermiteContatoWhatsapp)
	assert.False(t, lead.CriadoEm.IsZero())
	assert.Equal(t, lead.CriadoEm, lead.AtualizadoEm)

	mockRepo.AssertExpectations(t)
}

func TestCreateLeadDefaultOrigem(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil, defaultOrigem)

	lead, err := uc.Execute(ctx, validInput())
	assert.NoError(t, err)
	assert.Equal(t, defaultOrigem, lead.Origem)

	input := validInput()
	input.EmailPrimario = "outra@email.com"
	input.Origem = "Instagram Ads"
	lead, err = uc.Execute(ctx, input)
	assert.NoError(t, err)
	assert.Equal(t, "Instagram Ads", lead.Origem)
}

func TestCreateLeadDuplicateEmail(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := NewCreateLeadUseCase(mockRepo, nil, defaultOrigem)

	lead, err := uc.Execute(ctx, validInput())

	assert.Nil(t, lead)
	assert.Error(t, err)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeDuplicateEmail, domainErr.Code)
}

func TestCreateLeadValidation(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	uc := NewCreateLeadUseCase(mockRepo, nil, defaultOrigem)

	cases := []struct {
		name   string
		mutate func(*CreateLeadInput)
	}{
		{"missing nome", func(i *CreateLeadInput) { i.Nome = "" }},
		{"missing email", func(i *CreateLeadInput) { i.EmailPrimario = "" }},
		{"invalid email", func(i *CreateLeadInput) { i.EmailPrimario = "nao-eh-email" }},
		{"missing celular", func(i *CreateLeadInput) { i.CelularPrimario = "" }},
		{"short celular", func(i *CreateLeadInput) { i.CelularPrimario = "1199" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			lead, err := uc.Execute(ctx, input)

			assert.Nil(t, lead)
			domainErr, ok := err.(*DomainError)
			assert.True(t, ok)
			assert.Equal(t, CodeValidation, domainErr.Code)
		})
	}

	// Nenhum insert pode ter acontecido
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadPermissionOverride(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil, defaultOrigem)

	naoQuero := false
	input := validInput()
	input.PermiteContatoWhatsapp = &naoQuero

	lead, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.True(t, lead.PermiteContatoEmail)
	assert.True(t, lead.PermiteContatoLigacao)
	assert.False(t, lead.PermiteContatoWhatsapp)
}

func TestCreateLeadPublishesEvent(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	mockEvents := new(MockEventPublisher)
	mockEvents.On("PublishLeadEvent", ctx, mock.MatchedBy(func(e LeadEvent) bool {
		return e.Event == EventLeadCreated && e.Email == "maria@email.com"
	})).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockEvents, defaultOrigem)

	_, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}

func TestCreateLeadEventFailureDoesNotFailCapture(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	mockEvents := new(MockEventPublisher)
	mockEvents.On("PublishLeadEvent", ctx, mock.Anything).
		Return(assert.AnError)

	uc := NewCreateLeadUseCase(mockRepo, mockEvents, defaultOrigem)

	lead, err := uc.Execute(ctx, validInput())

	// Lead salvo, broker fora do ar: a captação não pode falhar.
	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCreateLeadKeepsUTMsVerbatim(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil, defaultOrigem)

	input := validInput()
	input.UTMs = entity.UTMs{
		"utm_source": "google",
		"nested":     map[string]any{"k": "v"},
	}

	lead, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, input.UTMs, lead.UTMs)
}
