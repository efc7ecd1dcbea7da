package usecase

import (
	"context"
	"log"
	"time"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

type CreateLeadUseCase struct {
	Repo          entity.LeadRepositoryInterface
	Events        EventPublisherInterface
	DefaultOrigem string
}

func NewCreateLeadUseCase(
	repo entity.LeadRepositoryInterface,
	events EventPublisherInterface,
	defaultOrigem string,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:          repo,
		Events:        events,
		DefaultOrigem: defaultOrigem,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	lead, err := entity.NewLead(input.Nome, input.EmailPrimario, input.CelularPrimario)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	lead.EmailSecundario = input.EmailSecundario
	lead.CelularSecundario = input.CelularSecundario
	lead.Endereco = input.Endereco
	lead.CEP = input.CEP
	lead.Cidade = input.Cidade
	lead.Estado = input.Estado
	lead.Interesse = input.Interesse
	lead.UTMs = input.UTMs

	lead.Origem = input.Origem
	if lead.Origem == "" {
		lead.Origem = uc.DefaultOrigem
	}

	if input.PermiteContatoEmail != nil {
		lead.PermiteContatoEmail = *input.PermiteContatoEmail
	}
	if input.PermiteContatoLigacao != nil {
		lead.PermiteContatoLigacao = *input.PermiteContatoLigacao
	}
	if input.PermiteContatoWhatsapp != nil {
		lead.PermiteContatoWhatsapp = *input.PermiteContatoWhatsapp
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		if err == entity.ErrEmailAlreadyExists {
			return nil, &DomainError{Code: CodeDuplicateEmail, Message: err.Error()}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Evento é melhor-esforço: o lead já está salvo, falha de broker não
	// desfaz a captação.
	if uc.Events != nil {
		event := LeadEvent{
			Event:      EventLeadCreated,
			LeadID:     lead.ID,
			Nome:       lead.Nome,
			Email:      lead.EmailPrimario,
			Status:     string(lead.Status),
			Origem:     lead.Origem,
			OcorridoEm: time.Now().UTC(),
		}
		if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
			log.Printf("⚠️ falha ao publicar %s para lead %s: %v", event.Event, lead.ID, err)
		}
	}

	return lead, nil
}
