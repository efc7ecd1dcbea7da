package usecase

import (
	"context"
	"log"
	"time"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

// UpdateStatusUseCase move o card do lead no board.
// Transição livre: qualquer status pode ir para qualquer outro, inclusive
// para o mesmo (no-op do ponto de vista do funil, mas atualiza o
// atualizado_em do mesmo jeito).
type UpdateStatusUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewUpdateStatusUseCase(
	repo entity.LeadRepositoryInterface,
	events EventPublisherInterface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{Repo: repo, Events: events}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, leadID string, input UpdateStatusInput) (*entity.Lead, error) {
	status, err := entity.ParseStatus(input.Status)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	lead, err := uc.Repo.UpdateStatus(ctx, leadID, status, time.Now().UTC())
	if err != nil {
		if err == entity.ErrLeadNotFound {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: err.Error()}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to update lead status: " + err.Error(),
		}
	}

	if uc.Events != nil {
		event := LeadEvent{
			Event:      EventStatusChanged,
			LeadID:     lead.ID,
			Nome:       lead.Nome,
			Email:      lead.EmailPrimario,
			Status:     string(lead.Status),
			OcorridoEm: time.Now().UTC(),
		}
		if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
			log.Printf("⚠️ falha ao publicar %s para lead %s: %v", event.Event, lead.ID, err)
		}
	}

	return lead, nil
}
