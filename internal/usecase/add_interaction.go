package usecase

import (
	"context"
	"log"
	"time"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

// AddInteracaoUseCase registra um contato e força o operador a afirmar o
// estágio resultante do funil. Não existe "só anotar": toda interação
// carrega um novo_status (que pode ser o atual) para evitar board
// desatualizado. As duas escritas entram na mesma transação do banco.
type AddInteracaoUseCase struct {
	InteracaoRepo entity.InteracaoRepositoryInterface
	Events        EventPublisherInterface
}

func NewAddInteracaoUseCase(
	interacaoRepo entity.InteracaoRepositoryInterface,
	events EventPublisherInterface,
) *AddInteracaoUseCase {
	return &AddInteracaoUseCase{InteracaoRepo: interacaoRepo, Events: events}
}

func (uc *AddInteracaoUseCase) Execute(ctx context.Context, leadID string, input AddInteracaoInput) (*entity.Interacao, error) {
	if err := validate.Struct(input); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	novoStatus, err := entity.ParseStatus(input.NovoStatus)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	interacao, err := entity.NewInteracao(leadID, input.Tipo, input.Conteudo)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.InteracaoRepo.Create(ctx, interacao, novoStatus); err != nil {
		if err == entity.ErrLeadNotFound {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: err.Error()}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to record interaction: " + err.Error(),
		}
	}

	if uc.Events != nil {
		event := LeadEvent{
			Event:      EventInteracaoRecorded,
			LeadID:     leadID,
			Status:     string(novoStatus),
			Tipo:       interacao.Tipo,
			OcorridoEm: time.Now().UTC(),
		}
		if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
			log.Printf("⚠️ falha ao publicar %s para lead %s: %v", event.Event, leadID, err)
		}
	}

	return interacao, nil
}
