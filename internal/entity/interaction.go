package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidade: Interacao
// Registro imutável de contato com o lead (nota, email enviado, ligação...).
// O tipo é um rótulo livre, não um enum: o funil não restringe como o
// operador classifica o contato.
type Interacao struct {
	ID       string    `json:"id"`
	LeadID   string    `json:"lead_id"`
	Tipo     string    `json:"tipo"`
	Conteudo string    `json:"conteudo"`
	CriadoEm time.Time `json:"criado_em"`
}

func NewInteracao(leadID, tipo, conteudo string) (*Interacao, error) {
	it := &Interacao{
		ID:       uuid.New().String(),
		LeadID:   leadID,
		Tipo:     tipo,
		Conteudo: conteudo,
		CriadoEm: time.Now().UTC(),
	}

	if err := it.Validate(); err != nil {
		return nil, err
	}

	return it, nil
}

func (i *Interacao) Validate() error {
	if i.LeadID == "" {
		return errors.New("lead_id is required")
	}
	if i.Tipo == "" {
		return errors.New("tipo is required")
	}
	if i.Conteudo == "" {
		return errors.New("conteudo is required")
	}
	return nil
}

type InteracaoRepositoryInterface interface {
	// Create grava a interação e sincroniza o status do lead na mesma
	// transação: ou os dois efeitos entram, ou nenhum.
	Create(ctx context.Context, it *Interacao, novoStatus StatusLead) error
	FindByLeadID(ctx context.Context, leadID string) ([]*Interacao, error)
}
