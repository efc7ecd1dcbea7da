package entity

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// StatusLead é o estágio do lead no funil de vendas.
// Enum fechado: qualquer outro rótulo é rejeitado na borda.
type StatusLead string

const (
	StatusNovo          StatusLead = "novo"
	StatusEmAtendimento StatusLead = "em_atendimento"
	StatusProposta      StatusLead = "proposta"
	StatusGanho         StatusLead = "ganho"
	StatusPerdido       StatusLead = "perdido"
)

// ParseStatus valida o rótulo vindo da borda (JSON ou fila).
func ParseStatus(s string) (StatusLead, error) {
	switch StatusLead(s) {
	case StatusNovo, StatusEmAtendimento, StatusProposta, StatusGanho, StatusPerdido:
		return StatusLead(s), nil
	}
	return "", fmt.Errorf("status inválido: %q", s)
}

func (s StatusLead) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// UTMs é o documento de tracking de campanha. Opaco: o core nunca
// interpreta as chaves, só persiste e devolve como chegou (coluna JSONB).
type UTMs map[string]any

func (u UTMs) Value() (driver.Value, error) {
	if u == nil {
		return nil, nil
	}
	return json.Marshal(u)
}

func (u *UTMs) Scan(src any) error {
	if src == nil {
		*u = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errors.New("utms: esperado []byte do driver")
	}
	return json.Unmarshal(b, u)
}

// Entidade: Lead
type Lead struct {
	ID     string     `json:"id"`
	Status StatusLead `json:"status"`

	Nome              string `json:"nome"`
	EmailPrimario     string `json:"email_primario"`
	EmailSecundario   string `json:"email_secundario,omitempty"`
	CelularPrimario   string `json:"celular_primario"`
	CelularSecundario string `json:"celular_secundario,omitempty"`

	Endereco string `json:"endereco,omitempty"`
	CEP      string `json:"cep,omitempty"`
	Cidade   string `json:"cidade,omitempty"`
	Estado   string `json:"estado,omitempty"`

	Origem    string `json:"origem,omitempty"`
	Interesse string `json:"interesse,omitempty"`
	UTMs      UTMs   `json:"utms,omitempty"`

	PermiteContatoEmail    bool `json:"permite_contato_email"`
	PermiteContatoLigacao  bool `json:"permite_contato_ligacao"`
	PermiteContatoWhatsapp bool `json:"permite_contato_whatsapp"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// Factory
func NewLead(nome, emailPrimario, celularPrimario string) (*Lead, error) {
	now := time.Now().UTC()
	lead := &Lead{
		ID:              uuid.New().String(),
		Status:          StatusNovo,
		Nome:            nome,
		EmailPrimario:   emailPrimario,
		CelularPrimario: celularPrimario,

		// Permissões de contato nascem liberadas; o lead opta por sair.
		PermiteContatoEmail:    true,
		PermiteContatoLigacao:  true,
		PermiteContatoWhatsapp: true,

		CriadoEm:     now,
		AtualizadoEm: now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Nome == "" {
		return errors.New("nome is required")
	}
	if l.EmailPrimario == "" {
		return errors.New("email_primario is required")
	}
	if l.CelularPrimario == "" {
		return errors.New("celular_primario is required")
	}
	if !l.Status.IsValid() {
		return fmt.Errorf("status inválido: %q", l.Status)
	}
	return nil
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindAll(ctx context.Context) ([]*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	UpdateStatus(ctx context.Context, id string, status StatusLead, atualizadoEm time.Time) (*Lead, error)
	Delete(ctx context.Context, id string) error
}
