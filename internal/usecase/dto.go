package usecase

import (
	"time"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

// CreateLeadInput é o payload do webhook/formulário de captação.
// Só nome, email e celular primários são obrigatórios; o resto é o que a
// landing page conseguir coletar.
type CreateLeadInput struct {
	Nome            string `json:"nome" validate:"required,min=3,max=200"`
	EmailPrimario   string `json:"email_primario" validate:"required,email"`
	CelularPrimario string `json:"celular_primario" validate:"required"`

	EmailSecundario   string `json:"email_secundario,omitempty" validate:"omitempty,email"`
	CelularSecundario string `json:"celular_secundario,omitempty"`

	Endereco string `json:"endereco,omitempty" validate:"omitempty,max=255"`
	CEP      string `json:"cep,omitempty" validate:"omitempty,max=20"`
	Cidade   string `json:"cidade,omitempty" validate:"omitempty,max=100"`
	Estado   string `json:"estado,omitempty" validate:"omitempty,len=2"`

	Origem    string      `json:"origem,omitempty" validate:"omitempty,max=100"`
	Interesse string      `json:"interesse,omitempty"`
	UTMs      entity.UTMs `json:"utms,omitempty"`

	// Ponteiros para distinguir "não informado" (default true) de "false".
	PermiteContatoEmail    *bool `json:"permite_contato_email,omitempty"`
	PermiteContatoLigacao  *bool `json:"permite_contato_ligacao,omitempty"`
	PermiteContatoWhatsapp *bool `json:"permite_contato_whatsapp,omitempty"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type AddInteracaoInput struct {
	Tipo       string `json:"tipo" validate:"required,max=50"`
	Conteudo   string `json:"conteudo" validate:"required"`
	NovoStatus string `json:"novo_status" validate:"required"`
}

// LeadSummaryOutput é a projeção da listagem (colunas do board).
type LeadSummaryOutput struct {
	ID              string            `json:"id"`
	Nome            string            `json:"nome"`
	EmailPrimario   string            `json:"email_primario"`
	CelularPrimario string            `json:"celular_primario"`
	Status          entity.StatusLead `json:"status"`
	Origem          string            `json:"origem,omitempty"`
	Interesse       string            `json:"interesse,omitempty"`
	CriadoEm        time.Time         `json:"criado_em"`
}

// LeadDetailOutput: lead completo + histórico ordenado.
type LeadDetailOutput struct {
	*entity.Lead
	Interacoes []*entity.Interacao `json:"interacoes"`
}

func ToLeadSummary(l *entity.Lead) LeadSummaryOutput {
	return LeadSummaryOutput{
		ID:              l.ID,
		Nome:            l.Nome,
		EmailPrimario:   l.EmailPrimario,
		CelularPrimario: l.CelularPrimario,
		Status:          l.Status,
		Origem:          l.Origem,
		Interesse:       l.Interesse,
		CriadoEm:        l.CriadoEm,
	}
}
