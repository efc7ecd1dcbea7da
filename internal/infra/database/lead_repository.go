package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

const leadColumns = `
	id, status, nome, email_primario, email_secundario,
	celular_primario, celular_secundario,
	endereco, cep, cidade, estado,
	origem, interesse, utms,
	permite_contato_email, permite_contato_ligacao, permite_contato_whatsapp,
	criado_em, atualizado_em
`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Status,
		lead.Nome,
		lead.EmailPrimario,
		nullString(lead.EmailSecundario),
		lead.CelularPrimario,
		nullString(lead.CelularSecundario),
		nullString(lead.Endereco),
		nullString(lead.CEP),
		nullString(lead.Cidade),
		nullString(lead.Estado),
		nullString(lead.Origem),
		nullString(lead.Interesse),
		lead.UTMs,
		lead.PermiteContatoEmail,
		lead.PermiteContatoLigacao,
		lead.PermiteContatoWhatsapp,
		lead.CriadoEm,
		lead.AtualizadoEm,
	)

	if err != nil {
		// A corrida entre dois POSTs com o mesmo email é resolvida pelo
		// UNIQUE do banco, não por check-then-insert na aplicação.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY criado_em DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status entity.StatusLead, atualizadoEm time.Time) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status = $2, atualizado_em = $3
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, status, atualizadoEm))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return lead, nil
}

// Delete remove o lead; as interações caem junto pelo ON DELETE CASCADE.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var emailSecundario, celularSecundario sql.NullString
	var endereco, cep, cidade, estado sql.NullString
	var origem, interesse sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Status,
		&lead.Nome,
		&lead.EmailPrimario,
		&emailSecundario,
		&lead.CelularPrimario,
		&celularSecundario,
		&endereco,
		&cep,
		&cidade,
		&estado,
		&origem,
		&interesse,
		&lead.UTMs,
		&lead.PermiteContatoEmail,
		&lead.PermiteContatoLigacao,
		&lead.PermiteContatoWhatsapp,
		&lead.CriadoEm,
		&lead.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}

	lead.EmailSecundario = emailSecundario.String
	lead.CelularSecundario = celularSecundario.String
	lead.Endereco = endereco.String
	lead.CEP = cep.String
	lead.Cidade = cidade.String
	lead.Estado = estado.String
	lead.Origem = origem.String
	lead.Interesse = interesse.String

	lead.CriadoEm = lead.CriadoEm.UTC()
	lead.AtualizadoEm = lead.AtualizadoEm.UTC()

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
