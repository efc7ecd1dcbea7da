package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/andrefvs/crm-inteligente/internal/entity"
)

type InteracaoRepository struct {
	DB *sql.DB
}

func NewInteracaoRepository(db *sql.DB) *InteracaoRepository {
	return &InteracaoRepository{DB: db}
}

// Create insere a interação e sincroniza o status do lead na MESMA
// transação. Se o lead não existe, nada é gravado; se qualquer metade
// falhar, rollback nas duas. É isso que garante que um leitor concorrente
// nunca vê interação nova com status antigo (ou vice-versa).
func (r *InteracaoRepository) Create(ctx context.Context, it *entity.Interacao, novoStatus entity.StatusLead) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE leads
		SET status = $2, atualizado_em = $3
		WHERE id = $1
	`, it.LeadID, novoStatus, time.Now().UTC())
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

	_, err = tx.ExecContext(ctx, `
		INSERT INTO interacoes (id, lead_id, tipo, conteudo, criado_em)
		VALUES ($1, $2, $3, $4, $5)
	`, it.ID, it.LeadID, it.Tipo, it.Conteudo, it.CriadoEm)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// FindByLeadID devolve o histórico em ordem cronológica; id desempata
// timestamps idênticos (ordem de inserção).
func (r *InteracaoRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.Interacao, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, lead_id, tipo, conteudo, criado_em
		FROM interacoes
		WHERE lead_id = $1
		ORDER BY criado_em ASC, id ASC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interacoes := []*entity.Interacao{}
	for rows.Next() {
		var it entity.Interacao
		if err := rows.Scan(&it.ID, &it.LeadID, &it.Tipo, &it.Conteudo, &it.CriadoEm); err != nil {
			return nil, err
		}
		it.CriadoEm = it.CriadoEm.UTC()
		interacoes = append(interacoes, &it)
	}

	return interacoes, rows.Err()
}
