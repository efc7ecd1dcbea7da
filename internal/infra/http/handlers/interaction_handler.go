package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrefvs/crm-inteligente/internal/infra/http/middleware"
	"github.com/andrefvs/crm-inteligente/internal/usecase"
)

type InteracaoHandler struct {
	UpdateStatusUC *usecase.UpdateStatusUseCase
	AddInteracaoUC *usecase.AddInteracaoUseCase
}

func NewInteracaoHandler(
	updateStatusUC *usecase.UpdateStatusUseCase,
	addInteracaoUC *usecase.AddInteracaoUseCase,
) *InteracaoHandler {
	return &InteracaoHandler{
		UpdateStatusUC: updateStatusUC,
		AddInteracaoUC: addInteracaoUC,
	}
}

// UpdateStatus (PATCH /leads/{id}/status): o arrastar do card no board.
func (h *InteracaoHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	lead, err := h.UpdateStatusUC.Execute(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordStatusChange(string(lead.Status))
	writeJSON(w, http.StatusOK, lead)
}

// Create (POST /leads/{id}/interacoes): registra o contato e o novo
// estágio do funil em uma operação só.
func (h *InteracaoHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.AddInteracaoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	interacao, err := h.AddInteracaoUC.Execute(r.Context(), id, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordInteraction(interacao.Tipo)
	writeJSON(w, http.StatusCreated, interacao)
}
