package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/andrefvs/crm-inteligente/internal/usecase"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// writeUseCaseError traduz a taxonomia de erros do usecase em status HTTP.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case usecase.CodeDuplicateEmail:
			writeError(w, http.StatusConflict, domainErr.Code, domainErr.Message)
		case usecase.CodeLeadNotFound:
			writeError(w, http.StatusNotFound, domainErr.Code, domainErr.Message)
		case usecase.CodeValidation:
			writeError(w, http.StatusUnprocessableEntity, domainErr.Code, domainErr.Message)
		default:
			writeError(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
		}
		return
	}

	log.Printf("❌ erro interno: %v", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
