package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andrefvs/crm-inteligente/internal/entity"
	"github.com/andrefvs/crm-inteligente/internal/infra/http/middleware"
	"github.com/andrefvs/crm-inteligente/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC  *usecase.CreateLeadUseCase
	LeadRepo      entity.LeadRepositoryInterface
	InteracaoRepo entity.InteracaoRepositoryInterface
	rateLimiter   *RateLimiter
}

func NewLeadHandler(
	createLeadUC *usecase.CreateLeadUseCase,
	leadRepo entity.LeadRepositoryInterface,
	interacaoRepo entity.InteracaoRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC:  createLeadUC,
		LeadRepo:      leadRepo,
		InteracaoRepo: interacaoRepo,
		rateLimiter:   NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// Capture (POST /webhook/leads) é o endpoint público que os formulários
// chamam; por isso o rate limit por IP.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "RATE_LIMITED",
			"Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	lead, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.Origem)
	writeJSON(w, http.StatusCreated, lead)
}

// List (GET /leads) devolve as projeções de resumo do board.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindAll(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	summaries := make([]usecase.LeadSummaryOutput, 0, len(leads))
	for _, lead := range leads {
		summaries = append(summaries, usecase.ToLeadSummary(lead))
	}

	writeJSON(w, http.StatusOK, summaries)
}

// Get (GET /leads/{id}) devolve o lead completo com o histórico ordenado.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.LeadRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, usecase.CodeLeadNotFound, err.Error())
			return
		}
		writeUseCaseError(w, err)
		return
	}

	interacoes, err := h.InteracaoRepo.FindByLeadID(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, usecase.LeadDetailOutput{
		Lead:       lead,
		Interacoes: interacoes,
	})
}

// Delete (DELETE /leads/{id}) remove o lead; o histórico cai junto pelo
// cascade do banco.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.LeadRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, usecase.CodeLeadNotFound, err.Error())
			return
		}
		writeUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
