package usecase

import (
	"context"
	"time"
)

// Eventos de ciclo de vida publicados para automações downstream
// (scoring, sincronização com ferramentas de marketing, etc).
const (
	EventLeadCreated       = "lead.created"
	EventStatusChanged     = "lead.status_changed"
	EventInteracaoRecorded = "lead.interaction_recorded"
)

type LeadEvent struct {
	Event      string    `json:"event"`
	LeadID     string    `json:"lead_id"`
	Nome       string    `json:"nome"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	Origem     string    `json:"origem,omitempty"`
	Tipo       string    `json:"tipo,omitempty"`
	OcorridoEm time.Time `json:"ocorrido_em"`
}

type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, event LeadEvent) error
}
