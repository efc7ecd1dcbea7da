package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andrefvs/crm-inteligente/internal/entity"
	"github.com/andrefvs/crm-inteligente/internal/usecase"
)

// LeadCreator é o contrato que o worker precisa do caso de uso de captação.
type LeadCreator interface {
	Execute(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error)
}

// Worker consome captações assíncronas: formulários e integrações que
// publicam na fila em vez de chamar o webhook HTTP.
type Worker struct {
	Channel *amqp.Channel
	Creator LeadCreator
}

func NewWorker(ch *amqp.Channel, creator LeadCreator) *Worker {
	return &Worker{
		Channel: ch,
		Creator: creator,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	go func() {
		for d := range msgs {
			w.Process(context.Background(), d)
		}
	}()
}

// Process decide o destino da mensagem:
//   - JSON podre: Nack sem requeue (vai pra DLQ, requeue travaria a fila)
//   - erro de domínio (duplicado, validação): Ack e descarta, reprocessar
//     não muda o resultado
//   - erro técnico (banco fora): Nack sem requeue, a DLQ guarda pra
//     reprocesso manual
func (w *Worker) Process(ctx context.Context, d amqp.Delivery) {
	var input usecase.CreateLeadInput
	if err := json.Unmarshal(d.Body, &input); err != nil {
		log.Printf("❌ [WORKER] JSON inválido na captação: %s", err)
		d.Nack(false, false)
		return
	}

	lead, err := w.Creator.Execute(ctx, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			log.Printf("⚠️ [WORKER] Captação descartada (%s): %v", input.EmailPrimario, err)
			d.Ack(false)
			return
		}

		log.Printf("❌ [WORKER] Erro ao processar captação: %v", err)
		d.Nack(false, false)
		return
	}

	log.Printf("📥 [WORKER] Lead captado via fila: %s (%s)", lead.Nome, lead.ID)
	d.Ack(false)
}
