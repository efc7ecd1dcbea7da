package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.crm"
	DLXName      = "ex.crm.dlx" // Dead Letter Exchange

	// Eventos de ciclo de vida para automações downstream.
	EventsQueueName  = "q.crm.lead-events"
	EventsRoutingKey = "k.lead-event"

	// Captações chegando de forma assíncrona (formulários publicam aqui
	// em vez de bater no webhook HTTP).
	IntakeQueueName  = "q.crm.lead-intake"
	IntakeRoutingKey = "k.lead-intake"

	EventsDLQName = "q.crm.lead-events.dlq"
	IntakeDLQName = "q.crm.lead-intake.dlq"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		conn.Close()
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {
	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	queues := []struct {
		name, dlq, key string
	}{
		{EventsQueueName, EventsDLQName, EventsRoutingKey},
		{IntakeQueueName, IntakeDLQName, IntakeRoutingKey},
	}

	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.dlq, true, false, false, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(q.dlq, q.key, DLXName, false, nil); err != nil {
			return err
		}

		args := amqp.Table{
			"x-dead-letter-exchange":    DLXName, // Nack sem requeue manda pra cá
			"x-dead-letter-routing-key": q.key,
		}
		if _, err := ch.QueueDeclare(q.name, true, false, false, false, args); err != nil {
			return err
		}
		if err := ch.QueueBind(q.name, q.key, ExchangeName, false, nil); err != nil {
			return err
		}
	}

	return nil
}
