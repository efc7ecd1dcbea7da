package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/andrefvs/crm-inteligente/internal/infra/database"
	"github.com/andrefvs/crm-inteligente/internal/infra/http/handlers"
	"github.com/andrefvs/crm-inteligente/internal/infra/http/middleware"
	"github.com/andrefvs/crm-inteligente/internal/infra/queue"
	"github.com/andrefvs/crm-inteligente/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no Postgres: %v", err)
	}
	defer db.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	interacaoRepo := database.NewInteracaoRepository(db)

	// 2. Fila (opcional: sem RABBITMQ_URL a API sobe sem eventos nem
	// captação assíncrona)
	var events usecase.EventPublisherInterface
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	// 3. UseCases
	defaultOrigem := os.Getenv("DEFAULT_LEAD_ORIGIN")
	if defaultOrigem == "" {
		defaultOrigem = "Landing Page Principal"
	}

	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, events, defaultOrigem)
	updateStatusUC := usecase.NewUpdateStatusUseCase(leadRepo, events)
	addInteracaoUC := usecase.NewAddInteracaoUseCase(interacaoRepo, events)

	// 4. Worker de captação assíncrona
	if rabbitMQ != nil {
		worker := queue.NewWorker(rabbitMQ.Ch, createLeadUC)
		worker.Start(queue.IntakeQueueName)
	}

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, leadRepo, interacaoRepo)
	interacaoHandler := handlers.NewInteracaoHandler(updateStatusUC, addInteracaoUC)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins(),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/webhook/leads", leadHandler.Capture)
	r.Get("/leads", leadHandler.List)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Delete("/leads/{id}", leadHandler.Delete)
	r.Patch("/leads/{id}/status", interacaoHandler.UpdateStatus)
	r.Post("/leads/{id}/interacoes", interacaoHandler.Create)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 CRM Inteligente API rodando na porta :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}

func corsOrigins() []string {
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:5173"}
}
