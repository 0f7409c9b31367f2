package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/nrdev/scrim-services/configs"
	"github.com/nrdev/scrim-services/internal/db"
	"github.com/nrdev/scrim-services/internal/matchsvc/broker"
	"github.com/nrdev/scrim-services/internal/matchsvc/handlers"
	"github.com/nrdev/scrim-services/internal/matchsvc/service"
	"github.com/nrdev/scrim-services/internal/matchsvc/store"
	nats "github.com/nrdev/scrim-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "match"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	gameStore := store.NewGameStore(dbpool)
	matchStore := store.NewMatchStore(dbpool)
	mapStore := store.NewMapStore(dbpool)
	titleStore := store.NewTitleStore(dbpool)
	participantStore := store.NewParticipantStore(dbpool)
	outboxStore := store.NewOutboxStore(dbpool)

	outbox := service.NewOutbox(outboxStore)
	gameService := service.NewGameService(gameStore, matchStore, mapStore, outbox)
	scoringService := service.NewScoringService(gameStore, matchStore, titleStore)
	voiceService := service.NewVoiceService(matchStore)
	progressService := service.NewProgressService(gameService, scoringService, voiceService,
		outbox, gameStore, matchStore, participantStore)

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// init gateway message broker
	broker := broker.NewBroker(n.Conn, progressService, gameService)

	// subscribe to result traffic from the gateway service
	topic := "match.results"
	sub, err := broker.SubscribeGateway(topic)
	if err != nil {
		log.Errorf("Error: unable to subscribe to queue %v", err)
		os.Exit(0)
	}

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(progressService, gameService)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("MATCH_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
