package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindwell/internal/cache"
	"mindwell/internal/chatbot"
	"mindwell/internal/config"
	"mindwell/internal/repository"
	"mindwell/internal/sentiment"
	"mindwell/internal/service"
	"mindwell/internal/transport/rest"
	"mindwell/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "dev-secret"
		log.Warn().Msg("JWT_SECRET not set, using development secret")
	}
	counsellorPassword := cfg.CounsellorPassword
	if counsellorPassword == "" {
		counsellorPassword = "counsellor"
		log.Warn().Msg("COUNSELLOR_PASSWORD not set, using development password")
	}

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	log.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping Redis")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	// WebSocket alert hub
	wsHub := ws.NewHub()

	// Repositories
	convRepo := repository.NewConversationRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	escalationRepo := repository.NewEscalationRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)

	// Caches
	trendsCache := cache.NewTrendsCache(rdb)

	// Core analysis pipeline
	scorer := sentiment.NewScorer(cfg.SentimentModelPath)
	analyzer := sentiment.NewAnalyzer(scorer)
	responder := chatbot.NewResponder()

	// Services
	authSvc := service.NewAuthService(cfg.CounsellorUsername, counsellorPassword, jwtSecret)
	chatSvc := service.NewChatService(analyzer, responder, convRepo, trendsCache)
	assessmentSvc := service.NewAssessmentService(assessmentRepo)
	escalationSvc := service.NewEscalationService(escalationRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	chatSvc.SetBroadcaster(wsHub)
	escalationSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:        authSvc,
		ChatService:        chatSvc,
		AssessmentService:  assessmentSvc,
		EscalationService:  escalationSvc,
		AppointmentService: appointmentSvc,
		WSHub:              wsHub,
		CORSOrigins:        cfg.CORSOrigins,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
