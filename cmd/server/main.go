package main

import (
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"scheduling/internal/api/handler"
	"scheduling/internal/api/middleware"
	"scheduling/internal/api/router"
	"scheduling/internal/cache"
	"scheduling/internal/clerk"
	"scheduling/internal/config"
	"scheduling/internal/core/repository"
	"scheduling/internal/core/service"
)

var cli struct {
	Debug              bool   `help:"Enable debug logging." env:"DEBUG"`
	Addr               string `help:"Listen address." default:":8000" env:"ADDR"`
	MongoURI           string `help:"MongoDB connection string." env:"MONGODB_URI" required:""`
	MongoDatabase      string `help:"MongoDB database name." default:"scheduling" env:"MONGODB_DATABASE"`
	RedisURL           string `help:"Redis URL for webhook delivery dedup." env:"REDIS_URL"`
	ClerkWebhookSecret string `help:"Clerk webhook signing secret." env:"CLERK_WEBHOOK_SECRET" required:""`
	SessionJWTSecret   string `help:"Secret for session token verification." env:"SESSION_JWT_SECRET" required:""`
}

func main() {
	kong.Parse(&cli)

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cli.Debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	db, err := config.ConnectMongoDB(config.MongoConfig{
		URI:      cli.MongoURI,
		Database: cli.MongoDatabase,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	if err := repository.EnsureIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	dedup := cache.New(cli.RedisURL, log)
	defer dedup.Close()

	userRepo := repository.NewMongoUserRepository(db)
	orgRepo := repository.NewMongoOrganizationRepository(db)
	membershipRepo := repository.NewMongoOrganizationMembershipRepository(db)
	scheduleRepo := repository.NewMongoScheduleRepository(db)

	syncService := service.NewSyncService(userRepo, orgRepo, membershipRepo)
	authService := service.NewAuthService(userRepo, membershipRepo)
	userService := service.NewUserService(userRepo, orgRepo, membershipRepo, authService)
	scheduleService := service.NewScheduleService(scheduleRepo, authService)

	verifier, err := clerk.NewVerifier(cli.ClerkWebhookSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize webhook verifier")
	}

	r := router.NewRouter(
		handler.NewWebhookHandler(verifier, syncService, dedup, log),
		handler.NewUserHandler(authService, userService),
		handler.NewScheduleHandler(scheduleService),
		middleware.NewAuthMiddleware(cli.SessionJWTSecret),
		log,
	)

	server := &http.Server{
		Addr:              cli.Addr,
		Handler:           r,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	log.Info().Str("addr", cli.Addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
