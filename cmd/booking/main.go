package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/maelc/cinebooking/api"
	"github.com/maelc/cinebooking/config"
	"github.com/maelc/cinebooking/internal/bootstrap"
	"github.com/maelc/cinebooking/internal/cache"
	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/kafka"
	"github.com/maelc/cinebooking/internal/ledger"
	"github.com/maelc/cinebooking/internal/repository"
	"github.com/maelc/cinebooking/internal/service/booking"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newLedgerStore(ctx, cfg)
	if err != nil {
		log.Fatalf("ledger store: %v", err)
	}
	defer cleanup()

	led := ledger.New(store)
	if err := led.Load(ctx); err != nil {
		log.Fatalf("load ledger: %v", err)
	}

	timeout := time.Duration(cfg.Clients.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 3 * time.Second
	}

	var movieCache clients.MovieCache
	if cfg.Redis.Addr != "" {
		movieCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Clients.MovieCacheTTLSeconds)*time.Second)
	}
	catalog := clients.NewCatalogClient(cfg.Clients.MovieBaseURL, timeout, movieCache)

	conn, err := grpc.NewClient(cfg.Clients.ScheduleAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("connect schedule service: %v", err)
	}
	defer conn.Close()
	schedule := clients.NewScheduleChecker(conn, timeout)

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	service := booking.NewService(
		led,
		schedule,
		catalog,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	gate := booking.NewAdminGate(clients.NewUsersClient(cfg.Clients.UserBaseURL, timeout))

	router := gin.Default()
	api.NewBookingHandler(service, gate).Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{Addr: cfg.Booking.HTTPAddress, Handler: router}
	log.Printf("booking service listening on %s", cfg.Booking.HTTPAddress)
	if err := bootstrap.RunHTTP(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newLedgerStore(ctx context.Context, cfg *config.Config) (repository.LedgerStore, func(), error) {
	switch cfg.Booking.Storage {
	case "", "file":
		return repository.NewFileLedgerStore(cfg.Booking.LedgerPath), func() {}, nil
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return repository.NewMongoLedgerStore(client.Database(cfg.Mongo.Database)), cleanup, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPGLedgerStore(pool), pool.Close, nil
	default:
		log.Fatalf("unknown ledger storage backend: %q", cfg.Booking.Storage)
		return nil, nil, nil
	}
}
