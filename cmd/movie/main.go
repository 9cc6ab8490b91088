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

	"github.com/maelc/cinebooking/api"
	"github.com/maelc/cinebooking/config"
	"github.com/maelc/cinebooking/internal/bootstrap"
	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/repository"
	"github.com/maelc/cinebooking/internal/service/movies"
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

	timeout := time.Duration(cfg.Clients.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 3 * time.Second
	}

	store := repository.NewFileMovieStore(cfg.Movie.DataDir)
	service := movies.New(store, clients.NewUsersClient(cfg.Clients.UserBaseURL, timeout))
	if err := service.Load(ctx); err != nil {
		log.Fatalf("load movies: %v", err)
	}

	router := gin.Default()
	api.NewMovieHandler(service).Register(router)

	srv := &http.Server{Addr: cfg.Movie.HTTPAddress, Handler: router}
	log.Printf("movie service listening on %s", cfg.Movie.HTTPAddress)
	if err := bootstrap.RunHTTP(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
