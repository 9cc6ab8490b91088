package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/maelc/cinebooking/api"
	"github.com/maelc/cinebooking/config"
	"github.com/maelc/cinebooking/internal/bootstrap"
	"github.com/maelc/cinebooking/internal/repository"
	"github.com/maelc/cinebooking/internal/service/users"
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

	service := users.New(repository.NewFileUserStore(cfg.User.Path))
	if err := service.Load(ctx); err != nil {
		log.Fatalf("load users: %v", err)
	}

	router := gin.Default()
	api.NewUserHandler(service).Register(router)

	srv := &http.Server{Addr: cfg.User.HTTPAddress, Handler: router}
	log.Printf("user service listening on %s", cfg.User.HTTPAddress)
	if err := bootstrap.RunHTTP(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
