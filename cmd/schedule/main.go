package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/maelc/cinebooking/config"
	schedulesrv "github.com/maelc/cinebooking/internal/api/schedule_service_api"
	"github.com/maelc/cinebooking/internal/bootstrap"
	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/repository"
	"github.com/maelc/cinebooking/internal/rpc/schedulepb"
	"github.com/maelc/cinebooking/internal/service/schedule"
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

	catalog := clients.NewCatalogClient(cfg.Clients.MovieBaseURL, timeout, nil)
	service := schedule.New(repository.NewFileScheduleStore(cfg.Schedule.Path), catalog)
	if err := service.Load(ctx); err != nil {
		log.Fatalf("load schedule: %v", err)
	}

	server := grpc.NewServer(grpc.ForceServerCodec(schedulepb.Codec{}))
	schedulepb.RegisterScheduleServer(server, schedulesrv.NewServer(service))

	log.Printf("schedule service listening on %s", cfg.Schedule.GRPCAddress)
	if err := bootstrap.RunGRPC(ctx, cfg.Schedule.GRPCAddress, server); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
