package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valfantasy/pkg/config"
	"valfantasy/pkg/database"
	"valfantasy/pkg/logger"
	"valfantasy/scraper/ingest"
	"valfantasy/scraper/stats"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const healthServiceName = "valfantasy.Scraper"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	log.Println("Starting scraper...")

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(cfg, rawDb); err != nil {
		log.Fatal(err)
	}

	runLogger, err := logger.CreateLogger(cfg.Bucket)
	if err != nil {
		log.Fatalf("Couldn't create the run logger: %v", err)
	}

	ingestService := ingest.NewService(&ingest.ServiceDeps{
		DB:     db,
		Logger: runLogger,
	})
	statsClient := stats.NewClient(cfg.League.StatsURL)

	// Start the ingestion loop.
	go runIngestLoop(ctx, cfg, statsClient, ingestService, runLogger)

	// Start the gRPC health server so the orchestrator can probe liveness.
	grpcServer, healthServer := startGRPCServer()

	handleShutdown(grpcServer, healthServer, stop)
}

// runIngestLoop scrapes and ingests one observation window per
// interval. Runs immediately on startup, then on every tick.
func runIngestLoop(ctx context.Context, cfg *config.Config, client *stats.Client, service *ingest.Service, runLogger *logger.Logger) {
	ticker := time.NewTicker(cfg.League.IngestInterval)
	defer ticker.Stop()

	runOnce(ctx, client, service, runLogger)

	for {
		select {
		case <-ticker.C:
			runOnce(ctx, client, service, runLogger)
		case <-ctx.Done():
			return
		}
	}
}

// runOnce executes a single scrape and ingestion pass.
func runOnce(ctx context.Context, client *stats.Client, service *ingest.Service, runLogger *logger.Logger) {
	windowID := uuid.NewString()
	runLogger.Infof("Starting scrape for window %s", windowID)

	rows, err := client.Fetch(ctx)
	if err != nil {
		runLogger.Errorf("Scrape failed: %v", err)
		log.Printf("Scrape failed: %v", err)
		return
	}

	if err := service.IngestMatchBatch(ctx, windowID, rows); err != nil {
		runLogger.Errorf("Ingestion failed: %v", err)
		log.Printf("Ingestion failed: %v", err)
		return
	}

	runLogger.EmptyLine()

	objectKey := time.Now().UTC().Format("2006-01-02") + "-" + windowID + ".log"
	if err := runLogger.UploadToS3Bucket(objectKey); err != nil {
		log.Printf("Couldn't upload the run log: %v", err)
	}
}

// startGRPCServer starts the grpc server exposing the health check.
func startGRPCServer() (*grpc.Server, *health.Server) {
	list, err := net.Listen("tcp", ":50051")
	if err != nil {
		log.Fatalf("Couldn't start the tcp server: %v", err)
	}

	grpcServer := grpc.NewServer()

	// Register the health check.
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	// Set the serving status as serving.
	healthServer.SetServingStatus(healthServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	// Run a go routine for the grpc server.
	go func() {
		log.Println("Running gRPC server.")
		if err := grpcServer.Serve(list); err != nil {
			log.Fatalf("Failed to serve grpc: %v", err)
		}
	}()

	return grpcServer, healthServer
}

// handleShutdown waits for a signal and stops the daemon gracefully.
func handleShutdown(grpcServer *grpc.Server, healthServer *health.Server, cancel context.CancelFunc) {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	<-signalChannel

	// Set it to not serving before tearing anything down.
	healthServer.SetServingStatus(healthServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	cancel()
	grpcServer.GracefulStop()
}
