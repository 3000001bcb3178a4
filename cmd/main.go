package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/talentflow/internal/clients/talentflow"
	"github.com/maxaizer/talentflow/internal/config"
	"github.com/maxaizer/talentflow/internal/domain/models"
	"github.com/maxaizer/talentflow/internal/logger"
	"github.com/maxaizer/talentflow/internal/metrics"
	"github.com/maxaizer/talentflow/internal/mockapi"
	"github.com/maxaizer/talentflow/internal/repositories"
	"github.com/maxaizer/talentflow/internal/repositories/seed"
	"github.com/maxaizer/talentflow/internal/services"
	log "github.com/sirupsen/logrus"
)

func openStore(ctx context.Context, cfg config.DBConfig) *repositories.DbContext {

	if dir := filepath.Dir(cfg.ConnectionString); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("can't create db directory: %v", err)
		}
	}

	dbContext, err := repositories.NewDbContext(cfg.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	if cfg.Seed {
		data, err := seed.Default()
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeSeed).Fatalf("can't load seed data: %v", err)
		}
		if err = dbContext.Seed(ctx, data); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeSeed).Fatalf("can't seed db: %v", err)
		}
	}
	return dbContext
}

func serve(addr string, handler http.Handler) *http.Server {
	server := &http.Server{Addr: addr, Handler: handler}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAPI).Errorf("api server stopped: %v", err)
		}
	}()
	log.Infof("api listening on %s", addr)
	return server
}

// smokeTest reads the board through the in-process transport so a misconfigured store fails at startup.
func smokeTest(ctx context.Context, api *mockapi.API) {
	client := talentflow.NewClient("http://talentflow.local")
	client.SetHTTPClient(api.Client())

	jobs, err := client.ListJobs(ctx, talentflow.JobsQuery{Status: models.JobStatusActive})
	if err != nil {
		log.Warnf("smoke test failed: %v", err)
		return
	}
	log.Infof("store ready: %d active jobs", jobs.Total)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	if cfg.Metrics.ListenAddr != "" {
		metrics.StartMetricsServer(cfg.Metrics.ListenAddr)
	}

	dbContext := openStore(ctx, cfg.DB)
	defer dbContext.Close()

	bus := EventBus.New()
	if err := services.SubscribeActivityLog(bus); err != nil {
		log.Fatalf("can't subscribe activity log: %v", err)
	}

	jobs := services.NewJobsService(repositories.NewJobsRepository(dbContext.DB), bus,
		services.NewRandomFailure(cfg.Reorder.FailureRate))

	compactor, err := services.NewOrderCompactor(jobs, cfg.Compactor.Schedule)
	if err != nil {
		log.Fatalf("can't create order compactor: %v", err)
	}
	defer compactor.Stop()

	api := mockapi.New(mockapi.Services{
		Jobs:        jobs,
		Candidates:  services.NewCandidatesService(dbContext.DB, bus),
		Assessments: services.NewAssessmentsService(dbContext.DB, bus),
		Analytics:   services.NewAnalyticsService(dbContext.DB),
	}, mockapi.Options{
		MinLatency: cfg.API.MinLatency,
		MaxLatency: cfg.API.MaxLatency,
		Failures:   services.NewRandomFailure(cfg.API.FailureRate),
	})

	smokeTest(ctx, api)

	var server *http.Server
	if cfg.API.ListenAddr != "" {
		server = serve(cfg.API.ListenAddr, api.Handler())
	}

	<-ctx.Done()

	log.Info("Shutting down services...")
	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}
	log.Info("Services stopped.")
}
