package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/horecalabs/productivity-backend-go/internal/config"
	"github.com/horecalabs/productivity-backend-go/internal/fixtures"
	appHTTP "github.com/horecalabs/productivity-backend-go/internal/handler/http"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/cron"
	"github.com/horecalabs/productivity-backend-go/internal/pkg/database"
	"github.com/horecalabs/productivity-backend-go/internal/repository/postgresql"
	productivityService "github.com/horecalabs/productivity-backend-go/internal/service/productivity"
	teamService "github.com/horecalabs/productivity-backend-go/internal/service/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftRepo := postgresql.NewShiftRepository(db)
	revenueRepo := postgresql.NewRevenueRepository(db)
	teamMappingRepo := postgresql.NewTeamMappingRepository(db)
	runRepo := postgresql.NewProductivityRunRepository(db)

	mappings, err := teamMappingRepo.ListMappings(context.Background())
	if err != nil {
		log.Fatal("Failed to load team mappings:", err)
	}
	if len(mappings) == 0 {
		mappings = fixtures.DefaultTeamMappings()
	}
	resolver, err := teamService.NewResolver(mappings)
	if err != nil {
		// A bad split ratio is a configuration defect; refuse to start.
		log.Fatal("Invalid team mapping table:", err)
	}

	decomposer := productivityService.NewDecomposer(
		cfg.Engine.EstimateWindowStart,
		cfg.Engine.EstimateWindowEnd,
	)
	classifier := productivityService.NewGoalClassifier(cfg.Goals)
	builder := productivityService.NewHierarchyBuilder(classifier)
	productivitySvc := productivityService.NewProductivityService(
		shiftRepo,
		revenueRepo,
		resolver,
		runRepo,
		decomposer,
		builder,
		cfg.Engine.MaxParallelUnits,
	)

	scheduler := cron.NewScheduler()
	productivityJobs := cron.NewProductivityJobs(productivitySvc, shiftRepo, cfg.Engine.RecomputeInterval)
	productivityJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	productivityHandler := appHTTP.NewProductivityHandler(productivitySvc)
	router := appHTTP.NewRouter(productivityHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
