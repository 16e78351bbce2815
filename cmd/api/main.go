package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/config"
	appHTTP "github.com/jansou-app/jansou-backend-go/internal/handler/http"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/cron"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/jwt"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/storage"
	"github.com/jansou-app/jansou-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/jansou-app/jansou-backend-go/internal/service/auth"
	boardService "github.com/jansou-app/jansou-backend-go/internal/service/board"
	payrollService "github.com/jansou-app/jansou-backend-go/internal/service/payroll"
	resultService "github.com/jansou-app/jansou-backend-go/internal/service/result"
	settingsService "github.com/jansou-app/jansou-backend-go/internal/service/settings"
	shiftService "github.com/jansou-app/jansou-backend-go/internal/service/shift"
	statsService "github.com/jansou-app/jansou-backend-go/internal/service/stats"
	storeService "github.com/jansou-app/jansou-backend-go/internal/service/store"
	"github.com/jansou-app/jansou-backend-go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, migrations.FS); err != nil {
		log.Fatal("Failed to apply migrations: ", err)
	}
	if err := database.Seed(ctx, db, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	gameSettingsRepo := postgresql.NewGameSettingsRepository(db)
	specialWageRepo := postgresql.NewSpecialWageRepository(db)
	gameResultRepo := postgresql.NewGameResultRepository(db)
	shiftRequirementRepo := postgresql.NewShiftRequirementRepository(db)
	advancePaymentRepo := postgresql.NewAdvancePaymentRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	storeSvc := storeService.NewStoreService(storeRepo)
	gameSettingsSvc := settingsService.NewGameSettingsService(gameSettingsRepo, userRepo)
	specialWageSvc := settingsService.NewSpecialWageService(specialWageRepo)
	boardSvc := boardService.NewBoardService(db, shiftRequirementRepo, shiftRepo, storeRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, userRepo, specialWageRepo, boardSvc)
	resultSvc := resultService.NewGameResultService(db, gameResultRepo, gameSettingsRepo, storeRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(
		shiftRepo,
		gameResultRepo,
		gameSettingsRepo,
		specialWageRepo,
		advancePaymentRepo,
		userRepo,
		fileStorage,
	)
	statsSvc := statsService.NewStatsService(statsRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	resultHandler := appHTTP.NewResultHandler(resultSvc)
	settingsHandler := appHTTP.NewSettingsHandler(gameSettingsSvc, specialWageSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	boardHandler := appHTTP.NewBoardHandler(boardSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		shiftHandler,
		resultHandler,
		settingsHandler,
		payrollHandler,
		storeHandler,
		boardHandler,
		statsHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(JWTRepository, boardSvc).RegisterJobs(scheduler)
	scheduler.Start()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}
	fmt.Println("Server stopped")
}
