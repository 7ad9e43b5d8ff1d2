package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/config"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/approval"
	appHTTP "github.com/staffhub-hr/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/cron"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/storage"
	"github.com/staffhub-hr/staffhub-backend-go/internal/repository/postgresql"
	activityService "github.com/staffhub-hr/staffhub-backend-go/internal/service/activity"
	attendanceService "github.com/staffhub-hr/staffhub-backend-go/internal/service/attendance"
	authService "github.com/staffhub-hr/staffhub-backend-go/internal/service/auth"
	expenseService "github.com/staffhub-hr/staffhub-backend-go/internal/service/expense"
	leaveService "github.com/staffhub-hr/staffhub-backend-go/internal/service/leave"
	payrollService "github.com/staffhub-hr/staffhub-backend-go/internal/service/payroll"
	pettyCashService "github.com/staffhub-hr/staffhub-backend-go/internal/service/pettycash"
	reportService "github.com/staffhub-hr/staffhub-backend-go/internal/service/report"
	taskService "github.com/staffhub-hr/staffhub-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "staffhub-backend"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	pettyCashRepo := postgresql.NewPettyCashRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	tokenValidity, err := time.ParseDuration(cfg.Token.Validity)
	if err != nil {
		log.Fatal("Invalid TOKEN_VALIDITY: ", err)
	}

	recorder := activityService.NewRecorder(activityRepo, logger)

	authSvc := authService.NewService(userRepo, employeeRepo, jwtService, tokenValidity)
	attendanceSvc := attendanceService.NewService(attendanceRepo, fileStorage, approval.SingleLevel(), recorder, logger)
	pettyCashSvc := pettyCashService.NewService(pettyCashRepo, approval.SingleLevel(), recorder)
	expenseSvc := expenseService.NewService(expenseRepo, fileStorage, approval.SingleLevel(), recorder)
	leaveSvc := leaveService.NewService(leaveRepo, approval.TwoLevel(), recorder)
	payrollSvc := payrollService.NewService(db, payrollRepo, employeeRepo, attendanceRepo, recorder)
	reportSvc := reportService.NewService(reportRepo)
	taskSvc := taskService.NewService(taskRepo, attendanceRepo, logger)
	activityLog := activityService.NewLog(activityRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	pettyCashHandler := appHTTP.NewPettyCashHandler(pettyCashSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	activityHandler := appHTTP.NewActivityHandler(activityLog)

	router := appHTTP.NewRouter(
		jwtService,
		authSvc,
		authHandler,
		attendanceHandler,
		pettyCashHandler,
		expenseHandler,
		leaveHandler,
		payrollHandler,
		reportHandler,
		taskHandler,
		activityHandler,
	)

	sweeper := cron.NewSessionSweeper(attendanceRepo)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("close-stale-sessions", time.Hour, sweeper.CloseStale)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
