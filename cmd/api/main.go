package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/geraldx2005/attendance-backend-go/internal/config"
	appHTTP "github.com/geraldx2005/attendance-backend-go/internal/handler/http"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/cron"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/database"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/sse"
	"github.com/geraldx2005/attendance-backend-go/internal/repository/postgresql"
	auditService "github.com/geraldx2005/attendance-backend-go/internal/service/audit"
	employeeService "github.com/geraldx2005/attendance-backend-go/internal/service/employee"
	ingestService "github.com/geraldx2005/attendance-backend-go/internal/service/ingest"
	reportService "github.com/geraldx2005/attendance-backend-go/internal/service/report"
	uploadService "github.com/geraldx2005/attendance-backend-go/internal/service/upload"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		fmt.Println("Error migrating database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	uploadRepo := postgresql.NewUploadRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	ingestSvc := ingestService.NewIngestService(db, employeeRepo, punchRepo, uploadRepo, attendanceRepo, cfg.Ingest.MaxRows)
	uploadSvc := uploadService.NewUploadService(db, uploadRepo, punchRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(reportRepo, employeeRepo, attendanceRepo, time.Now)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	auditor := auditService.NewCacheAuditor(db, punchRepo, attendanceRepo, logger)

	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("attendance-cache-audit", cfg.Audit.Interval, func(ctx context.Context) error {
		_, err := auditor.Run(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	hub := sse.NewHub()

	uploadHandler := appHTTP.NewUploadHandler(ingestSvc, uploadSvc, hub, cfg.Ingest.MaxUploadBytes)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(logger, uploadHandler, employeeHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
