package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	uploadHandler UploadHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/uploads", func(r chi.Router) {
			r.Post("/", uploadHandler.Upload)
			r.Get("/", uploadHandler.List)
			r.Get("/progress/{job}", uploadHandler.Progress)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", uploadHandler.Get)
				r.Delete("/", uploadHandler.Delete)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Get("/days/{date}", reportHandler.DayDetail)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", reportHandler.MonthlySummary)
			r.Get("/grid", reportHandler.MonthlyGrid)
			r.Get("/grid/export", reportHandler.ExportMonthlyGrid)
			r.Get("/daily", reportHandler.Daily)
		})
	})

	return r
}
