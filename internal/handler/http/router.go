package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jansou-app/jansou-backend-go/internal/handler/http/middleware"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	shiftHandler ShiftHandler,
	resultHandler ResultHandler,
	settingsHandler SettingsHandler,
	payrollHandler PayrollHandler,
	storeHandler StoreHandler,
	boardHandler BoardHandler,
	statsHandler StatsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jansou-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			// Per-user resources: staff reach only their own, admins any
			r.Route("/users/{userID}", func(r chi.Router) {
				r.Use(middleware.SelfOrAdmin)

				r.Route("/shifts", func(r chi.Router) {
					r.Post("/", shiftHandler.Create)
					r.Get("/", shiftHandler.List)
					r.Put("/{shiftID}", shiftHandler.Update)
					r.Delete("/{shiftID}", shiftHandler.Delete)
				})

				r.Route("/results", func(r chi.Router) {
					r.Post("/", resultHandler.Create)
					r.Get("/", resultHandler.List)
					r.Post("/simple-batch", resultHandler.CreateSimpleBatch)
					r.Put("/{resultID}", resultHandler.Update)
					r.Delete("/{resultID}", resultHandler.Delete)
				})

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", settingsHandler.Get)
					r.Put("/", settingsHandler.Update)
				})

				r.Route("/salary/{month}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetSummary)
					r.Get("/payslip", payrollHandler.DownloadPayslip)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/advance", payrollHandler.UpsertAdvance)
					})
				})

				r.Get("/stats/{month}", statsHandler.UserStats)
			})

			r.Route("/special-wages", func(r chi.Router) {
				r.Get("/", settingsHandler.ListSpecialWages)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", settingsHandler.CreateSpecialWage)
					r.Put("/{wageID}", settingsHandler.UpdateSpecialWage)
					r.Delete("/{wageID}", settingsHandler.DeleteSpecialWage)
				})
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", storeHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", storeHandler.Create)
				})

				r.Route("/{storeID}", func(r chi.Router) {
					r.Get("/", storeHandler.Get)

					r.Route("/shift-board", func(r chi.Router) {
						r.Get("/", boardHandler.GetBoard)
						r.Get("/export", boardHandler.ExportBoard)
					})

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", storeHandler.Update)
						r.Put("/shift-requirements", boardHandler.UpsertRequirement)
					})
				})
			})

			r.Get("/stats/rankings", statsHandler.Rankings)
		})
	})
	return r
}
