package http

import (
	"log/slog"
	"os"

	"github.com/emsuite/ems-backend-go/internal/handler/http/middleware"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(JWTService jwt.Service, reportHandler ReportHandler, env string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-reporting"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/reports", func(r chi.Router) {
				r.Route("/attendance", func(r chi.Router) {
					r.Get("/employee", reportHandler.GetEmployeeAttendanceReport)

					// HR and managers only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireElevated)
						r.Get("/team", reportHandler.GetTeamAttendanceReport)
						r.Get("/analytics", reportHandler.GetAttendanceAnalytics)
						r.Get("/dashboard", reportHandler.GetAttendanceDashboard)
					})
				})

				r.Route("/leave", func(r chi.Router) {
					r.Get("/employee", reportHandler.GetEmployeeLeaveReport)

					// HR and managers only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireElevated)
						r.Get("/team", reportHandler.GetTeamLeaveReport)
						r.Get("/analytics", reportHandler.GetLeaveAnalytics)
					})
				})

				r.Get("/performance", reportHandler.GetPerformanceReport)
			})
		})
	})
	return r
}
