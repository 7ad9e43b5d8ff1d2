package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	mobileVerifier middleware.MobileTokenVerifier,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	pettyCashHandler PettyCashHandler,
	expenseHandler ExpenseHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	taskHandler TaskHandler,
	activityHandler ActivityHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub-backend"),
		slog.String("version", "v1.0.0"),
	)

	// Open CORS: the field app and the admin UI are served from
	// arbitrary origins, so preflights answer immediately.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/employee", authHandler.MobileLogin)
			})
		})

		// Field app, authenticated with the compact employee token.
		r.Route("/mobile", func(r chi.Router) {
			r.Use(middleware.MobileAuth(mobileVerifier))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListMine)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/status", attendanceHandler.Status)
				r.Get("/validate", attendanceHandler.ValidateTransition)
				r.Get("/summary/daily", attendanceHandler.DailySummary)
				r.Get("/stats/monthly", attendanceHandler.MonthlyStats)
			})

			r.Route("/petty-cash", func(r chi.Router) {
				r.Get("/", pettyCashHandler.ListMine)
				r.Post("/", pettyCashHandler.Create)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", expenseHandler.ListMine)
				r.Post("/", expenseHandler.Create)
				r.Get("/categories", expenseHandler.ListCategories)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", leaveHandler.ListMine)
				r.Post("/", leaveHandler.Create)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.ListMine)
				r.Get("/eligibility", taskHandler.Eligibility)
				r.Post("/", taskHandler.Create)
				r.Post("/{id}/complete", taskHandler.Complete)
			})
		})

		// Back office, authenticated with JWT access tokens.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
					r.Post("/{id}/approve", attendanceHandler.Approve)
					r.Post("/{id}/reject", attendanceHandler.Reject)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/petty-cash", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", pettyCashHandler.List)
					r.Get("/{id}", pettyCashHandler.Get)
					r.Post("/{id}/approve", pettyCashHandler.Approve)
					r.Post("/{id}/reject", pettyCashHandler.Reject)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Delete("/{id}", pettyCashHandler.Delete)
					r.Post("/bulk-delete", pettyCashHandler.BulkDelete)
				})
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", expenseHandler.List)
					r.Get("/categories", expenseHandler.ListCategories)
					r.Get("/{id}", expenseHandler.Get)
					r.Post("/{id}/approve", expenseHandler.Approve)
					r.Post("/{id}/reject", expenseHandler.Reject)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Delete("/{id}", expenseHandler.Delete)
					r.Post("/bulk-delete", expenseHandler.BulkDelete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", leaveHandler.List)
					r.Get("/{id}", leaveHandler.Get)
					r.Post("/{id}/approve-l1", leaveHandler.ApproveL1)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{id}/approve-l2", leaveHandler.ApproveL2)
					r.Delete("/{id}", leaveHandler.Delete)
					r.Post("/bulk-delete", leaveHandler.BulkDelete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/", payrollHandler.List)
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/{id}", payrollHandler.Get)
				r.Put("/{id}", payrollHandler.Edit)
				r.Delete("/{id}", payrollHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/monthly", reportHandler.Monthly)
			})

			r.Route("/activity", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/actors/{actorID}", activityHandler.ListByActor)
				r.Get("/{entityType}/{entityID}", activityHandler.ListByEntity)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Get("/", taskHandler.List)
					r.Get("/{id}", taskHandler.Get)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Delete("/{id}", taskHandler.Delete)
				})
			})
		})
	})

	return r
}
