package router

import (
	"bakery-pos-api/internal/handler"
	"bakery-pos-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler          *handler.Handler
	InventoryHandler *handler.InventoryHandler
	SalesHandler     *handler.SalesHandler
	DayHandler       *handler.DayHandler
	BackupHandler    *handler.BackupHandler
	AdminHandler     *handler.AdminHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes). RequestID runs first
	// so Recovery and Logging can tag their lines with it.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		if cfg.InventoryHandler != nil {
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", cfg.InventoryHandler.List)
				r.Post("/", cfg.InventoryHandler.Add)
				r.Patch("/{id}", cfg.InventoryHandler.Update)
				r.Post("/{id}/adjust", cfg.InventoryHandler.Adjust)
				r.Delete("/{id}", cfg.InventoryHandler.Delete)
			})
		}

		if cfg.SalesHandler != nil {
			r.Route("/sales", func(r chi.Router) {
				r.Get("/", cfg.SalesHandler.Current)
				r.Post("/checkout", cfg.SalesHandler.Checkout)
				r.Get("/summary", cfg.SalesHandler.Summary)
			})
		}

		r.Route("/history", func(r chi.Router) {
			if cfg.SalesHandler != nil {
				r.Get("/sales", cfg.SalesHandler.History)
				r.Get("/sales/{index}/summary", cfg.SalesHandler.HistorySummary)
			}
			if cfg.InventoryHandler != nil {
				r.Get("/inventory", cfg.InventoryHandler.History)
			}
		})

		if cfg.DayHandler != nil {
			r.Route("/day", func(r chi.Router) {
				r.Get("/", cfg.DayHandler.Status)
				r.Post("/start", cfg.DayHandler.Start)
				r.Post("/end", cfg.DayHandler.End)
			})
		}

		if cfg.BackupHandler != nil {
			r.Route("/backup", func(r chi.Router) {
				r.Get("/export", cfg.BackupHandler.Export)
				r.Post("/import", cfg.BackupHandler.Import)
			})
		}

		if cfg.AdminHandler != nil {
			r.Route("/admin", func(r chi.Router) {
				r.Get("/stats", cfg.AdminHandler.GetStats)
				r.Post("/reset", cfg.AdminHandler.ResetAll)
				r.Post("/reset-inventory", cfg.AdminHandler.ResetInventory)
			})
		}
	})

	return r
}
