package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jocross/leadboard/internal/analytics"
	"github.com/jocross/leadboard/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(st),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// api serves the dashboard endpoints. Concurrent dashboard requests share
// a single fetch-and-aggregate pass via singleflight.
type api struct {
	store store.Store
	group singleflight.Group
	now   func() time.Time
}

func newRouter(st store.Store) http.Handler {
	a := &api{store: st, now: time.Now}
	return a.routes()
}

func (a *api) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", a.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/leads", a.handleLeads)
		r.Get("/dashboard", a.handleDashboard)
		r.Get("/filters", a.handleFilters)
	})
	return r
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *api) handleLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := a.store.FetchAll(r.Context())
	if err != nil {
		a.storeError(w, "fetch leads", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total": len(leads),
		"leads": leads,
	})
}

func (a *api) handleDashboard(w http.ResponseWriter, r *http.Request) {
	// The fetch is shared by every collapsed request, so it must not die
	// with the one that happened to start it.
	ctx := context.WithoutCancel(r.Context())
	snap, err, _ := a.group.Do("dashboard", func() (any, error) {
		leads, err := a.store.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.BuildSnapshot(leads, a.now()), nil
	})
	if err != nil {
		a.storeError(w, "build dashboard", err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (a *api) handleFilters(w http.ResponseWriter, r *http.Request) {
	leads, err := a.store.FetchAll(r.Context())
	if err != nil {
		a.storeError(w, "fetch filters", err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.FilterOptions(leads))
}

// storeError is the read-path failure boundary: the error is logged and
// surfaced as a gateway failure for the frontend to report; the request is
// retryable via an explicit refresh.
func (a *api) storeError(w http.ResponseWriter, action string, err error) {
	zap.L().Error("store request failed",
		zap.String("action", action),
		zap.Error(err),
	)
	writeJSON(w, http.StatusBadGateway, map[string]string{
		"error": "Não foi possível carregar os dados",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
