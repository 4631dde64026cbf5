package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deltagida/offerscan/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API for offers and scan requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		r := chi.NewRouter()
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST"},
		}))

		r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/offers", func(w http.ResponseWriter, req *http.Request) {
			offers, err := e.Store.ListOffers(req.Context(), store.OfferFilter{
				Firm:     req.URL.Query().Get("firm"),
				Currency: req.URL.Query().Get("currency"),
			})
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, offers)
		})

		r.Get("/summary", func(w http.ResponseWriter, req *http.Request) {
			sums, err := e.Store.Summarize(req.Context())
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, sums)
		})

		r.Post("/scan", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Path  string `json:"path"`
				Depth int    `json:"depth"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Path == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "path is required"})
				return
			}

			// Run the scan asynchronously; progress lands in the log.
			go func() {
				paths, err := collectPaths([]string{body.Path}, body.Depth)
				if err != nil {
					zap.L().Error("scan request failed", zap.String("path", body.Path), zap.Error(err))
					return
				}
				if _, err := newRunner(e).Run(ctx, paths); err != nil {
					zap.L().Error("scan request aborted", zap.String("path", body.Path), zap.Error(err))
				}
			}()

			writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "path": body.Path})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
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

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
