package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/logging"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, defaults to CHROMATIC_ADDR")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the calculator as a JSON API",
	Long: `Serves GET /chord/{token}, /scale/{token}, /progression, /identify and /key
as JSON. Add strict=true to any query to get 400 on unrecognized input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetAddr()
		}
		return serve(cmd.Context(), addr)
	},
}

const RequestIdHeader = "X-Request-ID"

type requestIdKey struct{}

func RequestId(r *http.Request) string {
	id, _ := r.Context().Value(requestIdKey{}).(string)
	return id
}

func requestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIdHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIdKey{}, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.Info("request", logging.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
			"request_id": RequestId(r),
		})
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestIdMiddleware, loggingMiddleware)
	router.NotFoundHandler = requestIdMiddleware(http.HandlerFunc(HandleNotFound))

	router.HandleFunc("/health", HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/chord/{token}", HandleChord).Methods(http.MethodGet)
	router.HandleFunc("/scale/{token}", HandleScale).Methods(http.MethodGet)
	router.HandleFunc("/progression", HandleProgression).Methods(http.MethodGet)
	router.HandleFunc("/identify", HandleIdentify).Methods(http.MethodGet)
	router.HandleFunc("/key", HandleKey).Methods(http.MethodGet)

	return cors.Default().Handler(router)
}

func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logging.Info("serving", logging.Fields{"addr": addr})
		errs <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errs:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
