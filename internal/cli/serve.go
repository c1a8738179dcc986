package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/pipeline"
	"github.com/deckforge/deckforge/pkg/themes"
)

const (
	defaultAddr = ":8080"

	// Deck generation involves model calls; the write timeout has to cover a
	// full pipeline run.
	serveReadTimeout  = 30 * time.Second
	serveWriteTimeout = 5 * time.Minute
)

// newServeCmd creates the serve command exposing deck generation over HTTP.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve deck generation as an HTTP API",
		Long: `Serve exposes the generation pipeline over HTTP.

Endpoints:
  POST /api/decks     generate a deck; the request body mirrors the generate
                      flags ({"topic": ..., "theme": ..., "slide_count": ...})
                      and the response body is the .pptx document
  GET  /api/themes    list available themes
  GET  /healthz       liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}

// server holds the shared state for HTTP handlers.
type server struct {
	runner *pipeline.Runner
	cfg    Config
	logger *log.Logger
}

// runServe builds the runner and serves until the context is cancelled.
func runServe(ctx context.Context, addr string) error {
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	runner, err := newRunner(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	s := &server{runner: runner, cfg: cfg, logger: logger}

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  serveReadTimeout,
		WriteTimeout: serveWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// routes builds the chi router.
func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/decks", s.handleCreateDeck)
		r.Get("/themes", s.handleThemes)
	})
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// deckRequest is the POST /api/decks body. It embeds the pipeline options so
// the API accepts exactly what the generate command accepts.
type deckRequest struct {
	pipeline.Options
}

func (s *server) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}

	opts := req.Options
	opts.Logger = s.logger
	if opts.Theme == "" {
		opts.Theme = s.cfg.Theme
	}
	if opts.Author == "" {
		opts.Author = s.cfg.Author
	}

	client, err := genai.NewOpenAIClient(genai.Config{
		APIKey:     s.cfg.APIKey,
		BaseURL:    s.cfg.BaseURL,
		Model:      firstNonEmpty(opts.Model, s.cfg.Model),
		ImageModel: firstNonEmpty(opts.ImageModel, s.cfg.ImageModel),
		ImageSize:  firstNonEmpty(opts.ImageSize, s.cfg.ImageSize),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts.LLM = client
	if opts.WithImages {
		opts.Images = client
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.presentationml.presentation")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outputPath("", result.Outline.Title)))
	w.Header().Set("X-Outline-Hash", result.OutlineHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PPTX)
}

func (s *server) handleThemes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(themes.All())
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a coded error onto an HTTP status and JSON body.
func (s *server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

// statusForCode maps error codes onto HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTopic, errors.ErrCodeInvalidTheme,
		errors.ErrCodeInvalidOutline, errors.ErrCodeInvalidPath, errors.ErrCodeOutlineParse:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeNetwork, errors.ErrCodeImageUnavailable:
		return http.StatusBadGateway
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
