// Package server serves the calculators as HTML forms and as a JSON API.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculator/internal/cache"
	"github.com/iwvelando/finance-calculator/pkg/calculator"
	"github.com/iwvelando/finance-calculator/pkg/constants"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

//go:embed static/* templates/*
var assets embed.FS

// Options configures the handler returned by NewHandler.
type Options struct {
	Logger      *zap.Logger
	MaxFormSize int64
	Version     string
	Cache       cache.Cache
	RateLimiter *RateLimiter
}

type handler struct {
	logger      *zap.Logger
	maxFormSize int64
	version     string
	cache       cache.Cache
	pages       map[string]*template.Template
}

// NewHandler constructs the HTTP handler that serves the calculator pages and API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxFormSize := opts.MaxFormSize
	if maxFormSize <= 0 {
		maxFormSize = constants.DefaultMaxFormSizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	pages, err := parsePages()
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded templates: %v", err))
	}

	h := &handler{
		logger:      logger,
		maxFormSize: maxFormSize,
		version:     version,
		cache:       opts.Cache,
		pages:       pages,
	}

	router := httprouter.New()
	router.PanicHandler = h.handlePanic

	router.GET("/", h.handleHome)

	// HTML calculators
	router.GET("/standard/", h.handleStandardPage)
	router.POST("/standard/", h.handleStandardPage)
	router.GET("/interest/", h.handleInterestPage)
	router.POST("/interest/", h.handleInterestPage)
	router.GET("/installment/", h.handleInstallmentPage)
	router.POST("/installment/", h.handleInstallmentPage)

	// JSON API
	router.POST("/api/standard", h.handleStandardAPI)
	router.POST("/api/interest", h.handleInterestAPI)
	router.POST("/api/installment", h.handleInstallmentAPI)
	router.GET("/api/version", h.handleVersion)
	router.GET("/healthz", h.handleHealth)

	// Static assets (styles, theme toggle)
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	router.ServeFiles("/static/*filepath", http.FS(sub))

	var root http.Handler = router
	if opts.RateLimiter != nil {
		root = RateLimitMiddleware(opts.RateLimiter, root)
	}
	root = accessLogMiddleware(logger, root)
	return requestIDMiddleware(root)
}

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.Redirect(w, r, "/standard/", http.StatusFound)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	h.logger.Error("request panicked",
		zap.String("op", "server.handlePanic"),
		zap.String("path", r.URL.Path),
		zap.String("requestID", RequestIDFromContext(r.Context())),
		zap.Any("panic", recovered),
	)

	msg := calculator.CalculationError.Message()
	if strings.HasPrefix(r.URL.Path, "/api/") {
		h.writeJSON(w, http.StatusInternalServerError, apiResponse{
			Error: &apiError{Kind: calculator.CalculationError, Message: msg},
		})
		return
	}
	h.render(w, http.StatusInternalServerError, "error", page{Title: "Error", Error: msg})
}

// readFields parses the submitted form (or JSON object for API calls) within
// the configured size limit. It reports whether the request may proceed.
func (h *handler) readFields(w http.ResponseWriter, r *http.Request, op string) (calculator.Fields, bool) {
	if r.Method != http.MethodPost {
		return calculator.Fields{}, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormSize)

	var (
		fields calculator.Fields
		err    error
	)
	if isJSON(r) {
		fields, err = decodeJSONFields(r)
	} else {
		err = r.ParseForm()
		fields = calculator.FieldsFromValues(r.PostForm)
	}
	if err == nil {
		return fields, true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("form exceeds limit of %d bytes", h.maxFormSize), op)
		return nil, false
	}
	h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err), op)
	return nil, false
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(strings.TrimSpace(r.Header.Get("Content-Type")), "application/json")
}

func decodeJSONFields(r *http.Request) (calculator.Fields, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	fields := make(calculator.Fields, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case nil:
		case string:
			fields[key] = v
		case json.Number:
			fields[key] = v.String()
		case bool:
			fields[key] = fmt.Sprintf("%t", v)
		default:
			return nil, fmt.Errorf("field %q must be a string or number", key)
		}
	}
	return fields, nil
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("requestID", RequestIDFromContext(r.Context())),
		zap.String("error", msg),
	)

	if strings.HasPrefix(r.URL.Path, "/api/") {
		h.writeJSON(w, status, map[string]string{"error": msg})
		return
	}
	http.Error(w, msg, status)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// cached runs compute unless an outcome for the same inputs is already stored.
// Cache failures only cost a recomputation.
func cached[T any](ctx context.Context, h *handler, name string, inputs []string, compute func() (T, error)) (T, error) {
	if h.cache == nil {
		return compute()
	}

	key := cache.Key(name, inputs...)
	if raw, ok, err := h.cache.Get(ctx, key); err != nil {
		h.logger.Warn("cache lookup failed",
			zap.String("op", "server.cached"),
			zap.String("calculator", name),
			zap.Error(err),
		)
	} else if ok {
		var entry cacheEntry[T]
		if err := json.Unmarshal([]byte(raw), &entry); err == nil {
			if entry.Kind != "" {
				return entry.Result, &calculator.Error{Kind: entry.Kind}
			}
			return entry.Result, nil
		}
	}

	result, err := compute()
	entry := cacheEntry[T]{Result: result}
	if err != nil {
		entry.Kind = calculator.KindOf(err)
	}
	if encoded, encErr := json.Marshal(entry); encErr == nil {
		if setErr := h.cache.Set(ctx, key, string(encoded)); setErr != nil {
			h.logger.Warn("cache store failed",
				zap.String("op", "server.cached"),
				zap.String("calculator", name),
				zap.Error(setErr),
			)
		}
	}
	return result, err
}

type cacheEntry[T any] struct {
	Result T               `json:"result"`
	Kind   calculator.Kind `json:"kind,omitempty"`
}

func (h *handler) logOutcome(r *http.Request, op, name string, start time.Time, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("calculator", name),
		zap.String("requestID", RequestIDFromContext(r.Context())),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		h.logger.Info("calculation rejected", append(fields,
			zap.String("kind", string(calculator.KindOf(err))),
			zap.Error(err),
		)...)
		return
	}
	h.logger.Debug("calculation completed", fields...)
}
