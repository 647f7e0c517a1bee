// Package bootstrap wires the plan engine's dependencies: logging,
// configuration, the exercise catalog, the parameter model, the rules
// engine, and the planner.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fitglue/planner/pkg/domain/catalog"
	"github.com/fitglue/planner/pkg/domain/planner"
	"github.com/fitglue/planner/pkg/domain/predictor"
	"github.com/fitglue/planner/pkg/domain/rules"
	"github.com/fitglue/planner/pkg/narrative"
)

// Config holds standard configuration for all entry points.
type Config struct {
	Port        string
	CatalogPath string
	ModelPath   string
	SentryDSN   string
	Environment string
	Release     string
}

// LoadConfig reads configuration from environment variables. Empty
// catalog and model paths select the embedded artifacts.
func LoadConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	return &Config{
		Port:        port,
		CatalogPath: os.Getenv("CATALOG_PATH"),
		ModelPath:   os.Getenv("MODEL_PATH"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		Environment: env,
		Release:     os.Getenv("RELEASE"),
	}
}

// GetSlogHandlerOptions returns standard handler options for structured
// log collectors.
func GetSlogHandlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: a.Value}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{Key: "severity", Value: a.Value}
			}
			return a
		},
	}
}

// ComponentHandler wraps a slog.Handler to prepend [component] to the message
type ComponentHandler struct {
	slog.Handler
	component string
}

// WithGroup implements slog.Handler
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{
		Handler:   h.Handler.WithGroup(name),
		component: h.component,
	}
}

// WithAttrs implements slog.Handler
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newComp := h.component
	for _, a := range attrs {
		if a.Key == "component" {
			newComp = a.Value.String()
		}
	}
	return &ComponentHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		component: newComp,
	}
}

// Handle implements slog.Handler
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	comp := h.component

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			comp = a.Value.String()
			return false
		}
		return true
	})

	if comp != "" {
		newMsg := fmt.Sprintf("[%s] %s", comp, r.Message)
		newRecord := slog.NewRecord(r.Time, r.Level, newMsg, r.PC)

		// The component attribute stays in the structured payload, it is
		// only mirrored into the message prefix.
		r.Attrs(func(a slog.Attr) bool {
			newRecord.AddAttrs(a)
			return true
		})
		r = newRecord
	}

	return h.Handler.Handle(ctx, r)
}

// InitLogger configures the default structured logger.
func InitLogger() {
	opts := GetSlogHandlerOptions(slog.LevelInfo)
	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(&ComponentHandler{Handler: handler})
	slog.SetDefault(logger)
}

// NewLogger creates a configured logger instance
func NewLogger(serviceName string) *slog.Logger {
	logLevelStr := os.Getenv("LOG_LEVEL")
	var level slog.Level
	switch strings.ToLower(logLevelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := GetSlogHandlerOptions(level)
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(&ComponentHandler{Handler: handler}).With("service", serviceName)
}

// Service holds initialized dependencies.
type Service struct {
	Catalog    *catalog.Catalog
	Predictor  predictor.Predictor
	Rules      *rules.Engine
	Planner    *planner.Planner
	Summarizer *narrative.Summarizer
	Config     *Config
}

// NewService initializes all standard dependencies. A missing or broken
// model artifact degrades to the baseline-only predictor; an empty
// catalog is fatal.
func NewService(ctx context.Context) (*Service, error) {
	InitLogger()
	cfg := LoadConfig()

	slog.Info("Initializing service", "environment", cfg.Environment)

	cat, err := loadCatalog(cfg)
	if err != nil {
		slog.Error("Catalog init failed", "error", err)
		return nil, fmt.Errorf("catalog init: %w", err)
	}
	slog.Info("Catalog loaded", "exercises", cat.Len())

	pred := loadPredictor(cfg)
	eng := rules.NewEngine(cat)

	return &Service{
		Catalog:    cat,
		Predictor:  pred,
		Rules:      eng,
		Planner:    planner.New(cat, pred, eng),
		Summarizer: narrative.NewFromEnv(),
		Config:     cfg,
	}, nil
}

func loadCatalog(cfg *Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.LoadEmbedded()
}

func loadPredictor(cfg *Config) predictor.Predictor {
	var (
		forest *predictor.Forest
		err    error
	)
	if cfg.ModelPath != "" {
		forest, err = predictor.Load(cfg.ModelPath)
	} else {
		forest, err = predictor.LoadEmbedded()
	}
	if err != nil {
		slog.Warn("Parameter model unavailable, falling back to baseline tables", "error", err)
		return predictor.NewUnavailable()
	}
	slog.Info("Parameter model loaded", "r2_scores", forest.R2Scores())
	return forest
}

// ModelHealth reports the model's availability and per-target fit,
// surfaced by the health endpoint.
func (s *Service) ModelHealth() (bool, map[string]float64) {
	f, ok := s.Predictor.(*predictor.Forest)
	if !ok {
		return false, nil
	}
	return true, f.R2Scores()
}
