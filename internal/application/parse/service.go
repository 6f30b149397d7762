// Package parse provides the application layer around the pure parsing
// engine: structured logging, metrics, and result memoization. The engine
// is deterministic, so identical inputs are served from an LRU cache.
package parse

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/grocerly/recipetext/internal/domain/parse"
	"github.com/grocerly/recipetext/internal/parser"
)

// Metrics holds the Prometheus instruments for the parse service.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
}

// NewMetrics registers the parse metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parse_requests_total",
				Help: "Total number of parse requests by kind",
			},
			[]string{"kind"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "parse_duration_seconds",
				Help:    "Parse duration in seconds by kind",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "parse_cache_hits_total",
			Help: "Parse results served from the memoization cache",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "parse_cache_misses_total",
			Help: "Parse requests that ran the engine",
		}),
	}
}

// Service wraps the parsing engine for transport handlers.
type Service struct {
	logger  *zap.Logger
	metrics *Metrics
	cache   *lru.Cache[string, *parse.Recipe]
}

// NewService creates the parse service. cacheSize bounds the memoization
// cache; zero or negative disables caching.
func NewService(logger *zap.Logger, metrics *Metrics, cacheSize int) (*Service, error) {
	s := &Service{
		logger:  logger.Named("parse-service"),
		metrics: metrics,
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, *parse.Recipe](cacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	return s, nil
}

// ParseRecipe parses a full recipe, serving repeated inputs from cache.
// Cached recipes are shared pointers; results are immutable by contract.
func (s *Service) ParseRecipe(ctx context.Context, input parser.Input) *parse.Recipe {
	start := time.Now()
	defer s.observe("recipe", start)

	key := inputKey(input)
	if s.cache != nil {
		if recipe, ok := s.cache.Get(key); ok {
			s.metrics.cacheHits.Inc()
			return recipe
		}
		s.metrics.cacheMisses.Inc()
	}

	recipe := parser.ParseRecipe(input)
	s.logger.Debug("parsed recipe",
		zap.String("title", input.Title),
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Int("steps", len(recipe.Steps)),
	)

	if s.cache != nil {
		s.cache.Add(key, recipe)
	}
	return recipe
}

// ParseIngredients parses standalone ingredient lines.
func (s *Service) ParseIngredients(ctx context.Context, lines []string) []parse.Ingredient {
	start := time.Now()
	defer s.observe("ingredients", start)

	var out []parse.Ingredient
	for _, line := range lines {
		out = append(out, parser.ParseIngredientLine(line)...)
	}
	s.logger.Debug("parsed ingredient lines",
		zap.Int("lines", len(lines)),
		zap.Int("records", len(out)),
	)
	return out
}

// ParseInstructions parses standalone instruction text.
func (s *Service) ParseInstructions(ctx context.Context, lines []string) []parse.Step {
	start := time.Now()
	defer s.observe("instructions", start)

	steps := parser.ParseInstructions(lines)
	s.logger.Debug("parsed instructions",
		zap.Int("lines", len(lines)),
		zap.Int("steps", len(steps)),
	)
	return steps
}

func (s *Service) observe(kind string, start time.Time) {
	s.metrics.requestsTotal.WithLabelValues(kind).Inc()
	s.metrics.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// inputKey hashes the full input so the cache key is fixed-size.
func inputKey(input parser.Input) string {
	h := sha256.New()
	h.Write([]byte(input.Title))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(input.Ingredients, "\x00")))
	h.Write([]byte{1})
	h.Write([]byte(strings.Join(input.Instructions, "\x00")))
	return hex.EncodeToString(h.Sum(nil))
}
