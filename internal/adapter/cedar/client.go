// Package cedar is a GraphQL client for the CEDAR system-of-record directory.
package cedar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/easi-app/easi-server/internal/config"
	"github.com/easi-app/easi-server/internal/domain"
)

// APIKeyHeader carries the gateway key on every directory request.
const APIKeyHeader = "x-Gateway-APIKey"

const systemsCacheKey = "systems"

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "easi_cedar_requests_total",
			Help: "CEDAR directory requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "easi_cedar_request_duration_seconds",
			Help:    "CEDAR directory request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "easi_cedar_cache_hits_total",
		Help: "CEDAR directory cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "easi_cedar_cache_misses_total",
		Help: "CEDAR directory cache misses.",
	})
)

// Client fetches system records from CEDAR and caches the directory listing.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	cache      *expirable.LRU[string, []domain.CedarSystem]
	retryDelay time.Duration
	log        *slog.Logger
}

// NewClient creates a Client from CedarConfig.
func NewClient(cfg config.CedarConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      expirable.NewLRU[string, []domain.CedarSystem](cfg.CacheSize, nil, cfg.CacheTTL),
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "cedar"),
	}
}

// ListSystems returns every system in the directory.
// Failures wrap domain.ErrUnavailable.
func (c *Client) ListSystems(ctx context.Context) ([]domain.CedarSystem, error) {
	if systems, ok := c.cache.Get(systemsCacheKey); ok {
		cacheHitsTotal.Inc()
		return systems, nil
	}
	cacheMissesTotal.Inc()

	var data listSystemsData
	if err := c.execute(ctx, listSystemsQuery, &data); err != nil {
		return nil, err
	}

	systems := mapSystems(data.CedarSystems)
	c.cache.Add(systemsCacheKey, systems)

	c.log.DebugContext(ctx, "cedar systems loaded", slog.Int("count", len(systems)))
	return systems, nil
}

// Purge drops cached directory data.
func (c *Client) Purge() {
	c.cache.Purge()
}

func (c *Client) execute(ctx context.Context, query string, out any) (err error) {
	op, err := validateQuery(query)
	if err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		requestsTotal.WithLabelValues(op, outcome).Inc()
	}()

	body, err := json.Marshal(graphQLRequest{Query: query, OperationName: op})
	if err != nil {
		return fmt.Errorf("cedar: encode request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, op, body)
	if err != nil {
		c.log.ErrorContext(ctx, "cedar request failed", slog.String("operation", op), slog.String("error", err.Error()))
		return fmt.Errorf("cedar: %s: %w: %w", op, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cedar: %s: unexpected status %d: %w", op, resp.StatusCode, domain.ErrUnavailable)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cedar: %s: read body: %w: %w", op, domain.ErrUnavailable, err)
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(raw, &gqlResp); err != nil {
		return fmt.Errorf("cedar: %s: decode response: %w: %w", op, domain.ErrUnavailable, err)
	}
	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("cedar: %s: %w: %w", op, domain.ErrUnavailable, gqlResp.Errors)
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("cedar: %s: decode data: %w: %w", op, domain.ErrUnavailable, err)
	}
	return nil
}

// doWithRetry posts the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, op string, body []byte) (*http.Response, error) {
	resp, err := c.post(ctx, body)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "cedar retry", slog.String("operation", op), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.post(ctx, body)
}

func (c *Client) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	return c.httpClient.Do(req)
}
