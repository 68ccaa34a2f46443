package health

import (
	"context"
	"net/http"
	"strings"
	"time"

	"storefront-admin/internal/config"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Report is the JSON body of a health check.
type Report struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Project   string `json:"project,omitempty"`
}

// Checker probes the hosted backend REST API and the local database pool.
type Checker struct {
	backend config.BackendConfig
	db      Pinger
	client  *http.Client
	now     func() time.Time
	logger  zerolog.Logger
}

// NewChecker creates a health checker. db may be nil.
func NewChecker(backend config.BackendConfig, db Pinger, client *http.Client, logger zerolog.Logger) *Checker {
	if client == nil {
		client = &http.Client{Timeout: backend.Timeout}
	}
	return &Checker{
		backend: backend,
		db:      db,
		client:  client,
		now:     time.Now,
		logger:  logger.With().Str("component", "health").Logger(),
	}
}

// Check runs the probes and returns the HTTP status code with its report.
func (c *Checker) Check(ctx context.Context) (int, Report) {
	if c.backend.URL == "" || c.backend.AnonKey == "" {
		return http.StatusInternalServerError, Report{
			Status:  "error",
			Message: "Missing backend configuration",
		}
	}

	if err := c.probe(ctx); err != nil {
		c.logger.Error().Err(err).Msg("health check failed")
		return http.StatusServiceUnavailable, Report{
			Status:    "unhealthy",
			Message:   "Database health check failed",
			Error:     err.Error(),
			Timestamp: c.timestamp(),
		}
	}

	return http.StatusOK, Report{
		Status:    "healthy",
		Message:   "Database is active and responding",
		Timestamp: c.timestamp(),
		Project:   c.backend.ProjectRef(),
	}
}

func (c *Checker) probe(ctx context.Context) error {
	table := c.backend.ProbeTable
	if table == "" {
		table = "products"
	}
	url := strings.TrimRight(c.backend.URL, "/") + "/rest/v1/" + table + "?select=count"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build probe request")
	}
	req.Header.Set("apikey", c.backend.AnonKey)
	req.Header.Set("Authorization", "Bearer "+c.backend.AnonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Newf("Database responded with status: %d", resp.StatusCode)
	}

	if c.db != nil {
		if err := c.db.Ping(ctx); err != nil {
			return errors.Wrap(err, "postgres ping failed")
		}
	}

	return nil
}

func (c *Checker) timestamp() string {
	return c.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
