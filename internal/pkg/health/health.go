package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openfleet/cabdispatch/internal/pkg/database"
	nsqpkg "github.com/openfleet/cabdispatch/internal/pkg/nsq"
)

const checkTimeout = 2 * time.Second

// Checker reports whether a single dependency is healthy.
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health.
type PostgresChecker struct {
	client *database.PostgresClient
}

func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Ping(ctx)
}

// RedisChecker checks Redis connection health.
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NSQChecker checks nsqd reachability through the shared producer.
type NSQChecker struct {
	producer *nsqpkg.Producer
}

func NewNSQChecker(producer *nsqpkg.Producer) *NSQChecker {
	return &NSQChecker{producer: producer}
}

func (n *NSQChecker) CheckHealth(_ context.Context) error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Ping()
}

// Status is the payload returned by the readiness endpoint.
type Status struct {
	Status     string            `json:"status"`
	Checks     map[string]string `json:"checks"`
	ServerTime time.Time         `json:"server_time"`
}

// BuildInfo contains information about the running binary.
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterEndpoints wires liveness and readiness endpoints onto e.
// Readiness runs every named checker and reports 503 if any fails.
func RegisterEndpoints(e *echo.Echo, serviceName string, checkers map[string]Checker) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	version := os.Getenv("VERSION")
	if version == "" {
		version = "development"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		defer cancel()

		status := Status{
			Status:     "ok",
			Checks:     make(map[string]string, len(checkers)),
			ServerTime: time.Now(),
		}

		code := http.StatusOK
		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				status.Status = "degraded"
				status.Checks[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			status.Checks[name] = "ok"
		}

		return c.JSON(code, status)
	})
}
