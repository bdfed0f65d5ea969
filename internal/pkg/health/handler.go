package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	nsqpkg "github.com/fiuber/gateway/internal/pkg/nsq"
)

// Checker reports whether a gateway dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// NSQHealthChecker checks connectivity to the metrics queue daemon
type NSQHealthChecker struct {
	producer *nsqpkg.Producer
}

// NewNSQHealthChecker creates a new NSQ health checker
func NewNSQHealthChecker(producer *nsqpkg.Producer) *NSQHealthChecker {
	return &NSQHealthChecker{producer: producer}
}

// CheckHealth pings the NSQ daemon
func (n *NSQHealthChecker) CheckHealth(ctx context.Context) error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Ping()
}

// BuildInfo contains information about the running build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if version := os.Getenv("VERSION"); version != "" {
		info.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}

	return func(c echo.Context) error {
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers the liveness and readiness endpoints.
// Liveness never consults dependencies; readiness fails while the metrics
// queue is unreachable.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	e.GET("/ping", NewPingHandler(serviceName))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx := c.Request().Context()
		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{
					"status": "not ready",
					"error":  err.Error(),
				})
			}
		}
		return c.String(http.StatusOK, "OK")
	})
}
