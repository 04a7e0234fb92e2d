package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready. MongoDB must answer
// for the service to be ready; Redis only holds the idempotency cache, so
// when it is down the service reports degraded but stays ready.
type HealthDependenciesHandler struct {
	checks map[string]dependencyCheck
}

type dependencyCheck struct {
	ping     func(ctx context.Context) error
	critical bool
}

// NewHealthDependenciesHandler builds the readiness probe. Either client may
// be nil when that dependency is not configured.
func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	h := &HealthDependenciesHandler{checks: make(map[string]dependencyCheck)}
	if db != nil {
		h.checks["mongodb"] = dependencyCheck{
			critical: true,
			ping: func(ctx context.Context) error {
				return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
			},
		}
	}
	if rdb != nil {
		h.checks["redis"] = dependencyCheck{
			ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}
	}
	return h
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	status := "ok"
	httpStatus := http.StatusOK

	for name, check := range h.checks {
		if err := check.ping(ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			if check.critical {
				status = "unavailable"
				httpStatus = http.StatusServiceUnavailable
			} else if status == "ok" {
				status = "degraded"
			}
			continue
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
