package services

import (
	"context"
	"time"

	"github.com/mlanzi/spese-backend/logger"
	"github.com/mlanzi/spese-backend/types"
	"go.uber.org/zap"
)

// Pinger is the slice of the store client used by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports liveness of the application and reachability of the
// hosted database REST API.
type HealthService struct {
	store     Pinger
	version   string
	startTime time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(store Pinger, version string) *HealthService {
	return &HealthService{
		store:     store,
		version:   version,
		startTime: time.Now(),
		log:       logger.GetLogger(),
	}
}

// Check pings the store and assembles the health report. The overall status
// is DOWN when the store is unreachable; the application itself answering
// means the HTTP layer is up.
func (s *HealthService) Check(ctx context.Context) *types.HealthCheck {
	components := make(map[string]types.HealthComponent)

	dbStatus := types.HealthComponent{Status: types.HealthStatusUp}
	if err := s.store.Ping(ctx); err != nil {
		s.log.Errorw("Database health check failed", "error", err)
		dbStatus = types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: err.Error(),
		}
	}
	components["database"] = dbStatus

	overall := types.HealthStatusUp
	if dbStatus.Status == types.HealthStatusDown {
		overall = types.HealthStatusDown
	}

	return &types.HealthCheck{
		Status:     overall,
		Components: components,
		Version:    s.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(s.startTime).Round(time.Second).String(),
	}
}
