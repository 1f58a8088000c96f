package utils

import (
	"context"
	"time"
)

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// CheckHealth pings every dependency with a shared deadline.
func CheckHealth(ctx context.Context, deps map[string]Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Healthy: true, Checks: make(map[string]bool, len(deps)), CheckedAt: time.Now()}
	for name, dep := range deps {
		ok := dep.Ping(ctx) == nil
		status.Checks[name] = ok
		if !ok {
			status.Healthy = false
		}
	}
	return status
}
