package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolHealth is the database section of the /health payload: a ping result
// plus the sql.DB pool counters that matter when missions stall on the
// checkpoint store.
type PoolHealth struct {
	Status   string `json:"status"`
	PingMs   int64  `json:"ping_ms"`
	Open     int    `json:"open_connections"`
	InUse    int    `json:"in_use"`
	Idle     int    `json:"idle"`
	Waits    int64  `json:"wait_count"`
	WaitedMs int64  `json:"waited_ms"`
	MaxOpen  int    `json:"max_open_connections"`
}

// Health pings the database and snapshots the pool. A failed ping still
// returns a PoolHealth so the caller can report the latency alongside the
// error.
func Health(ctx context.Context, db *sql.DB) (*PoolHealth, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status: "unhealthy",
			PingMs: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &PoolHealth{
		Status:   "healthy",
		PingMs:   time.Since(start).Milliseconds(),
		Open:     stats.OpenConnections,
		InUse:    stats.InUse,
		Idle:     stats.Idle,
		Waits:    stats.WaitCount,
		WaitedMs: stats.WaitDuration.Milliseconds(),
		MaxOpen:  stats.MaxOpenConnections,
	}, nil
}
