package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// ensureInstanceID falls back to hostname plus a short random suffix, so
// replicas of the same service stay distinguishable in aggregated logs.
func ensureInstanceID(id string) string {
	if id != "" {
		return id
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "jobboard"
	}
	return host + "-" + uuid.NewString()[:8]
}

// commonAttr is attached to every record.
func commonAttr(cfg Config) []slog.Attr {
	return []slog.Attr{
		slog.String("service", cfg.Service),
		slog.String("env", string(cfg.Env)),
		slog.String("version", cfg.Version),
		slog.String("instance_id", cfg.InstanceID),
		slog.Time("started_at", time.Now()),
	}
}
