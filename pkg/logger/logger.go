package logger

import "log/slog"

var def *slog.Logger

// Init configures slog for the current environment and installs the result
// as the process default.
func Init(cfg Config) {
	if cfg.Env == "" {
		cfg.Env = DetectEnv()
	}
	if cfg.Service == "" {
		cfg.Service = "jobboard"
	}
	cfg.InstanceID = ensureInstanceID(cfg.InstanceID)

	// default backend: plain text in dev, zap elsewhere
	if cfg.Backend == "" {
		if cfg.Env == EnvDev {
			cfg.Backend = BackendStd
		} else {
			cfg.Backend = BackendZap
		}
	}

	var h slog.Handler
	switch cfg.Backend {
	case BackendZap:
		h = newZapHandler(cfg)
	default:
		h = newStdHandler(cfg)
	}

	h = h.WithAttrs(commonAttr(cfg))

	base := slog.New(h)
	slog.SetDefault(base)
	def = base
}

func L() *slog.Logger {
	if def != nil {
		return def
	}

	Init(Config{})
	return def
}
