package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"openstack-instance-explorer/internal/api"
	"openstack-instance-explorer/internal/auth"
)

func main() {
	logger, err := newLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cmd := newRootCommand(logger, connectFromEnv(logger, os.Getenv))

	code := 0
	if err := runRoot(context.Background(), cmd, os.Args[1:]); err != nil {
		code = exitCode(err, os.Args[0], os.Stdout, os.Stderr)
	}

	_ = logger.Sync()
	os.Exit(code)
}

// newLogger builds a production zap logger writing to stderr. An empty level
// means warn.
func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build()
}

// connectFromEnv reads credentials through getenv and authenticates when the
// command runs.
func connectFromEnv(logger *zap.Logger, getenv func(string) string) connectFunc {
	return func(ctx context.Context) (api.Source, error) {
		cfg, err := auth.ConfigFromEnv(getenv)
		if err != nil {
			return nil, err
		}

		logger.Info("Authenticating with OpenStack",
			zap.String("auth_url", cfg.AuthURL),
			zap.String("project", cfg.ProjectName),
			zap.String("user", cfg.Username))

		client, err := auth.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}

		logger.Info("Authentication successful")
		return client, nil
	}
}
