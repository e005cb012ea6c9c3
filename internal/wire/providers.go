package wire

import (
	"log/slog"

	"github.com/sevigo/stacksync/internal/config"
	"github.com/sevigo/stacksync/internal/execx"
	"github.com/sevigo/stacksync/internal/github"
	"github.com/sevigo/stacksync/internal/jj"
	"github.com/sevigo/stacksync/internal/logger"
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, nil)
}

func provideRunner(log *slog.Logger) *execx.Local {
	return execx.NewLocal(log)
}

func provideJJClient(runner *execx.Local, cfg *config.Config, log *slog.Logger) *jj.Client {
	return jj.NewClient(runner, cfg.RepoPath, log)
}

func provideGitHubClient(runner *execx.Local, cfg *config.Config, log *slog.Logger) *github.Client {
	return github.NewClient(runner, cfg.RepoPath, log)
}
