//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/sevigo/stacksync/internal/app"
	"github.com/sevigo/stacksync/internal/config"
)

// InitializeApp wires the application graph for the given effective config.
func InitializeApp(cfg *config.Config) *app.App {
	wire.Build(
		app.New,
		provideLogger,
		provideRunner,
		provideJJClient,
		provideGitHubClient,
	)
	return nil
}
