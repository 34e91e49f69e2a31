//go:build wireinject
// +build wireinject

package di

import (
	"QuantScout/pkg/config"
	"QuantScout/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Provider chains
		ProvidePriceSources,
		ProvideBarSources,
		ProvideNewsSources,
		ProvideSentimentScorer,
		ProvideAlertSender,
		ProvideIndicatorCache,
		ProvideScanPublisher,

		// Use cases
		ProvideQuoteFetcher,
		ProvideIndicatorEngine,
		ProvideSentimentFetcher,
		ProvideAlertDispatcher,
		ProvideScanner,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
