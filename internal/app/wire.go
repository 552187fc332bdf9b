//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"storycoach/internal/app/analyzer"
	"storycoach/internal/config"
)

// InitializeAnalyzer assembles the pipeline: OpenAI client, transcription and
// review adapters, sqlite run history, and the analyzer itself.
func InitializeAnalyzer(cfg *config.Config, apiKey config.APIKey) *analyzer.Analyzer {
	wire.Build(
		provideOpenAIClient,
		provideTranscriber,
		provideReviewer,
		provideAnalysisDAO,
		provideLogger,
		newAnalyzer,
	)
	return &analyzer.Analyzer{}
}
