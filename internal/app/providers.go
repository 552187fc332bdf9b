package app

import (
	"path/filepath"

	openaisdk "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"storycoach/internal/app/analyzer"
	"storycoach/internal/app/api"
	"storycoach/internal/app/api/openai"
	"storycoach/internal/app/api/openai/chat"
	"storycoach/internal/app/api/openai/whisper"
	"storycoach/internal/app/repository"
	"storycoach/internal/app/repository/sqlite"
	"storycoach/internal/app/util/logging"
	"storycoach/internal/config"
)

const historyDBFileName = "storycoach.db"

func provideOpenAIClient(apiKey config.APIKey) *openaisdk.Client {
	return openai.NewClient(string(apiKey))
}

// provideTranscriber uses OpenAI's remote transcription service.
func provideTranscriber(client *openaisdk.Client, cfg *config.Config) api.Transcriber {
	return whisper.NewRemoteTranscriber(client, cfg.Whisper.Model)
}

func provideReviewer(client *openaisdk.Client, cfg *config.Config) api.Reviewer {
	return chat.NewReviewer(client, cfg.Chat.Model)
}

func provideAnalysisDAO(cfg *config.Config) repository.AnalysisDAO {
	return sqlite.NewSQLiteDB(filepath.Join(cfg.Paths.Data, historyDBFileName))
}

func provideLogger() *zap.Logger {
	return logging.MustNewLogger(true)
}

func newAnalyzer(transcriber api.Transcriber, reviewer api.Reviewer, db repository.AnalysisDAO,
	logger *zap.Logger, cfg *config.Config) *analyzer.Analyzer {
	return analyzer.NewAnalyzer(transcriber, reviewer, db, logger, cfg.Analysis.FillerWords, cfg.Paths.Data)
}
