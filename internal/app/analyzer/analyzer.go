package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storycoach/internal/app/api"
	"storycoach/internal/app/model"
	"storycoach/internal/app/repository"
	"storycoach/internal/app/util/files"
)

const (
	transcriptFileName = "transcript.txt"
	analysisFileName   = "analysis.json"
)

// Analyzer runs the whole pipeline for a single audio file: discover,
// create workspace, move, transcribe, count, review, persist. Each step
// blocks until it finishes; the first failure halts the run.
type Analyzer struct {
	transcriber api.Transcriber
	reviewer    api.Reviewer
	db          repository.AnalysisDAO
	logger      *zap.Logger
	fillerWords []string
	dataDir     string
}

func NewAnalyzer(transcriber api.Transcriber, reviewer api.Reviewer, db repository.AnalysisDAO,
	logger *zap.Logger, fillerWords []string, dataDir string) *Analyzer {
	return &Analyzer{
		transcriber: transcriber,
		reviewer:    reviewer,
		db:          db,
		logger:      logger,
		fillerWords: fillerWords,
		dataDir:     dataDir,
	}
}

func (a *Analyzer) Close() error {
	return a.db.Close()
}

// NewAnalysisID returns a short run token: the first 8 hex characters of a
// UUID. Not cryptographically unique, but collisions are negligible at this
// tool's volume.
func NewAnalysisID() string {
	return uuid.NewString()[:8]
}

// Do analyzes the first audio file found in inputDir and returns the
// persisted run. On failure the error says which step failed; if the audio
// was already moved, it stays in the workspace.
func (a *Analyzer) Do(ctx context.Context, inputDir string) (*model.AnalysisRun, error) {
	audioPath, err := files.FindFirstAudioFile(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	audioFileName := filepath.Base(audioPath)
	a.logger.Info("found audio file", zap.String("file", audioFileName))

	analysisID := NewAnalysisID()
	workspace, err := files.CreateWorkspace(a.dataDir, analysisID, audioFileName)
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	a.logger.Info("created workspace", zap.String("id", analysisID), zap.String("dir", workspace))

	movedPath := filepath.Join(workspace, audioFileName)
	if err := files.MoveFile(audioPath, movedPath); err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}

	a.logger.Info("transcribing audio")
	transcript, err := a.transcriber.Transcript(ctx, movedPath)
	if err != nil {
		a.recordFailure(analysisID, audioFileName, workspace, err)
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	if err := files.WriteFileAtomic(filepath.Join(workspace, transcriptFileName), []byte(transcript)); err != nil {
		a.recordFailure(analysisID, audioFileName, workspace, err)
		return nil, fmt.Errorf("persist transcript: %w", err)
	}

	metrics := CountMetrics(transcript, a.fillerWords)
	a.logger.Info("computed metrics",
		zap.Int("words", metrics.WordCount),
		zap.Int("fillers", metrics.TotalFillerWords))

	a.logger.Info("reviewing content")
	review, err := a.reviewer.Review(ctx, transcript)
	if err != nil {
		a.recordFailure(analysisID, audioFileName, workspace, err)
		return nil, fmt.Errorf("analyze: %w", err)
	}

	run := &model.AnalysisRun{
		AnalysisID: analysisID,
		Filename:   audioFileName,
		Timestamp:  time.Now().Format(time.RFC3339),
		Metrics:    metrics,
		Review:     review,
	}

	data, err := json.MarshalIndent(run, "", "    ")
	if err != nil {
		a.recordFailure(analysisID, audioFileName, workspace, err)
		return nil, fmt.Errorf("persist result: %w", err)
	}
	if err := files.WriteFileAtomic(filepath.Join(workspace, analysisFileName), data); err != nil {
		a.recordFailure(analysisID, audioFileName, workspace, err)
		return nil, fmt.Errorf("persist result: %w", err)
	}

	a.record(model.RunRecord{
		AnalysisID:    analysisID,
		FileName:      audioFileName,
		Workspace:     workspace,
		WordCount:     metrics.WordCount,
		TotalFillers:  metrics.TotalFillerWords,
		StoryStrength: review.StoryStrength,
		Summary:       review.Summary,
		CreatedAt:     time.Now(),
	})

	a.logger.Info("analysis complete", zap.String("result", filepath.Join(workspace, analysisFileName)))
	return run, nil
}

func (a *Analyzer) recordFailure(analysisID, fileName, workspace string, cause error) {
	a.record(model.RunRecord{
		AnalysisID:   analysisID,
		FileName:     fileName,
		Workspace:    workspace,
		CreatedAt:    time.Now(),
		HasError:     1,
		ErrorMessage: cause.Error(),
	})
}

// record writes the history row. History is best-effort bookkeeping; a
// failure here must not mask the run's own outcome.
func (a *Analyzer) record(rec model.RunRecord) {
	if err := a.db.RecordRun(rec); err != nil {
		a.logger.Warn("failed to record run history", zap.Error(err))
	}
}
