package repository

import (
	"storycoach/internal/app/model"
)

// AnalysisDAO persists the run history. Every invocation is recorded, failed
// runs included, so past analyses can be listed and exported later.
type AnalysisDAO interface {
	Close() error

	RecordRun(record model.RunRecord) error

	GetAll() ([]model.RunRecord, error)
}
