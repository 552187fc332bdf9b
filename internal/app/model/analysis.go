package model

import "time"

// Review is the structured assessment returned by the content-analysis model.
// Field names are the stable wire names of analysis.json; enum values match
// what the analysis prompt asks the model to emit.
type Review struct {
	Summary       string   `json:"summary" validate:"required"`
	StoryStrength string   `json:"story_strength" validate:"required,oneof=weak average good strong excellent"`
	StoryLength   string   `json:"story_length" validate:"required,oneof='too short' 'just right' 'too long'"`
	Suggestions   []string `json:"suggestions" validate:"required"`
}

// Metrics holds the locally computed transcript statistics.
type Metrics struct {
	WordCount        int            `json:"word_count"`
	FillerWords      map[string]int `json:"filler_words"`
	TotalFillerWords int            `json:"total_filler_words"`
}

// AnalysisRun is the complete result of one analysis, persisted as
// analysis.json in the run's workspace directory.
type AnalysisRun struct {
	AnalysisID string  `json:"analysis_id"`
	Filename   string  `json:"filename"`
	Timestamp  string  `json:"timestamp"`
	Metrics    Metrics `json:"metrics"`
	Review     Review  `json:"review"`
}

// RunRecord is one row of the run history kept in sqlite. Failed runs are
// recorded too, with HasError set and the review fields empty.
type RunRecord struct {
	ID            int
	AnalysisID    string
	FileName      string
	Workspace     string
	WordCount     int
	TotalFillers  int
	StoryStrength string
	Summary       string
	CreatedAt     time.Time
	HasError      int
	ErrorMessage  string
}
