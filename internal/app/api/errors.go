package api

import "fmt"

// TranscriptionError reports a failed transcription attempt. The remote
// service is called exactly once per run, so the wrapped cause is the full
// story (network, auth, quota, or an unsupported format rejection).
type TranscriptionError struct {
	Cause error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Cause)
}

func (e *TranscriptionError) Unwrap() error { return e.Cause }

// AnalysisError reports a failed content analysis, including responses that
// came back but did not match the expected review shape.
type AnalysisError struct {
	Reason string
	Cause  error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("analysis failed: %s", e.Reason)
}

func (e *AnalysisError) Unwrap() error { return e.Cause }
