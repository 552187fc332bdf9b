package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoAudioFile is returned when the input directory contains no file with a
// supported audio extension.
var ErrNoAudioFile = errors.New("no audio file found")

// audioExtensions are the formats accepted by the transcription service.
var audioExtensions = map[string]bool{
	".mp3": true,
	".m4a": true,
	".wav": true,
	".aac": true,
	".mp4": true,
}

// FindFirstAudioFile scans inputDir for files with a supported audio
// extension and returns the full path of the first match in lexicographic
// filename order. The ordering is the deterministic tie-break when several
// audio files are present.
func FindFirstAudioFile(inputDir string) (string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return "", fmt.Errorf("read input directory %s: %w", inputDir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			matches = append(matches, entry.Name())
		}
	}
	if len(matches) == 0 {
		return "", ErrNoAudioFile
	}

	sort.Strings(matches)
	return filepath.Join(inputDir, matches[0]), nil
}

// WorkspaceDir returns the per-run directory path under dataDir, named
// {analysisID}-{stem of audioFileName}.
func WorkspaceDir(dataDir, analysisID, audioFileName string) string {
	stem := strings.TrimSuffix(audioFileName, filepath.Ext(audioFileName))
	return filepath.Join(dataDir, fmt.Sprintf("%s-%s", analysisID, stem))
}

// CreateWorkspace creates the run's workspace directory, parents included.
func CreateWorkspace(dataDir, analysisID, audioFileName string) (string, error) {
	dir := WorkspaceDir(dataDir, analysisID, audioFileName)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create workspace %s: %w", dir, err)
	}
	return dir, nil
}

// MoveFile renames src to dst, falling back to copy-and-remove when the two
// paths are on different filesystems and rename is refused.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("move %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("move %s: %w", src, err)
	}
	return os.Remove(src)
}

// WriteFileAtomic writes data to path via a temporary sibling file and a
// rename, so a half-written file is never left under the final name.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	// CreateTemp files are 0600; output files should be world-readable.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
