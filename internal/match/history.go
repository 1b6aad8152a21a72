package match

import (
	"fmt"
	"path/filepath"

	"github.com/lox/holdem/internal/fileutil"
)

// HistoryWriter stores finished hands
type HistoryWriter interface {
	WriteHandHistory(summary HandSummary) error
}

// FileHistoryWriter writes each hand's event log to its own text file
type FileHistoryWriter struct {
	directory string
}

// NewFileHistoryWriter creates a new file-based hand history writer
func NewFileHistoryWriter(directory string) *FileHistoryWriter {
	return &FileHistoryWriter{directory: directory}
}

// WriteHandHistory writes hand_<n>.txt
func (w *FileHistoryWriter) WriteHandHistory(summary HandSummary) error {
	filename := filepath.Join(w.directory, fmt.Sprintf("hand_%04d.txt", summary.HandNumber))
	content := fmt.Sprintf("Match %s\n%s", summary.MatchID, summary.Text())
	if err := fileutil.WriteFileAtomic(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write hand history file: %w", err)
	}
	return nil
}
