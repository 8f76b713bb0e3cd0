// Package output persists metadata records and audio clips as flat files
// under a single run directory.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hncast/config"
	"hncast/types"
)

// ErrWrite indicates a filesystem failure while persisting output.
var ErrWrite = errors.New("output write failed")

// Writer persists one run's artifacts. Paths are deterministic functions
// of the story id and language tag; existing files are overwritten.
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, config.OutputDirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// MetadataPath is where the story's metadata record lives.
func (w *Writer) MetadataPath(storyID string) string {
	return filepath.Join(w.dir, fmt.Sprintf("story_%s.json", storyID))
}

// AudioPath is where one language's clip for the story lives.
func (w *Writer) AudioPath(storyID, lang string) string {
	return filepath.Join(w.dir, fmt.Sprintf("story_%s_%s.wav", storyID, lang))
}

// WriteMetadata writes the record as indented JSON, overwriting any
// previous file at the same path.
func (w *Writer) WriteMetadata(rec *types.MetadataRecord) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal story %s: %v", ErrWrite, rec.ID, err)
	}

	path := w.MetadataPath(rec.ID)
	if err := os.WriteFile(path, data, config.OutputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return path, nil
}

// ReadMetadata parses a previously written record back.
func ReadMetadata(path string) (*types.MetadataRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	var rec types.MetadataRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrWrite, path, err)
	}
	return &rec, nil
}

// WriteAudio writes a clip's raw bytes, overwriting any previous file.
func (w *Writer) WriteAudio(clip *types.AudioClip) (string, error) {
	path := w.AudioPath(clip.StoryID, clip.Lang)
	if err := os.WriteFile(path, clip.Data, config.OutputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return path, nil
}
