// =============================================================================
// XLSX Header Stamper - File Manager Utility
// =============================================================================
//
// This module handles the filesystem edges of a run:
//   - Discovering target workbooks in an input directory
//   - Resolving the output archive name ({uuid}/{timestamp} placeholders)
//   - Writing the archive and the match report to the output directory
//
// The pipeline itself never touches the filesystem; everything here happens
// before and after it.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

// FileManager handles input discovery and output writing.
type FileManager struct {
	// OutputDir is the directory receiving the archive and the report.
	OutputDir string
}

// NewFileManager creates a FileManager for the given output directory.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{OutputDir: outputDir}
}

// EnsureOutputDir creates the output directory if it does not exist.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// INPUT DISCOVERY
// =============================================================================

// DiscoverTargets lists the .xlsx files in inputDir, sorted by name so runs
// are reproducible. The roster file is excluded when it lives in the same
// directory, as are Excel lock files ("~$...").
func DiscoverTargets(inputDir, rosterPath string) ([]string, error) {
	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	rosterAbs, _ := filepath.Abs(rosterPath)

	var files []string
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".xlsx") {
			continue
		}
		if strings.HasPrefix(name, "~$") {
			continue
		}
		path := filepath.Join(inputDir, name)
		if abs, err := filepath.Abs(path); err == nil && abs == rosterAbs {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

// ReadTargets loads the discovered files into memory as pipeline inputs,
// preserving order.
func ReadTargets(paths []string) ([]types.InputFile, error) {
	files := make([]types.InputFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, types.InputFile{Name: filepath.Base(path), Data: data})
	}
	return files, nil
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// ResolveArchiveName expands the {uuid} and {timestamp} placeholders in the
// configured archive name.
func ResolveArchiveName(pattern string, now time.Time) string {
	name := pattern
	if strings.Contains(name, "{uuid}") {
		name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	}
	if strings.Contains(name, "{timestamp}") {
		name = strings.ReplaceAll(name, "{timestamp}", now.Format("20060102_150405"))
	}
	return name
}

// WriteArchive writes the zip bytes under the resolved archive name and
// returns the full path.
func (fm *FileManager) WriteArchive(name string, data []byte) (string, error) {
	path := filepath.Join(fm.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	return path, nil
}

// WriteReport writes the rendered match report and returns the full path.
func (fm *FileManager) WriteReport(name, content string) (string, error) {
	path := filepath.Join(fm.OutputDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
