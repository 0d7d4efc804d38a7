// =============================================================================
// XLSX Header Stamper - Batch Pipeline
// =============================================================================
//
// This module drives one processing run end to end. It is deliberately pure
// with respect to its surroundings: it takes the roster bytes and the target
// files as inputs and returns the finished zip plus the ordered match log.
// No ambient state, no filesystem access.
//
// Files are processed strictly sequentially in input order. Per-file
// failures (no match, unreadable workbook, stamping error) are converted to
// log entries and never abort the run; only an unusable roster or a zip
// finalization failure is fatal.
//
// =============================================================================

package pipeline

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ginjaninja78/xlsx-header-stamper/internal/config"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/matcher"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/normalizer"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/roster"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/stamper"
	"github.com/ginjaninja78/xlsx-header-stamper/internal/types"
)

// Pipeline runs the match-and-stamp batch.
type Pipeline struct {
	cfg    *config.Config
	match  *matcher.Matcher
	logger *zap.Logger
}

// New builds a Pipeline from the configuration. A nil logger disables
// logging.
func New(cfg *config.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		cfg:    cfg,
		match:  matcher.New(cfg.Matcher.Threshold),
		logger: logger,
	}
}

// Run processes the batch: loads the roster, matches and stamps every target
// file, and returns the zip archive and the per-file match log. The error
// return covers fatal setup conditions only (unreadable or empty roster,
// archive finalization); everything per-file lands in the log.
func (p *Pipeline) Run(rosterData []byte, files []types.InputFile) (*types.BatchResult, error) {
	records, index, err := roster.Load(rosterData, p.cfg.Roster)
	if err != nil {
		return nil, err
	}
	p.logger.Info("roster loaded",
		zap.Int("companies", len(records)),
		zap.Int("files", len(files)))

	var zipBuf bytes.Buffer
	zw := zip.NewWriter(&zipBuf)

	entries := make([]types.MatchLogEntry, 0, len(files))
	for _, file := range files {
		entry, err := p.processFile(zw, index, file)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return &types.BatchResult{
		Archive: zipBuf.Bytes(),
		Log:     entries,
		Records: records,
	}, nil
}

// processFile handles a single target file. The returned error is reserved
// for archive write failures; every file-level problem becomes a log entry.
func (p *Pipeline) processFile(zw *zip.Writer, index *roster.Index, file types.InputFile) (types.MatchLogEntry, error) {
	key := normalizer.FileKey(file.Name)
	entry := types.MatchLogEntry{FileName: file.Name, Key: key}

	match, ok := p.match.Best(key, index.Keys())
	if !ok {
		p.logger.Debug("no roster match",
			zap.String("file", file.Name),
			zap.String("key", key))
		entry.Outcome = types.OutcomeNotFound
		return entry, nil
	}

	rec, _ := index.Get(match.Key)
	p.logger.Debug("matched",
		zap.String("file", file.Name),
		zap.String("company", rec.LegalName),
		zap.Float64("score", match.Score))

	stamped, err := p.stampWorkbook(file.Data, rec)
	if err != nil {
		p.logger.Warn("failed to stamp workbook",
			zap.String("file", file.Name),
			zap.Error(err))
		entry.Outcome = types.OutcomeOpenError
		entry.Err = err
		return entry, nil
	}

	w, err := zw.Create(file.Name)
	if err != nil {
		return entry, fmt.Errorf("failed to create archive entry %q: %w", file.Name, err)
	}
	if _, err := w.Write(stamped); err != nil {
		return entry, fmt.Errorf("failed to write archive entry %q: %w", file.Name, err)
	}

	entry.Outcome = types.OutcomeMatched
	entry.LegalName = rec.LegalName
	return entry, nil
}

// stampWorkbook opens the target workbook, detects the table width, stamps
// the header and serializes the result.
func (p *Pipeline) stampWorkbook(data []byte, rec types.CompanyRecord) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	// Geometry must be read before the insertion shifts the table down.
	lastColumn, err := stamper.DetectLastColumn(f, sheet, p.cfg.Header.ProbeRows)
	if err != nil {
		return nil, err
	}

	opts := stamper.Options{
		Policy:       p.cfg.Header.Policy,
		BlockColumns: p.cfg.Header.BlockColumns,
	}
	if err := stamper.Stamp(f, sheet, rec, lastColumn, opts); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
