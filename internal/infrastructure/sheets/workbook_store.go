package sheets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const defaultWorkbookSheet = "Sheet1"

// WorkbookStore keeps tabs in a local .xlsx file, saved after every write.
// It is meant for a single process; the mutex serializes its own writers only.
type WorkbookStore struct {
	mu    sync.Mutex
	path  string
	file  *excelize.File
	fresh bool
}

var _ Store = (*WorkbookStore)(nil)

// OpenWorkbook opens path, or starts an empty workbook when it does not exist.
func OpenWorkbook(path string) (*WorkbookStore, error) {
	f, err := excelize.OpenFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("workbook not found, starting a new one")
		return &WorkbookStore{path: path, file: excelize.NewFile(), fresh: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("workbook: open %s: %w", path, err)
	}
	return &WorkbookStore{path: path, file: f}, nil
}

func (s *WorkbookStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

func (s *WorkbookStore) EnsureSheet(_ context.Context, sheet string, header []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.file.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx != -1 {
		return nil
	}
	if _, err := s.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("workbook: add tab %s: %w", sheet, err)
	}
	cells := toCells(header)
	if err := s.file.SetSheetRow(sheet, "A1", &cells); err != nil {
		return err
	}
	if s.fresh && sheet != defaultWorkbookSheet {
		if err := s.file.DeleteSheet(defaultWorkbookSheet); err != nil {
			return err
		}
		s.fresh = false
	}
	return s.save()
}

func (s *WorkbookStore) Rows(_ context.Context, sheet string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.rows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return [][]string{}, nil
	}
	return copyRows(rows[1:]), nil
}

func (s *WorkbookStore) Append(_ context.Context, sheet string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.rows(sheet)
	if err != nil {
		return err
	}
	next := len(rows) + 1
	if next < 2 {
		next = 2
	}
	if err := s.writeRow(sheet, next, row); err != nil {
		return err
	}
	return s.save()
}

func (s *WorkbookStore) Update(_ context.Context, sheet string, index int, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(sheet, index); err != nil {
		return err
	}
	if err := s.writeRow(sheet, index+2, row); err != nil {
		return err
	}
	return s.save()
}

func (s *WorkbookStore) Delete(_ context.Context, sheet string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(sheet, index); err != nil {
		return err
	}
	if err := s.file.RemoveRow(sheet, index+2); err != nil {
		return err
	}
	return s.save()
}

func (s *WorkbookStore) checkIndex(sheet string, index int) error {
	rows, err := s.rows(sheet)
	if err != nil {
		return err
	}
	if index < 0 || index+1 >= len(rows) {
		return ErrRowOutOfRange
	}
	return nil
}

func (s *WorkbookStore) rows(sheet string) ([][]string, error) {
	idx, err := s.file.GetSheetIndex(sheet)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return nil, fmt.Errorf("workbook: tab %q not found", sheet)
	}
	return s.file.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func (s *WorkbookStore) writeRow(sheet string, rowNum int, row []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := toCells(row)
	return s.file.SetSheetRow(sheet, cell, &cells)
}

func (s *WorkbookStore) save() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("workbook: save %s: %w", s.path, err)
	}
	return nil
}
