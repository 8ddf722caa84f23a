package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

// GoogleStore reads and writes tabs of a single Google spreadsheet.
//
// Cells are read unformatted, so dates typed into the sheet arrive as serial
// numbers and are normalized by the mappers. Writes use RAW input so cells
// keep the exact text stored: leading zeros of a CPF survive and text
// starting with "=" never becomes a formula.
type GoogleStore struct {
	svc           *gsheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

var _ Store = (*GoogleStore)(nil)

// NewGoogleStore authenticates with a service account credentials JSON.
func NewGoogleStore(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*GoogleStore, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &GoogleStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// EnsureSheet creates the tab with its header row when the spreadsheet has
// no tab of that title. A failed lookup is returned as is.
func (s *GoogleStore) EnsureSheet(ctx context.Context, sheet string, header []string) error {
	ids, err := s.tabs(ctx)
	if err != nil {
		return err
	}
	if _, ok := ids[sheet]; ok {
		return nil
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{Properties: &gsheets.SheetProperties{Title: sheet}},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: add tab %s: %w", sheet, err)
	}
	s.forgetSheetIDs()
	log.Info().Str("sheet", sheet).Msg("created spreadsheet tab")

	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rowRange(sheet, 1, len(header)), &gsheets.ValueRange{
		Values: [][]interface{}{toCells(header)},
	}).ValueInputOption(valueInputRaw).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: write header %s: %w", sheet, err)
	}
	return nil
}

func (s *GoogleStore) Rows(ctx context.Context, sheet string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, quoteSheet(sheet)+"!A2:ZZ").
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("SERIAL_NUMBER").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", sheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, v := range raw {
			row[j] = cellString(v)
		}
		rows[i] = row
	}
	return rows, nil
}

func (s *GoogleStore) Append(ctx context.Context, sheet string, row []string) error {
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, quoteSheet(sheet)+"!A1", &gsheets.ValueRange{
		Values: [][]interface{}{toCells(row)},
	}).ValueInputOption(valueInputRaw).InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", sheet, err)
	}
	return nil
}

func (s *GoogleStore) Update(ctx context.Context, sheet string, index int, row []string) error {
	if index < 0 {
		return ErrRowOutOfRange
	}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rowRange(sheet, index+2, len(row)), &gsheets.ValueRange{
		Values: [][]interface{}{toCells(row)},
	}).ValueInputOption(valueInputRaw).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: update %s row %d: %w", sheet, index, err)
	}
	return nil
}

func (s *GoogleStore) Delete(ctx context.Context, sheet string, index int) error {
	if index < 0 {
		return ErrRowOutOfRange
	}
	id, err := s.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    id,
					Dimension:  "ROWS",
					StartIndex: int64(index + 1),
					EndIndex:   int64(index + 2),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: delete %s row %d: %w", sheet, index, err)
	}
	return nil
}

// sheetID resolves a tab title to its numeric id.
func (s *GoogleStore) sheetID(ctx context.Context, sheet string) (int64, error) {
	ids, err := s.tabs(ctx)
	if err != nil {
		return 0, err
	}
	id, ok := ids[sheet]
	if !ok {
		return 0, fmt.Errorf("sheets: tab %q not found", sheet)
	}
	return id, nil
}

// tabs maps every tab title to its id, caching the lookup.
func (s *GoogleStore) tabs(ctx context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sheetIDs == nil {
		resp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("sheets: load tabs: %w", err)
		}
		ids := make(map[string]int64, len(resp.Sheets))
		for _, sh := range resp.Sheets {
			if sh.Properties != nil {
				ids[sh.Properties.Title] = sh.Properties.SheetId
			}
		}
		s.sheetIDs = ids
	}
	return s.sheetIDs, nil
}

func (s *GoogleStore) forgetSheetIDs() {
	s.mu.Lock()
	s.sheetIDs = nil
	s.mu.Unlock()
}

func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// rowRange spans columns A..n of a 1-based sheet row.
func rowRange(sheet string, rowNum, n int) string {
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%s!A%d:%s%d", quoteSheet(sheet), rowNum, columnName(n), rowNum)
}
