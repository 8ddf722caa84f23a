package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

type sheetsCall struct {
	Method string
	Path   string
	Query  map[string]string
	Body   []byte
}

type fakeTab struct {
	id   int64
	rows [][]interface{}
}

// fakeSheetsAPI serves the subset of the Sheets v4 REST surface the store
// uses, backed by an in-memory grid. Row 0 of every tab is the header.
type fakeSheetsAPI struct {
	t *testing.T

	mu     sync.Mutex
	tabs   map[string]*fakeTab
	nextID int64
	calls  []sheetsCall

	// failLookup answers the spreadsheet metadata request with this status.
	failLookup int
}

func newFakeSheetsAPI(t *testing.T) *fakeSheetsAPI {
	return &fakeSheetsAPI{t: t, tabs: map[string]*fakeTab{}, nextID: 100}
}

func (f *fakeSheetsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body []byte
	if r.Body != nil {
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		body = raw
	}
	q := map[string]string{}
	for k := range r.URL.Query() {
		q[k] = r.URL.Query().Get(k)
	}
	f.calls = append(f.calls, sheetsCall{Method: r.Method, Path: r.URL.Path, Query: q, Body: body})

	const prefix = "/v4/spreadsheets/sid"
	path := strings.TrimPrefix(r.URL.Path, prefix)
	switch {
	case path == "" && r.Method == http.MethodGet:
		if f.failLookup != 0 {
			http.Error(w, `{"error":{"code":403,"message":"denied"}}`, f.failLookup)
			return
		}
		f.writeJSON(w, f.spreadsheet())
	case path == ":batchUpdate" && r.Method == http.MethodPost:
		var req gsheets.BatchUpdateSpreadsheetRequest
		assert.NoError(f.t, json.Unmarshal(body, &req))
		for _, rq := range req.Requests {
			switch {
			case rq.AddSheet != nil:
				f.tabs[rq.AddSheet.Properties.Title] = &fakeTab{id: f.nextID}
				f.nextID++
			case rq.DeleteDimension != nil:
				rg := rq.DeleteDimension.Range
				tab := f.tabByID(rg.SheetId)
				if tab == nil || int(rg.EndIndex) > len(tab.rows) {
					http.Error(w, `{"error":{"code":400,"message":"bad range"}}`, http.StatusBadRequest)
					return
				}
				tab.rows = append(tab.rows[:rg.StartIndex], tab.rows[rg.EndIndex:]...)
			}
		}
		f.writeJSON(w, map[string]string{"spreadsheetId": "sid"})
	case strings.HasPrefix(path, "/values/"):
		f.serveValues(w, r.Method, strings.TrimPrefix(path, "/values/"), body)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeSheetsAPI) serveValues(w http.ResponseWriter, method, rng string, body []byte) {
	appendCall := strings.HasSuffix(rng, ":append")
	title, rowNum := parseRange(strings.TrimSuffix(rng, ":append"))
	tab, ok := f.tabs[title]
	if !ok {
		http.Error(w, `{"error":{"code":400,"message":"Unable to parse range"}}`, http.StatusBadRequest)
		return
	}

	switch {
	case method == http.MethodGet:
		out := map[string]interface{}{"range": rng}
		if len(tab.rows) > 1 {
			out["values"] = tab.rows[1:]
		}
		f.writeJSON(w, out)
		return
	case method == http.MethodPost && appendCall:
		var vr gsheets.ValueRange
		assert.NoError(f.t, json.Unmarshal(body, &vr))
		tab.rows = append(tab.rows, vr.Values...)
	case method == http.MethodPut:
		var vr gsheets.ValueRange
		assert.NoError(f.t, json.Unmarshal(body, &vr))
		for len(tab.rows) < rowNum {
			tab.rows = append(tab.rows, []interface{}{})
		}
		tab.rows[rowNum-1] = vr.Values[0]
	}
	f.writeJSON(w, map[string]string{"spreadsheetId": "sid"})
}

func (f *fakeSheetsAPI) spreadsheet() *gsheets.Spreadsheet {
	out := &gsheets.Spreadsheet{SpreadsheetId: "sid"}
	for title, tab := range f.tabs {
		out.Sheets = append(out.Sheets, &gsheets.Sheet{
			Properties: &gsheets.SheetProperties{Title: title, SheetId: tab.id},
		})
	}
	return out
}

func (f *fakeSheetsAPI) tabByID(id int64) *fakeTab {
	for _, tab := range f.tabs {
		if tab.id == id {
			return tab
		}
	}
	return nil
}

func (f *fakeSheetsAPI) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(f.t, json.NewEncoder(w).Encode(v))
}

func (f *fakeSheetsAPI) callsTo(method, suffix string) []sheetsCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sheetsCall
	for _, c := range f.calls {
		if c.Method == method && strings.HasSuffix(c.Path, suffix) {
			out = append(out, c)
		}
	}
	return out
}

// parseRange splits "'TAB'!A3:C3" into the tab title and the first row
// number. A range without a row number yields 0.
func parseRange(rng string) (string, int) {
	i := strings.LastIndex(rng, "!")
	if i < 0 {
		return rng, 0
	}
	title := strings.ReplaceAll(strings.Trim(rng[:i], "'"), "''", "'")
	cell := strings.SplitN(rng[i+1:], ":", 2)[0]
	digits := strings.TrimLeft(cell, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	n, _ := strconv.Atoi(digits)
	return title, n
}

func newFakeGoogleStore(t *testing.T) (*GoogleStore, *fakeSheetsAPI) {
	t.Helper()
	api := newFakeSheetsAPI(t)
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	svc, err := gsheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return &GoogleStore{svc: svc, spreadsheetID: "sid"}, api
}

func TestGoogleStore_RowPositions(t *testing.T) {
	ctx := context.Background()
	s, api := newFakeGoogleStore(t)

	require.NoError(t, s.EnsureSheet(ctx, "TAB", header))
	require.NoError(t, s.Append(ctx, "TAB", []string{"a", "1", "ACME"}))
	require.NoError(t, s.Append(ctx, "TAB", []string{"b", "2", "Beta"}))
	require.NoError(t, s.Append(ctx, "TAB", []string{"c", "3", "Gama"}))

	require.NoError(t, s.Update(ctx, "TAB", 1, []string{"b", "22", "Beta SA"}))
	puts := api.callsTo(http.MethodPut, "'TAB'!A3:C3")
	require.Len(t, puts, 1, "index 1 is sheet row 3")

	rows, err := s.Rows(ctx, "TAB")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "1", "ACME"}, {"b", "22", "Beta SA"}, {"c", "3", "Gama"}}, rows)

	require.NoError(t, s.Delete(ctx, "TAB", 0))
	batches := api.callsTo(http.MethodPost, ":batchUpdate")
	require.NotEmpty(t, batches)
	var req gsheets.BatchUpdateSpreadsheetRequest
	require.NoError(t, json.Unmarshal(batches[len(batches)-1].Body, &req))
	rg := req.Requests[0].DeleteDimension.Range
	assert.Equal(t, "ROWS", rg.Dimension)
	assert.Equal(t, int64(1), rg.StartIndex, "header stays at index 0")
	assert.Equal(t, int64(2), rg.EndIndex)
	assert.Equal(t, int64(100), rg.SheetId)

	rows, err = s.Rows(ctx, "TAB")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0][0], "rows below the deleted one shift up")

	assert.ErrorIs(t, s.Update(ctx, "TAB", -1, []string{"x"}), ErrRowOutOfRange)
	assert.ErrorIs(t, s.Delete(ctx, "TAB", -1), ErrRowOutOfRange)
}

func TestGoogleStore_WritesRawValues(t *testing.T) {
	ctx := context.Background()
	s, api := newFakeGoogleStore(t)
	require.NoError(t, s.EnsureSheet(ctx, "TAB", header))

	row := []string{"01144477735", "=IMPORTXML(\"http://x\")", "2024-06-01"}
	require.NoError(t, s.Append(ctx, "TAB", row))
	require.NoError(t, s.Update(ctx, "TAB", 0, row))

	appends := api.callsTo(http.MethodPost, ":append")
	require.Len(t, appends, 1)
	assert.Equal(t, "RAW", appends[0].Query["valueInputOption"])
	assert.Equal(t, "INSERT_ROWS", appends[0].Query["insertDataOption"])

	puts := api.callsTo(http.MethodPut, "")
	require.Len(t, puts, 2, "header write and row update")
	for _, c := range append(puts, appends...) {
		assert.Equal(t, "RAW", c.Query["valueInputOption"], c.Path)
	}

	var sent gsheets.ValueRange
	require.NoError(t, json.Unmarshal(appends[0].Body, &sent))
	assert.Equal(t, []interface{}{"01144477735", "=IMPORTXML(\"http://x\")", "2024-06-01"}, sent.Values[0],
		"cells travel as text")

	rows, err := s.Rows(ctx, "TAB")
	require.NoError(t, err)
	assert.Equal(t, row, rows[0])
}

func TestGoogleStore_EnsureSheet(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing tab with header", func(t *testing.T) {
		s, api := newFakeGoogleStore(t)
		require.NoError(t, s.EnsureSheet(ctx, "EXPEDICAO", header))

		require.Len(t, api.callsTo(http.MethodPost, ":batchUpdate"), 1)
		headerWrites := api.callsTo(http.MethodPut, "'EXPEDICAO'!A1:C1")
		require.Len(t, headerWrites, 1)
		assert.Equal(t, []interface{}{"id", "nota", "cliente"}, api.tabs["EXPEDICAO"].rows[0])
	})

	t.Run("existing tab is left alone", func(t *testing.T) {
		s, api := newFakeGoogleStore(t)
		api.tabs["EXPEDICAO"] = &fakeTab{id: 7, rows: [][]interface{}{{"id"}}}

		require.NoError(t, s.EnsureSheet(ctx, "EXPEDICAO", header))
		assert.Empty(t, api.callsTo(http.MethodPost, ":batchUpdate"))
		assert.Empty(t, api.callsTo(http.MethodPut, ""))
	})

	t.Run("failed lookup does not create a tab", func(t *testing.T) {
		s, api := newFakeGoogleStore(t)
		api.failLookup = http.StatusForbidden

		err := s.EnsureSheet(ctx, "EXPEDICAO", header)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load tabs")
		assert.Empty(t, api.callsTo(http.MethodPost, ":batchUpdate"))
		assert.Empty(t, api.callsTo(http.MethodPut, ""))
	})
}

func TestGoogleStore_DeleteUnknownTab(t *testing.T) {
	s, api := newFakeGoogleStore(t)
	err := s.Delete(context.Background(), "NOPE", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tab "NOPE" not found`)
	assert.Empty(t, api.callsTo(http.MethodPost, ":batchUpdate"))
}

func TestRowRange(t *testing.T) {
	assert.Equal(t, "'TAB'!A3:C3", rowRange("TAB", 3, 3))
	assert.Equal(t, "'TAB'!A1:A1", rowRange("TAB", 1, 0))
	assert.Equal(t, "'D''Agua'!A2:AB2", rowRange("D'Agua", 2, 28))
}
