package repository

import (
	"math"
	"strconv"
	"strings"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
)

// serialEpochDays is the spreadsheet serial number of 1970-01-01.
const serialEpochDays = 25569

var genericDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	entities.DateTimeLayout,
	"2006/01/02",
	"02-01-2006",
	"2/1/2006 15:04:05",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC1123,
}

// cell returns row[i], or "" past the end of a short row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// locateByID scans the first column for id. -1 means not found.
func locateByID(rows [][]string, id string) int {
	for i, row := range rows {
		if strings.TrimSpace(cell(row, 0)) == id {
			return i
		}
	}
	return -1
}

func parseSerial(v string) (float64, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// serialToTime converts a spreadsheet serial day number to UTC.
func serialToTime(serial float64) time.Time {
	secs := (serial - serialEpochDays) * 86400
	return time.Unix(int64(math.Round(secs)), 0).UTC()
}

// normalizeDate brings an ISO, dd/mm/yyyy, serial or otherwise parseable date
// cell to yyyy-mm-dd. Unparseable input yields "".
func normalizeDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if t, err := time.Parse(entities.DateLayout, v); err == nil {
		return t.Format(entities.DateLayout)
	}
	if serial, ok := parseSerial(v); ok {
		return serialToTime(serial).Format(entities.DateLayout)
	}
	if t, err := time.Parse("2/1/2006", v); err == nil {
		return t.Format(entities.DateLayout)
	}
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(entities.DateLayout)
		}
	}
	return ""
}

// normalizeDateTime is normalizeDate for timestamp columns. Serial values are
// converted; anything else is kept verbatim.
func normalizeDateTime(v string) string {
	v = strings.TrimSpace(v)
	if serial, ok := parseSerial(v); ok {
		return serialToTime(serial).Format(entities.DateTimeLayout)
	}
	return v
}
