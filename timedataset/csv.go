package timedataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrParse         = errors.New("unable to parse row")
	ErrMissingColumn = errors.New("column not found in header")
)

// TimeLayouts are the timestamp layouts attempted in order when parsing ingested rows
var TimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// CSVOptions configures how rows are read into a TimeDataset
type CSVOptions struct {
	TimeColumn  string `json:"time_column"`
	ValueColumn string `json:"value_column"`
	Delimiter   rune   `json:"delimiter"`
	Period      int    `json:"period"`

	// Location is used for timestamps without zone information. Defaults to UTC.
	Location *time.Location `json:"-"`
}

// NewDefaultCSVOptions reads the timestamp and value columns of a comma separated file
func NewDefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		TimeColumn:  "timestamp",
		ValueColumn: "value",
		Delimiter:   ',',
		Period:      PeriodAuto,
	}
}

// Validate fills in defaults for unset fields
func (c *CSVOptions) Validate() (*CSVOptions, error) {
	if c == nil {
		return NewDefaultCSVOptions(), nil
	}
	if c.Period < 0 {
		return nil, fmt.Errorf("got period %d, %w", c.Period, ErrInvalidPeriod)
	}
	res := *c
	if res.TimeColumn == "" {
		res.TimeColumn = "timestamp"
	}
	if res.ValueColumn == "" {
		res.ValueColumn = "value"
	}
	if res.Delimiter == 0 {
		res.Delimiter = ','
	}
	return &res, nil
}

// LoadCSV reads a TimeDataset from a csv file with a header row
func LoadCSV(path string, opt *CSVOptions) (*TimeDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f, opt)
}

// ReadCSV reads a TimeDataset from csv rows in order. The first row must be a header naming
// the time and value columns. Empty values are stored as missing.
func ReadCSV(r io.Reader, opt *CSVOptions) (*TimeDataset, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	loc := opt.Location
	if loc == nil {
		loc = time.UTC
	}

	reader := csv.NewReader(r)
	reader.Comma = opt.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySeries
		}
		return nil, fmt.Errorf("unable to read header, %w", err)
	}
	tIdx, yIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case opt.TimeColumn:
			tIdx = i
		case opt.ValueColumn:
			yIdx = i
		}
	}
	if tIdx < 0 {
		return nil, fmt.Errorf("%s, %w", opt.TimeColumn, ErrMissingColumn)
	}
	if yIdx < 0 {
		return nil, fmt.Errorf("%s, %w", opt.ValueColumn, ErrMissingColumn)
	}

	var t []time.Time
	var y []float64
	for row := 2; ; row++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d, %w", row, err)
		}

		ts, err := ParseTime(rec[tIdx], loc)
		if err != nil {
			return nil, fmt.Errorf("row %d, %w", row, err)
		}
		val, err := parseValue(rec[yIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d, %w", row, err)
		}
		t = append(t, ts)
		y = append(y, val)
	}

	return NewWithPeriod(t, y, opt.Period)
}

// ParseTime parses an ISO-8601 like timestamp trying each of the TimeLayouts
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range TimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q, %w", s, ErrParse)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q, %w", s, ErrParse)
	}
	return val, nil
}
