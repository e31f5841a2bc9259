// Package dataset wraps the message table the features are computed on and
// encodes the augmented table as Parquet.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/vk/msgfeatures/internal/ctxlog"
)

// Well-known column names.
const (
	MessageColumn = "message"
	DateColumn    = "date"
)

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("missing column")

// Dataset is an ordered table of messages plus any extra columns carried
// along from the input.
type Dataset struct {
	df dataframe.DataFrame
}

// New wraps df. It must contain a message column.
func New(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("invalid dataframe: %w", df.Err)
	}
	if !hasColumn(df, MessageColumn) {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, MessageColumn)
	}
	return &Dataset{df: df}, nil
}

// FromMessages builds a dataset with a single message column.
func FromMessages(messages ...string) *Dataset {
	return &Dataset{df: dataframe.New(series.New(messages, series.String, MessageColumn))}
}

// loadOptions keep free text from being type-detected as numbers, and turn
// off gota's NaN markers so a message reading "NA" or "<nil>" stays as written.
func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.NaNValues([]string{}),
		dataframe.WithTypes(map[string]series.Type{
			MessageColumn: series.String,
			DateColumn:    series.String,
		}),
	}
}

// ReadCSV reads a CSV table with a header row.
func ReadCSV(r io.Reader) (*Dataset, error) {
	return New(dataframe.ReadCSV(r, loadOptions()...))
}

// ReadJSON reads a JSON array of objects.
func ReadJSON(r io.Reader) (*Dataset, error) {
	return New(dataframe.ReadJSON(r, loadOptions()...))
}

// Load reads a dataset from path, choosing the decoder by extension: .json
// is a JSON array, anything else is CSV.
func Load(ctx context.Context, path string) (*Dataset, error) {
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	var ds *Dataset
	if strings.EqualFold(filepath.Ext(path), ".json") {
		ds, err = ReadJSON(f)
	} else {
		ds, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	logger.Info("Dataset loaded.", "path", path, "rows", ds.Len(), "columns", len(ds.Names()))
	return ds, nil
}

// DataFrame returns the underlying table.
func (d *Dataset) DataFrame() dataframe.DataFrame {
	return d.df
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.df.Nrow()
}

// Names returns the column labels in order.
func (d *Dataset) Names() []string {
	return d.df.Names()
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool {
	return hasColumn(d.df, name)
}

// Messages returns the message column.
func (d *Dataset) Messages() []string {
	return d.df.Col(MessageColumn).Records()
}

// AddInts appends or replaces an integer column.
func (d *Dataset) AddInts(name string, values []int) error {
	return d.mutate(series.New(values, series.Int, name))
}

// AddFloats appends or replaces a float column.
func (d *Dataset) AddFloats(name string, values []float64) error {
	return d.mutate(series.New(values, series.Float, name))
}

// AddFloatColumns appends several float columns at once. columns[i] holds
// the values of names[i].
func (d *Dataset) AddFloatColumns(names []string, columns [][]float64) error {
	if len(names) != len(columns) {
		return fmt.Errorf("got %d names for %d columns", len(names), len(columns))
	}
	if len(names) == 0 {
		return nil
	}
	ss := make([]series.Series, len(names))
	for i, name := range names {
		if len(columns[i]) != d.Len() {
			return fmt.Errorf("column %q has %d values, dataset has %d rows", name, len(columns[i]), d.Len())
		}
		ss[i] = series.New(columns[i], series.Float, name)
	}
	df := d.df.CBind(dataframe.New(ss...))
	if df.Err != nil {
		return fmt.Errorf("failed to append columns: %w", df.Err)
	}
	d.df = df
	return nil
}

// Drop removes the named columns. Names that are not present are ignored.
func (d *Dataset) Drop(names ...string) error {
	var present []string
	for _, n := range names {
		if d.Has(n) {
			present = append(present, n)
		}
	}
	if len(present) == 0 {
		return nil
	}
	df := d.df.Drop(present)
	if df.Err != nil {
		return fmt.Errorf("failed to drop columns %v: %w", present, df.Err)
	}
	d.df = df
	return nil
}

func (d *Dataset) mutate(s series.Series) error {
	if s.Len() != d.Len() {
		return fmt.Errorf("column %q has %d values, dataset has %d rows", s.Name, s.Len(), d.Len())
	}
	df := d.df.Mutate(s)
	if df.Err != nil {
		return fmt.Errorf("failed to set column %q: %w", s.Name, df.Err)
	}
	d.df = df
	return nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
