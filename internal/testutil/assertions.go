package testutil

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/require"
)

// ReadParquet loads the Parquet file at path into an Arrow table that is
// released when the test ends.
func ReadParquet(t *testing.T, path string) arrow.Table {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	tbl, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(data),
		parquet.NewReaderProperties(memory.DefaultAllocator), pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	require.NoError(t, err)
	t.Cleanup(tbl.Release)
	return tbl
}

// ColumnNames returns the field names of tbl in order.
func ColumnNames(tbl arrow.Table) []string {
	fields := tbl.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Int64Column returns the values of the named int64 column.
func Int64Column(t *testing.T, tbl arrow.Table, name string) []int64 {
	t.Helper()
	var out []int64
	for _, chunk := range column(t, tbl, name).Data().Chunks() {
		arr, ok := chunk.(*array.Int64)
		require.True(t, ok, "column %s is %s, not int64", name, chunk.DataType())
		out = append(out, arr.Int64Values()...)
	}
	return out
}

// Float64Column returns the values of the named float64 column.
func Float64Column(t *testing.T, tbl arrow.Table, name string) []float64 {
	t.Helper()
	var out []float64
	for _, chunk := range column(t, tbl, name).Data().Chunks() {
		arr, ok := chunk.(*array.Float64)
		require.True(t, ok, "column %s is %s, not float64", name, chunk.DataType())
		out = append(out, arr.Float64Values()...)
	}
	return out
}

func column(t *testing.T, tbl arrow.Table, name string) *arrow.Column {
	t.Helper()
	idx := tbl.Schema().FieldIndices(name)
	require.Len(t, idx, 1, "expected exactly one column named %s", name)
	return tbl.Column(idx[0])
}
