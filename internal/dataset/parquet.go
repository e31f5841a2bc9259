package dataset

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/go-gota/gota/series"
)

// Schema returns the Arrow schema the dataset is encoded with. NA values are
// written as nulls, so every field is nullable.
func (d *Dataset) Schema() *arrow.Schema {
	fields := make([]arrow.Field, 0, d.df.Ncol())
	for _, name := range d.df.Names() {
		fields = append(fields, arrow.Field{
			Name:     name,
			Type:     arrowType(d.df.Col(name).Type()),
			Nullable: true,
		})
	}
	return arrow.NewSchema(fields, nil)
}

func arrowType(t series.Type) arrow.DataType {
	switch t {
	case series.Int:
		return arrow.PrimitiveTypes.Int64
	case series.Float:
		return arrow.PrimitiveTypes.Float64
	case series.Bool:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// WriteParquet encodes the dataset as a single Snappy-compressed Parquet
// row group.
func (d *Dataset) WriteParquet(w io.Writer) error {
	mem := memory.NewGoAllocator()
	schema := d.Schema()

	cols := make([]arrow.Array, 0, d.df.Ncol())
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	for _, name := range d.df.Names() {
		arr, err := buildArray(mem, d.df.Col(name))
		if err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
		cols = append(cols, arr)
	}

	rec := array.NewRecord(schema, cols, int64(d.Len()))
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	fw, err := pqarrow.NewFileWriter(schema, w, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return fmt.Errorf("failed to write parquet record: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func buildArray(mem memory.Allocator, s series.Series) (arrow.Array, error) {
	n := s.Len()
	switch s.Type() {
	case series.Int:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			e := s.Elem(i)
			if e.IsNA() {
				b.AppendNull()
				continue
			}
			v, err := e.Int()
			if err != nil {
				return nil, err
			}
			b.Append(int64(v))
		}
		return b.NewArray(), nil
	case series.Float:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			e := s.Elem(i)
			if e.IsNA() {
				b.AppendNull()
				continue
			}
			b.Append(e.Float())
		}
		return b.NewArray(), nil
	case series.Bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			e := s.Elem(i)
			if e.IsNA() {
				b.AppendNull()
				continue
			}
			v, err := e.Bool()
			if err != nil {
				return nil, err
			}
			b.Append(v)
		}
		return b.NewArray(), nil
	default:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			e := s.Elem(i)
			if e.IsNA() {
				b.AppendNull()
				continue
			}
			b.Append(e.String())
		}
		return b.NewArray(), nil
	}
}
