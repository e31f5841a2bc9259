package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "date,message,author\n2024-01-01,Ciao!,anna\n2024-01-02,123,marco\n"

	ds, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"date", "message", "author"}, ds.Names())
	assert.Equal(t, []string{"Ciao!", "123"}, ds.Messages())
	assert.Equal(t, series.String, ds.DataFrame().Col(MessageColumn).Type(), "numeric-looking messages stay text")
}

func TestReadJSON(t *testing.T) {
	in := `[{"message": "ciao"}, {"message": "buongiorno"}]`

	ds, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"ciao", "buongiorno"}, ds.Messages())
}

func TestReadCSV_KeepsNaNLikeMessages(t *testing.T) {
	in := "date,message\nd1,NA\nd2,<nil>\nd3,NaN\n"

	ds, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"NA", "<nil>", "NaN"}, ds.Messages())
}

func TestNew_MissingMessage(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("date,text\n2024-01-01,ciao\n"))
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "messages.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("message\nuno\ndue\n"), 0o644))
	jsonPath := filepath.Join(dir, "messages.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"message":"tre"}]`), 0o644))

	ds, err := Load(context.Background(), csvPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"uno", "due"}, ds.Messages())

	ds, err = Load(context.Background(), jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"tre"}, ds.Messages())

	_, err = Load(context.Background(), filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestColumns(t *testing.T) {
	ds := FromMessages("a", "b")

	require.NoError(t, ds.AddInts("char_count", []int{1, 1}))
	require.NoError(t, ds.AddFloats("word_length", []float64{1, 1}))
	require.NoError(t, ds.AddFloatColumns([]string{"0", "1"}, [][]float64{{0, 1}, {1, 0}}))
	assert.Equal(t, []string{"message", "char_count", "word_length", "0", "1"}, ds.Names())

	require.Error(t, ds.AddInts("short", []int{1}))
	require.Error(t, ds.AddFloatColumns([]string{"2"}, nil))

	require.NoError(t, ds.Drop("message", "date"))
	assert.Equal(t, []string{"char_count", "word_length", "0", "1"}, ds.Names())
	require.NoError(t, ds.Drop("not_there"))
}

func TestNew_DataFrameError(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a"}, series.String, MessageColumn),
		series.New([]int{1, 2}, series.Int, "n"),
	)
	_, err := New(df)
	require.Error(t, err)
}
