// Package bow turns the message column into a fixed-width bag-of-words
// matrix using the hashing trick.
package bow

import (
	"fmt"
	"math"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/spaolacci/murmur3"
)

// DefaultWidth is the number of hashed dimensions used unless max-accuracy
// mode is requested.
const DefaultWidth = 1 << 10

var tokenRegex = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokens returns the lowercase word tokens of text: runs of at least two
// letters, digits or underscores.
func Tokens(text string) []string {
	return tokenRegex.FindAllString(strings.ToLower(text), -1)
}

// CountDistinct returns the number of distinct tokens across docs.
func CountDistinct(docs []string) int {
	seen := make(map[string]struct{})
	for _, d := range docs {
		for _, tok := range Tokens(d) {
			seen[tok] = struct{}{}
		}
	}
	return len(seen)
}

// Width returns the vectorizer width for docs. In max-accuracy mode it is the
// smallest power of two not below the number of distinct tokens, so that
// every token can get its own column.
func Width(docs []string, maxAccuracy bool) int {
	if !maxAccuracy {
		return DefaultWidth
	}
	n := CountDistinct(docs)
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ColumnNames returns the labels "0".."width-1".
func ColumnNames(width int) []string {
	names := make([]string, width)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}

// Vectorizer maps documents onto a fixed number of columns. Each token is
// hashed with 32-bit murmur3; the absolute hash modulo the width selects the
// column and the hash sign selects whether it adds or subtracts. Rows are
// L2-normalized.
type Vectorizer struct {
	width int
}

// NewVectorizer returns a vectorizer producing width columns.
func NewVectorizer(width int) (*Vectorizer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("vectorizer width must be positive, got %d", width)
	}
	return &Vectorizer{width: width}, nil
}

// Width returns the number of columns produced.
func (v *Vectorizer) Width() int {
	return v.width
}

// Transform returns one row of Width values per document.
func (v *Vectorizer) Transform(docs []string) [][]float64 {
	out := make([][]float64, len(docs))
	for i, d := range docs {
		out[i] = v.row(d)
	}
	return out
}

func (v *Vectorizer) row(doc string) []float64 {
	row := make([]float64, v.width)
	for _, tok := range Tokens(doc) {
		h := int32(murmur3.Sum32([]byte(tok)))
		idx := abs64(int64(h)) % int64(v.width)
		if h >= 0 {
			row[idx]++
		} else {
			row[idx]--
		}
	}

	var norm float64
	for _, x := range row {
		norm += x * x
	}
	if norm == 0 {
		return row
	}
	norm = math.Sqrt(norm)
	for j := range row {
		row[j] /= norm
	}
	return row
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
