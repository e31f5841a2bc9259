package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/msgfeatures/internal/bow"
	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/dataset"
	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// DefaultProgressEvery is how many rows pass between progress log lines.
const DefaultProgressEvery = 1000

// Options tunes a Builder.
type Options struct {
	// BagOfWordsMaxAccuracy sizes the hashing vectorizer to the corpus
	// vocabulary instead of bow.DefaultWidth.
	BagOfWordsMaxAccuracy bool
	// ProgressEvery defaults to DefaultProgressEvery.
	ProgressEvery int
	// OnRow, if set, is called with the number of rows done after each row.
	OnRow func(done int)
}

// Builder computes features on datasets.
type Builder struct {
	reg  *registry.Registry
	res  *resources.Set
	opts Options
}

// New returns a Builder evaluating features from reg with resources res.
func New(reg *registry.Registry, res *resources.Set, opts Options) *Builder {
	if res == nil {
		res = &resources.Set{}
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = DefaultProgressEvery
	}
	return &Builder{reg: reg, res: res, opts: opts}
}

// RowError reports a feature that failed on a specific row.
type RowError struct {
	Feature feature.Name
	Row     int
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("feature %s failed on row %d: %v", e.Feature, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// column accumulates one feature's values.
type column struct {
	name  feature.Name
	kind  feature.Kind
	fn    registry.Func
	ints  []int
	float []float64
	comps []feature.Composition
}

// Build computes names on ds in place. On error ds may hold partial columns
// and must not be written.
func (b *Builder) Build(ctx context.Context, ds *dataset.Dataset, names []feature.Name) error {
	logger := ctxlog.FromContext(ctx)
	messages := ds.Messages()

	active := slices.Clone(names)
	if i := slices.Index(active, feature.BagOfWords); i >= 0 {
		if err := b.bagOfWords(ctx, ds, messages); err != nil {
			return err
		}
		active = slices.Delete(active, i, i+1)
	}

	cols, err := b.columns(active, len(messages))
	if err != nil {
		return err
	}

	logger.Info("Computing features.", "features", active, "rows", len(messages))
	for i, msg := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := feature.NewRow(i, msg, b.res.Italian)
		for _, c := range cols {
			if err := c.eval(ctx, row, b.res); err != nil {
				return err
			}
		}
		if b.opts.OnRow != nil {
			b.opts.OnRow(i + 1)
		}
		if (i+1)%b.opts.ProgressEvery == 0 {
			logger.Info("Feature progress.", "rows_done", i+1, "rows_total", len(messages))
		}
	}

	var composition *column
	for _, c := range cols {
		var err error
		switch c.kind {
		case feature.KindInt:
			err = ds.AddInts(string(c.name), c.ints)
		case feature.KindFloat:
			err = ds.AddFloats(string(c.name), c.float)
		case feature.KindComposition:
			composition = c
		}
		if err != nil {
			return fmt.Errorf("failed to add column %s: %w", c.name, err)
		}
	}

	if composition != nil {
		if err := addComposition(ds, composition.comps); err != nil {
			return err
		}
	}

	if err := ds.Drop(dataset.DateColumn, dataset.MessageColumn, string(feature.MessageComposition)); err != nil {
		return err
	}
	logger.Info("Features computed.", "rows", ds.Len(), "columns", len(ds.Names()))
	return nil
}

func (b *Builder) bagOfWords(ctx context.Context, ds *dataset.Dataset, messages []string) error {
	width := bow.Width(messages, b.opts.BagOfWordsMaxAccuracy)
	ctxlog.FromContext(ctx).Info("Applying bag of words.", "width", width, "max_accuracy", b.opts.BagOfWordsMaxAccuracy)

	v, err := bow.NewVectorizer(width)
	if err != nil {
		return err
	}
	matrix := v.Transform(messages)

	cols := make([][]float64, v.Width())
	for j := range cols {
		cols[j] = make([]float64, len(messages))
		for i, row := range matrix {
			cols[j][i] = row[j]
		}
	}
	if err := ds.AddFloatColumns(bow.ColumnNames(v.Width()), cols); err != nil {
		return fmt.Errorf("failed to add bag of words columns: %w", err)
	}
	return nil
}

func (b *Builder) columns(names []feature.Name, rows int) ([]*column, error) {
	cols := make([]*column, 0, len(names))
	for _, name := range names {
		f, ok := b.reg.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", registry.ErrUnknownFeature, name)
		}
		if f.Kind == feature.KindCorpus {
			return nil, fmt.Errorf("corpus feature %s cannot be evaluated per row", name)
		}
		c := &column{name: name, kind: f.Kind, fn: f.Fn}
		switch f.Kind {
		case feature.KindInt:
			c.ints = make([]int, 0, rows)
		case feature.KindFloat:
			c.float = make([]float64, 0, rows)
		case feature.KindComposition:
			c.comps = make([]feature.Composition, 0, rows)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func (c *column) eval(ctx context.Context, row *feature.Row, res *resources.Set) error {
	v, err := c.fn(ctx, row, res)
	if err != nil {
		return &RowError{Feature: c.name, Row: row.Index, Err: err}
	}

	ok := false
	switch c.kind {
	case feature.KindInt:
		var x int
		if x, ok = v.(int); ok {
			c.ints = append(c.ints, x)
		}
	case feature.KindFloat:
		var x float64
		if x, ok = v.(float64); ok {
			c.float = append(c.float, x)
		}
	case feature.KindComposition:
		var x feature.Composition
		if x, ok = v.(feature.Composition); ok {
			c.comps = append(c.comps, x)
		}
	}
	if !ok {
		return &RowError{Feature: c.name, Row: row.Index, Err: fmt.Errorf("returned %T for a %s feature", v, c.kind)}
	}
	return nil
}

// addComposition expands per-row compositions into one column per POS tag.
func addComposition(ds *dataset.Dataset, comps []feature.Composition) error {
	tags := nlp.POSTags()
	cols := make([][]float64, len(tags))
	for j, tag := range tags {
		cols[j] = make([]float64, len(comps))
		for i, comp := range comps {
			cols[j][i] = comp[tag]
		}
	}
	if err := ds.AddFloatColumns(tags, cols); err != nil {
		return fmt.Errorf("failed to add composition columns: %w", err)
	}
	return nil
}
