package chemref

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/qcforge/chemref/dataset"
	"github.com/qcforge/chemref/dataset/source"
	"github.com/qcforge/chemref/periodic"
	"github.com/qcforge/chemref/physconst"
)

// Engine bundles the periodic-table and physical-constants resolvers built
// from one dataset. It is immutable once New returns and safe for
// concurrent use without locking.
type Engine struct {
	table     *periodic.Table
	constants *physconst.Constants
	logger    *Logger
}

// New builds an engine. Without options it uses the embedded default
// dataset and no unit converter.
//
// The dataset is validated first and both alias indexes are built eagerly;
// any integrity violation (duplicate alias, duplicate canonical key) aborts
// construction so a partially built engine is never published.
func New(opts ...Option) (*Engine, error) {
	o := options{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	ds := o.dataset
	lg := o.logger
	if ds == nil {
		var err error
		ds, err = dataset.Default()
		if err != nil {
			return nil, fmt.Errorf("load default dataset: %w", err)
		}
		lg = lg.WithDataset("embedded")
	} else {
		if err := ds.Validate(); err != nil {
			return nil, err
		}
		lg = lg.WithDataset("custom")
	}

	e := &Engine{logger: lg}

	// The two indexes are independent; build them concurrently.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		table, err := periodic.Build(ds)
		if err != nil {
			return err
		}
		e.table = table
		return nil
	})
	g.Go(func() error {
		constants, err := physconst.Build(ds, physconst.WithConverter(o.converter))
		if err != nil {
			return err
		}
		e.constants = constants
		return nil
	})
	if err := g.Wait(); err != nil {
		lg.LogBuild(ctx, len(ds.Elements), len(ds.Constants), 0, err)
		return nil, err
	}

	lg.LogBuild(ctx, len(ds.Elements), len(ds.Constants), e.table.NumAliases(), nil)
	return e, nil
}

// NewFromSource fetches a dataset snapshot from src, decodes and validates
// it, and builds an engine over it. A WithDataset option passed here is
// overridden by the fetched dataset.
func NewFromSource(ctx context.Context, src source.Source, opts ...Option) (*Engine, error) {
	o := options{logger: NoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	name := fmt.Sprintf("%T", src)
	data, err := src.Fetch(ctx)
	if err != nil {
		o.logger.LogSnapshotLoad(ctx, name, 0, err)
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	ds, err := dataset.ReadSnapshot(bytes.NewReader(data))
	if err != nil {
		o.logger.LogSnapshotLoad(ctx, name, len(data), err)
		return nil, err
	}
	o.logger.LogSnapshotLoad(ctx, name, len(data), nil)

	return New(append(opts, WithDataset(ds))...)
}

// PeriodicTable returns the element/isotope resolver.
func (e *Engine) PeriodicTable() *periodic.Table { return e.table }

// Constants returns the physical-constants resolver.
func (e *Engine) Constants() *physconst.Constants { return e.constants }

// defaultEngine builds the process-wide engine exactly once. Publishing the
// fully built engine behind the Once is what makes lock-free reads safe.
var defaultEngine = sync.OnceValues(func() (*Engine, error) {
	return New()
})

// Default returns the process-wide engine over the embedded dataset. All
// callers share the same immutable instance.
func Default() (*Engine, error) {
	return defaultEngine()
}
