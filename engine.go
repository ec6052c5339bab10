package tzoffset

import (
	"log/slog"
	"sync"

	"github.com/tzlist/tzoffset/historical"
	"github.com/tzlist/tzoffset/registry"
)

// Path names the tier that answers a query.
type Path int

const (
	// PathCompact evaluates the resident rule set.
	PathCompact Path = iota
	// PathHistorical searches the zone's recorded transitions.
	PathHistorical
)

func (p Path) String() string {
	if p == PathHistorical {
		return "historical"
	}
	return "compact"
}

// Engine routes offset queries between a rule registry and a historical
// store. It is safe for concurrent use.
type Engine struct {
	reg   *registry.Registry
	store *historical.Store
}

type options struct {
	reg    *registry.Registry
	store  *historical.Store
	loader historical.Loader
	source historical.Source
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithRegistry replaces the embedded rule registry.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) { o.reg = r }
}

// WithStore uses an existing historical store, for example one shared with
// a metrics collector. It takes precedence over WithLoader and WithSource.
func WithStore(s *historical.Store) Option {
	return func(o *options) { o.store = s }
}

// WithLoader builds the engine's store over l.
func WithLoader(l historical.Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithSource builds the engine's store over compressed frames from src.
func WithSource(src historical.Source) Option {
	return func(o *options) { o.source = src }
}

// WithLogger sets the logger of a store the engine builds.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewEngine returns an engine over the embedded data unless options say
// otherwise.
func NewEngine(opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.reg == nil {
		o.reg = registry.Default()
	}
	if o.store == nil {
		loader := o.loader
		if loader == nil && o.source != nil {
			loader = historical.NewLoader(o.source)
		}
		switch {
		case loader != nil:
			o.store = historical.NewStore(loader, historical.WithLogger(o.logger))
		case o.logger != nil:
			o.store = historical.NewStore(historical.EmbeddedLoader(), historical.WithLogger(o.logger))
		default:
			o.store = historical.Default()
		}
	}
	return &Engine{reg: o.reg, store: o.store}
}

var (
	defaultOnce sync.Once
	defaultEng  *Engine
)

func defaultEngine() *Engine {
	defaultOnce.Do(func() { defaultEng = NewEngine() })
	return defaultEng
}

// Store returns the engine's historical store.
func (e *Engine) Store() *historical.Store {
	return e.store
}

// Route reports which tier answers tz at ts.
func (e *Engine) Route(tz Tz, ts int64) Path {
	if e.reg.Get(tz.ID()).Covers(ts) {
		return PathCompact
	}
	return PathHistorical
}

// OffsetAt returns the offset of tz at ts in minutes. The only possible error
// is a failed historical load, which wraps ErrCorruptEmbeddedData.
func (e *Engine) OffsetAt(tz Tz, ts int64) (int16, error) {
	id := tz.ID()
	rs := e.reg.Get(id)
	if rs.Covers(ts) {
		return rs.Offset(ts), nil
	}
	return e.store.Lookup(id, ts)
}
