// Package historical keeps the recorded offset history of each zone in a
// compressed blob and decompresses a zone's table the first time a query
// needs it. Tables stay resident for the life of the process.
package historical

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/catalog"
)

// Loader materializes the transition table of a zone.
type Loader interface {
	Load(id catalog.ID) (Table, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(id catalog.ID) (Table, error)

func (f LoaderFunc) Load(id catalog.ID) (Table, error) {
	return f(id)
}

type decompressingLoader struct {
	src Source
}

// NewLoader returns a Loader that decompresses frames read from src.
func NewLoader(src Source) Loader {
	return decompressingLoader{src: src}
}

func (l decompressingLoader) Load(id catalog.ID) (Table, error) {
	frame, err := l.src.CompressedBytesFor(id)
	if err != nil {
		return nil, err
	}
	t, err := Decompress(frame)
	if err != nil {
		return nil, errors.WithMessagef(err, "zone %s", id)
	}
	return t, nil
}

// State is the load state of a zone's table.
type State int32

const (
	Absent State = iota
	Loading
	Resident
	Failed
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Loading:
		return "loading"
	case Resident:
		return "resident"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type slot struct {
	once  sync.Once
	state atomic.Int32
	table Table
	err   error
}

// Stats counts load activity of a Store.
type Stats struct {
	Loads    int64 // completed loads, successful or not
	Failures int64
	Resident int64
}

// Store caches one table per zone. A zone is loaded at most once; callers
// racing on a first load wait for it, and loads of different zones do not
// wait on each other.
type Store struct {
	loader Loader
	logger *slog.Logger
	slots  []slot

	loads    atomic.Int64
	failures atomic.Int64
	resident atomic.Int64
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for load events, logged at debug level.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns a store with one slot per catalog zone.
func NewStore(loader Loader, opts ...StoreOption) *Store {
	s := &Store{
		loader: loader,
		logger: slog.Default(),
		slots:  make([]slot, catalog.Len()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// EmbeddedLoader returns a Loader over the embedded blob. A blob that fails
// to parse fails every load.
func EmbeddedLoader() Loader {
	return LoaderFunc(func(id catalog.ID) (Table, error) {
		src, err := Embedded()
		if err != nil {
			return nil, err
		}
		return NewLoader(src).Load(id)
	})
}

// Default returns the process wide store over the embedded blob.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore(EmbeddedLoader())
	})
	return defaultStore
}

// Table returns the zone's table, loading it on first use. A failed load is
// remembered and returned to every later caller.
func (s *Store) Table(id catalog.ID) (Table, error) {
	if int(id) >= len(s.slots) {
		return nil, errors.Wrapf(ErrCorruptEmbeddedData, "no historical slot for zone id %d", id)
	}
	sl := &s.slots[id]
	sl.once.Do(func() { s.load(id, sl) })
	return sl.table, sl.err
}

func (s *Store) load(id catalog.ID, sl *slot) {
	sl.state.Store(int32(Loading))
	start := time.Now()
	s.logger.Debug("loading historical table", "zone", id.String())

	t, err := s.loader.Load(id)
	if err == nil && len(t) == 0 {
		err = errors.Wrapf(ErrCorruptEmbeddedData, "zone %s has an empty table", id)
	}
	s.loads.Add(1)
	if err != nil {
		sl.err = err
		sl.state.Store(int32(Failed))
		s.failures.Add(1)
		s.logger.Debug("historical table failed to load", "zone", id.String(), "error", err)
		return
	}
	sl.table = t
	sl.state.Store(int32(Resident))
	s.resident.Add(1)
	s.logger.Debug("historical table resident", "zone", id.String(),
		"transitions", len(t), "elapsed", time.Since(start))
}

// Lookup returns the recorded offset of zone id at ts, in minutes.
func (s *Store) Lookup(id catalog.ID, ts int64) (int16, error) {
	t, err := s.Table(id)
	if err != nil {
		return 0, err
	}
	return t.Lookup(ts), nil
}

// State reports the load state of zone id.
func (s *Store) State(id catalog.ID) State {
	if int(id) >= len(s.slots) {
		return Absent
	}
	return State(s.slots[id].state.Load())
}

// Stats returns a snapshot of the load counters.
func (s *Store) Stats() Stats {
	return Stats{
		Loads:    s.loads.Load(),
		Failures: s.failures.Load(),
		Resident: s.resident.Load(),
	}
}
