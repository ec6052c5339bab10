package historical

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzlist/tzoffset/catalog"
)

func mustID(t *testing.T, name string) catalog.ID {
	t.Helper()
	id, ok := catalog.Resolve(name)
	require.True(t, ok, name)
	return id
}

func TestEmbeddedBlob(t *testing.T) {
	src, err := Embedded()
	require.NoError(t, err)
	require.Equal(t, catalog.Len(), src.Len())

	store := NewStore(NewLoader(src))
	ny := mustID(t, "America/New_York")

	tbl, err := store.Table(ny)
	require.NoError(t, err)
	require.Equal(t, Transition{0, -300}, tbl[0])
	require.Equal(t, Transition{9961200, -240}, tbl[1])

	tests := []struct {
		name string
		at   time.Time
		want int16
	}{
		{"1969 clamps to floor", time.Date(1969, 6, 1, 0, 0, 0, 0, time.UTC), -300},
		{"winter 2006", time.Date(2006, 1, 15, 12, 0, 0, 0, time.UTC), -300},
		{"summer 2006", time.Date(2006, 7, 1, 12, 0, 0, 0, time.UTC), -240},
		{"summer 1975", time.Date(1975, 7, 1, 12, 0, 0, 0, time.UTC), -240},
		// 1974 energy crisis: DST from January 6.
		{"january 1974", time.Date(1974, 1, 20, 12, 0, 0, 0, time.UTC), -240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Lookup(ny, tt.at.Unix())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	monrovia, err := store.Lookup(mustID(t, "Africa/Monrovia"), 0)
	require.NoError(t, err)
	require.Equal(t, int16(-44), monrovia)
}

func TestEveryEmbeddedZoneDecodes(t *testing.T) {
	src, err := Embedded()
	require.NoError(t, err)
	store := NewStore(NewLoader(src))
	for i := 0; i < catalog.Len(); i++ {
		tbl, err := store.Table(catalog.ID(i))
		require.NoError(t, err, catalog.ID(i).String())
		require.Equal(t, int64(0), tbl[0].At, catalog.ID(i).String())
	}
	require.Equal(t, Stats{Loads: int64(catalog.Len()), Resident: int64(catalog.Len())}, store.Stats())
}

type countingLoader struct {
	calls [1 << 16]atomic.Int32
	delay time.Duration
	fail  map[catalog.ID]bool
}

func (l *countingLoader) Load(id catalog.ID) (Table, error) {
	l.calls[id].Add(1)
	time.Sleep(l.delay)
	if l.fail[id] {
		return nil, errors.Wrap(ErrCorruptEmbeddedData, "injected")
	}
	return Table{{0, int16(id)}}, nil
}

func TestStoreLoadsOnce(t *testing.T) {
	loader := &countingLoader{delay: 10 * time.Millisecond}
	store := NewStore(loader)
	id := mustID(t, "Europe/Paris")
	other := mustID(t, "Asia/Tokyo")

	require.Equal(t, Absent, store.State(id))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := id
			if i%2 == 1 {
				target = other
			}
			got, err := store.Lookup(target, 1000)
			assert.NoError(t, err)
			assert.Equal(t, int16(target), got)
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), loader.calls[id].Load())
	require.Equal(t, int32(1), loader.calls[other].Load())
	require.Equal(t, Resident, store.State(id))
	require.Equal(t, Stats{Loads: 2, Resident: 2}, store.Stats())
}

func TestStoreLoadsZonesIndependently(t *testing.T) {
	slow := mustID(t, "Europe/Paris")
	fast := mustID(t, "Asia/Tokyo")
	entered := make(chan struct{})
	release := make(chan struct{})
	store := NewStore(LoaderFunc(func(id catalog.ID) (Table, error) {
		if id == slow {
			close(entered)
			<-release
		}
		return Table{{0, int16(id)}}, nil
	}))

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		_, err := store.Table(slow)
		assert.NoError(t, err)
	}()
	<-entered
	require.Equal(t, Loading, store.State(slow))

	fastDone := make(chan int16)
	go func() {
		got, err := store.Lookup(fast, 0)
		assert.NoError(t, err)
		fastDone <- got
	}()
	select {
	case got := <-fastDone:
		require.Equal(t, int16(fast), got)
	case <-time.After(5 * time.Second):
		t.Fatal("load of Asia/Tokyo waited on Europe/Paris")
	}
	require.Equal(t, Loading, store.State(slow))
	require.Equal(t, Resident, store.State(fast))

	close(release)
	<-slowDone
	require.Equal(t, Resident, store.State(slow))
}

func TestStoreRemembersFailure(t *testing.T) {
	id := mustID(t, "Africa/Casablanca")
	loader := &countingLoader{fail: map[catalog.ID]bool{id: true}}
	store := NewStore(loader)

	for i := 0; i < 3; i++ {
		_, err := store.Lookup(id, 0)
		require.ErrorIs(t, err, ErrCorruptEmbeddedData)
	}
	require.Equal(t, int32(1), loader.calls[id].Load())
	require.Equal(t, Failed, store.State(id))
	require.Equal(t, Stats{Loads: 1, Failures: 1}, store.Stats())
}

func TestStoreRejectsEmptyTables(t *testing.T) {
	store := NewStore(LoaderFunc(func(catalog.ID) (Table, error) { return Table{}, nil }))
	_, err := store.Table(catalog.UTC)
	require.ErrorIs(t, err, ErrCorruptEmbeddedData)
}

func TestStoreUnknownID(t *testing.T) {
	store := NewStore(&countingLoader{})
	_, err := store.Table(catalog.ID(catalog.Len()))
	require.ErrorIs(t, err, ErrCorruptEmbeddedData)
	require.Equal(t, Absent, store.State(catalog.ID(catalog.Len())))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "resident", Resident.String())
	require.Equal(t, "unknown", State(42).String())
}
