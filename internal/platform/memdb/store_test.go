package memdb_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrent-backend/internal/platform/memdb"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func newSeeded(opts ...memdb.Option) *memdb.Store {
	base := []memdb.Option{
		memdb.WithLatency(memdb.NoLatency),
		memdb.WithClock(fixedClock{testNow}),
		memdb.WithIDGen(memdb.NewSeqGen("")),
		memdb.WithBooks(memdb.SeedBooks()...),
	}
	return memdb.New(append(base, opts...)...)
}

func newEmpty() *memdb.Store {
	return memdb.New(
		memdb.WithLatency(memdb.NoLatency),
		memdb.WithClock(fixedClock{testNow}),
		memdb.WithIDGen(memdb.NewSeqGen("id-")),
	)
}

func TestLatencyIsWaitedPerOperationClass(t *testing.T) {
	var (
		mu    sync.Mutex
		slept []time.Duration
	)
	lat := memdb.Latency{List: 5 * time.Millisecond, Lookup: 3 * time.Millisecond, Write: 4 * time.Millisecond, Meta: 2 * time.Millisecond}
	s := memdb.New(
		memdb.WithLatency(lat),
		memdb.WithSleeper(func(d time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			slept = append(slept, d)
		}),
	)

	s.ListBooks()
	s.GetBook("x")
	s.CreateBook(memdb.BookFields{Title: "t"})
	s.DistinctCategories()

	assert.Equal(t, []time.Duration{lat.List, lat.Lookup, lat.Write, lat.Meta}, slept)
}

func TestNoLatencySkipsSleep(t *testing.T) {
	called := false
	s := memdb.New(
		memdb.WithLatency(memdb.NoLatency),
		memdb.WithSleeper(func(time.Duration) { called = true }),
	)
	s.ListBooks()
	s.GetReminderSettings()
	assert.False(t, called)
}

func TestNewHasReferenceDataButNoBooks(t *testing.T) {
	s := newEmpty()
	assert.Empty(t, s.ListBooks())
	assert.Len(t, s.ListRentalPeriods(), 3)
	assert.Equal(t, memdb.DefaultReminderSettings(), s.GetReminderSettings())
}

func TestConcurrentWritesAreAtomic(t *testing.T) {
	s := memdb.New(
		memdb.WithLatency(memdb.Latency{Write: time.Millisecond}),
		memdb.WithIDGen(memdb.NewSeqGen("")),
	)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddFavorite("u1", "b1")
			s.CreateBook(memdb.BookFields{Title: "t"})
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"b1"}, s.ListFavoriteIDs("u1"))
	books := s.ListBooks()
	require.Len(t, books, 50)
	ids := map[string]bool{}
	for _, b := range books {
		ids[b.ID] = true
	}
	assert.Len(t, ids, 50)
}

func TestIDGenerators(t *testing.T) {
	seq := memdb.NewSeqGen("r-")
	assert.Equal(t, "r-1", seq.New())
	assert.Equal(t, "r-2", seq.New())

	u := memdb.NewULIDGen()
	a, b := u.New(), u.New()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)

	assert.Len(t, memdb.UUIDGen{}.New(), 36)

	for _, scheme := range []string{"", "ulid", "uuid", "seq"} {
		g, err := memdb.NewIDGen(scheme)
		require.NoError(t, err, scheme)
		assert.NotEmpty(t, g.New())
	}
	_, err := memdb.NewIDGen("snowflake")
	assert.Error(t, err)
}

func TestNowUsesInjectedClock(t *testing.T) {
	s := newEmpty()
	assert.Equal(t, testNow, s.Now())
	assert.Equal(t, time.UTC, memdb.New().Now().Location())
}
