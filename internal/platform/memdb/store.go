// Package memdb is the in-memory record store behind the bookstore services.
//
// It owns five collections (books, rental periods, rentals, reminder
// settings and favorites). Every operation first waits a simulated network
// latency, then reads or commits under the store mutex, so a single
// operation is atomic with respect to every other one. Operations cannot
// fail: a missing record is reported through a bool.
package memdb

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// ===== インターフェース群 =====

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// Latency は操作種別ごとの擬似遅延
type Latency struct {
	List   time.Duration // full collection reads
	Lookup time.Duration // single record reads
	Write  time.Duration // create / update / delete
	Meta   time.Duration // derived lists and reference data
}

// DefaultLatency approximates the round trips of a remote catalog backend.
var DefaultLatency = Latency{
	List:   500 * time.Millisecond,
	Lookup: 300 * time.Millisecond,
	Write:  300 * time.Millisecond,
	Meta:   200 * time.Millisecond,
}

// NoLatency disables the simulated delay.
var NoLatency = Latency{}

// ===== Store本体 =====

type Store struct {
	mu        sync.RWMutex
	books     []Book
	periods   []RentalPeriod
	rentals   []Rental
	reminders ReminderSettings
	favorites []FavoriteBook

	clock   Clock
	ids     IDGen
	latency Latency
	sleep   func(time.Duration)
	log     *slog.Logger
}

type Option func(*Store)

func WithClock(c Clock) Option { return func(s *Store) { s.clock = c } }

func WithIDGen(g IDGen) Option { return func(s *Store) { s.ids = g } }

func WithLatency(l Latency) Option { return func(s *Store) { s.latency = l } }

// WithSleeper replaces time.Sleep for the simulated latency.
func WithSleeper(fn func(time.Duration)) Option { return func(s *Store) { s.sleep = fn } }

func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.log = l } }

// WithBooks seeds the catalog. Seeded ids are kept as given.
func WithBooks(books ...Book) Option {
	return func(s *Store) { s.books = append(s.books, books...) }
}

// WithRentalPeriods replaces the default rental period reference data.
func WithRentalPeriods(periods ...RentalPeriod) Option {
	return func(s *Store) { s.periods = append([]RentalPeriod(nil), periods...) }
}

// WithReminderSettings replaces the initial reminder settings.
func WithReminderSettings(r ReminderSettings) Option {
	return func(s *Store) { s.reminders = r }
}

// New builds a store with the default rental periods and reminder settings
// and an empty catalog unless WithBooks is given.
func New(opts ...Option) *Store {
	s := &Store{
		periods:   DefaultRentalPeriods(),
		reminders: DefaultReminderSettings(),
		clock:     realClock{},
		ids:       NewULIDGen(),
		latency:   DefaultLatency,
		sleep:     time.Sleep,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now is the store clock, the same one that stamps rentals and favorites.
func (s *Store) Now() time.Time { return s.clock.Now() }

// ===== 内部ヘルパー =====

func (s *Store) pause(d time.Duration) {
	if d > 0 {
		s.sleep(d)
	}
}

// read は遅延を待ってから読み取りロック下で fn を実行する
func (s *Store) read(d time.Duration, fn func()) {
	s.pause(d)
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// write は遅延を待ってから書き込みロック下で fn を実行する。
// fn の中で計算とコレクションへの反映をまとめて行うこと
func (s *Store) write(d time.Duration, fn func()) {
	s.pause(d)
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// freshID returns a generated id not yet taken. Must be called under the write lock.
func (s *Store) freshID(taken func(id string) bool) string {
	for {
		id := s.ids.New()
		if !taken(id) {
			return id
		}
	}
}
