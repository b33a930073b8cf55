package books

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"bookrent-backend/internal/platform/memdb"
)

// Service は書籍まわりのファサード。Store の結果をそのまま返す
type Service struct {
	store *memdb.Store
	log   *slog.Logger
	lang  language.Tag
}

func NewService(store *memdb.Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log, lang: language.Russian}
}

func (s *Service) ListBooks(ctx context.Context) []memdb.Book {
	return s.store.ListBooks()
}

func (s *Service) GetBook(ctx context.Context, id string) (memdb.Book, bool) {
	return s.store.GetBook(id)
}

func (s *Service) AddBook(ctx context.Context, f memdb.BookFields) memdb.Book {
	b := s.store.CreateBook(f)
	s.log.DebugContext(ctx, "books: added", "book_id", b.ID)
	return b
}

func (s *Service) UpdateBook(ctx context.Context, id string, p memdb.BookPatch) (memdb.Book, bool) {
	b, ok := s.store.UpdateBook(id, p)
	s.log.DebugContext(ctx, "books: update", "book_id", id, "found", ok)
	return b, ok
}

func (s *Service) DeleteBook(ctx context.Context, id string) bool {
	ok := s.store.DeleteBook(id)
	s.log.DebugContext(ctx, "books: delete", "book_id", id, "found", ok)
	return ok
}

func (s *Service) Categories(ctx context.Context) []string {
	return s.store.DistinctCategories()
}

func (s *Service) Authors(ctx context.Context) []string {
	return s.store.DistinctAuthors()
}

func (s *Service) Years(ctx context.Context) []int {
	return s.store.DistinctYears()
}

// FilterBooks lists the catalog and applies Filter.
func (s *Service) FilterBooks(ctx context.Context, criterion Criterion, value string) []memdb.Book {
	return Filter(s.store.ListBooks(), criterion, value)
}

// Options collects the three filter option lists concurrently. Categories
// and authors come back in collation order, years newest first.
func (s *Service) Options(ctx context.Context) FilterOptions {
	var (
		opts FilterOptions
		g    errgroup.Group
	)
	g.Go(func() error {
		opts.Categories = SortLabels(s.store.DistinctCategories(), s.lang)
		return nil
	})
	g.Go(func() error {
		opts.Authors = SortLabels(s.store.DistinctAuthors(), s.lang)
		return nil
	})
	g.Go(func() error {
		opts.Years = s.store.DistinctYears()
		return nil
	})
	_ = g.Wait() // store reads never fail
	return opts
}
