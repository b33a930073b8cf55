package favorites

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"bookrent-backend/internal/platform/memdb"
)

type Service struct {
	store *memdb.Store
	log   *slog.Logger
}

func NewService(store *memdb.Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// AddFavorite は冪等。既存なら既存レコードを返す
func (s *Service) AddFavorite(ctx context.Context, userID, bookID string) memdb.FavoriteBook {
	f := s.store.AddFavorite(userID, bookID)
	s.log.DebugContext(ctx, "favorites: add", "user_id", userID, "book_id", bookID, "favorite_id", f.ID)
	return f
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, bookID string) bool {
	ok := s.store.RemoveFavorite(userID, bookID)
	s.log.DebugContext(ctx, "favorites: remove", "user_id", userID, "book_id", bookID, "found", ok)
	return ok
}

func (s *Service) Favorites(ctx context.Context, userID string) []memdb.FavoriteBook {
	return s.store.ListFavorites(userID)
}

func (s *Service) IsFavorite(ctx context.Context, userID, bookID string) bool {
	return s.store.IsFavorite(userID, bookID)
}

func (s *Service) FavoriteBookIDs(ctx context.Context, userID string) []string {
	return s.store.ListFavoriteIDs(userID)
}

// Toggle adds the book when absent and removes it when present, reporting
// the resulting state. The check and the write are two store operations.
func (s *Service) Toggle(ctx context.Context, userID, bookID string) bool {
	if s.store.IsFavorite(userID, bookID) {
		s.RemoveFavorite(ctx, userID, bookID)
		return false
	}
	s.AddFavorite(ctx, userID, bookID)
	return true
}

// FavoriteBooks はお気に入りを書籍データと突き合わせて返す（お気に入り順）。
// カタログから消えた本はスキップ
func (s *Service) FavoriteBooks(ctx context.Context, userID string) []memdb.Book {
	var (
		catalog []memdb.Book
		ids     []string
		g       errgroup.Group
	)
	g.Go(func() error {
		catalog = s.store.ListBooks()
		return nil
	})
	g.Go(func() error {
		ids = s.store.ListFavoriteIDs(userID)
		return nil
	})
	_ = g.Wait() // store reads never fail

	byID := make(map[string]memdb.Book, len(catalog))
	for _, b := range catalog {
		byID[b.ID] = b
	}
	out := make([]memdb.Book, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			s.log.DebugContext(ctx, "favorites: dangling book id", "user_id", userID, "book_id", id)
			continue
		}
		out = append(out, b)
	}
	return out
}
