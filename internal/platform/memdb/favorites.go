package memdb

import "slices"

// AddFavorite is idempotent: an existing (userID, bookID) pair is returned unchanged.
func (s *Store) AddFavorite(userID, bookID string) FavoriteBook {
	var (
		f       FavoriteBook
		created bool
	)
	s.write(s.latency.Write, func() {
		if i := s.favoriteIndex(userID, bookID); i >= 0 {
			f = s.favorites[i]
			return
		}
		f = FavoriteBook{
			ID:      s.freshID(s.favoriteTaken),
			UserID:  userID,
			BookID:  bookID,
			AddedAt: s.clock.Now(),
		}
		s.favorites = append(s.favorites, f)
		created = true
	})
	if created {
		s.log.Info("favorite added", "user_id", userID, "book_id", bookID)
	}
	return f
}

func (s *Store) RemoveFavorite(userID, bookID string) bool {
	var ok bool
	s.write(s.latency.Write, func() {
		i := s.favoriteIndex(userID, bookID)
		if i < 0 {
			return
		}
		s.favorites = slices.Delete(s.favorites, i, i+1)
		ok = true
	})
	if ok {
		s.log.Info("favorite removed", "user_id", userID, "book_id", bookID)
	}
	return ok
}

func (s *Store) ListFavorites(userID string) []FavoriteBook {
	out := []FavoriteBook{}
	s.read(s.latency.Lookup, func() {
		for _, f := range s.favorites {
			if f.UserID == userID {
				out = append(out, f)
			}
		}
	})
	return out
}

func (s *Store) IsFavorite(userID, bookID string) bool {
	var ok bool
	s.read(s.latency.Meta, func() {
		ok = s.favoriteIndex(userID, bookID) >= 0
	})
	return ok
}

// ListFavoriteIDs returns the book ids a user has marked.
func (s *Store) ListFavoriteIDs(userID string) []string {
	out := []string{}
	s.read(s.latency.Lookup, func() {
		for _, f := range s.favorites {
			if f.UserID == userID {
				out = append(out, f.BookID)
			}
		}
	})
	return out
}

func (s *Store) favoriteIndex(userID, bookID string) int {
	return slices.IndexFunc(s.favorites, func(f FavoriteBook) bool {
		return f.UserID == userID && f.BookID == bookID
	})
}

func (s *Store) favoriteTaken(id string) bool {
	return slices.ContainsFunc(s.favorites, func(f FavoriteBook) bool { return f.ID == id })
}
