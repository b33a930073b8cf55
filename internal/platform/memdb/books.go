package memdb

import (
	"slices"
)

// ListBooks returns a copy of the catalog; mutating it does not touch the store.
func (s *Store) ListBooks() []Book {
	var out []Book
	s.read(s.latency.List, func() {
		out = slices.Clone(s.books)
	})
	return out
}

func (s *Store) GetBook(id string) (Book, bool) {
	var (
		b  Book
		ok bool
	)
	s.read(s.latency.Lookup, func() {
		if i := s.bookIndex(id); i >= 0 {
			b, ok = s.books[i], true
		}
	})
	return b, ok
}

func (s *Store) CreateBook(f BookFields) Book {
	var b Book
	s.write(s.latency.Write, func() {
		id := s.freshID(func(id string) bool { return s.bookIndex(id) >= 0 })
		b = f.withID(id)
		s.books = append(s.books, b)
	})
	s.log.Info("book created", "book_id", b.ID, "title", b.Title)
	return b
}

// UpdateBook は patch の非 nil フィールドだけを上書きする
func (s *Store) UpdateBook(id string, p BookPatch) (Book, bool) {
	var (
		b  Book
		ok bool
	)
	s.write(s.latency.Write, func() {
		i := s.bookIndex(id)
		if i < 0 {
			return
		}
		s.books[i] = p.apply(s.books[i])
		b, ok = s.books[i], true
	})
	if ok {
		s.log.Info("book updated", "book_id", id)
	}
	return b, ok
}

// DeleteBook removes the book only; favorites and rentals pointing at it stay.
func (s *Store) DeleteBook(id string) bool {
	var ok bool
	s.write(s.latency.Write, func() {
		i := s.bookIndex(id)
		if i < 0 {
			return
		}
		s.books = slices.Delete(s.books, i, i+1)
		ok = true
	})
	if ok {
		s.log.Info("book deleted", "book_id", id)
	}
	return ok
}

func (s *Store) DistinctCategories() []string {
	var out []string
	s.read(s.latency.Meta, func() {
		out = distinct(s.books, func(b Book) string { return b.Category })
	})
	return out
}

func (s *Store) DistinctAuthors() []string {
	var out []string
	s.read(s.latency.Meta, func() {
		out = distinct(s.books, func(b Book) string { return b.Author })
	})
	return out
}

// DistinctYears returns each publication year once, newest first.
func (s *Store) DistinctYears() []int {
	var out []int
	s.read(s.latency.Meta, func() {
		out = distinct(s.books, func(b Book) int { return b.PublicationYear })
	})
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

func (s *Store) bookIndex(id string) int {
	return slices.IndexFunc(s.books, func(b Book) bool { return b.ID == id })
}

// distinct keeps the first occurrence of every key.
func distinct[K comparable](books []Book, key func(Book) K) []K {
	seen := make(map[K]struct{}, len(books))
	out := make([]K, 0, len(books))
	for _, b := range books {
		k := key(b)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
