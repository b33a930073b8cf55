package rentals

import (
	"context"
	"log/slog"

	"bookrent-backend/internal/platform/memdb"
)

// Policy は貸出時の在庫ルール。ゼロ値は「チェックしない・更新しない」
type Policy struct {
	// RequireAvailable refuses (absent result) unknown or unavailable books.
	RequireAvailable bool
	// MarkUnavailable flips the book's availability off after a rental.
	MarkUnavailable bool
}

// ===== Service本体 =====

type Service struct {
	store  *memdb.Store
	log    *slog.Logger
	policy Policy
}

func NewService(store *memdb.Store, log *slog.Logger, policy Policy) *Service {
	return &Service{store: store, log: log, policy: policy}
}

func (s *Service) RentalPeriods(ctx context.Context) []memdb.RentalPeriod {
	return s.store.ListRentalPeriods()
}

// RentBook は期間が見つからなければ (Rental{}, false)。
// Policy が有効な場合は書籍の在庫確認と更新を別操作として順に行う（操作間の整合性は保証しない）
func (s *Service) RentBook(ctx context.Context, bookID, userID, periodID string) (memdb.Rental, bool) {
	if s.policy.RequireAvailable {
		b, ok := s.store.GetBook(bookID)
		if !ok || !b.Available {
			s.log.InfoContext(ctx, "rentals: book not rentable", "book_id", bookID, "found", ok)
			return memdb.Rental{}, false
		}
	}

	r, ok := s.store.CreateRental(bookID, userID, periodID)
	if !ok {
		return memdb.Rental{}, false
	}

	if s.policy.MarkUnavailable {
		off := false
		if _, found := s.store.UpdateBook(bookID, memdb.BookPatch{Available: &off}); !found {
			s.log.WarnContext(ctx, "rentals: rented book missing from catalog", "book_id", bookID, "rental_id", r.ID)
		}
	}
	return r, true
}

// Quotes prices every rental period for a book. Absent when the book is unknown.
func (s *Service) Quotes(ctx context.Context, bookID string) ([]Quote, bool) {
	b, ok := s.store.GetBook(bookID)
	if !ok {
		return nil, false
	}
	return quotesFor(b, s.store.ListRentalPeriods()), true
}

func (s *Service) UserRentals(ctx context.Context, userID string) []memdb.Rental {
	return s.store.ListRentals(userID)
}
