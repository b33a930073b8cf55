package memdb

import "slices"

func (s *Store) ListRentalPeriods() []RentalPeriod {
	var out []RentalPeriod
	s.read(s.latency.Meta, func() {
		out = slices.Clone(s.periods)
	})
	return out
}

func (s *Store) GetRentalPeriod(id string) (RentalPeriod, bool) {
	var (
		p  RentalPeriod
		ok bool
	)
	s.read(s.latency.Meta, func() {
		if i := s.periodIndex(id); i >= 0 {
			p, ok = s.periods[i], true
		}
	})
	return p, ok
}

// CreateRental は期間IDが存在しない場合のみ (Rental{}, false) を返す。
// 書籍の存在・在庫チェックは行わない（呼び出し側の責務）
func (s *Store) CreateRental(bookID, userID, periodID string) (Rental, bool) {
	var (
		r  Rental
		ok bool
	)
	s.write(s.latency.Write, func() {
		i := s.periodIndex(periodID)
		if i < 0 {
			return
		}
		start := s.clock.Now()
		r = Rental{
			ID:        s.freshID(s.rentalTaken),
			BookID:    bookID,
			UserID:    userID,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, s.periods[i].Duration),
			Status:    RentalActive,
		}
		s.rentals = append(s.rentals, r)
		ok = true
	})
	if ok {
		s.log.Info("rental created", "rental_id", r.ID, "book_id", bookID, "user_id", userID, "period_id", periodID)
	} else {
		s.log.Debug("rental period not found", "period_id", periodID)
	}
	return r, ok
}

// ListRentals returns the rentals of one user in creation order.
func (s *Store) ListRentals(userID string) []Rental {
	out := []Rental{}
	s.read(s.latency.List, func() {
		for _, r := range s.rentals {
			if r.UserID == userID {
				out = append(out, r)
			}
		}
	})
	return out
}

// AllRentals returns every rental regardless of user.
func (s *Store) AllRentals() []Rental {
	var out []Rental
	s.read(s.latency.List, func() {
		out = slices.Clone(s.rentals)
	})
	return out
}

func (s *Store) periodIndex(id string) int {
	return slices.IndexFunc(s.periods, func(p RentalPeriod) bool { return p.ID == id })
}

func (s *Store) rentalTaken(id string) bool {
	return slices.ContainsFunc(s.rentals, func(r Rental) bool { return r.ID == id })
}
