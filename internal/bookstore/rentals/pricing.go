package rentals

import (
	"math"

	"bookrent-backend/internal/platform/memdb"
)

// PriceForPeriod is book.Price × period.Multiplier rounded to kopecks.
// Display only, the rental itself stores no price.
func PriceForPeriod(b memdb.Book, p memdb.RentalPeriod) float64 {
	return math.Round(b.Price*p.Multiplier*100) / 100
}

func quotesFor(b memdb.Book, periods []memdb.RentalPeriod) []Quote {
	out := make([]Quote, 0, len(periods))
	for _, p := range periods {
		out = append(out, Quote{
			PeriodID: p.ID,
			Name:     p.Name,
			Duration: p.Duration,
			Price:    PriceForPeriod(b, p),
		})
	}
	return out
}
