package rentals

import (
	"time"

	"bookrent-backend/internal/platform/memdb"
)

// 貸出登録リクエスト
type CreateRentalRequest struct {
	BookID   string `json:"book_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	PeriodID string `json:"period_id" binding:"required"`
}

type RentalResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

type PeriodResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Duration   int     `json:"duration"`
	Multiplier float64 `json:"multiplier"`
}

// Quote is one rental option for a book with its display price.
type Quote struct {
	PeriodID string  `json:"period_id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

func toRentalResponse(r memdb.Rental) RentalResponse {
	return RentalResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    string(r.Status),
	}
}

func toRentalResponses(rs []memdb.Rental) []RentalResponse {
	out := make([]RentalResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRentalResponse(r))
	}
	return out
}

func toPeriodResponses(ps []memdb.RentalPeriod) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PeriodResponse{ID: p.ID, Name: p.Name, Duration: p.Duration, Multiplier: p.Multiplier})
	}
	return out
}
