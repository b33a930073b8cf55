package favorites

import (
	"time"

	"bookrent-backend/internal/platform/memdb"
)

type FavoriteResponse struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	BookID  string    `json:"book_id"`
	AddedAt time.Time `json:"added_at"`
}

// お気に入りIDの一覧（ハートアイコン表示用）
type FavoriteIDsResponse struct {
	UserID  string   `json:"user_id"`
	BookIDs []string `json:"book_ids"`
}

type ToggleResponse struct {
	BookID   string `json:"book_id"`
	Favorite bool   `json:"favorite"`
}

func toFavoriteResponse(f memdb.FavoriteBook) FavoriteResponse {
	return FavoriteResponse{ID: f.ID, UserID: f.UserID, BookID: f.BookID, AddedAt: f.AddedAt}
}
