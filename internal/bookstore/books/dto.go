package books

import "bookrent-backend/internal/platform/memdb"

// 書籍登録リクエスト
type CreateBookRequest struct {
	Title           string  `json:"title" binding:"required"`
	Author          string  `json:"author" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	PublicationYear int     `json:"publication_year"`
	Price           float64 `json:"price"`
	Availability    bool    `json:"availability"`
	RentType        string  `json:"rent_type" binding:"required,oneof=purchase rent"`
	ImageURL        *string `json:"image_url,omitempty"`
}

// 書籍更新リクエスト（指定されたフィールドのみ更新）
type UpdateBookRequest struct {
	Title           *string  `json:"title,omitempty"`
	Author          *string  `json:"author,omitempty"`
	Category        *string  `json:"category,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Availability    *bool    `json:"availability,omitempty"`
	RentType        *string  `json:"rent_type,omitempty" binding:"omitempty,oneof=purchase rent"`
	ImageURL        *string  `json:"image_url,omitempty"`
}

type BookResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Category        string  `json:"category"`
	PublicationYear int     `json:"publication_year"`
	Price           float64 `json:"price"`
	Availability    bool    `json:"availability"`
	RentType        string  `json:"rent_type"`
	ImageURL        string  `json:"image_url,omitempty"`
}

// フィルタ用の選択肢
type FilterOptions struct {
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
	Years      []int    `json:"years"`
}

func (r CreateBookRequest) toFields() memdb.BookFields {
	f := memdb.BookFields{
		Title:           r.Title,
		Author:          r.Author,
		Category:        r.Category,
		PublicationYear: r.PublicationYear,
		Price:           r.Price,
		Available:       r.Availability,
		RentType:        memdb.RentType(r.RentType),
	}
	if r.ImageURL != nil {
		f.ImageURL = *r.ImageURL
	}
	return f
}

func (r UpdateBookRequest) toPatch() memdb.BookPatch {
	p := memdb.BookPatch{
		Title:           r.Title,
		Author:          r.Author,
		Category:        r.Category,
		PublicationYear: r.PublicationYear,
		Price:           r.Price,
		Available:       r.Availability,
		ImageURL:        r.ImageURL,
	}
	if r.RentType != nil {
		rt := memdb.RentType(*r.RentType)
		p.RentType = &rt
	}
	return p
}

func ToResponse(b memdb.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Category:        b.Category,
		PublicationYear: b.PublicationYear,
		Price:           b.Price,
		Availability:    b.Available,
		RentType:        string(b.RentType),
		ImageURL:        b.ImageURL,
	}
}

func ToResponses(bs []memdb.Book) []BookResponse {
	out := make([]BookResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, ToResponse(b))
	}
	return out
}
