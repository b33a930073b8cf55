package memdb

import "time"

type RentType string

const (
	RentTypePurchase RentType = "purchase"
	RentTypeRent     RentType = "rent"
)

// RentalStatus は3種類あるが、現状 active 以外は生成されない
type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalExpired  RentalStatus = "expired"
	RentalReturned RentalStatus = "returned"
)

// Book は books コレクションの1件
type Book struct {
	ID              string
	Title           string
	Author          string
	Category        string
	PublicationYear int
	Price           float64
	Available       bool
	RentType        RentType
	ImageURL        string
}

// BookFields is a Book without its id, as supplied on creation.
type BookFields struct {
	Title           string
	Author          string
	Category        string
	PublicationYear int
	Price           float64
	Available       bool
	RentType        RentType
	ImageURL        string
}

// BookPatch は部分更新用。nil のフィールドは既存値を保持する
type BookPatch struct {
	Title           *string
	Author          *string
	Category        *string
	PublicationYear *int
	Price           *float64
	Available       *bool
	RentType        *RentType
	ImageURL        *string
}

type RentalPeriod struct {
	ID         string
	Name       string
	Duration   int // days
	Multiplier float64
}

type Rental struct {
	ID        string
	BookID    string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Status    RentalStatus
}

type ReminderSettings struct {
	Enabled       bool
	DaysBefore    int
	EmailTemplate string
}

type ReminderPatch struct {
	Enabled       *bool
	DaysBefore    *int
	EmailTemplate *string
}

type FavoriteBook struct {
	ID      string
	UserID  string
	BookID  string
	AddedAt time.Time
}

func (f BookFields) withID(id string) Book {
	return Book{
		ID:              id,
		Title:           f.Title,
		Author:          f.Author,
		Category:        f.Category,
		PublicationYear: f.PublicationYear,
		Price:           f.Price,
		Available:       f.Available,
		RentType:        f.RentType,
		ImageURL:        f.ImageURL,
	}
}

func (p BookPatch) apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.PublicationYear != nil {
		b.PublicationYear = *p.PublicationYear
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Available != nil {
		b.Available = *p.Available
	}
	if p.RentType != nil {
		b.RentType = *p.RentType
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	return b
}

func (p ReminderPatch) apply(r ReminderSettings) ReminderSettings {
	if p.Enabled != nil {
		r.Enabled = *p.Enabled
	}
	if p.DaysBefore != nil {
		r.DaysBefore = *p.DaysBefore
	}
	if p.EmailTemplate != nil {
		r.EmailTemplate = *p.EmailTemplate
	}
	return r
}
