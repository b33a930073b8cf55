package books

import (
	"slices"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bookrent-backend/internal/platform/memdb"
)

type Criterion string

const (
	CriterionCategory Criterion = "category"
	CriterionAuthor   Criterion = "author"
	CriterionYear     Criterion = "year"
)

// Filter keeps the books whose criterion field equals value. Strings compare
// exactly (case-sensitive), years numerically; a year value that is not a
// number matches nothing. An empty criterion, empty value or unknown
// criterion returns books as is.
func Filter(books []memdb.Book, criterion Criterion, value string) []memdb.Book {
	if criterion == "" || value == "" {
		return books
	}

	var match func(memdb.Book) bool
	switch criterion {
	case CriterionCategory:
		match = func(b memdb.Book) bool { return b.Category == value }
	case CriterionAuthor:
		match = func(b memdb.Book) bool { return b.Author == value }
	case CriterionYear:
		year, err := strconv.Atoi(value)
		if err != nil {
			return []memdb.Book{}
		}
		match = func(b memdb.Book) bool { return b.PublicationYear == year }
	default:
		return books
	}

	out := make([]memdb.Book, 0, len(books))
	for _, b := range books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}

// SortLabels は言語ごとの照合順序で並べ替えたコピーを返す（ロシア語の著者名など）
func SortLabels(values []string, tag language.Tag) []string {
	out := slices.Clone(values)
	collate.New(tag).SortStrings(out)
	return out
}
