package books

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrent-backend/internal/platform/memdb"
)

func newTestService(t *testing.T) (*Service, *memdb.Store) {
	t.Helper()
	store := memdb.New(
		memdb.WithLatency(memdb.NoLatency),
		memdb.WithIDGen(memdb.NewSeqGen("")),
		memdb.WithBooks(memdb.SeedBooks()...),
	)
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestServicePassesThroughStore(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, store.ListBooks(), svc.ListBooks(ctx))

	b := svc.AddBook(ctx, memdb.BookFields{Title: "Обломов", Author: "Иван Гончаров", Category: "Классика", PublicationYear: 1859, Price: 300, RentType: memdb.RentTypeRent})
	got, ok := svc.GetBook(ctx, b.ID)
	require.True(t, ok)
	assert.Equal(t, b, got)

	year := 1860
	upd, ok := svc.UpdateBook(ctx, b.ID, memdb.BookPatch{PublicationYear: &year})
	require.True(t, ok)
	assert.Equal(t, 1860, upd.PublicationYear)
	assert.Equal(t, "Обломов", upd.Title)

	assert.True(t, svc.DeleteBook(ctx, b.ID))
	assert.False(t, svc.DeleteBook(ctx, b.ID))
	_, ok = svc.GetBook(ctx, b.ID)
	assert.False(t, ok)
}

func TestServiceDistinctLists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.ElementsMatch(t, []string{"Антиутопия", "Роман", "Классика", "Фэнтези"}, svc.Categories(ctx))
	assert.Len(t, svc.Authors(ctx), 5)
	assert.Equal(t, []int{1997, 1967, 1949, 1869, 1866}, svc.Years(ctx))
}

func TestServiceFilterBooks(t *testing.T) {
	svc, _ := newTestService(t)
	got := svc.FilterBooks(context.Background(), CriterionYear, "1949")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Len(t, svc.FilterBooks(context.Background(), "", ""), 5)
}

func TestServiceOptions(t *testing.T) {
	svc, _ := newTestService(t)
	opts := svc.Options(context.Background())

	assert.Equal(t, []string{"Антиутопия", "Классика", "Роман", "Фэнтези"}, opts.Categories)
	assert.Equal(t, []int{1997, 1967, 1949, 1869, 1866}, opts.Years)
	require.Len(t, opts.Authors, 5)
	tolstoy := slices.Index(opts.Authors, "Лев Толстой")
	bulgakov := slices.Index(opts.Authors, "Михаил Булгаков")
	dostoevsky := slices.Index(opts.Authors, "Фёдор Достоевский")
	assert.True(t, tolstoy < bulgakov && bulgakov < dostoevsky, opts.Authors)
}

func TestServiceOptionsEmptyCatalog(t *testing.T) {
	store := memdb.New(memdb.WithLatency(memdb.NoLatency))
	svc := NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	opts := svc.Options(context.Background())
	assert.NotNil(t, opts.Categories)
	assert.Empty(t, opts.Categories)
	assert.Empty(t, opts.Authors)
	assert.Empty(t, opts.Years)
}
