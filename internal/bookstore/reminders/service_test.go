package reminders

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrent-backend/internal/platform/memdb"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

// 2日・14日の2種類の期間で貸出を作れるストア
func newTestService(t *testing.T) (*Service, *memdb.Store) {
	t.Helper()
	store := memdb.New(
		memdb.WithLatency(memdb.NoLatency),
		memdb.WithClock(fixedClock{testNow}),
		memdb.WithIDGen(memdb.NewSeqGen("")),
		memdb.WithBooks(memdb.SeedBooks()...),
		memdb.WithRentalPeriods(
			memdb.RentalPeriod{ID: "short", Name: "2 дня", Duration: 2, Multiplier: 0.1},
			memdb.RentalPeriod{ID: "long", Name: "2 недели", Duration: 14, Multiplier: 0.3},
		),
	)
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, memdb.DefaultReminderSettings(), svc.Settings(ctx))

	off := false
	days := 45
	got := svc.UpdateSettings(ctx, memdb.ReminderPatch{Enabled: &off, DaysBefore: &days})
	assert.False(t, got.Enabled)
	assert.Equal(t, 45, got.DaysBefore, "service stores the value unchecked")
	assert.Equal(t, memdb.DefaultReminderSettings().EmailTemplate, got.EmailTemplate)
	assert.Equal(t, got, svc.Settings(ctx))
}

func TestDue(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	long, ok := store.CreateRental("1", "u1", "long")
	require.True(t, ok)
	short, ok := store.CreateRental("2", "u2", "short")
	require.True(t, ok)

	due := svc.Due(ctx, testNow)
	require.Len(t, due, 1)
	assert.Equal(t, short.ID, due[0].ID)

	// 12日後: long は残り2日、short は期限切れ
	later := testNow.AddDate(0, 0, 12)
	due = svc.Due(ctx, later)
	require.Len(t, due, 1)
	assert.Equal(t, long.ID, due[0].ID)

	days := 14
	svc.UpdateSettings(ctx, memdb.ReminderPatch{DaysBefore: &days})
	due = svc.Due(ctx, testNow)
	require.Len(t, due, 2)
	assert.Equal(t, short.ID, due[0].ID, "ordered by end date")

	off := false
	svc.UpdateSettings(ctx, memdb.ReminderPatch{Enabled: &off})
	assert.Empty(t, svc.Due(ctx, testNow))
	assert.NotNil(t, svc.Due(ctx, testNow))
}

func TestPreview(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	r, ok := store.CreateRental("2", "u1", "short")
	require.True(t, ok)

	msg, err := svc.Preview(ctx, r, testNow)
	require.NoError(t, err)
	assert.Equal(t, memdb.DefaultReminderSettings().EmailTemplate, msg)

	tmpl := "«{{.BookTitle}}» до {{.EndDate}}, осталось {{.DaysLeft}}"
	svc.UpdateSettings(ctx, memdb.ReminderPatch{EmailTemplate: &tmpl})
	msg, err = svc.Preview(ctx, r, testNow)
	require.NoError(t, err)
	assert.Equal(t, "«Мастер и Маргарита» до 12.03.2024, осталось 2", msg)

	bad := "{{.Nope}}"
	svc.UpdateSettings(ctx, memdb.ReminderPatch{EmailTemplate: &bad})
	_, err = svc.Preview(ctx, r, testNow)
	assert.Error(t, err)
}

func TestValidateTemplate(t *testing.T) {
	assert.NoError(t, ValidateTemplate("plain text"))
	assert.NoError(t, ValidateTemplate("{{.UserID}} {{.DaysLeft}}"))
	assert.Error(t, ValidateTemplate("{{.UserID"))
	assert.Error(t, ValidateTemplate("{{.Missing}}"))
}

func TestDaysLeft(t *testing.T) {
	assert.Equal(t, 0, daysLeft(testNow, testNow))
	assert.Equal(t, 0, daysLeft(testNow.Add(-time.Hour), testNow))
	assert.Equal(t, 1, daysLeft(testNow.Add(time.Hour), testNow))
	assert.Equal(t, 3, daysLeft(testNow.AddDate(0, 0, 3), testNow))
}
