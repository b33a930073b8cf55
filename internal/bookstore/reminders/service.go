package reminders

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"bookrent-backend/internal/platform/memdb"
)

const (
	MinDaysBefore = 1
	MaxDaysBefore = 30
)

type Service struct {
	store *memdb.Store
	log   *slog.Logger
}

func NewService(store *memdb.Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

func (s *Service) Settings(ctx context.Context) memdb.ReminderSettings {
	return s.store.GetReminderSettings()
}

// UpdateSettings merges the patch as given. Range checks are the caller's job.
func (s *Service) UpdateSettings(ctx context.Context, p memdb.ReminderPatch) memdb.ReminderSettings {
	r := s.store.UpdateReminderSettings(p)
	s.log.DebugContext(ctx, "reminders: settings updated", "enabled", r.Enabled, "days_before", r.DaysBefore)
	return r
}

// Due は now から DaysBefore 日以内に終了する active な貸出を終了日順で返す。
// 既に期限切れのものと、リマインダー無効時は何も返さない
func (s *Service) Due(ctx context.Context, now time.Time) []memdb.Rental {
	settings := s.store.GetReminderSettings()
	if !settings.Enabled {
		return []memdb.Rental{}
	}
	horizon := now.AddDate(0, 0, settings.DaysBefore)

	out := []memdb.Rental{}
	for _, r := range s.store.AllRentals() {
		if r.Status != memdb.RentalActive {
			continue
		}
		if r.EndDate.Before(now) || r.EndDate.After(horizon) {
			continue
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b memdb.Rental) int { return a.EndDate.Compare(b.EndDate) })
	s.log.DebugContext(ctx, "reminders: due", "count", len(out), "days_before", settings.DaysBefore)
	return out
}

// Preview renders the current email template for one rental. Nothing is sent.
func (s *Service) Preview(ctx context.Context, r memdb.Rental, now time.Time) (string, error) {
	data := MessageData{
		UserID:   r.UserID,
		BookID:   r.BookID,
		EndDate:  r.EndDate.Format("02.01.2006"),
		DaysLeft: daysLeft(r.EndDate, now),
	}
	if b, ok := s.store.GetBook(r.BookID); ok {
		data.BookTitle = b.Title
	}
	return render(s.store.GetReminderSettings().EmailTemplate, data)
}

// Now is the clock used for due-date checks.
func (s *Service) Now() time.Time { return s.store.Now() }
