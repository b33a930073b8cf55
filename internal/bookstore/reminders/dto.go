package reminders

import (
	"time"

	"bookrent-backend/internal/platform/memdb"
)

type SettingsResponse struct {
	Enabled       bool   `json:"enabled"`
	DaysBefore    int    `json:"days_before"`
	EmailTemplate string `json:"email_template"`
}

// 部分更新。指定されたフィールドのみ反映
type UpdateSettingsRequest struct {
	Enabled       *bool   `json:"enabled"`
	DaysBefore    *int    `json:"days_before"`
	EmailTemplate *string `json:"email_template"`
}

type DueResponse struct {
	RentalID string    `json:"rental_id"`
	BookID   string    `json:"book_id"`
	UserID   string    `json:"user_id"`
	EndDate  time.Time `json:"end_date"`
	DaysLeft int       `json:"days_left"`
	Message  string    `json:"message"`
}

func toSettingsResponse(r memdb.ReminderSettings) SettingsResponse {
	return SettingsResponse{Enabled: r.Enabled, DaysBefore: r.DaysBefore, EmailTemplate: r.EmailTemplate}
}

// toPatch clamps days_before into [MinDaysBefore, MaxDaysBefore].
func (req UpdateSettingsRequest) toPatch() memdb.ReminderPatch {
	p := memdb.ReminderPatch{Enabled: req.Enabled, EmailTemplate: req.EmailTemplate}
	if req.DaysBefore != nil {
		d := min(max(*req.DaysBefore, MinDaysBefore), MaxDaysBefore)
		p.DaysBefore = &d
	}
	return p
}
