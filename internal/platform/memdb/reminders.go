package memdb

func (s *Store) GetReminderSettings() ReminderSettings {
	var r ReminderSettings
	s.read(s.latency.Meta, func() {
		r = s.reminders
	})
	return r
}

// UpdateReminderSettings merges p over the current settings. DaysBefore is
// stored as given, range checks belong to the caller.
func (s *Store) UpdateReminderSettings(p ReminderPatch) ReminderSettings {
	var r ReminderSettings
	s.write(s.latency.Write, func() {
		s.reminders = p.apply(s.reminders)
		r = s.reminders
	})
	s.log.Info("reminder settings updated", "enabled", r.Enabled, "days_before", r.DaysBefore)
	return r
}
