package models

// ScheduleRule is a recurring template defining when and how many bookings
// are allowed. Absent numeric fields decode to zero.
type ScheduleRule struct {
	DaysFromNow      int      `bson:"days_from_now" json:"days_from_now"`         // offset from today of the window start
	ScheduleDuration int      `bson:"schedule_duration" json:"schedule_duration"` // window length in days; the last day is inclusive
	Capacity         int      `bson:"capacity" json:"capacity"`                   // bookings allowed per generated slot
	TimeFrom         string   `bson:"time_from" json:"time_from"`
	TimeTo           string   `bson:"time_to" json:"time_to"`
	WeekDays         []string `bson:"week_days" json:"week_days"` // e.g. ["Mon", "Wed"]
}

// MatchesWeekDay reports whether day (a "Mon"-style abbreviation) is one of
// the rule's week days. The comparison is exact.
func (r ScheduleRule) MatchesWeekDay(day string) bool {
	for _, d := range r.WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// AvailabilitySlot is a computed, never persisted, open window on one date.
type AvailabilitySlot struct {
	Date           string `json:"Date"`
	WeekDay        string `json:"Week_Day"`
	Slots          string `json:"Slots"` // "<time_from> - <time_to>"
	Capacity       int    `json:"Capacity"`
	OccupiedSlots  int    `json:"Occupied_Slots"`
	RemainingSlots int    `json:"Remaining_Slots"`
}
