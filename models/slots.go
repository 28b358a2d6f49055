package models

import "time"

// TimeSlot is a wall-clock window within one day, both ends formatted "HH:MM".
// The zone it is read in depends on who owns it: the user's configured timezone
// when stored, the display timezone when returned from an overlap query.
type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DaySchedule is one user's self-reported availability for a single date.
type DaySchedule struct {
	Date        string     `bson:"date" json:"date"`
	BusyTimes   []TimeSlot `bson:"busy_times" json:"busy_times"`
	FreeTimes   []TimeSlot `bson:"free_times" json:"free_times"`
	IsAvailable bool       `bson:"is_available" json:"is_available"`
}

// EmptyDaySchedule is what a user sees for a date they never filled in.
func EmptyDaySchedule(date string) DaySchedule {
	return DaySchedule{
		Date:        date,
		BusyTimes:   []TimeSlot{},
		FreeTimes:   []TimeSlot{},
		IsAvailable: true,
	}
}

// StoredSchedule is the document shape of the schedules collection. IsAvailable is a
// pointer so that documents written without the flag decode as available.
type StoredSchedule struct {
	Username    string     `bson:"username"`
	Date        string     `bson:"date"`
	BusyTimes   []TimeSlot `bson:"busy_times"`
	FreeTimes   []TimeSlot `bson:"free_times"`
	IsAvailable *bool      `bson:"is_available"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

// DaySchedule converts the stored document into the typed record, applying defaults.
func (s StoredSchedule) DaySchedule() DaySchedule {
	day := EmptyDaySchedule(s.Date)
	if s.BusyTimes != nil {
		day.BusyTimes = s.BusyTimes
	}
	if s.FreeTimes != nil {
		day.FreeTimes = s.FreeTimes
	}
	if s.IsAvailable != nil {
		day.IsAvailable = *s.IsAvailable
	}
	return day
}

// ScheduleUpdateRequest is the body of POST /schedule/.
type ScheduleUpdateRequest struct {
	Date        string     `json:"date" binding:"required"`
	BusyTimes   []TimeSlot `json:"busy_times"`
	FreeTimes   []TimeSlot `json:"free_times"`
	IsAvailable *bool      `json:"is_available"`
}

// DaySchedule applies the same defaults as a stored document.
func (r ScheduleUpdateRequest) DaySchedule() DaySchedule {
	return StoredSchedule{
		Date:        r.Date,
		BusyTimes:   r.BusyTimes,
		FreeTimes:   r.FreeTimes,
		IsAvailable: r.IsAvailable,
	}.DaySchedule()
}

// OverlapResult is the answer to an overlap query. All slots are rendered in the
// requester's timezone and labelled with the requested date.
type OverlapResult struct {
	Date       string     `json:"date"`
	Overlaps   []TimeSlot `json:"overlaps"`
	UserASlots []TimeSlot `json:"user_a_slots"`
	UserBSlots []TimeSlot `json:"user_b_slots"`
}
