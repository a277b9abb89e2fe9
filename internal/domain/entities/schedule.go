package entities

import (
	"strconv"
)

// WeekKey converts a calendar week number to its storage key.
func WeekKey(week int) string {
	return strconv.Itoa(week)
}

// EmptyWeek builds the fixed 7-day skeleton, Monday..Sunday, with no events.
func EmptyWeek() []DaySchedule {
	days := make([]DaySchedule, len(DayNames))
	for i, name := range DayNames {
		days[i] = DaySchedule{Day: name, Events: []Event{}}
	}
	return days
}

// WeekScheduleFor resolves a calendar week from the document. An absent week
// key yields an all-empty week, never an error.
func WeekScheduleFor(doc AppData, week int) []DaySchedule {
	if days, ok := doc.WeeklySchedule[WeekKey(week)]; ok {
		return days
	}
	return EmptyWeek()
}

// DayScheduleAt resolves one day of a calendar week by Monday-based index.
// Missing week or day entries yield an empty named day.
func DayScheduleAt(doc AppData, week, dayIndex int) DaySchedule {
	if dayIndex < 0 || dayIndex >= len(DayNames) {
		return DaySchedule{Day: "", Events: []Event{}}
	}

	name := DayNames[dayIndex]
	for _, day := range WeekScheduleFor(doc, week) {
		if day.Day == name {
			if day.Events == nil {
				day.Events = []Event{}
			}
			return day
		}
	}
	return DaySchedule{Day: name, Events: []Event{}}
}

// FirstEvent returns the earliest-listed event of a day. Days conceptually
// hold at most one event, but longer lists are tolerated.
func FirstEvent(day DaySchedule) (Event, bool) {
	if len(day.Events) == 0 {
		return Event{}, false
	}
	return day.Events[0], true
}

// MaterializeWeek ensures the week key holds a full 7-day skeleton before a
// mutation targets it. Stored days are preserved; a short stored week is
// padded to seven named days.
func MaterializeWeek(doc *AppData, week int) []DaySchedule {
	key := WeekKey(week)
	if doc.WeeklySchedule == nil {
		doc.WeeklySchedule = WeeklySchedule{}
	}

	if days, ok := doc.WeeklySchedule[key]; ok {
		if len(days) >= len(DayNames) {
			return days
		}
		full := EmptyWeek()
		for i := range full {
			for _, day := range days {
				if day.Day == full[i].Day {
					full[i] = day
					break
				}
			}
		}
		doc.WeeklySchedule[key] = full
		return full
	}

	days := EmptyWeek()
	doc.WeeklySchedule[key] = days
	return days
}
