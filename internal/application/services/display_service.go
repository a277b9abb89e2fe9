package services

import (
	"time"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
)

// TodayView is the resolved schedule for the current day.
type TodayView struct {
	CalendarWeek int                  `json:"calendarWeek"`
	DayIndex     int                  `json:"dayIndex"`
	Day          entities.DaySchedule `json:"day"`
	FirstEvent   *entities.Event      `json:"firstEvent,omitempty"`
}

// WeekView is the resolved schedule for the current calendar week.
type WeekView struct {
	CalendarWeek int                    `json:"calendarWeek"`
	Days         []entities.DaySchedule `json:"days"`
}

// DisplayService answers the read-only queries of the kiosk view. It never
// mutates the document.
type DisplayService struct {
	content *ContentService
	logger  *logger.Logger
}

// NewDisplayService creates a new display service
func NewDisplayService(content *ContentService, logger *logger.Logger) *DisplayService {
	return &DisplayService{
		content: content,
		logger:  logger,
	}
}

// Content returns the full document snapshot for the kiosk.
func (s *DisplayService) Content() entities.AppData {
	return s.content.Snapshot()
}

// Focus picks the single piece of content to display at now.
func (s *DisplayService) Focus(now time.Time) entities.FocusContent {
	return entities.SelectFocus(s.content.Snapshot(), now)
}

// Today resolves the current calendar week's day entry and its first event.
func (s *DisplayService) Today(now time.Time) TodayView {
	doc := s.content.Snapshot()
	week := entities.CalendarWeek(now)
	dayIndex := entities.DayIndex(now)

	day := entities.DayScheduleAt(doc, week, dayIndex)
	view := TodayView{
		CalendarWeek: week,
		DayIndex:     dayIndex,
		Day:          day,
	}
	if event, ok := entities.FirstEvent(day); ok {
		view.FirstEvent = &event
	}

	return view
}

// Week resolves the full current calendar week.
func (s *DisplayService) Week(now time.Time) WeekView {
	doc := s.content.Snapshot()
	week := entities.CalendarWeek(now)

	days := entities.WeekScheduleFor(doc, week)
	if len(days) < len(entities.DayNames) {
		// Stored weeks may be shorter than 7 entries; resolve the missing
		// days to empty ones so the kiosk always renders a full week.
		full := entities.EmptyWeek()
		for i := range full {
			for _, day := range days {
				if day.Day == full[i].Day {
					full[i] = day
					break
				}
			}
		}
		days = full
	}

	return WeekView{CalendarWeek: week, Days: days}
}

// Quote rotates through the configured quotes, one per day.
func (s *DisplayService) Quote(now time.Time) string {
	doc := s.content.Snapshot()
	if len(doc.Quotes) == 0 {
		return ""
	}
	return doc.Quotes[now.YearDay()%len(doc.Quotes)]
}
