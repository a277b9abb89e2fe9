package entities

import (
	"errors"
)

// Common errors
var (
	ErrSlideNotFound     = errors.New("slideshow image not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrDocumentNotFound  = errors.New("content document not found")
	ErrMissingSlideInput = errors.New("slideshow image requires caption and image")
	ErrInvalidClockTime  = errors.New("invalid clock time")
	ErrUnknownDay        = errors.New("unknown weekday name")
)

// StorageKey is the fixed key the content document is persisted under.
const StorageKey = "drkMelmData"

// DayNames are the fixed weekday names, Monday first, as shown on the display.
var DayNames = [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

// UrgentMessage is a facility-wide announcement. When Active is false the
// remaining fields are ignored by selection but kept in storage.
type UrgentMessage struct {
	Active      bool   `json:"active"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	ImageURL    string `json:"imageUrl"`
	ActiveUntil string `json:"activeUntil"` // "HH:MM", same-day cutoff
}

// Meal is a named feeding window. StartTime <= EndTime within a single day,
// no overnight wraparound.
type Meal struct {
	Name      string    `json:"name"`
	StartTime ClockTime `json:"startTime"`
	EndTime   ClockTime `json:"endTime"`
	ImageURL  string    `json:"imageUrl"`
}

// SlideshowImage is one slide, owned by SlideshowData.Images.
type SlideshowImage struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// SlideshowData configures the slideshow. Time validity follows the same
// ActiveUntil rule as UrgentMessage.
type SlideshowData struct {
	Active      bool             `json:"active"`
	ActiveUntil string           `json:"activeUntil"`
	Images      []SlideshowImage `json:"images"`
}

// Event is one scheduled activity on a single day. A day holds at most one
// effective event; the list shape is kept for storage compatibility.
type Event struct {
	ID       string `json:"id"`
	Time     string `json:"time"` // "HH:MM"
	Title    string `json:"title"`
	Location string `json:"location"`
}

// DaySchedule is one weekday's entry.
type DaySchedule struct {
	Day    string  `json:"day"`
	Events []Event `json:"events"`
}

// WeeklySchedule maps ISO calendar week numbers (string keys) to a fixed
// 7-day list, Monday..Sunday. An absent key means an all-empty week.
type WeeklySchedule map[string][]DaySchedule

// AppData is the aggregate content document, the single persisted unit.
type AppData struct {
	UrgentMessage  UrgentMessage  `json:"urgentMessage"`
	Meals          []Meal         `json:"meals"`
	Slideshow      SlideshowData  `json:"slideshow"`
	WeeklySchedule WeeklySchedule `json:"weeklySchedule"`
	Quotes         []string       `json:"quotes"`
	Locations      []string       `json:"locations"`
}

// WeatherType classifies the current conditions for the display background.
type WeatherType string

const (
	WeatherSunny  WeatherType = "sunny"
	WeatherRainy  WeatherType = "rainy"
	WeatherCloudy WeatherType = "cloudy"
	WeatherStormy WeatherType = "stormy"
)

// ForecastDay is one day of the weather outlook.
type ForecastDay struct {
	Day     string      `json:"day"`
	Type    WeatherType `json:"type"`
	MaxTemp float64     `json:"maxTemp"`
}

// WeatherData is the snapshot supplied by the weather collaborator.
type WeatherData struct {
	Type        WeatherType   `json:"type"`
	Temperature float64       `json:"temperature"`
	Forecast    []ForecastDay `json:"forecast"`
}

// DefaultDocument returns the built-in content document used on first run and
// as the fallback shape when persisted data is missing or malformed.
func DefaultDocument() AppData {
	return AppData{
		UrgentMessage: UrgentMessage{
			Active:      false,
			Title:       "",
			Text:        "",
			ImageURL:    "",
			ActiveUntil: "23:59",
		},
		Meals: []Meal{
			{
				Name:      "Frühstück",
				StartTime: ClockTime{Hour: 7, Minute: 30},
				EndTime:   ClockTime{Hour: 9, Minute: 30},
				ImageURL:  "/assets/meals/fruehstueck.jpg",
			},
			{
				Name:      "Mittagessen",
				StartTime: ClockTime{Hour: 11, Minute: 30},
				EndTime:   ClockTime{Hour: 13, Minute: 30},
				ImageURL:  "/assets/meals/mittagessen.jpg",
			},
			{
				Name:      "Abendessen",
				StartTime: ClockTime{Hour: 17, Minute: 30},
				EndTime:   ClockTime{Hour: 19, Minute: 0},
				ImageURL:  "/assets/meals/abendessen.jpg",
			},
		},
		Slideshow: SlideshowData{
			Active:      false,
			ActiveUntil: "20:00",
			Images:      []SlideshowImage{},
		},
		WeeklySchedule: WeeklySchedule{},
		Quotes: []string{
			"Jeder Tag ist eine neue Chance.",
			"Gemeinsam sind wir stark.",
			"Ein Lächeln ist die kürzeste Verbindung zwischen zwei Menschen.",
		},
		Locations: []string{
			"Speisesaal",
			"Gemeinschaftsraum",
			"Garten",
			"Kreativraum",
		},
	}
}

// Clone returns a deep copy of the document so readers never alias the
// authoritative state.
func (d AppData) Clone() AppData {
	out := d

	out.Meals = append([]Meal(nil), d.Meals...)
	out.Quotes = append([]string(nil), d.Quotes...)
	out.Locations = append([]string(nil), d.Locations...)
	out.Slideshow.Images = append([]SlideshowImage(nil), d.Slideshow.Images...)

	out.WeeklySchedule = make(WeeklySchedule, len(d.WeeklySchedule))
	for week, days := range d.WeeklySchedule {
		copied := make([]DaySchedule, len(days))
		for i, day := range days {
			copied[i] = DaySchedule{
				Day:    day.Day,
				Events: append([]Event(nil), day.Events...),
			}
		}
		out.WeeklySchedule[week] = copied
	}

	return out
}
