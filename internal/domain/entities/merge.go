package entities

import (
	"encoding/json"
)

// ReconcileDocument merges a raw persisted payload against the default
// document. Every top-level field falls back independently to its default when
// missing or of the wrong shape, so the result is always fully populated. The
// returned error reports an unparsable payload; the document is usable either
// way.
func ReconcileDocument(raw []byte) (AppData, error) {
	doc := DefaultDocument()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return doc, err
	}

	if r, ok := fields["urgentMessage"]; ok {
		// Unmarshalling onto the default value keeps defaults for any
		// missing subfield.
		msg := doc.UrgentMessage
		if err := json.Unmarshal(r, &msg); err == nil {
			doc.UrgentMessage = msg
		}
	}

	if r, ok := fields["meals"]; ok {
		var meals []Meal
		if err := json.Unmarshal(r, &meals); err == nil && meals != nil {
			doc.Meals = meals
		}
	}

	if r, ok := fields["slideshow"]; ok {
		var aux struct {
			Active      *bool           `json:"active"`
			ActiveUntil *string         `json:"activeUntil"`
			Images      json.RawMessage `json:"images"`
		}
		if err := json.Unmarshal(r, &aux); err == nil {
			if aux.Active != nil {
				doc.Slideshow.Active = *aux.Active
			}
			if aux.ActiveUntil != nil {
				doc.Slideshow.ActiveUntil = *aux.ActiveUntil
			}
			var images []SlideshowImage
			if len(aux.Images) > 0 {
				if err := json.Unmarshal(aux.Images, &images); err == nil && images != nil {
					doc.Slideshow.Images = images
				}
			}
		}
	}

	if r, ok := fields["weeklySchedule"]; ok {
		var schedule WeeklySchedule
		if err := json.Unmarshal(r, &schedule); err == nil && schedule != nil {
			doc.WeeklySchedule = schedule
		}
	}

	if r, ok := fields["quotes"]; ok {
		var quotes []string
		if err := json.Unmarshal(r, &quotes); err == nil && quotes != nil {
			doc.Quotes = quotes
		}
	}

	if r, ok := fields["locations"]; ok {
		var locations []string
		if err := json.Unmarshal(r, &locations); err == nil && locations != nil {
			doc.Locations = locations
		}
	}

	normalize(&doc)
	return doc, nil
}

// normalize replaces nil leaf slices so no part of the document is ever
// absent after a load.
func normalize(doc *AppData) {
	if doc.Slideshow.Images == nil {
		doc.Slideshow.Images = []SlideshowImage{}
	}
	for week, days := range doc.WeeklySchedule {
		for i := range days {
			if days[i].Events == nil {
				days[i].Events = []Event{}
			}
		}
		doc.WeeklySchedule[week] = days
	}
}
