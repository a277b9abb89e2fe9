package entities

import (
	"time"
)

// FocusKind tags which content won the focus slot.
type FocusKind string

const (
	FocusUrgent    FocusKind = "urgent"
	FocusMeal      FocusKind = "meal"
	FocusSlideshow FocusKind = "slideshow"
	FocusFallback  FocusKind = "fallback"
)

// FocusContent is the selection result: exactly one payload field is set,
// matching Kind. Fallback carries no payload (static menu view).
type FocusContent struct {
	Kind      FocusKind      `json:"kind"`
	Urgent    *UrgentMessage `json:"urgent,omitempty"`
	Meal      *Meal          `json:"meal,omitempty"`
	Slideshow *SlideshowData `json:"slideshow,omitempty"`
}

// focusRule is one entry of the ordered selection policy. It returns the
// chosen content, or nil to pass to the next rule.
type focusRule func(doc *AppData, now time.Time) *FocusContent

// focusRules is the fixed priority order. The urgent message always wins:
// it carries safety and operational communication.
var focusRules = []focusRule{
	urgentMessageRule,
	currentMealRule,
	slideshowRule,
}

// SelectFocus picks the single piece of content to display at now. The rules
// are evaluated top to bottom, first match wins, falling through to the
// static menu view.
func SelectFocus(doc AppData, now time.Time) FocusContent {
	for _, rule := range focusRules {
		if content := rule(&doc, now); content != nil {
			return *content
		}
	}
	return FocusContent{Kind: FocusFallback}
}

func urgentMessageRule(doc *AppData, now time.Time) *FocusContent {
	if doc.UrgentMessage.Active && TimeValid(doc.UrgentMessage.ActiveUntil, now) {
		msg := doc.UrgentMessage
		return &FocusContent{Kind: FocusUrgent, Urgent: &msg}
	}
	return nil
}

// currentMealRule picks the first meal whose window contains now. Windows are
// assumed non-overlapping by configuration, not enforced.
func currentMealRule(doc *AppData, now time.Time) *FocusContent {
	for _, meal := range doc.Meals {
		if meal.Contains(now) {
			m := meal
			return &FocusContent{Kind: FocusMeal, Meal: &m}
		}
	}
	return nil
}

func slideshowRule(doc *AppData, now time.Time) *FocusContent {
	if doc.Slideshow.Active && TimeValid(doc.Slideshow.ActiveUntil, now) {
		show := doc.Slideshow
		show.Images = append([]SlideshowImage(nil), doc.Slideshow.Images...)
		return &FocusContent{Kind: FocusSlideshow, Slideshow: &show}
	}
	return nil
}
