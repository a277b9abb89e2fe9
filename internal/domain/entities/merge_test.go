package entities

import (
	"encoding/json"
	"testing"
)

func assertFullyShaped(t *testing.T, doc AppData) {
	t.Helper()
	if doc.Meals == nil {
		t.Error("meals must never be nil after reconciliation")
	}
	if doc.Slideshow.Images == nil {
		t.Error("slideshow images must never be nil after reconciliation")
	}
	if doc.WeeklySchedule == nil {
		t.Error("weekly schedule must never be nil after reconciliation")
	}
	if doc.Quotes == nil {
		t.Error("quotes must never be nil after reconciliation")
	}
	if doc.Locations == nil {
		t.Error("locations must never be nil after reconciliation")
	}
}

func TestReconcileMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty object", raw: `{}`},
		{name: "null fields", raw: `{"urgentMessage":null,"meals":null,"slideshow":null,"weeklySchedule":null,"quotes":null,"locations":null}`},
		{name: "wrong types", raw: `{"urgentMessage":5,"meals":"nope","slideshow":[],"weeklySchedule":[1,2],"quotes":{},"locations":42}`},
		{name: "images wrong type", raw: `{"slideshow":{"active":true,"images":"nope"}}`},
		{name: "nested garbage", raw: `{"weeklySchedule":{"12":[{"day":"Montag","events":null}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ReconcileDocument([]byte(tc.raw))
			if err != nil {
				t.Fatalf("payload parses as JSON, reconcile should not fail: %v", err)
			}
			assertFullyShaped(t, doc)
		})
	}
}

func TestReconcileUnparsablePayload(t *testing.T) {
	doc, err := ReconcileDocument([]byte("not json at all"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	assertFullyShaped(t, doc)

	defaults := DefaultDocument()
	if len(doc.Meals) != len(defaults.Meals) {
		t.Errorf("unparsable payload should fall back to the default document")
	}
}

func TestReconcilePartialUrgentMessage(t *testing.T) {
	raw := `{"urgentMessage":{"active":true,"title":"Feueralarm"}}`

	doc, err := ReconcileDocument([]byte(raw))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if !doc.UrgentMessage.Active {
		t.Error("stored active flag should survive the merge")
	}
	if doc.UrgentMessage.Title != "Feueralarm" {
		t.Errorf("title = %q, want Feueralarm", doc.UrgentMessage.Title)
	}
	if doc.UrgentMessage.ActiveUntil != DefaultDocument().UrgentMessage.ActiveUntil {
		t.Error("missing activeUntil should fall back to the default")
	}
}

func TestReconcileKeepsWellFormedFields(t *testing.T) {
	stored := DefaultDocument()
	stored.Quotes = []string{"nur eins"}
	stored.Slideshow.Images = []SlideshowImage{{ID: "a", URL: "data:image/png;base64,x", Caption: "Sommerfest"}}
	stored.WeeklySchedule = WeeklySchedule{
		"24": []DaySchedule{{Day: "Montag", Events: []Event{{ID: "e1", Time: "14:00", Title: "Bingo", Location: "Speisesaal"}}}},
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	doc, err := ReconcileDocument(raw)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(doc.Quotes) != 1 || doc.Quotes[0] != "nur eins" {
		t.Errorf("quotes = %v, want the stored list", doc.Quotes)
	}
	if len(doc.Slideshow.Images) != 1 || doc.Slideshow.Images[0].Caption != "Sommerfest" {
		t.Errorf("images = %v, want the stored slide", doc.Slideshow.Images)
	}
	if _, ok := doc.WeeklySchedule["24"]; !ok {
		t.Error("stored week 24 should survive the merge")
	}
}

func TestReconcileRoundTripStable(t *testing.T) {
	first, err := ReconcileDocument([]byte(`{"quotes":["a"],"slideshow":{"active":true,"activeUntil":"18:00","images":[]}}`))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	raw1, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	second, err := ReconcileDocument(raw1)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}

	raw2, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("second marshal: %v", err)
	}

	if string(raw1) != string(raw2) {
		t.Errorf("reconcile is not idempotent:\n%s\n%s", raw1, raw2)
	}
}
