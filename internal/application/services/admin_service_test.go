package services

import (
	"context"
	"errors"
	"testing"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

func newAdminFixture() (*AdminService, *ContentService) {
	content := NewContentService(&mockContentRepo{}, logger.NewNop())
	content.Load(context.Background())
	return NewAdminService(content, logger.NewNop()), content
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestDeactivatingUrgentMessagePreservesFields(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	admin.UpdateUrgentMessage(ctx, ports.UpdateUrgentMessageRequest{
		Active:      boolPtr(true),
		Title:       strPtr("Feuerübung"),
		Text:        strPtr("Heute um 15 Uhr."),
		ActiveUntil: strPtr("16:00"),
	})
	admin.UpdateUrgentMessage(ctx, ports.UpdateUrgentMessageRequest{
		Active: boolPtr(false),
	})

	msg := content.Snapshot().UrgentMessage
	if msg.Active {
		t.Error("message should be deactivated")
	}
	if msg.Title != "Feuerübung" || msg.Text != "Heute um 15 Uhr." || msg.ActiveUntil != "16:00" {
		t.Errorf("deactivation cleared fields: %+v", msg)
	}
}

func TestAddDeleteSlideInverse(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	before := content.Snapshot().Slideshow.Images
	if len(before) != 0 {
		t.Fatalf("fixture should start without slides, has %d", len(before))
	}

	slide, err := admin.AddSlide(ctx, ports.AddSlideRequest{
		Caption:  "Sommerfest",
		ImageURL: "data:image/png;base64,aGFsbG8=",
	})
	if err != nil {
		t.Fatalf("add slide: %v", err)
	}
	if slide.ID == "" {
		t.Fatal("added slide must get a fresh id")
	}

	images := content.Snapshot().Slideshow.Images
	if len(images) != 1 || images[0].Caption != "Sommerfest" {
		t.Fatalf("images after add = %+v", images)
	}

	admin.DeleteSlide(ctx, slide.ID)
	if images := content.Snapshot().Slideshow.Images; len(images) != 0 {
		t.Errorf("images after delete = %+v, want empty", images)
	}
}

func TestAddSlideRequiresCaptionAndImage(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	cases := []ports.AddSlideRequest{
		{Caption: "", ImageURL: "data:image/png;base64,x"},
		{Caption: "   ", ImageURL: "data:image/png;base64,x"},
		{Caption: "Ohne Bild", ImageURL: ""},
	}

	for _, req := range cases {
		if _, err := admin.AddSlide(ctx, req); !errors.Is(err, entities.ErrMissingSlideInput) {
			t.Errorf("AddSlide(%+v): err = %v, want ErrMissingSlideInput", req, err)
		}
	}

	if images := content.Snapshot().Slideshow.Images; len(images) != 0 {
		t.Errorf("rejected adds must not touch the document, images = %+v", images)
	}
}

func TestDeleteSlideUnknownIDIsNoop(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	admin.AddSlide(ctx, ports.AddSlideRequest{Caption: "A", ImageURL: "data:;base64,"})
	admin.DeleteSlide(ctx, "does-not-exist")

	if images := content.Snapshot().Slideshow.Images; len(images) != 1 {
		t.Errorf("unknown id delete changed the list: %+v", images)
	}
}

func TestUpsertEventMaterializesWeek(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	event, err := admin.UpsertEvent(ctx, 27, "Mittwoch", ports.UpsertEventRequest{
		Time:     "14:30",
		Title:    "Bingo",
		Location: "Speisesaal",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if event.ID == "" {
		t.Fatal("created event must get a fresh id")
	}

	days, ok := content.Snapshot().WeeklySchedule[entities.WeekKey(27)]
	if !ok {
		t.Fatal("week 27 should be materialized")
	}
	if len(days) != 7 {
		t.Fatalf("materialized week has %d days, want 7", len(days))
	}
	for i, day := range days {
		want := 0
		if day.Day == "Mittwoch" {
			want = 1
		}
		if len(day.Events) != want {
			t.Errorf("day %d (%s) has %d events, want %d", i, day.Day, len(day.Events), want)
		}
	}
}

func TestUpsertEventEditKeepsID(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	created, err := admin.UpsertEvent(ctx, 5, "Montag", ports.UpsertEventRequest{
		Time: "10:00", Title: "Gymnastik", Location: "Garten",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited, err := admin.UpsertEvent(ctx, 5, "Montag", ports.UpsertEventRequest{
		ID: created.ID, Time: "10:30", Title: "Gymnastik", Location: "Garten",
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.ID != created.ID {
		t.Errorf("edit changed the id: %s -> %s", created.ID, edited.ID)
	}

	day := entities.DayScheduleAt(content.Snapshot(), 5, 0)
	if len(day.Events) != 1 || day.Events[0].Time != "10:30" {
		t.Errorf("day after edit = %+v, want the single edited event", day.Events)
	}
}

func TestUpsertEventUnknownDay(t *testing.T) {
	admin, _ := newAdminFixture()

	_, err := admin.UpsertEvent(context.Background(), 5, "Caturday", ports.UpsertEventRequest{
		Time: "10:00", Title: "x", Location: "y",
	})
	if !errors.Is(err, entities.ErrUnknownDay) {
		t.Errorf("err = %v, want ErrUnknownDay", err)
	}
}

func TestDeleteEventClearsDay(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	if _, err := admin.UpsertEvent(ctx, 8, "Freitag", ports.UpsertEventRequest{
		Time: "19:00", Title: "Filmabend", Location: "Gemeinschaftsraum",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := admin.DeleteEvent(ctx, 8, "Freitag"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	day := entities.DayScheduleAt(content.Snapshot(), 8, 4)
	if len(day.Events) != 0 {
		t.Errorf("Freitag still has events after delete: %+v", day.Events)
	}
}

func TestSetQuotesAndLocations(t *testing.T) {
	admin, content := newAdminFixture()
	ctx := context.Background()

	admin.SetQuotes(ctx, []string{"nur eins"})
	admin.SetLocations(ctx, []string{"Terrasse"})

	doc := content.Snapshot()
	if len(doc.Quotes) != 1 || doc.Quotes[0] != "nur eins" {
		t.Errorf("quotes = %v", doc.Quotes)
	}
	if len(doc.Locations) != 1 || doc.Locations[0] != "Terrasse" {
		t.Errorf("locations = %v", doc.Locations)
	}
}
