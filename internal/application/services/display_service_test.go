package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

func newDisplayFixture() (*DisplayService, *ContentService) {
	content := NewContentService(&mockContentRepo{}, logger.NewNop())
	content.Load(context.Background())
	return NewDisplayService(content, logger.NewNop()), content
}

func TestTodayResolvesAbsentWeekToEmptyDay(t *testing.T) {
	display, _ := newDisplayFixture()

	// 2024-03-13 is a Wednesday in ISO week 11.
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	view := display.Today(now)

	if view.CalendarWeek != 11 || view.DayIndex != 2 {
		t.Errorf("week/day = %d/%d, want 11/2", view.CalendarWeek, view.DayIndex)
	}
	if view.Day.Day != "Mittwoch" || len(view.Day.Events) != 0 {
		t.Errorf("day = %+v, want empty Mittwoch", view.Day)
	}
	if view.FirstEvent != nil {
		t.Error("empty day must have no first event")
	}
}

func TestTodayPicksFirstEvent(t *testing.T) {
	display, content := newDisplayFixture()
	admin := NewAdminService(content, logger.NewNop())

	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	if _, err := admin.UpsertEvent(context.Background(), entities.CalendarWeek(now), "Mittwoch", ports.UpsertEventRequest{
		Time: "15:00", Title: "Kaffeerunde", Location: "Speisesaal",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	view := display.Today(now)
	if view.FirstEvent == nil || view.FirstEvent.Title != "Kaffeerunde" {
		t.Errorf("first event = %+v", view.FirstEvent)
	}
}

func TestWeekAlwaysSevenDays(t *testing.T) {
	display, content := newDisplayFixture()
	now := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)

	// Store a short week to exercise the fill-up path.
	content.Update(context.Background(), func(doc *entities.AppData) {
		doc.WeeklySchedule[entities.WeekKey(11)] = []entities.DaySchedule{
			{Day: "Dienstag", Events: []entities.Event{{ID: "e", Title: "Chor"}}},
		}
	})

	view := display.Week(now)
	if len(view.Days) != 7 {
		t.Fatalf("week has %d days, want 7", len(view.Days))
	}
	if view.Days[1].Day != "Dienstag" || len(view.Days[1].Events) != 1 {
		t.Errorf("stored Dienstag lost: %+v", view.Days[1])
	}
	if len(view.Days[0].Events) != 0 {
		t.Errorf("missing days should resolve empty: %+v", view.Days[0])
	}
}

func TestQuoteRotation(t *testing.T) {
	display, content := newDisplayFixture()
	content.Update(context.Background(), func(doc *entities.AppData) {
		doc.Quotes = []string{"eins", "zwei"}
	})

	day1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	if display.Quote(day1) == display.Quote(day2) {
		t.Error("consecutive days should rotate through the quotes")
	}

	content.Update(context.Background(), func(doc *entities.AppData) {
		doc.Quotes = nil
	})
	if q := display.Quote(day1); q != "" {
		t.Errorf("no quotes configured, got %q", q)
	}
}

type mockWeatherProvider struct {
	snapshot entities.WeatherData
	err      error
	calls    int
}

func (m *mockWeatherProvider) Current(ctx context.Context) (entities.WeatherData, error) {
	m.calls++
	return m.snapshot, m.err
}

func TestWeatherCachesSnapshot(t *testing.T) {
	provider := &mockWeatherProvider{snapshot: entities.WeatherData{Type: entities.WeatherSunny, Temperature: 24}}
	svc := NewWeatherService(provider, time.Minute, logger.NewNop())

	first := svc.Current(context.Background())
	second := svc.Current(context.Background())

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want the cache to absorb the second read", provider.calls)
	}
	if first.Type != entities.WeatherSunny || second.Type != entities.WeatherSunny {
		t.Errorf("snapshots = %+v / %+v", first, second)
	}
}

func TestWeatherFailureServesDefault(t *testing.T) {
	provider := &mockWeatherProvider{err: errors.New("upstream down")}
	svc := NewWeatherService(provider, time.Minute, logger.NewNop())

	got := svc.Current(context.Background())
	if got.Type != entities.WeatherCloudy {
		t.Errorf("fallback snapshot = %+v, want the neutral default", got)
	}
}
