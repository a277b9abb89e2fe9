package services

import (
	"context"
	"errors"
	"testing"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
)

type mockContentRepo struct {
	stored  []byte
	loadErr error
	saveErr error
	saves   int
}

func (m *mockContentRepo) Load(ctx context.Context) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.stored == nil {
		return nil, entities.ErrDocumentNotFound
	}
	return m.stored, nil
}

func (m *mockContentRepo) Save(ctx context.Context, raw []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = append([]byte(nil), raw...)
	return nil
}

func newContentService(repo *mockContentRepo) *ContentService {
	return NewContentService(repo, logger.NewNop())
}

func TestLoadMissingDocumentFallsBackToDefaults(t *testing.T) {
	svc := newContentService(&mockContentRepo{})

	doc := svc.Load(context.Background())
	if len(doc.Meals) == 0 {
		t.Error("defaults should carry the seed meals")
	}
	if doc.WeeklySchedule == nil {
		t.Error("defaults must be fully shaped")
	}
}

func TestLoadReadFailureIsNonFatal(t *testing.T) {
	svc := newContentService(&mockContentRepo{loadErr: errors.New("disk on fire")})

	doc := svc.Load(context.Background())
	if len(doc.Meals) == 0 {
		t.Error("read failure should fall back to defaults")
	}
}

func TestLoadGarbageFallsBackToDefaults(t *testing.T) {
	svc := newContentService(&mockContentRepo{stored: []byte("###")})

	doc := svc.Load(context.Background())
	if len(doc.Quotes) == 0 || doc.Slideshow.Images == nil {
		t.Error("garbage payload should fall back to a fully shaped default")
	}
}

func TestUpdatePersistsEveryMutation(t *testing.T) {
	repo := &mockContentRepo{}
	svc := newContentService(repo)
	svc.Load(context.Background())

	svc.Update(context.Background(), func(doc *entities.AppData) {
		doc.Quotes = []string{"neu"}
	})
	svc.Update(context.Background(), func(doc *entities.AppData) {
		doc.Quotes = append(doc.Quotes, "noch eins")
	})

	if repo.saves != 2 {
		t.Errorf("saves = %d, want one write per mutation", repo.saves)
	}

	reloaded := newContentService(repo)
	doc := reloaded.Load(context.Background())
	if len(doc.Quotes) != 2 {
		t.Errorf("reloaded quotes = %v, want both mutations persisted", doc.Quotes)
	}
}

func TestUpdateSurvivesWriteFailure(t *testing.T) {
	repo := &mockContentRepo{saveErr: errors.New("readonly filesystem")}
	svc := newContentService(repo)
	svc.Load(context.Background())

	doc := svc.Update(context.Background(), func(doc *entities.AppData) {
		doc.Quotes = []string{"bleibt"}
	})

	if len(doc.Quotes) != 1 || doc.Quotes[0] != "bleibt" {
		t.Error("in-memory state must stay authoritative when the write fails")
	}
	if got := svc.Snapshot(); len(got.Quotes) != 1 {
		t.Error("snapshot after failed write should reflect the mutation")
	}
}

func TestSaveLoadRoundTripIdempotent(t *testing.T) {
	repo := &mockContentRepo{}
	svc := newContentService(repo)
	svc.Load(context.Background())

	svc.Update(context.Background(), func(doc *entities.AppData) {
		doc.Slideshow.Images = []entities.SlideshowImage{{ID: "s1", URL: "data:;base64,", Caption: "A"}}
	})
	first := append([]byte(nil), repo.stored...)

	reloaded := newContentService(repo)
	reloaded.Load(context.Background())
	if err := reloaded.Persist(context.Background()); err != nil {
		t.Fatalf("persist: %v", err)
	}

	if string(first) != string(repo.stored) {
		t.Errorf("save(load()) changed the stored bytes:\n%s\n%s", first, repo.stored)
	}
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	svc := newContentService(&mockContentRepo{})
	svc.Load(context.Background())

	var seen []entities.AppData
	svc.Subscribe(func(doc entities.AppData) {
		seen = append(seen, doc)
	})

	svc.Update(context.Background(), func(doc *entities.AppData) {
		doc.UrgentMessage.Active = true
	})

	if len(seen) != 1 || !seen[0].UrgentMessage.Active {
		t.Errorf("subscriber notifications = %d, want one with the mutation applied", len(seen))
	}
}

func TestSnapshotDoesNotAliasAuthoritativeState(t *testing.T) {
	svc := newContentService(&mockContentRepo{})
	svc.Load(context.Background())

	snap := svc.Snapshot()
	snap.Meals[0].Name = "verfälscht"
	snap.WeeklySchedule["1"] = []entities.DaySchedule{}

	fresh := svc.Snapshot()
	if fresh.Meals[0].Name == "verfälscht" {
		t.Error("snapshot mutation leaked into the authoritative document")
	}
	if _, ok := fresh.WeeklySchedule["1"]; ok {
		t.Error("snapshot map mutation leaked into the authoritative document")
	}
}
