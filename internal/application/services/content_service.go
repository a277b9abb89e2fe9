package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// ContentService owns the authoritative in-memory content document. All
// mutations funnel through Update, which persists best-effort after every
// change; persistence failures are logged and never affect in-memory state.
type ContentService struct {
	repo   ports.ContentRepository
	logger *logger.Logger

	mu        sync.RWMutex
	doc       entities.AppData
	listeners []func(entities.AppData)
}

// NewContentService creates a new content service seeded with the default
// document. Call Load to hydrate from storage.
func NewContentService(repo ports.ContentRepository, logger *logger.Logger) *ContentService {
	return &ContentService{
		repo:   repo,
		logger: logger,
		doc:    entities.DefaultDocument(),
	}
}

// Load hydrates the document from the repository. Missing or malformed
// storage falls back to defaults; the failure is logged and non-fatal.
func (s *ContentService) Load(ctx context.Context) entities.AppData {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrDocumentNotFound) {
			s.logger.Info("No stored content document, starting from defaults")
		} else {
			s.logger.Warnw("Could not read stored content document, using defaults", "error", err)
		}
		s.setDocument(entities.DefaultDocument())
		return s.Snapshot()
	}

	doc, err := entities.ReconcileDocument(raw)
	if err != nil {
		s.logger.Warnw("Stored content document is unparsable, using defaults", "error", err)
	}
	s.setDocument(doc)
	return s.Snapshot()
}

// Snapshot returns a deep copy of the current document.
func (s *ContentService) Snapshot() entities.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update applies the mutator to the document, persists the result and
// notifies subscribers. Mutations are serialized; each one is followed by
// exactly one write attempt.
func (s *ContentService) Update(ctx context.Context, mutate func(doc *entities.AppData)) entities.AppData {
	s.mu.Lock()
	mutate(&s.doc)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify(snapshot)

	return snapshot
}

// Subscribe registers a listener invoked with a snapshot after every
// mutation. Listeners must not block.
func (s *ContentService) Subscribe(fn func(entities.AppData)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Persist writes the current document, for callers that need an explicit
// flush (first-run seeding, import).
func (s *ContentService) Persist(ctx context.Context) error {
	raw, err := json.Marshal(s.Snapshot())
	if err != nil {
		return err
	}
	return s.repo.Save(ctx, raw)
}

func (s *ContentService) setDocument(doc entities.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

func (s *ContentService) persist(ctx context.Context, snapshot entities.AppData) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Errorw("Could not serialize content document", "error", err)
		return
	}
	if err := s.repo.Save(ctx, raw); err != nil {
		// In-memory state stays authoritative for the session.
		s.logger.Errorw("Could not persist content document", "error", err)
	}
}

func (s *ContentService) notify(snapshot entities.AppData) {
	s.mu.RLock()
	listeners := append(([]func(entities.AppData))(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
