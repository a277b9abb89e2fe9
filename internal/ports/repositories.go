package ports

import (
	"context"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
)

// ContentRepository defines persistence for the raw content document. The
// document is one JSON payload under a fixed storage key; shaping and
// defensive merging happen above this interface.
type ContentRepository interface {
	// Load returns the raw persisted document, or
	// entities.ErrDocumentNotFound when nothing was stored yet.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
}

// WeatherProvider supplies the current weather snapshot for the display
// background. How the snapshot is acquired is the provider's concern.
type WeatherProvider interface {
	Current(ctx context.Context) (entities.WeatherData, error)
}
