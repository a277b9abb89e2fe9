package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// PostgresContentRepository keeps the content document in a single row keyed
// by the fixed storage key.
type PostgresContentRepository struct {
	db *sqlx.DB
}

// NewPostgresContentRepository creates a new postgres-backed content repository
func NewPostgresContentRepository(db *sqlx.DB) ports.ContentRepository {
	return &PostgresContentRepository{db: db}
}

func (r *PostgresContentRepository) Load(ctx context.Context) ([]byte, error) {
	query := `SELECT document FROM content_documents WHERE storage_key = $1`

	var raw []byte
	err := r.db.GetContext(ctx, &raw, query, entities.StorageKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("load content document: %w", err)
	}

	return raw, nil
}

func (r *PostgresContentRepository) Save(ctx context.Context, raw []byte) error {
	query := `
		INSERT INTO content_documents (storage_key, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key)
		DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, entities.StorageKey, raw); err != nil {
		return fmt.Errorf("save content document: %w", err)
	}

	return nil
}
