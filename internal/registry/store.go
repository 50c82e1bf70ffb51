package registry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgvector/pgvector-go"

	"github.com/gianca04/face-recognition/internal/domain"
	"github.com/gianca04/face-recognition/internal/extractor"
)

// PgxPool is the subset of pgxpool.Pool the store needs, kept narrow so
// tests can substitute pgxmock
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// Store is a Postgres-backed registry keyed by enrollment scope. It gives
// deployments without a shared faces directory a durable place for known
// encodings while keeping the same load semantics as the other sources.
type Store struct {
	pool      PgxPool
	extractor extractor.Extractor
}

// NewStore creates a Postgres registry store
func NewStore(pool PgxPool, ext extractor.Extractor) *Store {
	return &Store{pool: pool, extractor: ext}
}

// Load returns the known faces registered under the scope
func (s *Store) Load(ctx context.Context, scope string) ([]domain.KnownFace, error) {
	query := `
		SELECT face_id, embedding
		FROM known_faces
		WHERE scope = $1
		ORDER BY face_id
	`

	rows, err := s.pool.Query(ctx, query, scope)
	if err != nil {
		return nil, fmt.Errorf("load known faces: %w", err)
	}
	defer rows.Close()

	var known []domain.KnownFace
	for rows.Next() {
		var id string
		var embedding pgvector.Vector

		if err := rows.Scan(&id, &embedding); err != nil {
			return nil, fmt.Errorf("scan known face: %w", err)
		}

		known = append(known, domain.KnownFace{
			ID:       id,
			Encoding: toEmbedding(embedding),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load known faces: %w", err)
	}

	return known, nil
}

// Add computes the image's encoding and upserts it under (scope, id)
func (s *Store) Add(ctx context.Context, scope, id string, image []byte) error {
	encoding, err := s.extractor.ExtractOne(ctx, image)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO known_faces (scope, face_id, embedding, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (scope, face_id)
		DO UPDATE SET embedding = EXCLUDED.embedding, updated_at = NOW()
	`

	if _, err := s.pool.Exec(ctx, query, scope, id, toVector(encoding)); err != nil {
		return fmt.Errorf("upsert known face: %w", err)
	}

	return nil
}

// Remove deletes the entry for (scope, id)
func (s *Store) Remove(ctx context.Context, scope, id string) error {
	query := `
		DELETE FROM known_faces
		WHERE scope = $1 AND face_id = $2
	`

	result, err := s.pool.Exec(ctx, query, scope, id)
	if err != nil {
		return fmt.Errorf("delete known face: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrFaceNotFound
	}

	return nil
}

// List returns the identifiers registered under the scope
func (s *Store) List(ctx context.Context, scope string) ([]string, error) {
	query := `
		SELECT face_id
		FROM known_faces
		WHERE scope = $1
		ORDER BY face_id
	`

	rows, err := s.pool.Query(ctx, query, scope)
	if err != nil {
		return nil, fmt.Errorf("list known faces: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan face id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list known faces: %w", err)
	}

	return ids, nil
}

func toVector(embedding domain.Embedding) pgvector.Vector {
	floats := make([]float32, len(embedding))
	for i, v := range embedding {
		floats[i] = float32(v)
	}
	return pgvector.NewVector(floats)
}

func toEmbedding(vec pgvector.Vector) domain.Embedding {
	slice := vec.Slice()
	embedding := make(domain.Embedding, len(slice))
	for i, v := range slice {
		embedding[i] = float64(v)
	}
	return embedding
}

var _ Mutable = (*Store)(nil)
