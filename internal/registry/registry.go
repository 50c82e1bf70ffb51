package registry

import (
	"context"

	"github.com/gianca04/face-recognition/internal/domain"
)

// Source supplies the known faces for a given scope (e.g. an enrollment
// key). Implementations decide what the scope means; the local directory
// source ignores it entirely.
type Source interface {
	Load(ctx context.Context, scope string) ([]domain.KnownFace, error)
}

// Mutable is a registry source that also supports maintenance operations.
// Mutations are synchronous: a completed Add or Remove is visible to the
// next Load or List call.
type Mutable interface {
	Source

	// Add persists the image under the identifier, computes its encoding with
	// the exactly-one-face rule and replaces any prior entry.
	Add(ctx context.Context, scope, id string, image []byte) error

	// Remove deletes the entry. Fails with domain.ErrFaceNotFound if absent.
	Remove(ctx context.Context, scope, id string) error

	// List returns the registered identifiers for the scope.
	List(ctx context.Context, scope string) ([]string, error)
}
