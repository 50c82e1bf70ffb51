package extractor

import (
	"context"

	"github.com/gianca04/face-recognition/internal/domain"
)

// Dimension is the fixed length of every embedding produced by the
// extractors in this process. The matcher never compares vectors of
// differing dimensionality, so all implementations must honor it.
const Dimension = 128

// Extractor turns a raw image into face embedding vectors
type Extractor interface {
	// ExtractAll returns one embedding per detected face. An empty slice is a
	// valid result for an image with no faces.
	ExtractAll(ctx context.Context, image []byte) ([]domain.Embedding, error)

	// ExtractOne enforces the exactly-one-face rule used for reference images.
	// Fails with domain.ErrNoFaceDetected or domain.ErrMultipleFaces and never
	// returns a partial vector.
	ExtractOne(ctx context.Context, image []byte) (domain.Embedding, error)
}
