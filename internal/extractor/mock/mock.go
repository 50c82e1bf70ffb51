package mock

import (
	"context"
	"crypto/sha256"
	"math"

	"github.com/gianca04/face-recognition/internal/domain"
	"github.com/gianca04/face-recognition/internal/extractor"
)

// minImageSize guards against obviously truncated uploads
const minImageSize = 1000

// Extractor is a deterministic extractor for tests and development.
// Every valid image yields exactly one embedding derived from its hash,
// so the same image always produces the same vector.
type Extractor struct{}

// New creates a new mock extractor
func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) ExtractAll(ctx context.Context, image []byte) ([]domain.Embedding, error) {
	if len(image) < minImageSize {
		return nil, domain.ErrInvalidImage
	}

	return []domain.Embedding{generateEmbedding(image)}, nil
}

func (e *Extractor) ExtractOne(ctx context.Context, image []byte) (domain.Embedding, error) {
	embeddings, err := e.ExtractAll(ctx, image)
	if err != nil {
		return nil, err
	}

	switch len(embeddings) {
	case 0:
		return nil, domain.ErrNoFaceDetected
	case 1:
		return embeddings[0], nil
	default:
		return nil, domain.ErrMultipleFaces
	}
}

// generateEmbedding derives a unit-norm embedding from the image hash
func generateEmbedding(image []byte) domain.Embedding {
	hash := sha256.Sum256(image)
	embedding := make(domain.Embedding, extractor.Dimension)
	hashLen := len(hash)

	for i := 0; i < extractor.Dimension; i++ {
		idx := i % hashLen
		embedding[i] = (float64(hash[idx])/255.0)*2 - 1
	}

	norm := 0.0
	for _, v := range embedding {
		norm += v * v
	}
	norm = math.Sqrt(norm)

	for i := range embedding {
		embedding[i] /= norm
	}

	return embedding
}

var _ extractor.Extractor = (*Extractor)(nil)
