package facerec

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/gianca04/face-recognition/internal/domain"
	"github.com/gianca04/face-recognition/internal/extractor"
)

// Extractor implements extractor.Extractor against a remote dlib-style
// face encodings service
type Extractor struct {
	client *Client
}

// New creates a new remote extractor
func New(config Config) *Extractor {
	return &Extractor{
		client: NewClient(config),
	}
}

// ExtractAll returns one embedding per face found in the image
func (e *Extractor) ExtractAll(ctx context.Context, image []byte) ([]domain.Embedding, error) {
	resp, err := e.encode(ctx, image)
	if err != nil {
		return nil, err
	}

	embeddings := make([]domain.Embedding, 0, len(resp.Encodings))
	for _, enc := range resp.Encodings {
		if len(enc) != extractor.Dimension {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrBadDimension, len(enc), extractor.Dimension)
		}
		embeddings = append(embeddings, domain.Embedding(enc))
	}

	return embeddings, nil
}

// ExtractOne enforces the exactly-one-face contract for reference images
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

func (e *Extractor) encode(ctx context.Context, image []byte) (*EncodingsResponse, error) {
	imageBase64 := base64.StdEncoding.EncodeToString(image)

	resp, err := e.client.Encodings(ctx, imageBase64)
	if err != nil {
		if isClientError(err) {
			return nil, domain.ErrInvalidImage.WithError(err)
		}
		return nil, fmt.Errorf("extract encodings: %w", err)
	}

	return resp, nil
}

// Ensure Extractor implements extractor.Extractor
var _ extractor.Extractor = (*Extractor)(nil)
