package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gianca04/face-recognition/internal/domain"
	"github.com/gianca04/face-recognition/internal/extractor"
	"github.com/gianca04/face-recognition/internal/matcher"
	"github.com/gianca04/face-recognition/internal/registry"
)

type ReporterInterface interface {
	Report(ctx context.Context, contextID string, matches []domain.MatchResult, capturedAt time.Time) bool
}

// RecognitionService runs the capture pipeline: load the known faces for
// the scope, extract the encodings present in the image, match them and
// report the attendance of everyone recognized.
type RecognitionService struct {
	registry  registry.Source
	extractor extractor.Extractor
	matcher   *matcher.Matcher
	reporter  ReporterInterface
}

func NewRecognitionService(
	reg registry.Source,
	ext extractor.Extractor,
	m *matcher.Matcher,
	reporter ReporterInterface,
) *RecognitionService {
	return &RecognitionService{
		registry:  reg,
		extractor: ext,
		matcher:   m,
		reporter:  reporter,
	}
}

// Recognize matches every face in the image against the scope's known
// faces. The registry is consulted before the image is decoded so an
// unavailable roster fails the request without spending extraction work.
func (s *RecognitionService) Recognize(ctx context.Context, scope string, image []byte) (*domain.Recognition, error) {
	known, err := s.registry.Load(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("scope %s: load known faces: %w", scope, err)
	}

	queries, err := s.extractor.ExtractAll(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("scope %s: extract faces: %w", scope, err)
	}

	capturedAt := time.Now().UTC()
	outcome := s.matcher.Match(queries, known)

	recognition := &domain.Recognition{
		DetectedCount: outcome.DetectedCount,
		Matches:       outcome.Matches,
		CapturedAt:    capturedAt,
	}

	if len(outcome.Matches) > 0 {
		recognition.AttendanceReported = s.reporter.Report(ctx, scope, outcome.Matches, capturedAt)
	}

	return recognition, nil
}

// Encode returns the encoding of the single face in the image
func (s *RecognitionService) Encode(ctx context.Context, image []byte) (domain.Embedding, error) {
	encoding, err := s.extractor.ExtractOne(ctx, image)
	if err != nil {
		return nil, err
	}
	return encoding, nil
}
