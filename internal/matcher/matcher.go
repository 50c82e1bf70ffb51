package matcher

import (
	"math"

	"github.com/gianca04/face-recognition/internal/domain"
)

// DefaultThreshold is the distance under which two embeddings are
// considered the same identity. Matches the dlib face_recognition
// convention for 128-d encodings.
const DefaultThreshold = 0.6

// Matcher compares query embeddings against known faces using Euclidean
// distance. The threshold is injected at construction so tests can vary
// it per case without cross-test interference.
type Matcher struct {
	threshold float64
}

// New creates a Matcher with the given distance threshold
func New(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// Threshold returns the configured distance threshold
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match compares every query embedding against every known face and records
// each known face whose distance falls at or under the threshold.
//
// Every known face under the threshold is recorded independently per query
// embedding; the matcher does not collapse to the single closest candidate.
// Callers that want a best-match policy must apply it themselves.
//
// DetectedCount always equals len(queries), matches or not. Empty inputs
// yield an empty match list, never an error.
func (m *Matcher) Match(queries []domain.Embedding, known []domain.KnownFace) domain.DetectionOutcome {
	outcome := domain.DetectionOutcome{
		DetectedCount: len(queries),
		Matches:       []domain.MatchResult{},
	}

	for _, query := range queries {
		for _, face := range known {
			// Never compare embeddings of differing dimensionality
			if len(query) != len(face.Encoding) {
				continue
			}

			dist := Distance(query, face.Encoding)
			if dist <= m.threshold {
				outcome.Matches = append(outcome.Matches, domain.MatchResult{
					ID:       face.ID,
					Distance: dist,
				})
			}
		}
	}

	return outcome
}

// Distance computes the Euclidean distance between two embeddings.
// For unit-norm face embeddings the result lies in [0, 2] and grows
// with dissimilarity.
func Distance(a, b domain.Embedding) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
