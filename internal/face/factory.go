package face

import (
	"fmt"

	"github.com/gianca04/face-recognition/internal/config"
	"github.com/gianca04/face-recognition/internal/extractor"
	"github.com/gianca04/face-recognition/internal/extractor/facerec"
	"github.com/gianca04/face-recognition/internal/extractor/mock"
)

// ExtractorType defines supported encoding extractor types
type ExtractorType string

const (
	// ExtractorTypeFacerec is the HTTP encoding service (default)
	ExtractorTypeFacerec ExtractorType = "facerec"
	// ExtractorTypeMock is the deterministic in-process extractor (for dev/test)
	ExtractorTypeMock ExtractorType = "mock"
)

// NewExtractor creates an Extractor instance based on configuration
//
// Environment variables:
//   - EXTRACTOR: "facerec" or "mock" (default: "facerec")
//   - EXTRACTOR_URL: encoding service URL (default: "http://localhost:5000")
//   - EXTRACTOR_TIMEOUT: per-request timeout (default: "30s")
func NewExtractor(cfg *config.Config) (extractor.Extractor, error) {
	extractorType := ExtractorType(cfg.Extractor)

	switch extractorType {
	case ExtractorTypeMock:
		return mock.New(), nil

	case ExtractorTypeFacerec, "":
		return createFacerecExtractor(cfg), nil

	default:
		return nil, fmt.Errorf("unknown extractor type: %s (supported: %s, %s)",
			cfg.Extractor, ExtractorTypeFacerec, ExtractorTypeMock)
	}
}

func createFacerecExtractor(cfg *config.Config) extractor.Extractor {
	// Start from the client defaults so the wired extractor keeps the
	// retry count and detection model, not just the endpoint.
	clientConfig := facerec.DefaultConfig()
	if cfg.ExtractorURL != "" {
		clientConfig.BaseURL = cfg.ExtractorURL
	}
	if cfg.ExtractorTimeout != 0 {
		clientConfig.Timeout = cfg.ExtractorTimeout
	}

	return facerec.New(clientConfig)
}
