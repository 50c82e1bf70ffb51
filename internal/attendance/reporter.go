package attendance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gianca04/face-recognition/internal/domain"
)

// Config holds attendance reporter settings
type Config struct {
	BaseURL string
	Secret  string
	Timeout time.Duration
}

// DefaultConfig returns the default reporter configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://attendance_api",
		Timeout: 10 * time.Second,
	}
}

// Reporter delivers attendance reports to the upstream attendance API.
// Delivery is fire-and-forget: a failed report is logged and reported as
// not delivered, never surfaced as an error, so a flaky attendance API
// cannot fail a recognition request.
type Reporter struct {
	config Config
	client *http.Client
	logger *slog.Logger
}

// NewReporter creates an attendance reporter
func NewReporter(config Config, logger *slog.Logger) *Reporter {
	if config.BaseURL == "" {
		config.BaseURL = DefaultConfig().BaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultConfig().Timeout
	}

	return &Reporter{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// Report posts the matches observed in a capture to the attendance API.
// It returns true only when the API acknowledged the report. Empty match
// sets are not reported.
func (r *Reporter) Report(ctx context.Context, contextID string, matches []domain.MatchResult, capturedAt time.Time) bool {
	if len(matches) == 0 {
		return false
	}

	report := domain.AttendanceReport{
		ContextID:  contextID,
		Matches:    matches,
		CapturedAt: capturedAt,
	}

	payload, err := json.Marshal(report)
	if err != nil {
		r.logger.Warn("attendance report not delivered",
			"context_id", contextID,
			"error", err,
		)
		return false
	}

	url := strings.TrimSuffix(r.config.BaseURL, "/") + "/api/asistencias"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		r.logger.Warn("attendance report not delivered",
			"context_id", contextID,
			"error", err,
		)
		return false
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if r.config.Secret != "" {
		req.Header.Set("X-Attendance-Signature", Sign(r.config.Secret, payload))
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("attendance report not delivered",
			"context_id", contextID,
			"error", err,
		)
		return false
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		r.logger.Warn("attendance report not delivered",
			"context_id", contextID,
			"error", fmt.Sprintf("HTTP %d", resp.StatusCode),
		)
		return false
	}

	r.logger.Info("attendance report delivered",
		"context_id", contextID,
		"matches", len(matches),
	)

	return true
}
