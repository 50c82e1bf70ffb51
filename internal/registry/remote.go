package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gianca04/face-recognition/internal/domain"
)

// RemoteConfig holds the configuration for the remote enrollment source
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultRemoteConfig returns a RemoteConfig with sensible defaults
func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		BaseURL: "http://attendance_api",
		Timeout: 10 * time.Second,
	}
}

// Remote fetches the known faces for an enrollment scope from the remote
// enrollment service on every call. Nothing is cached, so results are never
// stale and every request pays the full fetch latency.
type Remote struct {
	httpClient *http.Client
	config     RemoteConfig
}

// NewRemote creates a remote registry source
func NewRemote(config RemoteConfig) *Remote {
	return &Remote{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// knownFacesResponse mirrors the enrollment service payload
type knownFacesResponse struct {
	Faces []knownFaceEntry `json:"rostros"`
}

type knownFaceEntry struct {
	ID       faceID    `json:"id"`
	Encoding []float64 `json:"encoding"`
}

// faceID is a face identifier on the wire. The enrollment service sends ids
// as strings or as bare numbers depending on the record's origin, so both
// forms decode to the string identifier used everywhere else.
type faceID string

func (f *faceID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = faceID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("face id must be a string or a number, got %s", data)
	}
	*f = faceID(n.String())
	return nil
}

// Load fetches the current set of known faces for the scope. Transport
// errors, timeouts and non-success statuses all surface as
// domain.ErrUpstreamUnavailable.
func (r *Remote) Load(ctx context.Context, scope string) ([]domain.KnownFace, error) {
	endpoint := fmt.Sprintf("%s/api/biometricos/matricula/%s", r.config.BaseURL, url.PathEscape(scope))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable.WithError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable.WithError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.ErrUpstreamUnavailable.WithError(
			fmt.Errorf("enrollment service returned status %d", resp.StatusCode))
	}

	var payload knownFacesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.ErrUpstreamUnavailable.WithError(fmt.Errorf("decode response: %w", err))
	}

	known := make([]domain.KnownFace, 0, len(payload.Faces))
	for _, entry := range payload.Faces {
		known = append(known, domain.KnownFace{
			ID:       string(entry.ID),
			Encoding: domain.Embedding(entry.Encoding),
		})
	}

	return known, nil
}

var _ Source = (*Remote)(nil)
